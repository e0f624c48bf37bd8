package roster

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/buger/jsonparser"

	"go-staff/staff"
	"go-staff/staff/developer"
	"go-staff/staff/manager"
)

var ErrInvalidRoster = errors.New("invalid roster")

// Roster is a decoded set of entities in file order.
type Roster struct {
	Members []staff.IEmployee
}

type entry struct {
	first, last string
	pay         staff.Pay
	kind        staff.Kind
	progLang    string
	raise       float64
	reports     []int64
}

func invalid(i int, format string, args ...any) error {
	return fmt.Errorf("%w: employees[%d]: %s", ErrInvalidRoster, i, fmt.Sprintf(format, args...))
}

// Decode reads {"employees": [...]} and builds every entry against reg.
// Manager "reports" are indices into the same array.
func Decode(reg *staff.Registry, data []byte) (*Roster, error) {
	var (
		entries []entry
		decErr  error
	)
	_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
		if decErr != nil {
			return
		}
		if err != nil {
			decErr = invalid(len(entries), "%v", err)
			return
		}
		e, err := decodeEntry(len(entries), value)
		if err != nil {
			decErr = err
			return
		}
		entries = append(entries, e)
	}, "employees")
	if decErr != nil {
		return nil, decErr
	}
	if err != nil {
		return nil, fmt.Errorf("%w: employees: %v", ErrInvalidRoster, err)
	}

	for i, e := range entries {
		if len(e.reports) > 0 && e.kind != staff.KindManager {
			return nil, invalid(i, "only managers have reports")
		}
		for _, idx := range e.reports {
			if idx < 0 || int(idx) >= len(entries) || int(idx) == i {
				return nil, invalid(i, "report index %d out of range", idx)
			}
		}
	}

	r := &Roster{Members: make([]staff.IEmployee, len(entries))}
	for i, e := range entries {
		var m staff.IEmployee
		switch e.kind {
		case staff.KindDeveloper:
			m = developer.New(reg, e.first, e.last, e.pay, e.progLang)
		case staff.KindManager:
			m = manager.New(reg, e.first, e.last, e.pay)
		default:
			m = staff.NewEmployee(reg, e.first, e.last, e.pay)
		}
		if e.raise > 0 {
			if err := m.Base().SetRaiseOverride(e.raise); err != nil {
				return nil, invalid(i, "%v", err)
			}
		}
		r.Members[i] = m
	}
	for i, e := range entries {
		if mgr, ok := r.Members[i].(*manager.Manager); ok {
			for _, idx := range e.reports {
				mgr.AddEmployee(r.Members[idx])
			}
		}
	}
	return r, nil
}

func decodeEntry(i int, value []byte) (entry, error) {
	var e entry
	var err error
	if e.first, err = jsonparser.GetString(value, "first"); err != nil {
		return e, invalid(i, "first: %v", err)
	}
	if e.last, err = jsonparser.GetString(value, "last"); err != nil {
		return e, invalid(i, "last: %v", err)
	}

	raw, typ, _, err := jsonparser.Get(value, "pay")
	switch {
	case err != nil:
		return e, invalid(i, "pay: %v", err)
	case typ == jsonparser.Number:
		f, perr := strconv.ParseFloat(string(raw), 64)
		if perr != nil {
			return e, invalid(i, "pay: %v", perr)
		}
		e.pay = staff.Amount(f)
	case typ == jsonparser.String:
		s, perr := jsonparser.ParseString(raw)
		if perr != nil {
			return e, invalid(i, "pay: %v", perr)
		}
		e.pay = staff.Text(s)
	default:
		return e, invalid(i, "pay must be a number or string")
	}

	kindStr, err := optionalString(value, "kind")
	if err != nil {
		return e, invalid(i, "kind: %v", err)
	}
	kind, ok := staff.ParseKind(kindStr)
	if !ok {
		return e, invalid(i, "unknown kind %q", kindStr)
	}
	e.kind = kind
	if e.progLang, err = optionalString(value, "prog_lang"); err != nil {
		return e, invalid(i, "prog_lang: %v", err)
	}

	if raise, rerr := jsonparser.GetFloat(value, "raise"); rerr == nil {
		if raise <= 0 {
			return e, invalid(i, "raise must be positive")
		}
		e.raise = raise
	} else if !errors.Is(rerr, jsonparser.KeyPathNotFoundError) {
		return e, invalid(i, "raise: %v", rerr)
	}

	var repErr error
	_, err = jsonparser.ArrayEach(value, func(v []byte, dataType jsonparser.ValueType, offset int, err error) {
		if repErr != nil {
			return
		}
		n, perr := jsonparser.ParseInt(v)
		if err != nil || perr != nil || dataType != jsonparser.Number {
			repErr = invalid(i, "reports must be integer indices")
			return
		}
		e.reports = append(e.reports, n)
	}, "reports")
	if repErr != nil {
		return e, repErr
	}
	if err != nil && !errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return e, invalid(i, "reports: %v", err)
	}
	return e, nil
}

// optionalString returns "" for a missing key and an error for a value
// that is present but not a string.
func optionalString(value []byte, key string) (string, error) {
	s, err := jsonparser.GetString(value, key)
	if errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return "", nil
	}
	return s, err
}

func (r *Roster) Managers() []*manager.Manager {
	var out []*manager.Manager
	for _, m := range r.Members {
		if mgr, ok := m.(*manager.Manager); ok {
			out = append(out, mgr)
		}
	}
	return out
}

// Find returns the first member whose full name matches.
func (r *Roster) Find(fullname string) (staff.IEmployee, bool) {
	for _, m := range r.Members {
		if m.FullName() == fullname {
			return m, true
		}
	}
	return nil, false
}
