package developer

import (
	"strings"

	"go-staff/staff"
)

// Developer is an employee with a programming language. Its raise default
// comes from staff.KindDeveloper.
type Developer struct {
	*staff.Employee
	ProgLang string
}

func New(reg *staff.Registry, first, last string, pay staff.Pay, progLang string) *Developer {
	return &Developer{
		Employee: staff.NewBase(reg, staff.KindDeveloper, first, last, pay),
		ProgLang: progLang,
	}
}

func (d *Developer) Base() *staff.Employee {
	if d == nil {
		return nil
	}
	return d.Employee
}

// FromString parses "first-last-pay-lang". Pay is kept as text.
func FromString(reg *staff.Registry, record string) (*Developer, error) {
	parts := strings.Split(record, "-")
	if len(parts) != 4 {
		return nil, &staff.FormatError{Kind: staff.ErrMalformedRecord, Input: record, Want: 4, Got: len(parts)}
	}
	return New(reg, parts[0], parts[1], staff.Text(parts[2]), parts[3]), nil
}
