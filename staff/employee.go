package staff

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

type Employee struct {
	reg     *Registry
	kind    Kind
	first   string
	last    string
	named   bool
	pay     Pay
	raise   float64
	raiseOK bool
}

// NewEmployee registers a plain employee with reg, or with Default() when
// reg is nil.
func NewEmployee(reg *Registry, first, last string, pay Pay) *Employee {
	return NewBase(reg, KindEmployee, first, last, pay)
}

// NewBase is the shared constructor for every kind. Packages that embed
// *Employee call it with their own Kind.
func NewBase(reg *Registry, kind Kind, first, last string, pay Pay) *Employee {
	reg = orDefault(reg)
	e := &Employee{
		reg:   reg,
		kind:  kind,
		first: first,
		last:  last,
		named: true,
		pay:   pay,
	}
	reg.register(kind)
	return e
}

// FromString parses "first-last-pay". Pay is kept as text.
func FromString(reg *Registry, record string) (*Employee, error) {
	first, last, pay, err := SplitRecord(record)
	if err != nil {
		return nil, err
	}
	return NewEmployee(reg, first, last, Text(pay)), nil
}

// SplitRecord splits "first-last-pay" into its three fields.
func SplitRecord(record string) (first, last, pay string, err error) {
	parts := strings.Split(record, "-")
	if len(parts) != 3 {
		return "", "", "", &FormatError{Kind: ErrMalformedRecord, Input: record, Want: 3, Got: len(parts)}
	}
	return parts[0], parts[1], parts[2], nil
}

func (e *Employee) Base() *Employee { return e }

func (e *Employee) Kind() Kind { return e.kind }

func (e *Employee) Registry() *Registry { return e.reg }

// First returns the first name; ok is false after ClearFullName.
func (e *Employee) First() (string, bool) { return e.first, e.named }

func (e *Employee) Last() (string, bool) { return e.last, e.named }

func (e *Employee) Pay() Pay { return e.pay }

func (e *Employee) Email() string {
	if !e.named {
		return ""
	}
	return fmt.Sprintf("%s.%s.@%s", e.first, e.last, e.reg.EmailDomain())
}

func (e *Employee) FullName() string {
	if !e.named {
		return ""
	}
	return e.first + " " + e.last
}

// SetFullName splits name on a single space into first and last.
func (e *Employee) SetFullName(name string) error {
	parts := strings.Split(name, " ")
	if len(parts) != 2 {
		return &FormatError{Kind: ErrMalformedName, Input: name, Want: 2, Got: len(parts)}
	}
	e.first, e.last, e.named = parts[0], parts[1], true
	return nil
}

// ClearFullName drops both names and writes "Name Deleted!" to the
// registry output.
func (e *Employee) ClearFullName() {
	old := e.FullName()
	e.first, e.last, e.named = "", "", false
	fmt.Fprintln(e.reg.Output(), "Name Deleted!")
	e.reg.Logger().Info("name deleted", zap.String("fullname", old))
}

// RaiseAmount is the instance override when set, otherwise the registry
// default for this kind.
func (e *Employee) RaiseAmount() float64 {
	if e.raiseOK {
		return e.raise
	}
	return e.reg.RaiseAmount(e.kind)
}

func (e *Employee) SetRaiseOverride(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidRaise, amount)
	}
	e.raise, e.raiseOK = amount, true
	return nil
}

func (e *Employee) ClearRaiseOverride() {
	e.raise, e.raiseOK = 0, false
}

// RaiseOverride reports the instance override, if any.
func (e *Employee) RaiseOverride() (float64, bool) { return e.raise, e.raiseOK }

// ApplyRaise sets pay to trunc(pay * RaiseAmount()).
func (e *Employee) ApplyRaise() error {
	factor := e.RaiseAmount()
	pay, err := e.pay.raise(factor)
	if err != nil {
		return fmt.Errorf("apply raise to %q: %w", e.FullName(), err)
	}
	e.reg.Logger().Debug("raise applied",
		zap.String("fullname", e.FullName()),
		zap.Stringer("from", e.pay),
		zap.Stringer("to", pay),
		zap.Float64("factor", factor),
	)
	e.pay = pay
	return nil
}

// CombinedPay is the sum of both numeric pays.
func (e *Employee) CombinedPay(other Payer) (float64, error) {
	if other == nil {
		return 0, ErrNoPay
	}
	a, ok := e.pay.Float()
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrPayNotNumeric, e.pay.String())
	}
	op := other.Pay()
	b, ok := op.Float()
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrPayNotNumeric, op.String())
	}
	return a + b, nil
}

// Len is the number of characters in FullName.
func (e *Employee) Len() int { return utf8.RuneCountInString(e.FullName()) }

func (e *Employee) String() string {
	return e.FullName() + " - " + e.Email()
}

// GoString prints <nil> in place of names removed by ClearFullName.
func (e *Employee) GoString() string {
	if !e.named {
		return fmt.Sprintf("Employee(<nil>, <nil>, %s)", e.pay)
	}
	return fmt.Sprintf("Employee('%s', '%s', %s)", e.first, e.last, e.pay)
}
