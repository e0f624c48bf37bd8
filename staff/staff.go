package staff

import (
	"math"
	"strconv"
	"time"
)

type Kind int

const (
	KindEmployee Kind = iota
	KindDeveloper
	KindManager
)

var kindNames = map[Kind]string{
	KindEmployee:  "employee",
	KindDeveloper: "developer",
	KindManager:   "manager",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// ParseKind maps "employee", "developer" or "manager" to a Kind. An empty
// string is an employee.
func ParseKind(s string) (Kind, bool) {
	if s == "" {
		return KindEmployee, true
	}
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

// Pay is either a numeric amount or the raw text it was read from.
// Text pay is never coerced.
type Pay struct {
	amount float64
	text   string
	isText bool
}

func Amount(v float64) Pay { return Pay{amount: v} }

func Text(s string) Pay { return Pay{text: s, isText: true} }

func (p Pay) IsText() bool { return p.isText }

// Float returns the numeric amount; ok is false for text pay.
func (p Pay) Float() (float64, bool) {
	if p.isText {
		return 0, false
	}
	return p.amount, true
}

func (p Pay) String() string {
	if p.isText {
		return p.text
	}
	return strconv.FormatFloat(p.amount, 'f', -1, 64)
}

func (p Pay) raise(factor float64) (Pay, error) {
	if p.isText {
		return p, ErrPayNotNumeric
	}
	return Amount(math.Trunc(p.amount * factor)), nil
}

type Payer interface {
	Pay() Pay
}

// IEmployee is satisfied by *Employee and by every type embedding it.
type IEmployee interface {
	Payer
	Base() *Employee
	Kind() Kind
	FullName() string
	Email() string
	RaiseAmount() float64
	ApplyRaise() error
	String() string
}

// BaseOf returns the underlying employee, or nil for a nil interface or a
// typed nil pointer.
func BaseOf(e IEmployee) *Employee {
	if e == nil {
		return nil
	}
	return e.Base()
}

// Same reports whether a and b refer to the same underlying employee.
func Same(a, b IEmployee) bool {
	return BaseOf(a) == BaseOf(b)
}

// IsWorkday is false on Saturday and Sunday.
func IsWorkday(day time.Time) bool {
	switch day.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return true
}
