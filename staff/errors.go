package staff

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedName   = errors.New("malformed full name")
	ErrMalformedRecord = errors.New("malformed employee record")
	ErrPayNotNumeric   = errors.New("pay is not numeric")
	ErrNoPay           = errors.New("operand has no pay")
	ErrInvalidRaise    = errors.New("invalid raise amount")
)

// FormatError reports input that could not be split into the expected
// number of tokens.
type FormatError struct {
	Kind  error
	Input string
	Want  int
	Got   int
}

func (e *FormatError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %q: want %d tokens, got %d", e.Kind.Error(), e.Input, e.Want, e.Got)
}

func (e *FormatError) Unwrap() error { return e.Kind }
