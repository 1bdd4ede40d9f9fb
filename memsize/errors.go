package memsize

import "github.com/cockroachdb/errors"

// errors
var (
	ErrInvalidLeading  = errors.New("memory size must start with a digit or '-'")
	ErrInvalidNumber   = errors.New("invalid number")
	ErrNumberRange     = errors.New("number out of range")
	ErrTrailingGarbage = errors.New("trailing characters after memory size")
	ErrInvalidSuffix   = errors.New("invalid memory size suffix")
	ErrOverflow        = errors.New("memory size overflows")
)

var reasons = []struct {
	err    error
	reason string
}{
	{ErrInvalidLeading, "leading"},
	{ErrInvalidNumber, "number"},
	{ErrNumberRange, "range"},
	{ErrTrailingGarbage, "trailing"},
	{ErrInvalidSuffix, "suffix"},
	{ErrOverflow, "overflow"},
}

// Reason returns a short label for a parse error, used as log field and metric label
func Reason(err error) string {
	if err == nil {
		return ""
	}
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}
	return "unknown"
}
