package options

import (
	"github.com/cockroachdb/errors"

	"github.com/projecteru2/memsize/memsize"
)

// errors
var (
	ErrUnknownOption   = errors.New("unknown option")
	ErrBadSyntax       = errors.New("bad option syntax, want Name=Value")
	ErrOutOfRange      = errors.New("option value out of range")
	ErrBadKind         = errors.New("unknown option type")
	ErrBadDefinition   = errors.New("bad option definition")
	ErrDuplicateOption = errors.New("option already defined")
)

// Reason labels an option error, parse errors get memsize.Reason labels
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnknownOption):
		return "unknown_option"
	case errors.Is(err, ErrBadSyntax):
		return "syntax"
	case errors.Is(err, ErrOutOfRange):
		return "out_of_range"
	}
	return memsize.Reason(err)
}
