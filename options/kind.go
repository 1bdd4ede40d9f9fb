package options

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/projecteru2/memsize/memsize"
)

// Kind is the integer shape of an option
type Kind int

// kinds
const (
	Int32 Kind = iota + 1
	Uint32
	Int64
	Uint64
)

var kindNames = map[Kind]string{
	Int32:  "int32",
	Uint32: "uint32",
	Int64:  "int64",
	Uint64: "uint64",
}

// String .
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind parses a kind name, case insensitive
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, errors.Wrapf(ErrBadKind, "%q", s)
}

func kindOf[T memsize.Integer]() Kind {
	switch signed, bits := memsize.Signed[T](), memsize.BitSize[T](); {
	case signed && bits == 32:
		return Int32
	case bits == 32:
		return Uint32
	case signed:
		return Int64
	default:
		return Uint64
	}
}
