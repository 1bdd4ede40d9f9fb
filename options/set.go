// Package options is a table of typed memory size options set with
// -XX:Name=Value style assignments.
package options

import (
	"strings"

	"github.com/alphadose/haxmap"
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slices"

	"github.com/projecteru2/memsize/memsize"
	"github.com/projecteru2/memsize/types"
)

// Prefix is stripped from assignments given to ParseArg
const Prefix = "-XX:"

// Set holds options by name
type Set struct {
	name    string
	options *haxmap.Map[string, Option]
}

// NewSet .
func NewSet(name string) *Set {
	return &Set{
		name:    name,
		options: haxmap.New[string, Option](),
	}
}

// Name .
func (s *Set) Name() string {
	return s.name
}

// Len .
func (s *Set) Len() int {
	return int(s.options.Len())
}

func (s *Set) add(o Option) error {
	if _, ok := s.options.Get(o.Name()); ok {
		return errors.Wrapf(ErrDuplicateOption, "%s in %s", o.Name(), s.name)
	}
	s.options.Set(o.Name(), o)
	return nil
}

func defineRange[T memsize.Integer](s *Set, name string, def, min, max T, usage string) (*T, error) {
	o, err := newOption(name, def, min, max, usage)
	if err != nil {
		return nil, err
	}
	if err := s.add(o); err != nil {
		return nil, err
	}
	return o.value, nil
}

// Define adds an option accepting the whole range of T
// and returns where its value is stored. Bad definitions panic.
func Define[T memsize.Integer](s *Set, name string, def T, usage string) *T {
	lo, hi := memsize.Limits[T]()
	return DefineRange(s, name, def, lo, hi, usage)
}

// DefineRange adds an option accepting values in [min, max]
func DefineRange[T memsize.Integer](s *Set, name string, def, min, max T, usage string) *T {
	p, err := defineRange(s, name, def, min, max, usage)
	if err != nil {
		panic(err)
	}
	return p
}

// DefineSpec adds an option declared in config
func DefineSpec(s *Set, spec types.OptionSpec) error {
	kind, err := ParseKind(spec.Type)
	if err != nil {
		return errors.Wrapf(err, "option %s", spec.Name)
	}
	switch kind {
	case Int32:
		return defineSpec[int32](s, spec)
	case Uint32:
		return defineSpec[uint32](s, spec)
	case Int64:
		return defineSpec[int64](s, spec)
	default:
		return defineSpec[uint64](s, spec)
	}
}

func defineSpec[T memsize.Integer](s *Set, spec types.OptionSpec) error {
	lo, hi := memsize.Limits[T]()
	var err error
	bound := func(field, value string, into *T) {
		if err != nil || value == "" {
			return
		}
		if *into, err = memsize.Parse[T](value); err != nil {
			err = errors.Mark(errors.Wrapf(err, "option %s %s", spec.Name, field), ErrBadDefinition)
		}
	}
	bound("min", spec.Min, &lo)
	bound("max", spec.Max, &hi)

	var def T
	if def < lo {
		def = lo
	}
	if def > hi {
		def = hi
	}
	bound("default", spec.Default, &def)
	if err != nil {
		return err
	}

	_, err = defineRange(s, spec.Name, def, lo, hi, spec.Usage)
	return err
}

// Lookup .
func (s *Set) Lookup(name string) (Option, bool) {
	return s.options.Get(name)
}

// Set assigns value to the named option
func (s *Set) Set(name, value string) error {
	o, ok := s.options.Get(name)
	if !ok {
		return errors.Wrapf(ErrUnknownOption, "%s", name)
	}
	return o.Set(value)
}

// SplitArg splits -XX:Name=Value or Name=Value
func SplitArg(arg string) (string, string, error) {
	name, value, ok := strings.Cut(strings.TrimPrefix(arg, Prefix), "=")
	if !ok || name == "" {
		return "", "", errors.Wrapf(ErrBadSyntax, "%q", arg)
	}
	return name, value, nil
}

// ParseArg applies one assignment
func (s *Set) ParseArg(arg string) error {
	name, value, err := SplitArg(arg)
	if err != nil {
		return err
	}
	return s.Set(name, value)
}

// ParseArgs applies every assignment, failed ones are skipped and reported together
func (s *Set) ParseArgs(args []string) error {
	var result error
	for _, arg := range args {
		result = errors.CombineErrors(result, s.ParseArg(arg))
	}
	return result
}

// VisitAll calls fn for every option in name order
func (s *Set) VisitAll(fn func(Option)) {
	names := make([]string, 0, s.Len())
	s.options.ForEach(func(name string, _ Option) bool {
		names = append(names, name)
		return true
	})
	slices.Sort(names)
	for _, name := range names {
		if o, ok := s.options.Get(name); ok {
			fn(o)
		}
	}
}
