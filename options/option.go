package options

import (
	"github.com/cockroachdb/errors"

	"github.com/projecteru2/memsize/memsize"
)

// Option is one typed memory size option
type Option interface {
	Name() string
	Kind() Kind
	Usage() string
	// String is the current value in canonical form
	String() string
	Default() string
	Range() (min, max string)
	IsDefault() bool
	// Set parses and stores value, the old value is kept on error
	Set(value string) error
	// Validate parses value without storing it and returns its canonical form
	Validate(value string) (string, error)
}

type option[T memsize.Integer] struct {
	name  string
	usage string
	value *T
	def   T
	min   T
	max   T
}

func newOption[T memsize.Integer](name string, def, min, max T, usage string) (*option[T], error) {
	if name == "" {
		return nil, errors.Wrap(ErrBadDefinition, "empty name")
	}
	if min > max || def < min || def > max {
		return nil, errors.Wrapf(ErrBadDefinition, "option %s: default %s not in [%s, %s]",
			name, memsize.Format(def), memsize.Format(min), memsize.Format(max))
	}
	value := def
	return &option[T]{
		name:  name,
		usage: usage,
		value: &value,
		def:   def,
		min:   min,
		max:   max,
	}, nil
}

func (o *option[T]) Name() string  { return o.name }
func (o *option[T]) Kind() Kind    { return kindOf[T]() }
func (o *option[T]) Usage() string { return o.usage }

func (o *option[T]) String() string {
	return memsize.Format(*o.value)
}

func (o *option[T]) Default() string {
	return memsize.Format(o.def)
}

func (o *option[T]) Range() (string, string) {
	return memsize.Format(o.min), memsize.Format(o.max)
}

func (o *option[T]) IsDefault() bool {
	return *o.value == o.def
}

func (o *option[T]) parse(value string) (T, error) {
	n, err := memsize.Parse[T](value)
	if err != nil {
		return n, errors.Wrapf(err, "option %s", o.name)
	}
	if n < o.min || n > o.max {
		return n, errors.Wrapf(ErrOutOfRange, "option %s: %s not in [%s, %s]",
			o.name, memsize.Format(n), memsize.Format(o.min), memsize.Format(o.max))
	}
	return n, nil
}

func (o *option[T]) Set(value string) error {
	n, err := o.parse(value)
	if err != nil {
		return err
	}
	*o.value = n
	return nil
}

func (o *option[T]) Validate(value string) (string, error) {
	n, err := o.parse(value)
	if err != nil {
		return "", err
	}
	return memsize.Format(n), nil
}
