package memsize

// Value adapts a typed memory size to flag.Value and cli.Generic
type Value[T Integer] struct {
	p *T
}

// NewValue stores def into p and returns a Value writing to p
func NewValue[T Integer](p *T, def T) *Value[T] {
	*p = def
	return &Value[T]{p: p}
}

// Set parses s, p is left untouched on error
func (v *Value[T]) Set(s string) error {
	n, err := Parse[T](s)
	if err != nil {
		return err
	}
	*v.p = n
	return nil
}

// String .
func (v *Value[T]) String() string {
	if v == nil || v.p == nil {
		return "0"
	}
	return Format(*v.p)
}

// Get returns the current value
func (v *Value[T]) Get() any {
	return *v.p
}
