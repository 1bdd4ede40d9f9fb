package types

import (
	"bytes"
	"encoding/json"

	"github.com/cockroachdb/errors"

	"github.com/projecteru2/memsize/memsize"
)

// Size is a byte count written as a memory size in config, e.g. 16M
type Size int64

// UnmarshalText .
func (s *Size) UnmarshalText(text []byte) error {
	n, err := memsize.Parse[int64](string(text))
	if err != nil {
		return errors.Mark(err, ErrInvalidSize)
	}
	*s = Size(n)
	return nil
}

// UnmarshalYAML accepts both quoted and bare sizes
func (s *Size) UnmarshalYAML(unmarshal func(any) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	return s.UnmarshalText([]byte(raw))
}

// UnmarshalJSON accepts strings and bare numbers, numbers are parsed as written
func (s *Size) UnmarshalJSON(b []byte) error {
	var raw any
	decoder := json.NewDecoder(bytes.NewReader(b))
	decoder.UseNumber()
	if err := decoder.Decode(&raw); err != nil {
		return errors.Mark(err, ErrInvalidSize)
	}
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		return s.UnmarshalText([]byte(v))
	case json.Number:
		return s.UnmarshalText([]byte(v.String()))
	}
	return errors.Wrapf(ErrInvalidSize, "%s", b)
}

// MarshalText .
func (s Size) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// String .
func (s Size) String() string {
	return memsize.Format(int64(s))
}
