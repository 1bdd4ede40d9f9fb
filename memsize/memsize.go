// Package memsize parses memory sizes such as "64M" or "0x10K" into
// fixed-width integers. Suffixes K, M, G and T (any case) are powers of 1024.
package memsize

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

const (
	k = 1024

	suffixes = "KMGT"
)

// multiplyBy1K scales n by 1024 in place, unless that would overflow T
func multiplyBy1K[T Integer](n *T) bool {
	lo, hi := Limits[T]()
	if *n < lo/k || *n > hi/k {
		return false
	}
	*n *= k
	return true
}

// exponent maps a suffix to how many times the value is scaled by 1024
func exponent(suffix string) (int, bool) {
	if suffix == "" {
		return 0, true
	}
	switch suffix[0] {
	case 'T', 't':
		return 4, true
	case 'G', 'g':
		return 3, true
	case 'M', 'm':
		return 2, true
	case 'K', 'k':
		return 1, true
	}
	return 0, false
}

func at(s string, i int) byte {
	if i < len(s) {
		return s[i]
	}
	return 0
}

// hasHexPrefix keeps the historical offsets: a negative value is taken as
// hex when s[2] is 'x' or s[3] is 'X', so "-0X1A" is read as decimal.
func hasHexPrefix(s string) bool {
	return (at(s, 0) == '0' && (at(s, 1) == 'x' || at(s, 1) == 'X')) ||
		(at(s, 0) == '-' && at(s, 1) == '0' && (at(s, 2) == 'x' || at(s, 3) == 'X'))
}

// Parse parses a memory size into T.
// On failure the zero value is returned with an error wrapping one of the
// package sentinels.
func Parse[T Integer](s string) (T, error) {
	var zero T
	if len(s) == 0 || (!isDigit(s[0], 10) && s[0] != '-') {
		// leading spaces and '+' are not accepted
		return zero, errors.Wrapf(ErrInvalidLeading, "parse %q", s)
	}

	base := 10
	if hasHexPrefix(s) {
		base = 16
	}

	n, consumed, err := parseInteger[T](s, base)
	if err != nil {
		return zero, errors.Wrapf(err, "parse %q", s)
	}

	rest := s[consumed:]
	if len(rest) > 1 {
		return zero, errors.Wrapf(ErrTrailingGarbage, "parse %q", s)
	}
	exp, ok := exponent(rest)
	if !ok {
		return zero, errors.Wrapf(ErrInvalidSuffix, "parse %q", s)
	}
	for i := 0; i < exp; i++ {
		if !multiplyBy1K(&n) {
			return zero, errors.Wrapf(ErrOverflow, "parse %q", s)
		}
	}
	return n, nil
}

// ParseTo parses s into out and reports whether it succeeded.
// out is only written on success.
func ParseTo[T Integer](s string, out *T) bool {
	n, err := Parse[T](s)
	if err != nil {
		return false
	}
	*out = n
	return true
}

// MustParse is like Parse but panics on error, for defaults known at compile time
func MustParse[T Integer](s string) T {
	n, err := Parse[T](s)
	if err != nil {
		panic(err)
	}
	return n
}

// Format renders n with the largest suffix that divides it exactly,
// so that Parse(Format(n)) == n
func Format[T Integer](n T) string {
	exp := 0
	for exp < len(suffixes) && n != 0 && n%k == 0 {
		n /= k
		exp++
	}

	var s string
	if Signed[T]() {
		s = strconv.FormatInt(int64(n), 10)
	} else {
		s = strconv.FormatUint(uint64(n), 10)
	}
	if exp > 0 {
		s += suffixes[exp-1 : exp]
	}
	return s
}
