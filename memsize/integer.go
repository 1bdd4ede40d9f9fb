package memsize

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

// Integer is the set of integer shapes an option value can take
type Integer interface {
	~int32 | ~uint32 | ~int64 | ~uint64
}

// Signed reports whether T is a signed shape
func Signed[T Integer]() bool {
	return ^T(0) < 0
}

// BitSize returns 32 or 64
func BitSize[T Integer]() int {
	var one T = 1
	if one<<32 == 0 {
		return 32
	}
	return 64
}

// Limits returns min and max of T
func Limits[T Integer]() (lo, hi T) {
	if !Signed[T]() {
		return 0, ^T(0)
	}
	hi = T(1)<<(BitSize[T]()-1) - 1
	return -hi - 1, hi
}

func digitValue(c byte) int {
	switch lower := c | 0x20; {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= lower && lower <= 'z':
		return int(lower-'a') + 10
	}
	return 36
}

func isDigit(c byte, base int) bool {
	return digitValue(c) < base
}

// parseInteger reads the longest numeric prefix of s in the given base.
// It returns the value and the number of bytes consumed.
// A leading '-' is only accepted for signed T, and in base 16 a 0x/0X
// prefix is skipped when a hex digit follows it.
func parseInteger[T Integer](s string, base int) (T, int, error) {
	var zero T
	i := 0
	neg := false
	if i < len(s) && s[i] == '-' {
		if !Signed[T]() {
			return zero, 0, errors.Wrap(ErrInvalidNumber, "sign on unsigned value")
		}
		neg = true
		i++
	}
	if base == 16 && i+2 < len(s) && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') && isDigit(s[i+2], 16) {
		i += 2
	}

	start := i
	for i < len(s) && isDigit(s[i], base) {
		i++
	}
	if i == start {
		return zero, 0, errors.Wrap(ErrInvalidNumber, "no digits")
	}
	digits := s[start:i]

	if Signed[T]() {
		if neg {
			digits = "-" + digits
		}
		n, err := strconv.ParseInt(digits, base, BitSize[T]())
		if err != nil {
			return zero, 0, convError(err)
		}
		return T(n), i, nil
	}
	n, err := strconv.ParseUint(digits, base, BitSize[T]())
	if err != nil {
		return zero, 0, convError(err)
	}
	return T(n), i, nil
}

func convError(err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return ErrNumberRange
	}
	return errors.Wrap(ErrInvalidNumber, err.Error())
}
