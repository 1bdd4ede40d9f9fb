package memsize

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/docker/go-units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type parseCase[T Integer] struct {
	in   string
	want T
	err  error
}

func runParseCases[T Integer](t *testing.T, cases []parseCase[T]) {
	t.Helper()
	for _, c := range cases {
		n, err := Parse[T](c.in)
		if c.err != nil {
			assert.Truef(t, errors.Is(err, c.err), "%q: want %v, got %v", c.in, c.err, err)
			assert.Zero(t, n)
			continue
		}
		assert.NoErrorf(t, err, "%q", c.in)
		assert.Equalf(t, c.want, n, "%q", c.in)
	}
}

func TestParseInt32(t *testing.T) {
	runParseCases(t, []parseCase[int32]{
		{in: "0", want: 0},
		{in: "123", want: 123},
		{in: "4k", want: 4096},
		{in: "4K", want: 4096},
		{in: "1M", want: 1 << 20},
		{in: "1G", want: 1 << 30},
		{in: "-1", want: -1},
		{in: "-1K", want: -1024},
		{in: "-2G", want: -1 << 31},
		{in: "0T", want: 0},
		{in: "2147483647", want: 2147483647},
		{in: "2G", err: ErrOverflow},
		{in: "-3G", err: ErrOverflow},
		{in: "1T", err: ErrOverflow},
		{in: "2147483648", err: ErrNumberRange},
	})
}

func TestParseUint32(t *testing.T) {
	runParseCases(t, []parseCase[uint32]{
		{in: "4194303K", want: 4294966272},
		{in: "4194304K", err: ErrOverflow},
		{in: "2G", want: 1 << 31},
		{in: "3G", want: 3 << 30},
		{in: "4G", err: ErrOverflow},
		{in: "4294967295", want: 4294967295},
		{in: "4294967296", err: ErrNumberRange},
		{in: "1t", err: ErrOverflow},
		{in: "-1", err: ErrInvalidNumber},
		{in: "-0", err: ErrInvalidNumber},
	})
}

func TestParseInt64(t *testing.T) {
	runParseCases(t, []parseCase[int64]{
		{in: "1T", want: 1 << 40},
		{in: "1t", want: 1 << 40},
		{in: "-1T", want: -1 << 40},
		{in: "8388607T", want: 8388607 << 40},
		{in: "8388608T", err: ErrOverflow},
		{in: "-8388608T", want: -1 << 63},
		{in: "9223372036854775807", want: 9223372036854775807},
		{in: "9223372036854775808", err: ErrNumberRange},
		{in: "9999999999999999999", err: ErrNumberRange},
		{in: "-0x10", want: -16},
		{in: "-0x10k", want: -16384},
	})
}

func TestParseUint64(t *testing.T) {
	runParseCases(t, []parseCase[uint64]{
		{in: "1T", want: 1 << 40},
		{in: "16777215T", want: 16777215 << 40},
		{in: "16777216T", err: ErrOverflow},
		{in: "18446744073709551615", want: 18446744073709551615},
		{in: "18446744073709551616", err: ErrNumberRange},
		{in: "9999999999999999999", want: 9999999999999999999},
		{in: "0xffffffffffffffff", want: 18446744073709551615},
		{in: "0x10000000000000000", err: ErrNumberRange},
		{in: "-0x10", err: ErrInvalidNumber},
	})
}

func TestParseHex(t *testing.T) {
	runParseCases(t, []parseCase[int64]{
		{in: "0x10", want: 16},
		{in: "0X10", want: 16},
		{in: "0x10K", want: 16384},
		{in: "0x10m", want: 16 << 20},
		{in: "0xff", want: 255},
		{in: "0xFFg", want: 255 << 30},
		{in: "0x1B", want: 27},
		{in: "0x", err: ErrInvalidSuffix},
		{in: "0xg", err: ErrTrailingGarbage},
		{in: "0x-5", err: ErrTrailingGarbage},
		{in: "0x1BK", want: 27 << 10},
	})
}

func TestParseNegativeHexOffsets(t *testing.T) {
	// the upper case X is only looked for one byte too far
	runParseCases(t, []parseCase[int64]{
		{in: "-0x1A", want: -26},
		{in: "-0X1A", err: ErrTrailingGarbage},
		{in: "-0aX", err: ErrInvalidSuffix},
		{in: "-0", want: 0},
	})
}

func TestParseRejects(t *testing.T) {
	for in, want := range map[string]error{
		"":       ErrInvalidLeading,
		" 5":     ErrInvalidLeading,
		"+5":     ErrInvalidLeading,
		"abc":    ErrInvalidLeading,
		"K":      ErrInvalidLeading,
		"-":      ErrInvalidNumber,
		"--5":    ErrInvalidNumber,
		"- 5":    ErrInvalidNumber,
		"5KK":    ErrTrailingGarbage,
		"1.5G":   ErrTrailingGarbage,
		"5 K":    ErrTrailingGarbage,
		"5X":     ErrInvalidSuffix,
		"5B":     ErrInvalidSuffix,
		"5 ":     ErrInvalidSuffix,
		"12a":    ErrInvalidSuffix,
		"5\x00":  ErrInvalidSuffix,
		"1e3":    ErrTrailingGarbage,
		"10_000": ErrTrailingGarbage,
	} {
		_, err := Parse[int64](in)
		assert.Truef(t, errors.Is(err, want), "%q: want %v, got %v", in, want, err)
		_, err = Parse[uint32](in)
		assert.Errorf(t, err, "%q", in)
	}
}

func TestParseTo(t *testing.T) {
	var out uint32 = 42
	assert.False(t, ParseTo("5X", &out))
	assert.EqualValues(t, 42, out)
	assert.False(t, ParseTo("4194304K", &out))
	assert.EqualValues(t, 42, out)

	assert.True(t, ParseTo("4194303K", &out))
	assert.EqualValues(t, 4294966272, out)

	var i64 int64
	assert.True(t, ParseTo("-0x10K", &i64))
	assert.EqualValues(t, -16384, i64)

	var u64 uint64 = 7
	assert.False(t, ParseTo("9999999999999999999999", &u64))
	assert.EqualValues(t, 7, u64)
}

func TestParseDeterministic(t *testing.T) {
	for _, in := range []string{"64M", "0x10K", "5X", "4194304K"} {
		a, errA := Parse[uint32](in)
		b, errB := Parse[uint32](in)
		assert.Equal(t, a, b)
		assert.Equal(t, errA == nil, errB == nil)
	}
}

type byteSize uint64

func TestParseNamedType(t *testing.T) {
	n, err := Parse[byteSize]("2G")
	require.NoError(t, err)
	assert.Equal(t, byteSize(2<<30), n)
}

func TestParseAgreesWithUnits(t *testing.T) {
	for _, in := range []string{"0", "1", "4k", "4K", "64M", "1g", "3G", "1T", "512t"} {
		want, err := units.RAMInBytes(in)
		require.NoError(t, err)
		n, err := Parse[int64](in)
		require.NoError(t, err)
		assert.Equalf(t, want, n, "%q", in)
	}
}

func TestMultiplyBy1K(t *testing.T) {
	n := int32(2097151)
	assert.True(t, multiplyBy1K(&n))
	assert.EqualValues(t, 2147482624, n)

	n = 2097152
	assert.False(t, multiplyBy1K(&n))
	assert.EqualValues(t, 2097152, n)

	n = -2097152
	assert.True(t, multiplyBy1K(&n))
	assert.EqualValues(t, -1<<31, n)

	u := uint32(4194304)
	assert.False(t, multiplyBy1K(&u))
	u = 0
	assert.True(t, multiplyBy1K(&u))
	assert.Zero(t, u)
}

func TestLimits(t *testing.T) {
	lo32, hi32 := Limits[int32]()
	assert.EqualValues(t, -1<<31, lo32)
	assert.EqualValues(t, 1<<31-1, hi32)

	ulo32, uhi32 := Limits[uint32]()
	assert.Zero(t, ulo32)
	assert.EqualValues(t, uint32(1<<32-1), uhi32)

	lo64, hi64 := Limits[int64]()
	assert.EqualValues(t, int64(-1<<63), lo64)
	assert.EqualValues(t, int64(1<<63-1), hi64)

	_, uhi64 := Limits[uint64]()
	assert.EqualValues(t, uint64(1<<64-1), uhi64)
}

func TestReason(t *testing.T) {
	assert.Equal(t, "", Reason(nil))
	for in, want := range map[string]string{
		" 1":          "leading",
		"-":           "number",
		"99999999999": "range",
		"1KB":         "trailing",
		"1X":          "suffix",
		"4G":          "overflow",
	} {
		_, err := Parse[uint32](in)
		assert.Equalf(t, want, Reason(err), "%q", in)
	}
	assert.Equal(t, "unknown", Reason(errors.New("boom")))
}

func TestMustParse(t *testing.T) {
	assert.EqualValues(t, 64<<20, MustParse[uint64]("64M"))
	assert.Panics(t, func() { MustParse[int32]("1T") })
}
