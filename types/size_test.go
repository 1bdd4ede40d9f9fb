package types

import (
	"encoding/json"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projecteru2/memsize/memsize"
)

func TestSize(t *testing.T) {
	var s Size
	assert.NoError(t, s.UnmarshalText([]byte("16M")))
	assert.EqualValues(t, 16<<20, s)
	assert.Equal(t, "16M", s.String())

	b, err := s.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "16M", string(b))

	err = s.UnmarshalText([]byte("16MB"))
	assert.True(t, errors.Is(err, ErrInvalidSize))
	assert.True(t, errors.Is(err, memsize.ErrTrailingGarbage))
	assert.EqualValues(t, 16<<20, s)

	assert.NoError(t, s.UnmarshalYAML(func(v any) error {
		*(v.(*string)) = "0x10k"
		return nil
	}))
	assert.EqualValues(t, 16384, s)
}

func TestSizeJSON(t *testing.T) {
	v := struct {
		Max Size `json:"max"`
	}{}
	require.NoError(t, json.Unmarshal([]byte(`{"max": 1048576}`), &v))
	assert.EqualValues(t, 1<<20, v.Max)
	require.NoError(t, json.Unmarshal([]byte(`{"max": "2M"}`), &v))
	assert.EqualValues(t, 2<<20, v.Max)
	require.NoError(t, json.Unmarshal([]byte(`{"max": 9223372036854775807}`), &v))
	assert.EqualValues(t, int64(9223372036854775807), v.Max)
	require.NoError(t, json.Unmarshal([]byte(`{"max": null}`), &v))
	assert.EqualValues(t, int64(9223372036854775807), v.Max)

	err := json.Unmarshal([]byte(`{"max": 1.5}`), &v)
	assert.True(t, errors.Is(err, ErrInvalidSize))
	err = json.Unmarshal([]byte(`{"max": true}`), &v)
	assert.True(t, errors.Is(err, ErrInvalidSize))
	err = json.Unmarshal([]byte(`{"max": "1X"}`), &v)
	assert.True(t, errors.Is(err, memsize.ErrInvalidSuffix))

	b, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"max": "9223372036854775807"}`, string(b))
}
