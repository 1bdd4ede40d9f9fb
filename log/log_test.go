package log

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projecteru2/memsize/types"
)

func TestSetupLog(t *testing.T) {
	ctx := context.Background()
	assert.Error(t, SetupLog(ctx, &types.LogConfig{Level: "whatever"}, ""))

	fname := filepath.Join(t.TempDir(), "memsize.log")
	require.NoError(t, SetupLog(ctx, &types.LogConfig{Level: "info", UseJSON: true, Filename: fname}, ""))

	ctx = context.WithValue(ctx, types.TracingID, "run-1")
	Debugf(ctx, "dropped %d", 1)
	WithFunc("TestSetupLog").WithField("option", "MaxHeapSize").Infof(ctx, "value %s", "64M")
	Errorf(ctx, nil, "ignored")
	Error(ctx, errors.New("bad size"), "check failed")

	b, err := os.ReadFile(fname)
	require.NoError(t, err)
	content := string(b)
	assert.NotContains(t, content, "dropped")
	assert.NotContains(t, content, "ignored")
	assert.Contains(t, content, `"func":"TestSetupLog"`)
	assert.Contains(t, content, `"option":"MaxHeapSize"`)
	assert.Contains(t, content, `"tracing_id":"run-1"`)
	assert.Contains(t, content, "value 64M")
	assert.Contains(t, content, "bad size")
}
