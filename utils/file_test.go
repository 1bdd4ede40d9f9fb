package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOptionFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.flags", "a.yaml", ".hidden"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0600))
	}
	subdir := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(subdir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(subdir, "c.flags"), nil, 0600))

	fs, err := ListOptionFiles(dir)
	assert.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.yaml"), filepath.Join(dir, "b.flags")}, fs)

	_, err = ListOptionFiles(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestExpandPaths(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "jvm.flags")
	require.NoError(t, os.WriteFile(file, nil, 0600))
	missing := filepath.Join(dir, "missing.flags")

	paths, err := ExpandPaths([]string{missing, dir, file})
	assert.NoError(t, err)
	assert.Equal(t, []string{missing, file, file}, paths)

	paths, err = ExpandPaths(nil)
	assert.NoError(t, err)
	assert.Empty(t, paths)
}
