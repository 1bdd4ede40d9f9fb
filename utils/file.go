package utils

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ListOptionFiles returns the regular files directly under basedir, hidden files are skipped
func ListOptionFiles(basedir string) ([]string, error) {
	files := []string{}
	err := filepath.Walk(basedir, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() && path != basedir {
			return filepath.SkipDir
		}
		if info.Mode().IsRegular() && !strings.HasPrefix(info.Name(), ".") {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return files, nil
}

// ExpandPaths replaces every directory in paths by the option files it holds
// other paths are kept as they are, missing ones fail later when checked
func ExpandPaths(paths []string) ([]string, error) {
	result := []string{}
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			result = append(result, path)
			continue
		}
		files, err := ListOptionFiles(path)
		if err != nil {
			return nil, err
		}
		result = append(result, files...)
	}
	return result, nil
}
