// Package fsutil provides file system utility functions.
package fsutil

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// FindPluginFiles recursively searches the given root path for plugin source
// files and returns their full paths. Dotfiles are skipped; everything else
// that is a regular file is a candidate plugin. Paths are returned in
// directory-walk order; callers must not rely on any particular ordering.
func FindPluginFiles(rootPath string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		files = append(files, path)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}
