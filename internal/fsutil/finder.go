// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// FindFilesByExtension recursively searches the given root path for all files ending
// with the specified extension. It returns a slice of their full paths.
func FindFilesByExtension(rootPath string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}

// FindFirstByExtensions searches the root path for files matching any of the
// given extensions, in order of preference, and returns the
// lexicographically first match of the first extension that has any.
func FindFirstByExtensions(rootPath string, extensions ...string) (string, error) {
	for _, ext := range extensions {
		files, err := FindFilesByExtension(rootPath, ext)
		if err != nil {
			return "", err
		}
		if len(files) > 0 {
			sort.Strings(files)
			return files[0], nil
		}
	}
	return "", fmt.Errorf("no files matching %v found under %s", extensions, rootPath)
}
