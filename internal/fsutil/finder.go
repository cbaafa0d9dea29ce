// Package fsutil provides file system helpers for manifest discovery.
package fsutil

import (
	"errors"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
)

// ErrNoExtensions is returned when FindManifests is called without extensions.
var ErrNoExtensions = errors.New("at least one extension is required")

// FindManifests recursively searches root for files ending with any of the
// given extensions. Hidden directories (".git", ".cache") are skipped. The
// result is sorted so load order does not depend on the file system.
func FindManifests(root string, extensions ...string) ([]string, error) {
	if len(extensions) == 0 {
		return nil, ErrNoExtensions
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		for _, ext := range extensions {
			if strings.HasSuffix(d.Name(), ext) {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(files)
	return files, nil
}
