// Package scan enumerates candidate files for the sequence engine.
package scan

import (
	"io/fs"
	"path/filepath"
	"sort"
)

// Discover collects file paths under root, filtered by include/exclude
// basename globs. An empty include list keeps everything; exclude wins over
// include. When recurse is false only the top level is scanned. Paths come
// back sorted lexicographically, which — with fixed-width zero-padded frame
// numbers — also yields ascending numeric frame order, the input contract
// of the aggregator.
func Discover(root string, include, exclude []string, recurse bool) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if !recurse && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if keep(d.Name(), include, exclude) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// keep applies the glob filters to a basename. Malformed patterns never
// match (filepath.Match errors are treated as no-match).
func keep(name string, include, exclude []string) bool {
	for _, pat := range exclude {
		if ok, _ := filepath.Match(pat, name); ok {
			return false
		}
	}
	if len(include) == 0 {
		return true
	}
	for _, pat := range include {
		if ok, _ := filepath.Match(pat, name); ok {
			return true
		}
	}
	return false
}
