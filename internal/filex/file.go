// Package filex resolves on-disk locations for local client data.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir makes sure dir exists and returns its absolute path.
// Relative paths are resolved against the working directory.
func EnsureDir(dir string) (string, error) {
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = filepath.Join(cwd, dir)
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}

// ResolveDataFile places name inside dataDir unless name is already an
// absolute path, an in-memory SQLite DSN or a file: URI. dataDir is
// created on demand.
func ResolveDataFile(dataDir, name string) (string, error) {
	if name == "" || name == ":memory:" || filepath.IsAbs(name) || hasURIPrefix(name) {
		return name, nil
	}
	dir, err := EnsureDir(dataDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

func hasURIPrefix(s string) bool {
	return len(s) >= 5 && s[:5] == "file:"
}
