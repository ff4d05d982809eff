// Package filex contains small filesystem helpers used by the CLI.
package filex

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// OpenForUpload opens path for reading and returns the base file name, its
// size in bytes, and the open handle. The caller owns closing the handle.
// Directories are rejected.
func OpenForUpload(path string) (string, int64, io.ReadCloser, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", 0, nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", 0, nil, fmt.Errorf("%s is a directory", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", 0, nil, fmt.Errorf("open %s: %w", path, err)
	}

	return filepath.Base(path), info.Size(), f, nil
}

// EnsureSubDir creates (if needed) and returns a subdirectory of the current
// working directory.
func EnsureSubDir(dirName string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}

	dir := filepath.Join(cwd, dirName)

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}
