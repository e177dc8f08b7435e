//go:build !windows

// Package xos provides atomic file writes for exported bundles, so a crash
// mid-export never leaves a half-written file behind.
package xos

import (
	"os"

	"github.com/google/renameio/v2"
)

// WriteFile writes data to the named file atomically using rename. The file
// is created with permissions perm when it does not exist.
func WriteFile(filename string, data []byte, perm os.FileMode) error {
	return renameio.WriteFile(filename, data, perm)
}

// CreateDir creates a directory and all necessary parents.
func CreateDir(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}
