// Package fileutils provides the file access shared by the readers.
package fileutils

import (
	"fmt"
	"os"

	"fjacquet/budget-prep/internal/parsererror"
)

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// OpenInput opens a file for reading. A missing path or a directory yields
// *parsererror.InputNotFoundError.
func OpenInput(filePath string) (*os.File, error) {
	if !FileExists(filePath) {
		return nil, &parsererror.InputNotFoundError{FilePath: filePath}
	}

	file, err := os.Open(filePath) // #nosec G304 -- path supplied by the user on the command line
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return file, nil
}
