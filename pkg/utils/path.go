// Package utils provides utility functions for KeySummon.
package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// expandHome expands ~ to the user's home directory.
func expandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[1:])
	}
	return path
}

// ExpandPath expands ~ and normalizes the path.
func ExpandPath(path string) string {
	expanded := expandHome(path)
	return filepath.Clean(expanded)
}

// IsValidDirectory checks if a path is an existing directory, used to
// validate working-directory settings before launch.
func IsValidDirectory(path string) bool {
	expanded := ExpandPath(path)
	info, err := os.Stat(expanded)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsExecutable checks whether a path points to a runnable file.
func IsExecutable(path string) bool {
	expanded := ExpandPath(path)
	info, err := os.Stat(expanded)
	if err != nil || info.IsDir() {
		return false
	}
	return true
}
