package config

import (
	"os"
	"path/filepath"
)

// GetRuntimePath resolves ELEX_RUNTIME_PATH before any .env file is loaded.
// Relative paths are taken from the user's home directory.
func GetRuntimePath() string {
	return resolveRuntimePath(os.Getenv("ELEX_RUNTIME_PATH"))
}

func resolveRuntimePath(path string) string {
	if path == "" {
		path = ".elex"
	}

	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}
