package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// NormalizePath cleans up a user-entered file path: surrounding whitespace
// and one layer of quotes are stripped (drag-and-drop paths with spaces come
// in quoted), a leading ~ expands to the home directory, and the result is
// made absolute.
func NormalizePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	path = strings.Trim(path, `"`)
	path = strings.Trim(path, `'`)
	if path == "" {
		return "", fmt.Errorf("path is blank")
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("can't resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("can't make path absolute: %w", err)
	}
	return abs, nil
}
