package ical

import (
	"bufio"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Read an iCalendar file into a slice of logical lines. Line terminators
// (LF or CRLF) are stripped; only line content matters downstream.
func FromFile(path string) ([]string, *CustomError) {
	file, err := os.Open(path)
	if err != nil {
		return nil, NewCustomError("can't open file", map[string]any{
			"path": path,
			"err":  err,
		})
	}
	defer file.Close()

	lines := make([]string, 0)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, NewCustomError("can't read file", map[string]any{
			"path": path,
			"err":  err,
		})
	}

	return lines, nil
}

// Write logical lines back out as an iCalendar file. The content goes to a
// uuid-suffixed temp file next to the destination first, then gets renamed
// into place, so a failed run never leaves a half-written calendar behind.
func WriteFile(path string, lines []string) *CustomError {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	tmpPath := path + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(sb.String()), 0644); err != nil {
		return NewCustomError("can't write temp file", map[string]any{
			"path": tmpPath,
			"err":  err,
		})
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return NewCustomError("can't move temp file into place", map[string]any{
			"from": tmpPath,
			"to":   path,
			"err":  err,
		})
	}

	return nil
}
