package utils

import (
	"path/filepath"
	"strings"
)

// SuggestOutputs lists candidate output paths for a given input calendar,
// all in the input's directory. The first entry is the default.
func SuggestOutputs(input string, suffix string) []string {
	dir := filepath.Dir(input)
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))

	return []string{
		filepath.Join(dir, base+suffix+".ics"),
		filepath.Join(dir, base+"_cleaned.ics"),
		filepath.Join(dir, base+"_new.ics"),
	}
}
