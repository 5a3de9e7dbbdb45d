package utils

import (
	"log/slog"
	"strings"
	"time"
)

// Layouts accepted for a typed-in cutoff date, tried in order.
var cutoffLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02-01-2006",
	"02/01/2006",
	"01-02-2006",
	"01/02/2006",
}

// ParseCutoff turns a user-entered date string into the cutoff instant.
// Explicit layouts win; anything else falls through to natural-language
// parsing ("tomorrow", "next friday", ...) against the configured timezone.
// Either way the result is a naive midnight pinned to UTC, matching how
// DTSTART values are parsed.
func (as *AppState) ParseCutoff(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range cutoffLayouts {
		if res, err := time.Parse(layout, raw); err == nil {
			return res, true
		}
	}

	result, err := as.When.Parse(raw, time.Now().In(as.Config.GetLocation()))
	if err != nil || result == nil {
		return time.Time{}, false
	}
	t := result.Time
	slog.Debug("cutoff parsed from natural language", "input", raw, "match", result.Text, "time", t)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
}
