package ical

import (
	"strings"
	"time"
)

// Layouts tried against a raw DTSTART value, in order. The trailing `Z` is
// consumed as a literal character; no UTC conversion happens anywhere.
var dateLayouts = []string{
	"20060102T150405",  // 20250826T150000
	"20060102T150405Z", // 20250826T150000Z
	"20060102",         // 20250826 (midnight)
}

// Parsing raw date-time values extracted from DTSTART lines
//
// - `TZID=bbb:ccc`
// - `cccZ`
// - `ccc`
//
// `bbb` is discarded entirely; `ccc` is the date-time value. All results are
// naive instants pinned to UTC so they compare against each other directly.
func ParseDate(raw string) (time.Time, bool) {
	if strings.HasPrefix(raw, "TZID=") {
		if idx := strings.Index(raw, ":"); idx > len("TZID=") {
			raw = raw[idx+1:]
		}
	}

	for _, layout := range dateLayouts {
		if res, err := time.Parse(layout, raw); err == nil {
			return res, true
		}
	}

	return time.Time{}, false
}
