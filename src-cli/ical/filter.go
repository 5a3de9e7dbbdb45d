// The `ical` package scans and filters iCalendar documents.
//
// # Notes:
// - This is not an RFC5545 parser. Lines are compared as-is: no folding, no
//   escape handling, no recurrence expansion. Non-event lines are passed
//   through byte-for-byte, which is the whole point of the tool.
// - Only VEVENT blocks are recognized. Every other component (VTIMEZONE,
//   VALARM, ...) counts as pass-through content, except when it appears
//   inside an event block, where it is kept as block content.
// - A second BEGIN:VEVENT inside an open block is ordinary block content;
//   the first END:VEVENT closes the block. A document that ends with an
//   open block never flushes it.

package ical

import (
	"log/slog"
	"strings"
	"time"
)

// Counts for a single filter pass. Derived, never persisted.
type RunSummary struct {
	Kept    int
	Removed int
}

// Filter walks the document once and drops every VEVENT block whose start
// instant is strictly before the cutoff. Blocks with no usable start are
// kept: an ambiguous event is never silently discarded.
func Filter(lines []string, cutoff time.Time) ([]string, RunSummary) {
	var summary RunSummary
	filtered := make([]string, 0, len(lines))

	inEvent := false
	var currentEvent []string

	for _, line := range lines {
		switch {
		case line == "BEGIN:VEVENT" && !inEvent:
			inEvent = true
			currentEvent = []string{line}
		case line == "END:VEVENT":
			currentEvent = append(currentEvent, line)

			start, ok := EventStart(currentEvent)
			if !ok || !start.Before(cutoff) {
				filtered = append(filtered, currentEvent...)
				summary.Kept++
			} else {
				summary.Removed++
			}

			inEvent = false
			currentEvent = nil
		case inEvent:
			currentEvent = append(currentEvent, line)
		default:
			filtered = append(filtered, line)
		}
	}

	if inEvent {
		slog.Debug("document ended inside an unterminated VEVENT block, dropping it", "lines", len(currentEvent))
	}

	return filtered, summary
}

// Events collects the completed VEVENT blocks of a document, in order,
// under the same scanning rules as Filter: exact delimiters, no nesting,
// an unterminated trailing block is ignored.
func Events(lines []string) [][]string {
	blocks := make([][]string, 0)

	inEvent := false
	var currentEvent []string

	for _, line := range lines {
		switch {
		case line == "BEGIN:VEVENT" && !inEvent:
			inEvent = true
			currentEvent = []string{line}
		case line == "END:VEVENT":
			currentEvent = append(currentEvent, line)
			blocks = append(blocks, currentEvent)
			inEvent = false
			currentEvent = nil
		case inEvent:
			currentEvent = append(currentEvent, line)
		}
	}

	return blocks
}

// EventStart extracts the start instant of a VEVENT block from its first
// usable DTSTART line, parameterized forms (DTSTART;VALUE=DATE:...,
// DTSTART;TZID=...:...) included. A DTSTART line with no colon or an empty
// value does not end the scan.
func EventStart(block []string) (time.Time, bool) {
	for _, line := range block {
		if !strings.HasPrefix(line, "DTSTART") {
			continue
		}
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		value := strings.TrimSpace(line[idx+1:])
		if value == "" {
			continue
		}
		return ParseDate(value)
	}
	return time.Time{}, false
}
