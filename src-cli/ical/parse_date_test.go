package ical

import (
	"testing"
	"time"
)

func TestParseDateFormats(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Time
	}{
		{"20250826T150000", time.Date(2025, 8, 26, 15, 0, 0, 0, time.UTC)},
		{"20250826T150000Z", time.Date(2025, 8, 26, 15, 0, 0, 0, time.UTC)},
		{"20250826", time.Date(2025, 8, 26, 0, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		got, ok := ParseDate(c.raw)
		if !ok {
			t.Fatalf("ParseDate(%q) not ok", c.raw)
		}
		if !got.Equal(c.want) {
			t.Fatalf("ParseDate(%q) = %v, want %v", c.raw, got, c.want)
		}
	}
}

func TestParseDateStripsTZID(t *testing.T) {
	got, ok := ParseDate("TZID=America/New_York:20250815T090000")
	if !ok {
		t.Fatal("TZID-prefixed value should parse")
	}
	// the timezone name is discarded, the clock value is taken as-is
	want := time.Date(2025, 8, 15, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseDateUnparseable(t *testing.T) {
	for _, raw := range []string{
		"",
		"not-a-date",
		"2025-08-26",             // wrong separator style
		"20250826T150000Zjunk",   // trailing garbage
		"20250826junk",           // trailing garbage after a valid date
		"TZID=:20250826T150000",  // empty timezone name is not a TZID prefix
		"TZID=America/New_York:", // prefix with nothing behind it
	} {
		if _, ok := ParseDate(raw); ok {
			t.Fatalf("ParseDate(%q) should not parse", raw)
		}
	}
}
