package utils

import (
	"testing"
	"time"
)

func TestParseCutoffLayouts(t *testing.T) {
	as := NewAppState()
	want := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)

	for _, raw := range []string{
		"2025-11-01",
		"2025/11/01",
		"01-11-2025",
		"01/11/2025",
	} {
		got, ok := as.ParseCutoff(raw)
		if !ok {
			t.Fatalf("ParseCutoff(%q) not ok", raw)
		}
		if !got.Equal(want) {
			t.Fatalf("ParseCutoff(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestParseCutoffLayoutOrder(t *testing.T) {
	as := NewAppState()

	// 03-04-2025 is ambiguous; day-month-year is tried before month-day-year
	got, ok := as.ParseCutoff("03-04-2025")
	if !ok {
		t.Fatal("ambiguous date should still parse")
	}
	want := time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseCutoffNaturalLanguage(t *testing.T) {
	as := NewAppState()

	got, ok := as.ParseCutoff("tomorrow")
	if !ok {
		t.Fatal("natural language fallback should handle 'tomorrow'")
	}
	if got.Hour() != 0 || got.Minute() != 0 || got.Location() != time.UTC {
		t.Fatalf("natural cutoffs must normalize to a naive UTC midnight, got %v", got)
	}
}

func TestParseCutoffRejectsGarbage(t *testing.T) {
	as := NewAppState()

	for _, raw := range []string{"", "   ", "flurble"} {
		if _, ok := as.ParseCutoff(raw); ok {
			t.Fatalf("ParseCutoff(%q) should fail", raw)
		}
	}
}
