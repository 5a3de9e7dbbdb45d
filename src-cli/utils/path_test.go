package utils

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestNormalizePathStripsQuotes(t *testing.T) {
	for _, raw := range []string{
		`"/tmp/my calendar.ics"`,
		`'/tmp/my calendar.ics'`,
		"  /tmp/my calendar.ics  ",
	} {
		got, err := NormalizePath(raw)
		if err != nil {
			t.Fatalf("NormalizePath(%q): %v", raw, err)
		}
		if got != "/tmp/my calendar.ics" {
			t.Fatalf("NormalizePath(%q) = %q", raw, got)
		}
	}
}

func TestNormalizePathExpandsHome(t *testing.T) {
	t.Setenv("HOME", "/home/someone")

	got, err := NormalizePath("~/cal.ics")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/home/someone/cal.ics" {
		t.Fatalf("got %q", got)
	}
}

func TestNormalizePathMakesAbsolute(t *testing.T) {
	got, err := NormalizePath("cal.ics")
	if err != nil {
		t.Fatal(err)
	}
	if !filepath.IsAbs(got) {
		t.Fatalf("expected an absolute path, got %q", got)
	}
	if !strings.HasSuffix(got, "cal.ics") {
		t.Fatalf("got %q", got)
	}
}

func TestNormalizePathRejectsBlank(t *testing.T) {
	for _, raw := range []string{"", "   ", `""`} {
		if _, err := NormalizePath(raw); err == nil {
			t.Fatalf("NormalizePath(%q) should fail", raw)
		}
	}
}
