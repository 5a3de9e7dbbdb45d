package utils

import "testing"

func TestSuggestOutputs(t *testing.T) {
	got := SuggestOutputs("/data/work.ics", "_filtered")

	want := []string{
		"/data/work_filtered.ics",
		"/data/work_cleaned.ics",
		"/data/work_new.ics",
	}
	if len(got) != len(want) {
		t.Fatalf("got %q", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("suggestion %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSuggestOutputsCustomSuffix(t *testing.T) {
	got := SuggestOutputs("/data/work.ics", "_upcoming")
	if got[0] != "/data/work_upcoming.ics" {
		t.Fatalf("got %q", got[0])
	}
}
