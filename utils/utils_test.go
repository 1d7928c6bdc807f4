package utils

import "testing"

func TestFindAllMatches(t *testing.T) {
	got := FindAllMatches("the Spice must flow, the spice extends", "spice")
	want := []int{4, 25}
	if len(got) != len(want) {
		t.Fatalf("matches = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("matches = %v, want %v", got, want)
		}
	}
}

func TestFindAllMatchesEmptyTerm(t *testing.T) {
	if got := FindAllMatches("anything", ""); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestHighlightMatchesKeepsText(t *testing.T) {
	text := "the spice must flow"
	got := HighlightMatches(text, "spice", FindAllMatches(text, "spice"))
	// Styling may be a no-op outside a terminal; the text must survive.
	if len(got) < len(text) {
		t.Fatalf("highlighted text shorter than input: %q", got)
	}
}

func TestHighlightMatchesSkipsStaleOffsets(t *testing.T) {
	// Offsets computed against an older revision of the text must not
	// slice past the end.
	if got := HighlightMatches("short", "longer term", []int{2}); got != "short" {
		t.Fatalf("got %q, want the text untouched", got)
	}
}
