package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 5); got != "ab   " {
		t.Fatalf("PadRight short = %q", got)
	}
	if got := PadRight("abcdef", 3); ansi.StringWidth(got) != 3 {
		t.Fatalf("PadRight long width = %d", ansi.StringWidth(got))
	}
}

func TestTakeDropColumns(t *testing.T) {
	if got := TakeColumns("abcdef", 2); got != "ab" {
		t.Fatalf("TakeColumns = %q", got)
	}
	if got := DropColumns("abcdef", 2); got != "cdef" {
		t.Fatalf("DropColumns = %q", got)
	}
	if got := DropColumns("ab", 0); got != "ab" {
		t.Fatalf("DropColumns zero = %q", got)
	}
}

func TestFitCanvasDimensions(t *testing.T) {
	got := FitCanvas("x\nlonger line", 8, 4)
	lines := strings.Split(got, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 8 {
			t.Fatalf("line %d width = %d, want 8", i, w)
		}
	}
}

func TestFadeFrameIdentityWhenDone(t *testing.T) {
	in := "hello\nworld"
	if got := FadeFrame(in, 1); got != in {
		t.Fatalf("FadeFrame(1) = %q, want input unchanged", got)
	}
	if got := FadeFrame(in, 1.5); got != in {
		t.Fatalf("FadeFrame(>1) = %q, want input unchanged", got)
	}
}

func TestFadeFramePreservesText(t *testing.T) {
	got := FadeFrame("hello", 0.3)
	if StripStyles(got) != "hello" {
		t.Fatalf("faded text = %q", StripStyles(got))
	}
}

func TestSlideFrameEdges(t *testing.T) {
	old := "aaaa\naaaa"
	new := "bbbb\nbbbb"

	// offset 0: all old frame visible.
	got := StripStyles(SlideFrame(old, new, 4, 2, 0, true))
	if !strings.Contains(got, "aaaa") || strings.Contains(got, "b") {
		t.Fatalf("offset 0 frame = %q", got)
	}

	// offset = width: all new frame visible.
	got = StripStyles(SlideFrame(old, new, 4, 2, 4, true))
	if !strings.Contains(got, "bbbb") || strings.Contains(got, "a") {
		t.Fatalf("offset max frame = %q", got)
	}
}

func TestSlideFrameWidthInvariant(t *testing.T) {
	old := "aaaa\naa"
	new := "bb\nbbbb"

	for _, forward := range []bool{true, false} {
		for offset := 0; offset <= 6; offset++ {
			frame := SlideFrame(old, new, 6, 3, offset, forward)
			lines := strings.Split(frame, "\n")
			if len(lines) != 3 {
				t.Fatalf("forward=%v offset=%d: %d lines", forward, offset, len(lines))
			}
			for i, line := range lines {
				if w := ansi.StringWidth(line); w != 6 {
					t.Fatalf("forward=%v offset=%d line %d width=%d", forward, offset, i, w)
				}
			}
		}
	}
}

func TestSlideFrameDirection(t *testing.T) {
	old := "AB"
	new := "XY"

	// Forward: the new frame's left edge enters from the right side.
	got := StripStyles(SlideFrame(old, new, 2, 1, 1, true))
	if got != "BX" {
		t.Fatalf("forward mid-frame = %q, want %q", got, "BX")
	}

	// Backward: the new frame's right edge enters from the left side.
	got = StripStyles(SlideFrame(old, new, 2, 1, 1, false))
	if got != "YA" {
		t.Fatalf("backward mid-frame = %q, want %q", got, "YA")
	}
}
