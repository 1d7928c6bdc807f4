package ui

import (
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func TestRenderFramedBoxSnapshot(t *testing.T) {
	box := RenderFramedBox("Library", "TITLE      AUTHOR", "Dune       Frank Herbert\nEmma       Jane Austen", "2 books", 40)
	snaps.MatchSnapshot(t, StripStyles(box))
}

func TestRenderFramedBoxHeightSnapshot(t *testing.T) {
	box := RenderFramedBoxHeight("Reading", "", "only one line", "", 30, 5)
	snaps.MatchSnapshot(t, StripStyles(box))
}

func TestOverlayCenteredSnapshot(t *testing.T) {
	base := FitCanvas("base content that fills the area", 30, 7)
	overlay := RenderFramedBox("Go to page", "", "  42  ", "", 14)
	snaps.MatchSnapshot(t, StripStyles(OverlayCentered(base, overlay, 30, 7)))
}

func TestSlideFrameSnapshot(t *testing.T) {
	old := FitCanvas("the old page text", 20, 3)
	next := FitCanvas("the new page text", 20, 3)
	snaps.MatchSnapshot(t, StripStyles(SlideFrame(old, next, 20, 3, 8, true)))
}
