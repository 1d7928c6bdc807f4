package nav

import (
	"time"

	"folio/ui"
)

// TransitionKind selects how a flow animates destination changes.
type TransitionKind int

const (
	// TransitionNone disables animation; new destinations appear at once.
	TransitionNone TransitionKind = iota
	// TransitionFade fades the entering destination in. Used by the root
	// flow for start/credits/book.
	TransitionFade
	// TransitionSlide slides the entering page in from the trailing edge
	// while it fades in, and slides the old page out toward the leading
	// edge while it fades out. Backward navigation mirrors the directions.
	TransitionSlide
)

// Direction of a destination change, for directional transitions.
type Direction int

const (
	DirForward Direction = iota
	DirBackward
)

// FrameInterval paces transition redraw ticks.
const FrameInterval = time.Second / 30

// Transition is the presentational state of one in-flight destination
// change. It carries no navigation state: the stack is already in its
// final shape while the animation plays.
type Transition struct {
	Kind     TransitionKind
	Dir      Direction
	Duration time.Duration

	started time.Time
	from    string // last rendered frame of the outgoing destination
}

func newTransition(kind TransitionKind, dir Direction, d time.Duration, from string, now time.Time) *Transition {
	return &Transition{Kind: kind, Dir: dir, Duration: d, started: now, from: from}
}

// Progress reports animation progress in [0,1] at the given instant.
func (t *Transition) Progress(now time.Time) float64 {
	if t == nil || t.Duration <= 0 {
		return 1
	}
	p := float64(now.Sub(t.started)) / float64(t.Duration)
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return p
}

// Done reports whether the animation has finished at the given instant.
func (t *Transition) Done(now time.Time) bool {
	return t == nil || t.Progress(now) >= 1
}

// Frame composes the animation frame at progress p for the entering
// destination's render.
func (t *Transition) Frame(to string, width, height int, p float64) string {
	if t == nil || p >= 1 {
		return to
	}
	switch t.Kind {
	case TransitionFade:
		return ui.FadeFrame(to, p)
	case TransitionSlide:
		offset := int(p * float64(width))
		entering := ui.FadeFrame(to, p)
		leaving := ui.FadeFrame(t.from, 1-p)
		return ui.SlideFrame(leaving, entering, width, height, offset, t.Dir == DirForward)
	}
	return to
}
