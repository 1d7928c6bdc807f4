package nav

import (
	"time"

	foliolog "folio/utils/log"
	"folio/views/view"

	tea "github.com/charmbracelet/bubbletea"
)

func l() *foliolog.FolioLogger {
	return foliolog.L().With("component", "nav")
}

// Flow hosts one screen graph: a registry of destination factories plus the
// stack of entered destinations. The app owns one flow for the root graph
// (start / credits / book); the book screen owns a second one for its pages.
type Flow struct {
	name     string
	registry map[Kind]Factory
	stack    Stack

	width, height int

	transKind TransitionKind
	transDur  time.Duration
	trans     *Transition
}

func NewFlow(name string, width, height int) *Flow {
	return &Flow{
		name:     name,
		registry: map[Kind]Factory{},
		width:    width,
		height:   height,
	}
}

// SetTransitions configures how this flow animates destination changes.
// TransitionNone (or a zero duration) disables animation entirely.
func (f *Flow) SetTransitions(kind TransitionKind, d time.Duration) {
	f.transKind = kind
	f.transDur = d
}

// Register binds a destination kind to the factory that builds its screen.
func (f *Flow) Register(k Kind, factory Factory) {
	f.registry[k] = factory
}

func (f *Flow) Name() string { return f.name }

// Current returns the active destination's view, or nil before Mount.
func (f *Flow) Current() view.View {
	if e, ok := f.stack.Peek(); ok {
		return e.View
	}
	return nil
}

// CurrentRoute returns the active destination's route.
func (f *Flow) CurrentRoute() (Route, bool) {
	e, ok := f.stack.Peek()
	return e.Route, ok
}

// Depth counts stacked destinations including the active one.
func (f *Flow) Depth() int { return f.stack.Len() }

// Routes returns the stacked routes bottom-first, for the breadcrumb bar.
func (f *Flow) Routes() []Route { return f.stack.Routes() }

// Mount enters the initial destination.
func (f *Flow) Mount(r Route, payload any) tea.Cmd {
	return f.enter(r, payload, true)
}

// Go pushes a new destination on top of the active one.
func (f *Flow) Go(r Route, payload any) tea.Cmd {
	return f.enter(r, payload, true)
}

// Replace swaps the active destination for a new one, pop-then-push, so
// depth stays constant across the change. Page turns ride this.
func (f *Flow) Replace(r Route, payload any) tea.Cmd {
	return f.enter(r, payload, false)
}

func (f *Flow) enter(r Route, payload any, push bool) tea.Cmd {
	factory, ok := f.registry[r.Kind]
	if !ok {
		l().Warnf("flow %s: no destination registered for %q", f.name, r)
		return nil
	}

	// Exit hook for the destination being left, and its last frame for
	// the outgoing half of the transition. A destination still loading
	// its content is swapped without animation.
	var exitCmd tea.Cmd
	var fromFrame string
	var fromRoute Route
	var fromBusy bool
	if cur, ok := f.stack.Peek(); ok {
		exitCmd = cur.View.OnExit()
		fromFrame = cur.View.View()
		fromRoute = cur.Route
		fromBusy = viewBusy(cur.View)
	}

	newView, loadCmd := factory(f.width, f.height, r, payload)
	resizeCmd := resizeView(newView, f.width, f.height)

	if push {
		f.stack.Push(Entry{Route: r, View: newView})
	} else {
		f.stack.PopAndPush(Entry{Route: r, View: newView})
	}

	enterCmd := newView.OnEnter()
	var tickCmd tea.Cmd
	if fromBusy {
		f.trans = nil
	} else {
		tickCmd = f.begin(directionFor(fromRoute, r), fromFrame)
	}

	l().Debugf("flow %s: enter %q (push=%v, depth=%d)", f.name, r, push, f.stack.Len())

	return tea.Batch(exitCmd, resizeCmd, loadCmd, enterCmd, tickCmd)
}

// Back pops the active destination and re-enters the one below. It reports
// false when the stack is at its initial entry; leaving the flow entirely
// is the owner's decision.
func (f *Flow) Back() (tea.Cmd, bool) {
	if f.stack.Len() <= 1 {
		return nil, false
	}

	old, _ := f.stack.Pop()
	exitCmd := old.View.OnExit()
	fromFrame := old.View.View()
	fromBusy := viewBusy(old.View)

	cur, _ := f.stack.Peek()
	enterCmd := cur.View.OnEnter()
	resizeCmd := resizeView(cur.View, f.width, f.height)
	var tickCmd tea.Cmd
	if fromBusy {
		f.trans = nil
	} else {
		tickCmd = f.begin(DirBackward, fromFrame)
	}

	return tea.Batch(exitCmd, enterCmd, resizeCmd, tickCmd), true
}

// Update handles the flow's own navigation and animation messages;
// the bool reports whether the message was consumed. NavigateBackMsg is
// deliberately left to the owner, which knows what leaving the flow means.
func (f *Flow) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case NavigateToMsg:
		if msg.Flow != f.name {
			return nil, false
		}
		if msg.Replace {
			return f.Replace(msg.Route, msg.Payload), true
		}
		return f.Go(msg.Route, msg.Payload), true

	case TransitionTickMsg:
		if msg.Flow != f.name {
			return nil, false
		}
		if f.trans != nil && !f.trans.Done(msg.At) {
			return f.tick(), true
		}
		f.trans = nil
		return nil, true
	}
	return nil, false
}

// Resize propagates new usable dimensions to every stacked view, so a
// destination revealed by Back is already laid out correctly.
func (f *Flow) Resize(width, height int) tea.Cmd {
	f.width = width
	f.height = height
	var cmds []tea.Cmd
	for _, e := range f.stack.Entries() {
		cmds = append(cmds, resizeView(e.View, width, height))
	}
	return tea.Batch(cmds...)
}

// Transitioning reports whether an animation is in flight.
func (f *Flow) Transitioning() bool { return f.trans != nil }

// View renders the active destination, composing the in-flight transition
// frame when one is playing.
func (f *Flow) View() string {
	cur := f.Current()
	if cur == nil {
		return ""
	}
	content := cur.View()
	if f.trans == nil {
		return content
	}
	now := time.Now()
	if f.trans.Done(now) {
		f.trans = nil
		return content
	}
	return f.trans.Frame(content, f.width, f.height, f.trans.Progress(now))
}

func (f *Flow) begin(dir Direction, from string) tea.Cmd {
	if f.transKind == TransitionNone || f.transDur <= 0 {
		f.trans = nil
		return nil
	}
	f.trans = newTransition(f.transKind, dir, f.transDur, from, time.Now())
	return f.tick()
}

func (f *Flow) tick() tea.Cmd {
	name := f.name
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return TransitionTickMsg{Flow: name, At: t}
	})
}

func resizeView(v view.View, width, height int) tea.Cmd {
	return v.Update(tea.WindowSizeMsg{Width: width, Height: height})
}

// viewBusy probes a screen for an optional mid-load report.
func viewBusy(v view.View) bool {
	if b, ok := v.(interface{ Busy() bool }); ok {
		return b.Busy()
	}
	return false
}

// directionFor picks the slide direction for a destination change: moving
// to a lower page number plays backward, everything else forward.
func directionFor(from, to Route) Direction {
	if from.Kind == KindPage && to.Kind == KindPage && to.Page < from.Page {
		return DirBackward
	}
	return DirForward
}
