package nav

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"folio/views/helpbar"
	"folio/views/view"
)

// stubScreen is a minimal destination for flow tests.
type stubScreen struct {
	name          string
	width, height int
	entered       int
	exited        int
	busy          bool
}

func (s *stubScreen) Init() tea.Cmd { return nil }

func (s *stubScreen) Update(msg tea.Msg) tea.Cmd {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		s.width, s.height = ws.Width, ws.Height
	}
	return nil
}

func (s *stubScreen) View() string                        { return s.name }
func (s *stubScreen) Name() string                        { return s.name }
func (s *stubScreen) OnEnter() tea.Cmd                    { s.entered++; return nil }
func (s *stubScreen) OnExit() tea.Cmd                     { s.exited++; return nil }
func (s *stubScreen) ShortHelpItems() []helpbar.HelpEntry { return nil }
func (s *stubScreen) Busy() bool                          { return s.busy }

// pageFactory records every screen it builds, in order.
func pageFactory(made *[]*stubScreen) Factory {
	return func(w, h int, r Route, payload any) (view.View, tea.Cmd) {
		s := &stubScreen{name: r.Label(), width: w, height: h}
		*made = append(*made, s)
		return s, nil
	}
}

func TestMountGoBackLifecycle(t *testing.T) {
	f := NewFlow(FlowRoot, 80, 20)

	start := &stubScreen{name: "start"}
	help := &stubScreen{name: "help"}
	f.Register(KindStart, func(w, h int, r Route, payload any) (view.View, tea.Cmd) { return start, nil })
	f.Register(KindHelp, func(w, h int, r Route, payload any) (view.View, tea.Cmd) { return help, nil })

	f.Mount(Start(), nil)
	require.Equal(t, 1, f.Depth())
	require.Equal(t, "start", f.Current().Name())
	require.Equal(t, 1, start.entered)

	f.Go(Help(), nil)
	require.Equal(t, 2, f.Depth())
	require.Equal(t, "help", f.Current().Name())
	require.Equal(t, 1, start.exited)
	require.Equal(t, 1, help.entered)

	_, ok := f.Back()
	require.True(t, ok)
	require.Equal(t, 1, f.Depth())
	require.Equal(t, "start", f.Current().Name())
	require.Equal(t, 1, help.exited)
	require.Equal(t, 2, start.entered)

	// The initial destination is the owner's to leave.
	_, ok = f.Back()
	require.False(t, ok)
	require.Equal(t, 1, f.Depth())
}

func TestReplaceKeepsDepthConstant(t *testing.T) {
	var made []*stubScreen
	f := NewFlow(FlowBook, 80, 20)
	f.Register(KindPage, pageFactory(&made))

	f.Mount(Page(1), nil)
	for n := 2; n <= 4; n++ {
		f.Replace(Page(n), nil)
		require.Equal(t, 1, f.Depth(), "page %d", n)
	}

	r, ok := f.CurrentRoute()
	require.True(t, ok)
	require.Equal(t, Page(4), r)
	require.Len(t, made, 4)

	// Every superseded page ran its exit hook exactly once.
	for _, s := range made[:3] {
		require.Equal(t, 1, s.exited, s.name)
	}
}

func TestUpdateConsumesOnlyOwnFlowTraffic(t *testing.T) {
	var made []*stubScreen
	f := NewFlow(FlowBook, 80, 20)
	f.Register(KindPage, pageFactory(&made))
	f.Mount(Page(1), nil)

	_, consumed := f.Update(NavigateToMsg{Flow: FlowRoot, Route: Page(9)})
	require.False(t, consumed)
	r, _ := f.CurrentRoute()
	require.Equal(t, Page(1), r)

	_, consumed = f.Update(NavigateToMsg{Flow: FlowBook, Route: Page(2), Replace: true})
	require.True(t, consumed)
	require.Equal(t, 1, f.Depth())
	r, _ = f.CurrentRoute()
	require.Equal(t, Page(2), r)

	// Without Replace the destination stacks.
	_, consumed = f.Update(NavigateToMsg{Flow: FlowBook, Route: Page(3)})
	require.True(t, consumed)
	require.Equal(t, 2, f.Depth())

	// Ticks addressed to another flow pass through too.
	_, consumed = f.Update(TransitionTickMsg{Flow: FlowRoot, At: time.Now()})
	require.False(t, consumed)
}

func TestTransitionRunsAndSettles(t *testing.T) {
	var made []*stubScreen
	f := NewFlow(FlowBook, 80, 20)
	f.SetTransitions(TransitionSlide, 50*time.Millisecond)
	f.Register(KindPage, pageFactory(&made))

	f.Mount(Page(1), nil)
	require.True(t, f.Transitioning())

	_, consumed := f.Update(TransitionTickMsg{Flow: FlowBook, At: time.Now()})
	require.True(t, consumed)
	require.True(t, f.Transitioning())

	_, consumed = f.Update(TransitionTickMsg{Flow: FlowBook, At: time.Now().Add(time.Second)})
	require.True(t, consumed)
	require.False(t, f.Transitioning())
	require.Equal(t, "page 1", f.View())
}

func TestPageDirectionPicksSlide(t *testing.T) {
	require.Equal(t, DirBackward, directionFor(Page(3), Page(2)))
	require.Equal(t, DirForward, directionFor(Page(2), Page(3)))
	require.Equal(t, DirForward, directionFor(Page(2), Page(2)))
	require.Equal(t, DirForward, directionFor(Start(), Book()))
}

func TestTurningBackSlidesBackward(t *testing.T) {
	var made []*stubScreen
	f := NewFlow(FlowBook, 80, 20)
	f.SetTransitions(TransitionSlide, 50*time.Millisecond)
	f.Register(KindPage, pageFactory(&made))

	f.Mount(Page(3), nil)
	f.Update(TransitionTickMsg{Flow: FlowBook, At: time.Now().Add(time.Second)})

	f.Replace(Page(2), nil)
	require.NotNil(t, f.trans)
	require.Equal(t, DirBackward, f.trans.Dir)
}

func TestBusyScreenSwapsWithoutAnimation(t *testing.T) {
	var made []*stubScreen
	f := NewFlow(FlowBook, 80, 20)
	f.SetTransitions(TransitionSlide, 50*time.Millisecond)
	f.Register(KindPage, pageFactory(&made))

	f.Mount(Page(1), nil)
	f.Update(TransitionTickMsg{Flow: FlowBook, At: time.Now().Add(time.Second)})
	require.False(t, f.Transitioning())

	made[0].busy = true
	f.Replace(Page(2), nil)
	require.False(t, f.Transitioning())
	require.Equal(t, "page 2", f.View())
}

// The flow itself applies no page floor; bounds live with the content
// owner. Replacing toward page 0 is accepted here.
func TestFlowAppliesNoPageFloor(t *testing.T) {
	var made []*stubScreen
	f := NewFlow(FlowBook, 80, 20)
	f.Register(KindPage, pageFactory(&made))

	f.Mount(Page(1), nil)
	f.Replace(Page(0), nil)

	r, ok := f.CurrentRoute()
	require.True(t, ok)
	require.Equal(t, Page(0), r)
	require.Equal(t, 1, f.Depth())
}

func TestResizeReachesEveryStackedScreen(t *testing.T) {
	var made []*stubScreen
	f := NewFlow(FlowBook, 80, 20)
	f.Register(KindPage, pageFactory(&made))

	f.Mount(Page(1), nil)
	f.Go(Page(2), nil)

	f.Resize(120, 34)
	require.Len(t, made, 2)
	for _, s := range made {
		require.Equal(t, 120, s.width, s.name)
		require.Equal(t, 34, s.height, s.name)
	}
}

func TestViewBeforeMountIsEmpty(t *testing.T) {
	f := NewFlow(FlowRoot, 80, 20)
	require.Equal(t, "", f.View())
}
