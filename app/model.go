package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/commands"
	"folio/config"
	"folio/haptics"
	"folio/library"
	"folio/nav"
	"folio/store"
	"folio/ui"
	bookview "folio/views/book"
	"folio/views/commandinput"
	creditsview "folio/views/credits"
	helpview "folio/views/help"
	shelfinfoview "folio/views/shelfinfo"
	startview "folio/views/start"
	"folio/views/view"
)

// Deps carries everything the app is built from. main wires it once;
// nothing in here is reached for ambiently afterwards.
type Deps struct {
	Config   *config.Config
	Store    *store.Store
	Haptics  haptics.Feedback
	DeepLink string
	Version  string
}

// Model is the program root. It owns the root destination flow
// (start / credits / book / help), the shelf status block and the ':'
// command bar; the open book runs its own inner flow for pages.
type Model struct {
	deps Deps

	flow    *nav.Flow
	rootNav nav.Navigator

	shelfInfo    shelfinfoview.Model
	commandInput *commandinput.Model
	content      *library.Content

	terminalWidth  int
	terminalHeight int
}

func New(d Deps) *Model {
	rootKind, pageKind := nav.TransitionNone, nav.TransitionNone
	if d.Config.UI.Transitions {
		rootKind, pageKind = nav.TransitionFade, nav.TransitionSlide
	}

	flow := nav.NewFlow(nav.FlowRoot, 80, 20)
	flow.SetTransitions(rootKind, d.Config.UI.TransitionDuration())

	rootNav := nav.NavigatorFor(nav.FlowRoot)
	content := library.NewContent()

	cmdBar := commandinput.New(commands.Suggest)

	m := &Model{
		deps:           d,
		flow:           flow,
		rootNav:        rootNav,
		shelfInfo:      shelfinfoview.New(d.Version, d.Config.Library.Path, d.Store),
		commandInput:   &cmdBar,
		content:        content,
		terminalWidth:  84,
		terminalHeight: 28,
	}

	flow.Register(nav.KindStart, func(w, h int, r nav.Route, payload any) (view.View, tea.Cmd) {
		v := startview.New(w, h, d.Config.Library.Path, d.Store, content, rootNav, d.DeepLink)
		return v, v.Init()
	})
	flow.Register(nav.KindCredits, func(w, h int, r nav.Route, payload any) (view.View, tea.Cmd) {
		v := creditsview.New(w, h, d.Version)
		return v, v.Init()
	})
	flow.Register(nav.KindBook, func(w, h int, r nav.Route, payload any) (view.View, tea.Cmd) {
		return bookview.New(w, h, bookview.Deps{
			LibraryRoot:   d.Config.Library.Path,
			Store:         d.Store,
			Haptics:       d.Haptics,
			Content:       content,
			RootNav:       rootNav,
			Transitions:   pageKind,
			TransitionDur: d.Config.UI.TransitionDuration(),
		}, payload)
	})
	flow.Register(nav.KindHelp, func(w, h int, r nav.Route, payload any) (view.View, tea.Cmd) {
		v := helpview.New(w, h, commandInfos())
		return v, v.Init()
	})

	return m
}

// Init mounts the start destination and kicks off the shelf status loop.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.flow.Mount(nav.Start(), nil),
		m.shelfInfo.Init(),
		shelfinfoview.LoadStatus(m.deps.Config.Library.Path, m.deps.Store),
	)
}

// usableSize is the space handed to destinations: the terminal minus the
// status/help block up top and the breadcrumb bar below.
func (m *Model) usableSize() (int, int) {
	w := m.terminalWidth - 4
	h := m.terminalHeight - shelfinfoview.Height - 2
	if w < 20 {
		w = 20
	}
	if h < 5 {
		h = 5
	}
	return w, h
}

// flowBack pops the root flow; at the initial destination it quits instead.
func (m *Model) flowBack() tea.Cmd {
	if cmd, ok := m.flow.Back(); ok {
		return cmd
	}
	return m.Quit()
}

// Quit runs the active destination's exit hook before stopping, so an
// open book persists its position even on ctrl+c. The quit command
// reaches it through the command context.
func (m *Model) Quit() tea.Cmd {
	cur := m.flow.Current()
	if cur == nil {
		return tea.Quit
	}
	if exitCmd := cur.OnExit(); exitCmd != nil {
		return tea.Sequence(exitCmd, tea.Quit)
	}
	return tea.Quit
}

// renderStackBar draws the breadcrumb trail of stacked destinations. An
// open book replaces its plain route label with its own crumbs (title and
// current page).
func (m *Model) renderStackBar() string {
	routes := m.flow.Routes()
	if len(routes) == 0 {
		return ""
	}

	labels := make([]string, 0, len(routes)+1)
	for _, r := range routes {
		labels = append(labels, r.Label())
	}
	if cur := m.flow.Current(); cur != nil {
		if bc, ok := cur.(interface{ Breadcrumbs() []string }); ok {
			if crumbs := bc.Breadcrumbs(); len(crumbs) > 0 {
				labels = append(labels[:len(labels)-1], crumbs...)
			}
		}
	}

	sep := lipgloss.NewStyle().Faint(true).Render(" → ")
	var parts []string
	for i, label := range labels {
		if i > 0 {
			parts = append(parts, sep)
		}
		style := ui.Rainbow[i%len(ui.Rainbow)]
		parts = append(parts, style.Render(fmt.Sprintf(" %s ", label)))
	}

	return lipgloss.JoinHorizontal(lipgloss.Left, parts...)
}

func commandInfos() []helpview.CommandInfo {
	all := commands.All()
	infos := make([]helpview.CommandInfo, 0, len(all))
	for _, c := range all {
		infos = append(infos, helpview.CommandInfo{Name: c.Name(), Description: c.Description()})
	}
	return infos
}
