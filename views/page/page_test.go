package pageview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"folio/library"
	"folio/nav"
	"folio/views/gotodialog"
)

type buzzRecorder struct{ n int }

func (b *buzzRecorder) Buzz() { b.n++ }

func newTestPage(page, total int, buzzer *buzzRecorder) *Model {
	return New(80, 24, Params{
		Book:    library.Book{Slug: "emma", Title: "Emma", Author: "Jane Austen", Year: 1815},
		Page:    page,
		Total:   total,
		RootNav: nav.NavigatorFor(nav.FlowRoot),
		BookNav: nav.NavigatorFor(nav.FlowBook),
		Haptics: buzzer,
		Content: library.NewContent(),
	})
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNextReplacesWithFollowingPage(t *testing.T) {
	buzzer := &buzzRecorder{}
	m := newTestPage(2, 5, buzzer)

	cmd := m.Update(keyRune('n'))
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	msg, ok := cmd().(nav.NavigateToMsg)
	if !ok {
		t.Fatalf("expected NavigateToMsg, got %T", cmd())
	}
	if msg.Flow != nav.FlowBook || !msg.Replace {
		t.Fatalf("expected replace on the book flow, got %+v", msg)
	}
	if msg.Route != nav.Page(3) {
		t.Fatalf("expected page/3, got %v", msg.Route)
	}
	if buzzer.n != 1 {
		t.Fatalf("expected one buzz, got %d", buzzer.n)
	}
}

func TestPreviousReplacesWithPrecedingPage(t *testing.T) {
	m := newTestPage(3, 5, &buzzRecorder{})

	cmd := m.Update(keyRune('p'))
	msg := cmd().(nav.NavigateToMsg)
	if msg.Route != nav.Page(2) || !msg.Replace {
		t.Fatalf("expected replace to page/2, got %+v", msg)
	}
}

func TestNextSuppressedOnLastPage(t *testing.T) {
	buzzer := &buzzRecorder{}
	m := newTestPage(5, 5, buzzer)

	m.Update(keyRune('n'))
	if !strings.Contains(m.toast, "last page") {
		t.Fatalf("expected a last-page notice, got %q", m.toast)
	}
	if buzzer.n != 1 {
		t.Fatalf("expected a boundary buzz, got %d", buzzer.n)
	}
}

func TestPreviousSuppressedOnFirstPage(t *testing.T) {
	buzzer := &buzzRecorder{}
	m := newTestPage(1, 5, buzzer)

	m.Update(keyRune('p'))
	if !strings.Contains(m.toast, "first page") {
		t.Fatalf("expected a first-page notice, got %q", m.toast)
	}
	if buzzer.n != 1 {
		t.Fatalf("expected a boundary buzz, got %d", buzzer.n)
	}
}

func TestGotoResultNavigates(t *testing.T) {
	m := newTestPage(2, 9, &buzzRecorder{})

	cmd := m.Update(gotodialog.ResultMsg{Confirmed: true, Page: 7})
	msg := cmd().(nav.NavigateToMsg)
	if msg.Route != nav.Page(7) || !msg.Replace {
		t.Fatalf("expected replace to page/7, got %+v", msg)
	}
}

func TestGotoToCurrentPageIsNoop(t *testing.T) {
	m := newTestPage(2, 9, &buzzRecorder{})

	if cmd := m.Update(gotodialog.ResultMsg{Confirmed: true, Page: 2}); cmd != nil {
		t.Fatal("expected no navigation for the current page")
	}
}

func TestContentArrivalRenders(t *testing.T) {
	m := newTestPage(1, 3, &buzzRecorder{})
	if !m.Busy() {
		t.Fatal("expected a fresh page to report busy")
	}

	m.Update(ContentMsg{Page: 1, Text: "Call me Ishmael."})
	if m.Busy() {
		t.Fatal("expected busy to clear once content arrived")
	}

	plain := ansi.Strip(m.View())
	if !strings.Contains(plain, "Call me Ishmael.") {
		t.Fatal("expected the page text in the rendered frame")
	}
	if !strings.Contains(plain, "Page 1 of 3") {
		t.Fatal("expected the page label in the footer")
	}
}

func TestStaleContentIgnored(t *testing.T) {
	m := newTestPage(4, 9, &buzzRecorder{})

	m.Update(ContentMsg{Page: 3, Text: "late reply"})
	if m.ready {
		t.Fatal("expected a reply for another page to be dropped")
	}
}

func TestCloseBookUsesRootNavigator(t *testing.T) {
	m := newTestPage(2, 5, &buzzRecorder{})
	m.Update(ContentMsg{Page: 2, Text: "middle of the book"})

	cmd := m.Update(keyRune('x'))
	msg, ok := cmd().(nav.NavigateBackMsg)
	if !ok {
		t.Fatalf("expected NavigateBackMsg, got %T", cmd())
	}
	if msg.Flow != nav.FlowRoot {
		t.Fatalf("expected the root flow, got %q", msg.Flow)
	}
}

func TestSearchWithoutMatchToasts(t *testing.T) {
	m := newTestPage(1, 1, &buzzRecorder{})
	m.Update(ContentMsg{Page: 1, Text: "nothing to see here"})

	m.Update(keyRune('/'))
	if !m.HasActiveDialog() {
		t.Fatal("expected search capture to count as an active dialog")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("zebra")})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.HasActiveDialog() {
		t.Fatal("expected search capture to end on enter")
	}
	if !strings.Contains(m.toast, "no matches") {
		t.Fatalf("expected a no-matches notice, got %q", m.toast)
	}
}
