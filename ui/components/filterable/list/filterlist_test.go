package filterlist

import (
	"strconv"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func rowList(n int) *FilterableList[string] {
	items := make([]string, n)
	for i := range items {
		items[i] = "row " + strconv.Itoa(i)
	}
	l := &FilterableList[string]{
		RenderItem: func(item string, selected bool) string {
			if selected {
				return "> " + item
			}
			return "  " + item
		},
	}
	l.SetItems(items)
	return l
}

func key(s string) tea.KeyMsg {
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestVisibleContentFollowsCursor(t *testing.T) {
	l := rowList(10)
	for i := 0; i < 6; i++ {
		l.HandleKey(key("j"))
	}
	out := strings.Split(l.VisibleContent(4), "\n")
	if len(out) != 4 {
		t.Fatalf("lines = %d, want 4", len(out))
	}
	if out[0] != "> row 6" {
		t.Fatalf("first visible line = %q, want the cursor row", out[0])
	}
}

func TestVisibleContentPadsShortLists(t *testing.T) {
	l := rowList(2)
	out := strings.Split(l.VisibleContent(5), "\n")
	if len(out) != 5 {
		t.Fatalf("lines = %d, want 5", len(out))
	}
	if out[4] != "" {
		t.Fatalf("padding line = %q, want empty", out[4])
	}
}

func TestCursorClampsToFilteredRows(t *testing.T) {
	l := rowList(3)
	for i := 0; i < 10; i++ {
		l.HandleKey(key("j"))
	}
	if l.Cursor != 2 {
		t.Fatalf("cursor = %d, want 2", l.Cursor)
	}
	l.HandleKey(key("k"))
	if l.Cursor != 1 {
		t.Fatalf("cursor = %d, want 1", l.Cursor)
	}
}

func TestSearchFiltersThroughRank(t *testing.T) {
	l := rowList(5)
	l.Rank = func(items []string, q string) []string {
		var out []string
		for _, it := range items {
			if strings.Contains(it, q) {
				out = append(out, it)
			}
		}
		return out
	}

	l.HandleKey(key("/"))
	if !l.Searching() {
		t.Fatal("not in search mode after /")
	}
	l.HandleKey(key("3"))
	if len(l.Filtered) != 1 || l.Filtered[0] != "row 3" {
		t.Fatalf("filtered = %v", l.Filtered)
	}

	l.HandleKey(key("esc"))
	if l.Searching() || l.Query != "" || len(l.Filtered) != 5 {
		t.Fatalf("esc did not reset the filter: query=%q rows=%d", l.Query, len(l.Filtered))
	}
}
