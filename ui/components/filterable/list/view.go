package filterlist

import (
	"strings"
)

// VisibleContent renders exactly lines rows of the filtered list around
// the cursor, for screens that size their frame explicitly instead of
// delegating clipping to the viewport.
func (l *FilterableList[T]) VisibleContent(lines int) string {
	if lines < 1 {
		lines = 1
	}
	l.Viewport.Height = lines
	l.ensureCursorVisible()

	start := l.Viewport.YOffset
	if start > len(l.Filtered) {
		start = len(l.Filtered)
	}
	end := start + lines
	if end > len(l.Filtered) {
		end = len(l.Filtered)
	}

	out := make([]string, 0, lines)
	for i := start; i < end; i++ {
		out = append(out, l.RenderItem(l.Filtered[i], i == l.Cursor))
	}
	for len(out) < lines {
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}

func (l *FilterableList[T]) ensureCursorVisible() {
	h := l.Viewport.Height
	if h < 1 {
		h = 1
	}

	if l.Cursor < l.Viewport.YOffset {
		l.Viewport.YOffset = l.Cursor
	} else if l.Cursor >= l.Viewport.YOffset+h {
		l.Viewport.YOffset = l.Cursor - h + 1
	}
}
