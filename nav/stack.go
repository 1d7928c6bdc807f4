package nav

import "folio/views/view"

// Entry pairs a destination route with its live screen.
type Entry struct {
	Route Route
	View  view.View
}

// Stack is the navigation history of a flow. The top entry is the active
// destination, so depth counts the active screen too.
type Stack struct {
	stack []Entry
}

// Push an entry onto the stack.
func (s *Stack) Push(e Entry) {
	s.stack = append(s.stack, e)
}

// Pop returns the top entry and removes it from the stack.
func (s *Stack) Pop() (Entry, bool) {
	if len(s.stack) == 0 {
		return Entry{}, false
	}
	last := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return last, true
}

// PopAndPush replaces the top entry with a new one, keeping depth constant.
// This is the page-turn primitive: history below the active entry is
// untouched and the stack never grows across page turns.
// If the stack is empty, it just pushes the new entry.
func (s *Stack) PopAndPush(e Entry) {
	if len(s.stack) > 0 {
		s.stack = s.stack[:len(s.stack)-1]
	}
	s.stack = append(s.stack, e)
}

// Peek returns the top entry without removing it.
func (s *Stack) Peek() (Entry, bool) {
	if len(s.stack) == 0 {
		return Entry{}, false
	}
	return s.stack[len(s.stack)-1], true
}

// Entries returns the full stack, bottom first (shallow copy).
func (s *Stack) Entries() []Entry {
	cpy := make([]Entry, len(s.stack))
	copy(cpy, s.stack)
	return cpy
}

// Routes returns the stacked routes, bottom first.
func (s *Stack) Routes() []Route {
	routes := make([]Route, len(s.stack))
	for i, e := range s.stack {
		routes[i] = e.Route
	}
	return routes
}

// Len returns how many entries are on the stack.
func (s *Stack) Len() int {
	return len(s.stack)
}
