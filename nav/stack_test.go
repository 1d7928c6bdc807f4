package nav

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStackPushPopOrder(t *testing.T) {
	var s Stack

	_, ok := s.Pop()
	require.False(t, ok)

	s.Push(Entry{Route: Start()})
	s.Push(Entry{Route: Book()})
	require.Equal(t, 2, s.Len())

	top, ok := s.Peek()
	require.True(t, ok)
	require.Equal(t, Book(), top.Route)

	popped, ok := s.Pop()
	require.True(t, ok)
	require.Equal(t, Book(), popped.Route)

	popped, ok = s.Pop()
	require.True(t, ok)
	require.Equal(t, Start(), popped.Route)
	require.Equal(t, 0, s.Len())
}

func TestPopAndPushKeepsDepthConstant(t *testing.T) {
	var s Stack
	s.Push(Entry{Route: Start()})
	s.Push(Entry{Route: Page(1)})

	for n := 2; n <= 5; n++ {
		s.PopAndPush(Entry{Route: Page(n)})
		require.Equal(t, 2, s.Len(), "page %d", n)
	}

	require.Equal(t, []Route{Start(), Page(5)}, s.Routes())
}

func TestPopAndPushOnEmptyJustPushes(t *testing.T) {
	var s Stack
	s.PopAndPush(Entry{Route: Page(1)})
	require.Equal(t, 1, s.Len())

	top, ok := s.Peek()
	require.True(t, ok)
	require.Equal(t, Page(1), top.Route)
}

func TestEntriesReturnsCopy(t *testing.T) {
	var s Stack
	s.Push(Entry{Route: Start()})

	entries := s.Entries()
	entries[0].Route = Credits()

	top, _ := s.Peek()
	require.Equal(t, Start(), top.Route)
}
