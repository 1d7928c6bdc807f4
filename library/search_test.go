package library

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func shelfFixture() []Book {
	return []Book{
		{Slug: "dune", Title: "Dune", Author: "Frank Herbert"},
		{Slug: "dune-messiah", Title: "Dune Messiah", Author: "Frank Herbert"},
		{Slug: "emma", Title: "Emma", Author: "Jane Austen"},
		{Slug: "walden", Title: "Walden", Author: "Henry Thoreau"},
	}
}

func titles(books []Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.Title
	}
	return out
}

func TestRankSubstring(t *testing.T) {
	got := Rank(shelfFixture(), "dune")
	require.Equal(t, []string{"Dune", "Dune Messiah"}, titles(got))
}

func TestRankByAuthor(t *testing.T) {
	got := Rank(shelfFixture(), "austen")
	require.Equal(t, []string{"Emma"}, titles(got))
}

func TestRankTypoTolerant(t *testing.T) {
	got := Rank(shelfFixture(), "emna")
	require.Contains(t, titles(got), "Emma")
}

func TestRankSubstringBeatsDistance(t *testing.T) {
	books := []Book{
		{Slug: "dane", Title: "Dane"}, // distance 1 from "dune"
		{Slug: "dune-messiah", Title: "Dune Messiah"},
	}
	got := Rank(books, "dune")
	require.Equal(t, "Dune Messiah", got[0].Title)
}

func TestRankEmptyQuery(t *testing.T) {
	books := shelfFixture()
	require.Equal(t, titles(books), titles(Rank(books, "  ")))
}

func TestMatchBook(t *testing.T) {
	b, ok := MatchBook(shelfFixture(), "walden")
	require.True(t, ok)
	require.Equal(t, "Walden", b.Title)

	_, ok = MatchBook(shelfFixture(), "")
	require.False(t, ok)

	_, ok = MatchBook(shelfFixture(), "zzzzzzzzzz")
	require.False(t, ok)
}
