package nav

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKnownRoutes(t *testing.T) {
	cases := []struct {
		in   string
		want Route
	}{
		{"start", Start()},
		{"credits", Credits()},
		{"book", Book()},
		{"page/1", Page(1)},
		{"page/37", Page(37)},
		{" start ", Start()},
		{"page/4/", Page(4)},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		require.NoError(t, err, "Parse(%q)", tc.in)
		require.Equal(t, tc.want, got, "Parse(%q)", tc.in)
	}
}

func TestParseMalformedPageFallsBackToFirst(t *testing.T) {
	for _, in := range []string{"page", "page/", "page/abc", "page/1.5", "page/ 2"} {
		got, err := Parse(in)
		require.NoError(t, err, "Parse(%q)", in)
		require.Equal(t, Page(1), got, "Parse(%q)", in)
	}
}

// The route layer applies no floor; content-aware screens clamp.
func TestParseKeepsOutOfRangePages(t *testing.T) {
	got, err := Parse("page/0")
	require.NoError(t, err)
	require.Equal(t, Page(0), got)

	got, err = Parse("page/-2")
	require.NoError(t, err)
	require.Equal(t, Page(-2), got)
}

func TestParseUnknownRouteFails(t *testing.T) {
	for _, in := range []string{"", "nope", "pages/3", "book/1", "help"} {
		_, err := Parse(in)
		require.Error(t, err, "Parse(%q)", in)
	}
}

func TestWireRoundTrip(t *testing.T) {
	for _, r := range []Route{Start(), Credits(), Book(), Page(1), Page(12)} {
		got, err := Parse(r.String())
		require.NoError(t, err)
		require.Equal(t, r, got)
	}
}

func TestLabels(t *testing.T) {
	require.Equal(t, "start", Start().Label())
	require.Equal(t, "page 3", Page(3).Label())
	require.Equal(t, "page/3", Page(3).String())
}
