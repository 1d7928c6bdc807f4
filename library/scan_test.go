package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeBook(t *testing.T, root, slug, meta string, pages map[string]string) {
	t.Helper()
	dir := filepath.Join(root, slug)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	if meta != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "book.toml"), []byte(meta), 0o644))
	}
	for name, body := range pages {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
}

func TestScanFindsBooks(t *testing.T) {
	root := t.TempDir()
	writeBook(t, root, "dune",
		"title = \"Dune\"\nauthor = \"Frank Herbert\"\nyear = 1965\n",
		map[string]string{
			"02-second.md": "two words here",
			"01-first.md":  "one two three four",
		})
	writeBook(t, root, "old-man-and-sea", "", map[string]string{
		"page1.txt": "the old man fished",
	})

	shelf, err := Scan(root)
	require.NoError(t, err)
	require.Len(t, shelf.Books, 2)

	dune, ok := shelf.BySlug("dune")
	require.True(t, ok)
	require.Equal(t, "Dune", dune.Title)
	require.Equal(t, "Frank Herbert", dune.Author)
	require.Equal(t, 1965, dune.Year)
	require.Equal(t, []string{"01-first.md", "02-second.md"}, dune.Pages)
	require.Equal(t, 7, dune.Words)

	sea, ok := shelf.BySlug("old-man-and-sea")
	require.True(t, ok)
	require.Equal(t, "Old Man And Sea", sea.Title)
	require.Equal(t, 1, sea.PageCount())

	// Shelf is title-sorted.
	require.Equal(t, "Dune", shelf.Books[0].Title)
}

func TestScanSkipsNonBooks(t *testing.T) {
	root := t.TempDir()
	writeBook(t, root, "empty-dir", "", nil)
	writeBook(t, root, ".hidden", "", map[string]string{"p.md": "x"})
	require.NoError(t, os.WriteFile(filepath.Join(root, "stray.txt"), []byte("loose file"), 0o644))
	writeBook(t, root, "real", "", map[string]string{"p.md": "hello world"})

	shelf, err := Scan(root)
	require.NoError(t, err)
	require.Len(t, shelf.Books, 1)
	require.Equal(t, "real", shelf.Books[0].Slug)
}

func TestScanSkipsBrokenMetadata(t *testing.T) {
	root := t.TempDir()
	writeBook(t, root, "broken", "title = [not toml", map[string]string{"p.md": "x"})
	writeBook(t, root, "fine", "", map[string]string{"p.md": "x"})

	shelf, err := Scan(root)
	require.NoError(t, err)
	require.Len(t, shelf.Books, 1)
	require.Equal(t, "fine", shelf.Books[0].Slug)
}

func TestScanMissingRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestBookIDDeterministic(t *testing.T) {
	require.Equal(t, BookID("dune"), BookID("dune"))
	require.NotEqual(t, BookID("dune"), BookID("dune-2"))
}

func TestContentMemoizes(t *testing.T) {
	root := t.TempDir()
	writeBook(t, root, "dune", "", map[string]string{"p1.md": "original"})

	shelf, err := Scan(root)
	require.NoError(t, err)
	book := shelf.Books[0]

	content := NewContent()
	text, err := content.Page(book, 1)
	require.NoError(t, err)
	require.Equal(t, "original", text)

	// The cache, not the file, serves repeat reads.
	require.NoError(t, os.WriteFile(filepath.Join(book.Path, "p1.md"), []byte("rewritten"), 0o644))
	text, err = content.Page(book, 1)
	require.NoError(t, err)
	require.Equal(t, "original", text)

	content.Forget(book.ID)
	text, err = content.Page(book, 1)
	require.NoError(t, err)
	require.Equal(t, "rewritten", text)
}

func TestContentOutOfRange(t *testing.T) {
	root := t.TempDir()
	writeBook(t, root, "dune", "", map[string]string{"p1.md": "x"})
	shelf, err := Scan(root)
	require.NoError(t, err)

	content := NewContent()
	_, err = content.Page(shelf.Books[0], 0)
	require.Error(t, err)
	_, err = content.Page(shelf.Books[0], 2)
	require.Error(t, err)
}
