package args

import "testing"

func TestParseCLI(t *testing.T) {
	c, err := ParseCLI([]string{"--open", "folio://book/dune/3", "--library", "/tmp/books"})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if c.Open != "folio://book/dune/3" {
		t.Fatalf("open = %q", c.Open)
	}
	if c.Library != "/tmp/books" {
		t.Fatalf("library = %q", c.Library)
	}
	if c.ShowVersion {
		t.Fatalf("version flag should default to false")
	}
}

func TestParseCLIEmpty(t *testing.T) {
	c, err := ParseCLI(nil)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if c != (CLI{}) {
		t.Fatalf("expected zero CLI, got %+v", c)
	}
}

func TestParseCLIUnknownFlag(t *testing.T) {
	if _, err := ParseCLI([]string{"--nope"}); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}
