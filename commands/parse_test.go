package commands

import (
	"errors"
	"testing"

	"folio/commands/api"
	_ "folio/commands/command"
)

func TestParseInputResolvesCommand(t *testing.T) {
	cmd, a, err := ParseInput("goto 12")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Name() != "goto" {
		t.Fatalf("command = %q", cmd.Name())
	}
	if len(a.Positionals) != 1 || a.Positionals[0] != "12" {
		t.Fatalf("positionals = %v", a.Positionals)
	}
}

func TestParseInputAlias(t *testing.T) {
	cmd, _, err := ParseInput("g 3")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Name() != "g" {
		t.Fatalf("command = %q", cmd.Name())
	}
}

func TestParseInputFlags(t *testing.T) {
	_, a, err := ParseInput("open dune messiah --fuzzy --limit=3")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(a.Positionals) != 2 {
		t.Fatalf("positionals = %v", a.Positionals)
	}
	if !a.Has("fuzzy") {
		t.Fatalf("fuzzy flag missing: %v", a.Flags)
	}
	if a.Get("limit") != "3" {
		t.Fatalf("limit = %q", a.Get("limit"))
	}
}

func TestParseInputEmpty(t *testing.T) {
	_, _, err := ParseInput("   ")
	if !errors.Is(err, api.ErrEmptyCommand) {
		t.Fatalf("err = %v", err)
	}
}

func TestParseInputUnknown(t *testing.T) {
	_, _, err := ParseInput("frobnicate")
	if err == nil {
		t.Fatalf("expected error for unknown command")
	}
}

func TestSuggestSorted(t *testing.T) {
	got := Suggest("")
	if len(got) == 0 {
		t.Fatalf("no commands registered")
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Fatalf("suggestions not sorted: %v", got)
		}
	}
}
