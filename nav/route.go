package nav

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies a destination within a navigation flow.
type Kind int

const (
	KindStart Kind = iota
	KindCredits
	KindBook
	KindPage
	KindHelp
)

func (k Kind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindCredits:
		return "credits"
	case KindBook:
		return "book"
	case KindPage:
		return "page"
	case KindHelp:
		return "help"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Route is a typed navigation target. Inside the app routes are always
// handled in this form; the string form of the wire table exists only at
// the Parse/String boundary.
type Route struct {
	Kind Kind
	// Page is the 1-based page number, meaningful only for KindPage.
	// The navigation layer applies no floor: "previous" from page 1
	// yields page 0 and the content-aware screens keep that from being
	// offered in the first place.
	Page int
}

func Start() Route   { return Route{Kind: KindStart} }
func Credits() Route { return Route{Kind: KindCredits} }
func Book() Route    { return Route{Kind: KindBook} }
func Help() Route    { return Route{Kind: KindHelp} }

// Page returns the route for book page n.
func Page(n int) Route { return Route{Kind: KindPage, Page: n} }

// String renders the wire form of a route (`start`, `credits`, `book`,
// `page/{n}`). Internal destinations such as help render their kind name;
// they are never produced by Parse.
func (r Route) String() string {
	if r.Kind == KindPage {
		return fmt.Sprintf("page/%d", r.Page)
	}
	return r.Kind.String()
}

// Label is the human form used by the stack breadcrumb bar.
func (r Route) Label() string {
	if r.Kind == KindPage {
		return fmt.Sprintf("page %d", r.Page)
	}
	return r.Kind.String()
}

// Parse resolves a route string from the wire table into a typed Route.
//
// A missing or malformed page parameter is not an error: it resolves to
// page 1. Only route names outside the table fail, and callers at the
// boundary log and ignore those.
func Parse(s string) (Route, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "/")

	switch s {
	case "start":
		return Start(), nil
	case "credits":
		return Credits(), nil
	case "book":
		return Book(), nil
	case "page":
		// Parameter missing entirely.
		return Page(1), nil
	}

	if rest, ok := strings.CutPrefix(s, "page/"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil {
			return Page(1), nil
		}
		return Page(n), nil
	}

	return Route{}, fmt.Errorf("unknown route %q", s)
}
