// Package args carries what follows a command verb on the ':' prompt.
package args

import "fmt"

// Args is the parsed tail of a command line: bare words in order, plus
// --flag or --flag=value pairs.
type Args struct {
	Positionals []string
	Flags       map[string]string
}

// Get returns a flag's value, empty when the flag is absent.
func (a *Args) Get(name string) string { return a.Flags[name] }

// Has reports whether the flag appeared at all, with or without a value.
func (a *Args) Has(name string) bool {
	_, ok := a.Flags[name]
	return ok
}

func (a Args) String() string {
	return fmt.Sprintf("args{words=%v flags=%v}", a.Positionals, a.Flags)
}
