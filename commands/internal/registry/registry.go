package registry

import (
	"sort"
	"strings"

	"folio/commands/api"
)

// byName is filled by the command package inits before main runs; no
// locking needed after that.
var byName = map[string]api.Command{}

// Register adds a verb under its name. Later registrations win, which is
// how an alias could shadow a verb if someone registered one badly.
func Register(cmd api.Command) {
	byName[cmd.Name()] = cmd
}

// Get returns a command by name.
func Get(name string) (api.Command, bool) {
	cmd, ok := byName[name]
	return cmd, ok
}

// All returns every registered command, name-sorted for display.
func All() []api.Command {
	cmds := make([]api.Command, 0, len(byName))
	for _, c := range byName {
		cmds = append(cmds, c)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })
	return cmds
}

// Suggest returns the command names starting with prefix, sorted so the
// completion row is stable while typing.
func Suggest(prefix string) []string {
	var out []string
	for name := range byName {
		if prefix == "" || strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
