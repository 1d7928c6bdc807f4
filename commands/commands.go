package commands

import (
	"folio/commands/api"
	"folio/commands/internal/registry"
)

// Thin passthroughs so callers depend on this package, not the registry
// internals.

func Register(cmd api.Command) {
	registry.Register(cmd)
}

func Get(name string) (api.Command, bool) {
	return registry.Get(name)
}

func All() []api.Command {
	return registry.All()
}

func Suggest(prefix string) []string {
	return registry.Suggest(prefix)
}
