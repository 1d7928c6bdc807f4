package commands

import (
	"strings"

	"folio/args"
	"folio/commands/api"
	"folio/commands/internal/registry"
)

// ParseInput resolves a full prompt line like "goto 12" or
// "open dune --page=3" into the matching Command and parsed Args.
// Multi-word command names win over shorter ones (longest match first).
func ParseInput(input string) (api.Command, args.Args, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, args.Args{}, api.ErrEmptyCommand
	}

	parts := strings.Fields(input)

	var cmd api.Command
	var ok bool
	for i := len(parts); i > 0; i-- {
		tryName := strings.Join(parts[:i], " ")
		if c, found := registry.Get(tryName); found {
			cmd = c
			ok = true
			parts = parts[i:] // remaining = args + flags
			break
		}
	}

	if !ok {
		return nil, args.Args{}, api.ErrUnknownCommand(input)
	}

	return cmd, parseArgs(parts), nil
}

// parseArgs separates flags (--flag or --flag=value) from positionals.
func parseArgs(parts []string) args.Args {
	parsed := args.Args{
		Flags:       make(map[string]string),
		Positionals: []string{},
	}

	for _, p := range parts {
		if strings.HasPrefix(p, "--") {
			p = strings.TrimPrefix(p, "--")
			if eq := strings.Index(p, "="); eq != -1 {
				parsed.Flags[p[:eq]] = p[eq+1:]
			} else {
				parsed.Flags[p] = "true"
			}
		} else {
			parsed.Positionals = append(parsed.Positionals, p)
		}
	}

	return parsed
}
