// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package args

import "github.com/spf13/pflag"

// CLI carries the process-level flags. The deep link stays an opaque
// string end to end: it is handed to the start screen for display, never
// parsed.
type CLI struct {
	Open        string
	Library     string
	ConfigPath  string
	ShowVersion bool
}

// ParseCLI parses the command line (without the program name).
func ParseCLI(argv []string) (CLI, error) {
	var c CLI

	fs := pflag.NewFlagSet("folio", pflag.ContinueOnError)
	fs.StringVar(&c.Open, "open", "", "deep link URI to show on the start screen")
	fs.StringVar(&c.Library, "library", "", "override the configured library root")
	fs.StringVar(&c.ConfigPath, "config", "", "path to the config file")
	fs.BoolVar(&c.ShowVersion, "version", false, "print the version and exit")

	if err := fs.Parse(argv); err != nil {
		return CLI{}, err
	}
	return c, nil
}
