package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"folio/app"
	"folio/args"
	"folio/config"
	"folio/haptics"
	"folio/store"
	foliolog "folio/utils/log"
)

// version is stamped by the release build.
var version = "dev"

func main() {
	cli, err := args.ParseCLI(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if cli.ShowVersion {
		fmt.Println("folio", version)
		return
	}

	cfg, err := config.Load(cli.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "folio: %v\n", err)
		os.Exit(1)
	}

	foliolog.Init("folio")
	defer foliolog.Sync()

	// First run: materialize the defaults so there is a file to edit.
	// This happens before the --library override, which stays ephemeral.
	if _, statErr := os.Stat(cfg.Path()); os.IsNotExist(statErr) {
		if err := cfg.Save(); err != nil {
			foliolog.L().Warnf("writing default config: %v", err)
		}
	}
	if cli.Library != "" {
		cfg.Library.Path = cli.Library
	}
	foliolog.L().Infof("starting folio %s (config %s, library %s)", version, cfg.Path(), cfg.Library.Path)

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		foliolog.L().Errorf("create data dir: %v", err)
		fmt.Fprintf(os.Stderr, "folio: create data dir: %v\n", err)
		os.Exit(1)
	}
	st, err := store.Open(cfg.Database.Path)
	if err != nil {
		foliolog.L().Errorf("open position store: %v", err)
		fmt.Fprintf(os.Stderr, "folio: open position store: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	m := app.New(app.Deps{
		Config:   cfg,
		Store:    st,
		Haptics:  haptics.FromConfig(cfg.UI.Haptics),
		DeepLink: cli.Open,
		Version:  version,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		foliolog.L().Errorf("program aborted: %v", err)
		fmt.Fprintf(os.Stderr, "folio: %v\n", err)
		os.Exit(1)
	}
}
