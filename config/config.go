// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the persisted preferences. Every key has a default, so a
// missing config file is not an error.
type Config struct {
	Library  Library
	Database Database
	UI       UI

	v    *viper.Viper
	path string
}

type Library struct {
	// Path is the shelf root: one directory per book.
	Path string
}

type Database struct {
	// Path of the sqlite file holding reading positions.
	Path string
}

type UI struct {
	// Transitions toggles destination-change animations.
	Transitions bool
	// TransitionMS is the animation duration in milliseconds.
	TransitionMS int
	// Haptics toggles feedback pulses (the terminal bell).
	Haptics bool
}

// TransitionDuration returns the configured animation duration.
func (u UI) TransitionDuration() time.Duration {
	return time.Duration(u.TransitionMS) * time.Millisecond
}

// Load reads the config file, falling back to defaults for anything unset.
// The file is resolved from, in order: the explicit path argument, the
// FOLIO_CONFIG environment variable, ~/.config/folio/config.toml.
// Individual keys can be overridden via FOLIO_* environment variables
// (e.g. FOLIO_LIBRARY_PATH).
func Load(explicit string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")

	path := explicit
	if path == "" {
		path = os.Getenv("FOLIO_CONFIG")
	}
	if path == "" {
		path = filepath.Join(defaultConfigDir(), "config.toml")
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix("FOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("library.path", defaultLibraryDir())
	v.SetDefault("database.path", filepath.Join(defaultDataDir(), "folio.db"))
	v.SetDefault("ui.transitions", true)
	v.SetDefault("ui.transition_ms", 180)
	v.SetDefault("ui.haptics", true)

	if err := v.ReadInConfig(); err != nil {
		// A missing file just means defaults; anything else is real.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	c := &Config{
		Library:  Library{Path: v.GetString("library.path")},
		Database: Database{Path: v.GetString("database.path")},
		UI: UI{
			Transitions:  v.GetBool("ui.transitions"),
			TransitionMS: v.GetInt("ui.transition_ms"),
			Haptics:      v.GetBool("ui.haptics"),
		},
		v:    v,
		path: path,
	}
	return c, nil
}

// Save writes the current values back to the config file, creating the
// directory if needed.
func (c *Config) Save() error {
	c.v.Set("library.path", c.Library.Path)
	c.v.Set("database.path", c.Database.Path)
	c.v.Set("ui.transitions", c.UI.Transitions)
	c.v.Set("ui.transition_ms", c.UI.TransitionMS)
	c.v.Set("ui.haptics", c.UI.Haptics)

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := c.v.WriteConfigAs(c.path); err != nil {
		return fmt.Errorf("write config %s: %w", c.path, err)
	}
	return nil
}

// Path returns where the config was (or would be) read from.
func (c *Config) Path() string { return c.path }

func defaultConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "folio")
	}
	return filepath.Join(os.TempDir(), "folio")
}

func defaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "folio")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "folio")
	}
	return filepath.Join(os.TempDir(), "folio")
}

func defaultLibraryDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, "Books")
	}
	return filepath.Join(os.TempDir(), "folio-books")
}
