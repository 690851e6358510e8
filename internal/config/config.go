// Package config loads editor configuration from a TOML file and
// supplies defaults when no file exists. Configuration is plain data
// passed explicitly into the components that need it; there is no
// process-wide registry.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the top-level editor configuration.
type Config struct {
	Editor Editor `toml:"editor"`
	Theme  Theme  `toml:"theme"`
	Log    Log    `toml:"log"`
}

// Editor holds the text-editing settings.
type Editor struct {
	// IndentUnit is inserted by indent operations: "\t" or a run of
	// spaces.
	IndentUnit string `toml:"indent-unit"`
	// TabWidth is the rendered width of a tab character.
	TabWidth int `toml:"tab-width"`
	// MaxUndoEntries bounds the undo history per document.
	MaxUndoEntries int `toml:"max-undo-entries"`
	// ProfileDir holds extra language profiles as TOML files.
	ProfileDir string `toml:"profile-dir"`
}

// Theme maps highlight palette entries and UI states to hex colors
// like "#rrggbb".
type Theme struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`

	Keyword     string `toml:"keyword"`
	Identifier  string `toml:"identifier"`
	Comment     string `toml:"comment"`
	String      string `toml:"string"`
	Number      string `toml:"number"`
	Operator    string `toml:"operator"`
	Punctuation string `toml:"punctuation"`
	Type        string `toml:"type"`
	Function    string `toml:"function"`
	Constant    string `toml:"constant"`

	Selection  string `toml:"selection"`
	CursorLine string `toml:"cursor-line"`
	Bracket    string `toml:"bracket"`
	StatusBar  string `toml:"status-bar"`
}

// Log holds the logging settings.
type Log struct {
	Path  string `toml:"path"`
	Debug bool   `toml:"debug"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Editor: Editor{
			IndentUnit:     "\t",
			TabWidth:       4,
			MaxUndoEntries: 1000,
		},
		Theme: Theme{
			Foreground:  "#d8dee9",
			Background:  "#2e3440",
			Keyword:     "#81a1c1",
			Identifier:  "#d8dee9",
			Comment:     "#616e88",
			String:      "#a3be8c",
			Number:      "#b48ead",
			Operator:    "#81a1c1",
			Punctuation: "#eceff4",
			Type:        "#8fbcbb",
			Function:    "#88c0d0",
			Constant:    "#d08770",
			Selection:   "#434c5e",
			CursorLine:  "#3b4252",
			Bracket:     "#ebcb8b",
			StatusBar:   "#4c566a",
		},
	}
}

// Load reads configuration from path, layered over the defaults. An
// empty path tries the default location; a missing file is not an
// error and yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if explicit {
			return cfg, err
		}
		return cfg, nil
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "textcore", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "textcore", "config.toml"), nil
}

func (c *Config) validate() error {
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		return fmt.Errorf("tab-width %d out of range [1, 16]", c.Editor.TabWidth)
	}
	if c.Editor.MaxUndoEntries < 1 {
		return fmt.Errorf("max-undo-entries must be positive, got %d", c.Editor.MaxUndoEntries)
	}
	if c.Editor.IndentUnit == "" {
		return fmt.Errorf("indent-unit must not be empty")
	}
	return nil
}
