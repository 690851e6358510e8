// Package main is the entry point for the textcore editor.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/textcore/internal/config"
	"github.com/dshills/textcore/internal/engine"
	"github.com/dshills/textcore/internal/language"
	"github.com/dshills/textcore/internal/logger"
	"github.com/dshills/textcore/internal/session"
	"github.com/dshills/textcore/internal/term"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		debug       bool
		showVersion bool
	)
	flag.StringVar(&configPath, "config", "", "path to configuration file")
	flag.StringVar(&configPath, "c", "", "path to configuration file (shorthand)")
	flag.BoolVar(&debug, "debug", false, "enable debug logging")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("textcore %s (%s)\n", version, commit)
		return 0
	}
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: textcore [flags] <file>")
		return 2
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: config: %v\n", err)
		return 1
	}
	if err := logger.Init(cfg.Log.Path, debug || cfg.Log.Debug); err != nil {
		fmt.Fprintf(os.Stderr, "Error: logger: %v\n", err)
		return 1
	}
	defer logger.Close()

	path, err := filepath.Abs(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	text := ""
	if data, err := os.ReadFile(path); err == nil {
		text = string(data)
	} else if !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: read %s: %v\n", path, err)
		return 1
	}

	doc := engine.New(
		engine.WithText(text),
		engine.WithProfile(profileFor(cfg, path)),
		engine.WithIndentUnit(cfg.Editor.IndentUnit),
		engine.WithMaxUndoEntries(cfg.Editor.MaxUndoEntries),
	)

	theme, err := term.NewTheme(cfg.Theme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: theme: %v\n", err)
		return 1
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: terminal: %v\n", err)
		return 1
	}

	sess, err := session.NewManager("")
	if err != nil {
		logger.Warn("session unavailable", "error", err)
	}

	editor := term.New(screen, doc, theme, path)
	if sess != nil {
		if st, ok := sess.FileState(path); ok {
			editor.RestoreState(st)
		}
	}

	logger.Info("editing", "path", path, "language", doc.Profile().Name(), "lines", doc.Height())
	if err := editor.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if sess != nil {
		sess.SetFileState(path, editor.State())
		if err := sess.Save(); err != nil {
			logger.Warn("session save failed", "error", err)
		}
	}
	return 0
}

// profileFor picks the language profile for a file: user profiles from
// the configured profile directory first, then the built-ins.
func profileFor(cfg config.Config, path string) *language.Profile {
	ext := filepath.Ext(path)
	profiles := loadUserProfiles(cfg.Editor.ProfileDir)
	profiles = append(profiles, language.Builtin()...)
	return language.ForExtension(profiles, ext)
}

func loadUserProfiles(dir string) []*language.Profile {
	if dir == "" {
		return nil
	}
	matches, err := filepath.Glob(filepath.Join(dir, "*.toml"))
	if err != nil {
		return nil
	}
	var profiles []*language.Profile
	for _, m := range matches {
		p, err := language.LoadProfile(m)
		if err != nil {
			logger.Warn("skipping language profile", "path", m, "error", err)
			continue
		}
		profiles = append(profiles, p)
	}
	return profiles
}
