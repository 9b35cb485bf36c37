package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/scalecode-solutions/runeclass"
	"github.com/scalecode-solutions/runeclass/internal/config"
)

// app holds the state shared by all commands.
type app struct {
	out    io.Writer
	errOut io.Writer

	// Persistent flags
	configPath string
	logLevel   string
	encoding   string
	language   string

	cfg    *config.Config
	logger *slog.Logger
	enc    runeclass.Encoding
	lang   runeclass.Language
}

// setup loads the layered configuration, applies the flags and configures
// logging.
func (a *app) setup(cmd *cobra.Command) error {
	// Config loading logs through a bootstrap logger until the level is known.
	bootstrap := slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: slog.LevelWarn}))

	loader := config.NewLoader(bootstrap)
	if a.configPath != "" {
		loader.WithFile(a.configPath)
	}
	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Flags take precedence
	flags := cmd.Flags()
	if flags.Changed("encoding") {
		cfg.Text.Encoding = a.encoding
	}
	if flags.Changed("language") {
		cfg.Text.Language = a.language
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return err
	}
	a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.logger)

	a.enc, a.lang, err = cfg.Text.Tags()
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.logger.Debug("Configuration loaded",
		"encoding", a.enc,
		"language", a.lang,
		"log_level", level)
	return nil
}

// subject converts a command line argument to the configured encoding.
func (a *app) subject(arg string) (string, error) {
	s, err := runeclass.Encode(arg, a.enc)
	if err != nil {
		return "", fmt.Errorf("subject %q: %w", arg, err)
	}
	return s, nil
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// header formats s as a heading, bold on terminals.
func (a *app) header(s string) string {
	if isTerminal(a.out) {
		return "\033[1m" + s + "\033[0m"
	}
	return s
}
