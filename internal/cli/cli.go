// Package cli implements the wordgraph command-line interface.
//
// This package provides commands for solving word ladders from dictionary
// files, inspecting neighbor sets, rendering solved ladders, and running
// the HTTP search server. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - solve: Find the shortest ladder between two words
//   - neighbors: List the one-letter neighbors of a word
//   - render: Draw a solved ladder as a DOT or SVG chain
//   - serve: Run the HTTP search API
//   - cache: Manage the server's file-based result cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Logs go to
// stderr so result output on stdout stays machine-readable.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ytkachuk12/wordgraph/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "wordgraph"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "wordgraph",
		Short:        "Wordgraph finds shortest word ladders",
		Long:         `Wordgraph finds the shortest transformation sequence between two words where each step changes exactly one letter and every intermediate word comes from a dictionary file.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.neighborsCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// cacheDir returns the cache directory using XDG standard (~/.cache/wordgraph/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir returns the config directory using XDG standard (~/.config/wordgraph/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
