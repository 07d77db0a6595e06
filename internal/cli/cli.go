// Package cli implements the foldprint command-line interface.
//
// This package provides commands for generating foldable nameplate PDFs
// from a roster of names, inspecting the computed placement geometry, and
// generating shell completions. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/foldprint/foldprint/pkg/buildinfo"
)

// appName is the application name used for display and config discovery.
const appName = "foldprint"

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
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Foldprint generates printable foldable nameplates",
		Long:         `Foldprint is a CLI tool for generating printable table nameplates: each name becomes one A4 page that folds along its midline into a two-sided card, readable from both directions, with a logo in the top-left corner of each face.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.completionCommand())

	return root
}
