// Package cli provides the Cobra command structure for gomdparse.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdparse/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root gomdparse command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "gomdparse",
		Short: "An error-tolerant Markdown to HTML converter",
		Long: `gomdparse converts Markdown to HTML or to a JSON syntax tree.

It targets CommonMark and GitHub Flavored Markdown (GFM) and never gives
up on malformed input: structural problems are reported as line-numbered
messages while parsing continues with a best-effort interpretation.
Inline attribute lists, smart typography, and bare-URL linking are
supported as extensions.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newASTCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
