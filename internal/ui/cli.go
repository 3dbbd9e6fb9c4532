// Package ui implements the murkoff command line.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/murkoff/internal/catalog"
	"github.com/javiermolinar/murkoff/internal/config"
	"github.com/javiermolinar/murkoff/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config     *config.Config
	catalog    *catalog.Catalog
	configPath string
	root       *cobra.Command
	debug      bool // Enable debug logging
	noColor    bool
	runTUI     func(*config.Config, bool) error
}

// NewApp creates a new CLI application with the given config and bundled
// catalog.
func NewApp(cfg *config.Config, cat *catalog.Catalog) *App {
	a := &App{
		config:     cfg,
		catalog:    cat,
		configPath: config.DefaultConfigPath(),
		runTUI:     tui.RunWithDebug,
	}

	a.root = &cobra.Command{
		Use:   "murkoff",
		Short: "MURKOFF OS 2026, a desktop in your terminal",
		Long: `murkoff boots the MURKOFF OS 2026 terminal desktop.

Sign in, drag icons around, read the inbox and restore the folders
someone tried to throw away. Restoring a folder means beating its puzzle.`,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if a.noColor {
				DisableColor()
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runTUI(a.config, a.debug)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to murkoff-debug.log)")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.mailCmd())
	a.root.AddCommand(a.reportCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "murkoff %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
