// Package cmd provides Cobra CLI commands for themeroot.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/themeroot/internal/cli"
	"github.com/bnema/themeroot/internal/cli/styles"
	"github.com/bnema/themeroot/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configPath string
	rootCmd    = &cobra.Command{
		Use:   "themeroot",
		Short: "Resolve the dark theme marker of a document root",
		Long: `themeroot decides whether the "dark" class belongs on a page's <html> element.

A stored preference ("dark", "light", or nothing) is read first. Only when
nothing is stored does the OS "prefers dark" signal decide. The marker is
added at the front of the class list when missing and removed when present.

The same decision is available as:
  - an HTTP server rendering pages with the resolved class (themeroot serve)
  - the inline head script browsers run before first paint (themeroot script)
  - a one-shot HTML rewriter (themeroot apply)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "__complete":
				return nil
			}

			var err error
			app, err = cli.NewApp(configPath)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo.WithDefaults()
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/themeroot/config.toml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		theme := styles.NewTheme(true)
		if app != nil {
			theme = app.Theme
		}
		fmt.Fprintln(os.Stderr, styles.RenderError(theme, err))
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func requireApp() (*cli.App, error) {
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return app, nil
}
