// Package cmd provides Cobra CLI commands for chatdeck.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/chatdeck/internal/cli"
	"github.com/bnema/chatdeck/internal/cli/styles"
	"github.com/bnema/chatdeck/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo = build.Info{Version: "dev"}
	rootCmd = &cobra.Command{
		Use:   "chatdeck",
		Short: "Your AI chats in one unified desktop deck",
		Long: `chatdeck - every AI chat site in one consistent desktop deck.

Each configured chat site opens in its own Chromium or WebKitGTK window
(browser.engine). A rule table
hides clutter and aligns colors across sites, the desktop light/dark
preference is followed live, and per-site CSS/JS overrides are yours to add.

A local relay exposes one chat endpoint backed by OpenAI or Gemini, with
conversations stored in SQLite.

Use 'chatdeck browse' to open the deck, or explore the subcommands.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "schema", "about":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

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
func GetApp() (*cli.App, error) {
	if app == nil {
		return nil, errors.New("app not initialized")
	}
	return app, nil
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
	rootCmd.Version = info.Version
}
