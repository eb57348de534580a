package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/bnema/chatdeck/internal/logging"
	"github.com/bnema/chatdeck/internal/shell"
)

var browseCmd = &cobra.Command{
	Use:   "browse [site-id|url...]",
	Short: "Open the chat deck",
	Long: `Open every configured chat site in its own window, or only the given ones.

Arguments are configured site IDs or URLs.

Examples:
  chatdeck browse                     # Open all configured sites
  chatdeck browse claude chatgpt      # Open two configured sites
  chatdeck browse chat.mistral.ai     # Open an ad-hoc site`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(_ *cobra.Command, args []string) (err error) {
	app, err := GetApp()
	if err != nil {
		return err
	}
	log := logging.FromContext(app.Ctx())

	sites, err := shell.SelectSites(app.Config.Sites, args)
	if err != nil {
		return err
	}

	if watchErr := app.Manager.Watch(); watchErr != nil {
		log.Warn().Err(watchErr).Msg("config hot reload disabled")
	}

	ctx, cancel := shell.WithSignals(app.Ctx())
	defer cancel()

	s, err := shell.New(ctx, app.Manager)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, s.Close())
	}()

	return s.Run(ctx, sites)
}
