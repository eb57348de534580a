package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/chatdeck/internal/cli/styles"
	"github.com/bnema/chatdeck/internal/infrastructure/xdg"
	"github.com/bnema/chatdeck/internal/logging"
)

var (
	purgeForce      bool
	purgeKeepConfig bool
)

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Remove chatdeck data from disk",
	Long: `List every location chatdeck writes to. Nothing is removed unless
--force is given.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		app, err := GetApp()
		if err != nil {
			return err
		}
		log := logging.FromContext(app.Ctx())

		adapter := xdg.New()
		locs, err := adapter.Locations(app.Config)
		if err != nil {
			return err
		}
		if purgeKeepConfig {
			kept := locs[:0]
			for _, l := range locs {
				if l.Name != "config" {
					kept = append(kept, l)
				}
			}
			locs = kept
		}

		items := make([]styles.PurgeItem, 0, len(locs))
		for _, l := range locs {
			items = append(items, styles.PurgeItem(l))
		}
		fmt.Println(styles.RenderPurgeList(app.Theme, items))

		if !purgeForce {
			fmt.Println(styles.RenderInfo(app.Theme, "dry run, pass --force to remove"))
			return nil
		}

		// The database may hold the file open.
		if err := app.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close database before purge")
		}
		var removed int
		for _, l := range locs {
			if !l.Exists {
				continue
			}
			if err := adapter.Remove(l); err != nil {
				return err
			}
			log.Debug().Str("path", l.Path).Msg("removed")
			removed++
		}
		fmt.Println(styles.RenderSuccess(app.Theme, fmt.Sprintf("removed %d locations", removed)))
		return nil
	},
}

func init() {
	purgeCmd.Flags().BoolVarP(&purgeForce, "force", "f", false, "actually remove the listed locations")
	purgeCmd.Flags().BoolVar(&purgeKeepConfig, "keep-config", false, "keep the configuration directory")
	rootCmd.AddCommand(purgeCmd)
}
