package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/chatdeck/internal/cli/styles"
	"github.com/bnema/chatdeck/internal/domain/build"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		theme := styles.NewTheme(true)
		fmt.Println(theme.Title.Render(buildInfo.String()))
		fmt.Println(theme.Subtle.Render("  " + build.RepoURL()))
	},
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}
