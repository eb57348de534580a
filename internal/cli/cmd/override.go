package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/chatdeck/internal/cli/styles"
)

var overrideCmd = &cobra.Command{
	Use:   "override",
	Short: "Manage per-site CSS/JS overrides",
	Long: `Add your own CSS or JS to a site. Overrides are applied after the rule
table on the next page load.

The content is read from a file, or from stdin when the file is "-" or omitted.

Examples:
  chatdeck override set-css claude.ai my.css
  echo 'body{font-size:15px}' | chatdeck override set-css chatgpt.com
  chatdeck override disable claude.ai
  chatdeck override list`,
}

func init() {
	rootCmd.AddCommand(overrideCmd)
	overrideCmd.AddCommand(
		&cobra.Command{
			Use:   "set-css <host|url> [file|-]",
			Short: "Set the user CSS of a site",
			Args:  cobra.RangeArgs(1, 2),
			RunE:  runOverrideSet(false),
		},
		&cobra.Command{
			Use:   "set-js <host|url> [file|-]",
			Short: "Set the user JS of a site",
			Args:  cobra.RangeArgs(1, 2),
			RunE:  runOverrideSet(true),
		},
		&cobra.Command{
			Use:   "enable <host|url>",
			Short: "Apply the stored override again",
			Args:  cobra.ExactArgs(1),
			RunE:  runOverrideToggle(true),
		},
		&cobra.Command{
			Use:   "disable <host|url>",
			Short: "Keep the override but stop applying it",
			Args:  cobra.ExactArgs(1),
			RunE:  runOverrideToggle(false),
		},
		&cobra.Command{
			Use:   "clear <host|url>",
			Short: "Delete the override of a site",
			Args:  cobra.ExactArgs(1),
			RunE:  runOverrideClear,
		},
		&cobra.Command{
			Use:   "list",
			Short: "List stored overrides",
			Args:  cobra.NoArgs,
			RunE:  runOverrideList,
		},
	)
}

func runOverrideSet(js bool) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		app, err := GetApp()
		if err != nil {
			return err
		}
		var path string
		if len(args) > 1 {
			path = args[1]
		}
		content, err := readSource(path, os.Stdin)
		if err != nil {
			return err
		}

		kind := "CSS"
		set := app.Overrides.SetCSS
		if js {
			kind = "JS"
			set = app.Overrides.SetJS
		}
		o, err := set(app.Ctx(), args[0], content)
		if err != nil {
			return err
		}
		fmt.Println(styles.RenderSuccess(app.Theme, fmt.Sprintf("%s override saved for %s (%d bytes)", kind, o.Host, len(content))))
		return nil
	}
}

func runOverrideToggle(enabled bool) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		app, err := GetApp()
		if err != nil {
			return err
		}
		toggle, state := app.Overrides.Disable, "disabled"
		if enabled {
			toggle, state = app.Overrides.Enable, "enabled"
		}
		if err := toggle(app.Ctx(), args[0]); err != nil {
			return err
		}
		fmt.Println(styles.RenderSuccess(app.Theme, fmt.Sprintf("Override %s for %s", state, args[0])))
		return nil
	}
}

func runOverrideClear(_ *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}
	if err := app.Overrides.Clear(app.Ctx(), args[0]); err != nil {
		return err
	}
	fmt.Println(styles.RenderSuccess(app.Theme, "Override cleared for "+args[0]))
	return nil
}

func runOverrideList(_ *cobra.Command, _ []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}
	overrides, err := app.Overrides.List(app.Ctx())
	if err != nil {
		return err
	}
	fmt.Println(styles.RenderOverrides(app.Theme, overrides))
	return nil
}
