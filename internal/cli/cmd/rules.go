package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/chatdeck/internal/cli/styles"
	"github.com/bnema/chatdeck/internal/domain/entity"
	"github.com/bnema/chatdeck/internal/domain/unify"
	siteurl "github.com/bnema/chatdeck/internal/domain/url"
	"github.com/bnema/chatdeck/internal/infrastructure/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect the unify rule table",
	Long: `Inspect the rule table: built-in rules, your rules.toml and site overrides.

Examples:
  chatdeck rules list
  chatdeck rules show https://claude.ai/new
  chatdeck rules css chatgpt.com > chatgpt.css
  chatdeck rules schema > rules.schema.json`,
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the hosts of the effective rule table",
	Args:  cobra.NoArgs,
	RunE:  runRulesList,
}

var rulesShowCmd = &cobra.Command{
	Use:   "show <url>",
	Short: "Show the merged rule for a URL",
	Args:  cobra.ExactArgs(1),
	RunE:  runRulesShow,
}

var rulesCSSCmd = &cobra.Command{
	Use:   "css <url>",
	Short: "Print the stylesheet injected into a URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return printBundle(args[0], unify.BuildCSS)
	},
}

var rulesJSCmd = &cobra.Command{
	Use:   "js <url>",
	Short: "Print the script bundle injected into a URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return printBundle(args[0], unify.BuildJS)
	},
}

var rulesSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of rules.toml",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		data, err := rules.JSONSchema()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.AddCommand(rulesListCmd, rulesShowCmd, rulesCSSCmd, rulesJSCmd, rulesSchemaCmd)
}

func runRulesList(_ *cobra.Command, _ []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}
	table, err := app.Rules.Table(app.Ctx())
	if err != nil {
		return err
	}
	fmt.Println(styles.NewRulesRenderer(app.Theme).RenderTable(table))
	return nil
}

func runRulesShow(_ *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}
	cfg, err := mergedFor(args[0])
	if err != nil {
		return err
	}
	fmt.Println(styles.NewRulesRenderer(app.Theme).RenderMerged(siteurl.Normalize(args[0]), cfg))
	return nil
}

func printBundle(target string, build func(entity.MergedConfig) string) error {
	cfg, err := mergedFor(target)
	if err != nil {
		return err
	}
	fmt.Println(build(cfg))
	return nil
}

func mergedFor(target string) (entity.MergedConfig, error) {
	app, err := GetApp()
	if err != nil {
		return entity.MergedConfig{}, err
	}
	table, err := app.Rules.Table(app.Ctx())
	if err != nil {
		return entity.MergedConfig{}, err
	}
	return unify.Merge(table, siteurl.Normalize(target)), nil
}
