package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/chatdeck/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of config.toml",
	Example: `  # Point your editor's TOML language server at it
  chatdeck config schema > ~/.config/chatdeck/config.schema.json`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		schema, err := config.JSONSchema()
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(append(schema, '\n'))
		return err
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file in use",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		app, err := GetApp()
		if err != nil {
			return err
		}
		fmt.Println(app.Manager.GetConfigFile())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSchemaCmd, configPathCmd)
	rootCmd.AddCommand(configCmd)
}
