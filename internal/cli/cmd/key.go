package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bnema/chatdeck/internal/cli/styles"
	"github.com/bnema/chatdeck/internal/infrastructure/config"
	"github.com/bnema/chatdeck/internal/infrastructure/relay"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage provider API keys in the OS keyring",
}

var keySetCmd = &cobra.Command{
	Use:       "set <provider>",
	Short:     "Store an API key read from stdin",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{config.ProviderOpenAI, config.ProviderGemini},
	RunE: func(_ *cobra.Command, args []string) error {
		app, err := GetApp()
		if err != nil {
			return err
		}
		provider, err := checkProvider(args[0])
		if err != nil {
			return err
		}

		key, err := readKey(os.Stdin)
		if err != nil {
			return err
		}
		if err := (relay.KeyringStore{}).Set(relay.KeyringService, provider, key); err != nil {
			return fmt.Errorf("store key: %w", err)
		}
		fmt.Println(styles.RenderSuccess(app.Theme, "stored "+provider+" key in the keyring"))
		return nil
	},
}

var keyDeleteCmd = &cobra.Command{
	Use:       "delete <provider>",
	Short:     "Remove a stored API key",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{config.ProviderOpenAI, config.ProviderGemini},
	RunE: func(_ *cobra.Command, args []string) error {
		app, err := GetApp()
		if err != nil {
			return err
		}
		provider, err := checkProvider(args[0])
		if err != nil {
			return err
		}
		if err := (relay.KeyringStore{}).Delete(relay.KeyringService, provider); err != nil {
			return fmt.Errorf("delete key: %w", err)
		}
		fmt.Println(styles.RenderSuccess(app.Theme, "removed "+provider+" key"))
		return nil
	},
}

func checkProvider(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case config.ProviderOpenAI, config.ProviderGemini:
		return name, nil
	default:
		return "", fmt.Errorf("unknown provider %q (expected %s or %s)", name, config.ProviderOpenAI, config.ProviderGemini)
	}
}

// readKey prompts without echo on a terminal and reads one line otherwise.
func readKey(in *os.File) (string, error) {
	if fd := int(in.Fd()); term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, "API key: ")
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		return nonEmptyKey(string(b))
	}
	return readKeyLine(in)
}

func readKeyLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return nonEmptyKey(line)
}

func nonEmptyKey(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.New("empty API key")
	}
	return s, nil
}

func init() {
	keyCmd.AddCommand(keySetCmd, keyDeleteCmd)
	rootCmd.AddCommand(keyCmd)
}
