package cmd

import (
	"fmt"
	"net"

	"github.com/spf13/cobra"

	"github.com/bnema/chatdeck/internal/application/usecase"
	"github.com/bnema/chatdeck/internal/cli/styles"
	"github.com/bnema/chatdeck/internal/infrastructure/relay"
	"github.com/bnema/chatdeck/internal/shell"
)

var relayAddr string

var relayCmd = &cobra.Command{
	Use:   "relay",
	Short: "Local chat relay",
}

var relayServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the chat endpoint until interrupted",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		app, err := GetApp()
		if err != nil {
			return err
		}
		addr := relayAddr
		if addr == "" {
			addr = app.Config.Relay.Addr
		}

		provider, err := relay.NewProvider(app.Config.Relay, app.Keys)
		if err != nil {
			return err
		}
		uc := usecase.NewSendChatUseCase(provider, app.Conversations)

		ctx, cancel := shell.WithSignals(app.Ctx())
		defer cancel()

		return relay.NewServer(ctx, uc).ListenAndServe(ctx, addr, func(a net.Addr) {
			fmt.Println(styles.RenderInfo(app.Theme,
				fmt.Sprintf("relay listening on http://%s (%s)", a, provider.Name())))
		})
	},
}

func init() {
	relayServeCmd.Flags().StringVar(&relayAddr, "addr", "", "listen address (default from config)")
	relayCmd.AddCommand(relayServeCmd)
	rootCmd.AddCommand(relayCmd)
}
