package cmd

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/chatdeck/internal/application/usecase"
	"github.com/bnema/chatdeck/internal/cli/model"
	"github.com/bnema/chatdeck/internal/domain/entity"
	"github.com/bnema/chatdeck/internal/infrastructure/relay"
)

var (
	chatConversation string
	chatTitle        string
	chatEphemeral    bool
	chatModel        string
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the configured provider in the terminal",
	Long: `Open an interactive chat with the relay provider.

A new conversation is stored unless --ephemeral is set; pass --conversation
to continue an existing one.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		app, err := GetApp()
		if err != nil {
			return err
		}
		ctx := app.Ctx()

		provider, err := relay.NewProvider(app.Config.Relay, app.Keys)
		if err != nil {
			return err
		}

		cfg := model.ChatConfig{
			Chat:           usecase.NewSendChatUseCase(provider, app.Conversations),
			Conversations:  app.Conversations,
			ConversationID: entity.ConversationID(chatConversation),
			Model:          chatModel,
		}
		if cfg.ConversationID == "" && !chatEphemeral {
			conv, err := app.Conversations.Create(ctx, strings.TrimSpace(chatTitle))
			if err != nil {
				return err
			}
			cfg.ConversationID = conv.ID
		}

		m := model.NewChatModel(ctx, app.Theme, cfg)
		if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
			return err
		}
		return nil
	},
}

func init() {
	chatCmd.Flags().StringVarP(&chatConversation, "conversation", "c", "", "continue an existing conversation")
	chatCmd.Flags().StringVar(&chatTitle, "title", "", "title of the new conversation")
	chatCmd.Flags().BoolVar(&chatEphemeral, "ephemeral", false, "do not store the conversation")
	chatCmd.Flags().StringVarP(&chatModel, "model", "m", "", "override the configured model")
	chatCmd.MarkFlagsMutuallyExclusive("conversation", "ephemeral")
	chatCmd.MarkFlagsMutuallyExclusive("conversation", "title")
	rootCmd.AddCommand(chatCmd)
}
