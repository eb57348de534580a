package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/chatdeck/internal/cli/styles"
	"github.com/bnema/chatdeck/internal/domain/entity"
)

var conversationsLimit int

var conversationsCmd = &cobra.Command{
	Use:     "conversations",
	Aliases: []string{"conv"},
	Short:   "Manage stored conversations",
}

var conversationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List conversations, most recent first",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		app, err := GetApp()
		if err != nil {
			return err
		}
		convs, err := app.Conversations.List(app.Ctx(), conversationsLimit)
		if err != nil {
			return err
		}
		fmt.Println(styles.NewConversationsRenderer(app.Theme, nil).RenderList(convs))
		return nil
	},
}

var conversationsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a conversation",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		app, err := GetApp()
		if err != nil {
			return err
		}
		conv, msgs, err := app.Conversations.Get(app.Ctx(), entity.ConversationID(args[0]))
		if err != nil {
			return err
		}
		md, err := styles.NewMarkdownRenderer(app.Theme, 100)
		if err != nil {
			return err
		}
		fmt.Println(styles.NewConversationsRenderer(app.Theme, md).RenderTranscript(conv, msgs))
		return nil
	},
}

var conversationsRenameCmd = &cobra.Command{
	Use:   "rename <id> <title...>",
	Short: "Rename a conversation",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		app, err := GetApp()
		if err != nil {
			return err
		}
		title := strings.Join(args[1:], " ")
		if err := app.Conversations.Rename(app.Ctx(), entity.ConversationID(args[0]), title); err != nil {
			return err
		}
		fmt.Println(styles.RenderSuccess(app.Theme, fmt.Sprintf("Renamed to %q", title)))
		return nil
	},
}

var conversationsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a conversation and its messages",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		app, err := GetApp()
		if err != nil {
			return err
		}
		if err := app.Conversations.Delete(app.Ctx(), entity.ConversationID(args[0])); err != nil {
			return err
		}
		fmt.Println(styles.RenderSuccess(app.Theme, "Deleted "+args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(conversationsCmd)
	conversationsCmd.AddCommand(conversationsListCmd, conversationsShowCmd, conversationsRenameCmd, conversationsDeleteCmd)
	conversationsListCmd.Flags().IntVarP(&conversationsLimit, "limit", "n", 50, "maximum number of conversations")
}
