package cmd

import (
	"fmt"
	"strings"

	"github.com/iksnae/chatkeep/internal"
	"github.com/spf13/cobra"
)

var sendChatTitle string

// sendCmd represents the send command
var sendCmd = &cobra.Command{
	Use:   "send <message>",
	Short: "Send one message and print the reply",
	Long: `Send a single message into the active session (or a named one with
--chat) and print the generated reply. The exchange is committed to the
session store exactly like a message sent from the interactive chat.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if sendChatTitle != "" {
			if a.repo.Find(sendChatTitle) == nil {
				return fmt.Errorf("no session titled %q", sendChatTitle)
			}
			a.controller.LoadChat(sendChatTitle)
		}

		prompt := strings.Join(args, " ")
		if err := a.controller.Send(cmd.Context(), prompt); err != nil {
			return fmt.Errorf("send failed: %w", err)
		}

		msgs := a.transcript.Messages()
		if n := len(msgs); n > 0 && msgs[n-1].Sender == internal.SenderBot {
			fmt.Fprintln(cmd.OutOrStdout(), msgs[n-1].Text)
		}
		return nil
	},
}

func init() {
	sendCmd.Flags().StringVar(&sendChatTitle, "chat", "", "Title of the session to send into (default: active session)")
	rootCmd.AddCommand(sendCmd)
}
