package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/chatkeep/internal"
	"github.com/spf13/cobra"
)

var (
	// Styles for show command
	sessionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212")).
				Padding(0, 1).
				MarginBottom(1)

	userMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39")).
				Bold(true).
				Padding(0, 1)

	botMessageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("135")).
			Bold(true).
			Padding(0, 1)

	messageContentStyle = lipgloss.NewStyle().
				Padding(0, 2).
				MarginBottom(1)
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <title>",
	Short: "Show a session's transcript",
	Long:  `Display all messages of a saved chat session, looked up by title.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		sess := a.repo.Find(title)
		if sess == nil {
			return fmt.Errorf("no session titled %q (use 'chatkeep list' to see titles)", title)
		}

		fmt.Println(sessionHeaderStyle.Render(fmt.Sprintf("%s — %d message(s)", sess.Title, len(sess.Messages))))

		for _, msg := range sess.Messages {
			label := botMessageStyle.Render("bot")
			if msg.Sender == internal.SenderUser {
				label = userMessageStyle.Render("you")
			}
			fmt.Println(label)
			fmt.Println(messageContentStyle.Render(msg.Text))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
