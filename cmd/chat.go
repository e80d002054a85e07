package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/chatkeep/internal"
	"github.com/spf13/cobra"
)

var (
	// Styles for the chat REPL
	chatTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Padding(0, 1)

	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	replyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("135")).
			Padding(0, 2)

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")).
			Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive chat against the configured generation endpoint.

Plain input is sent as a message. Lines starting with "/" are local
commands:

  /list             List saved sessions
  /new              Start a new chat (the current one stays in history)
  /open <title>     Reopen a saved session
  /delete <title>   Delete a saved session
  /quit             Exit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		// Redraw the header whenever the session list or the binding
		// changes; this stands in for the re-render a browser UI does
		// implicitly.
		headerDirty := true
		a.hub.Subscribe(func(internal.Event) {
			headerDirty = true
		})

		out := cmd.OutOrStdout()
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		fmt.Fprintln(out, helpStyle.Render("Type a message, or /list /new /open /delete /quit"))
		replayTranscript(out, a.transcript.Messages())

		for {
			if headerDirty {
				fmt.Fprintln(out, chatTitleStyle.Render(
					fmt.Sprintf("%s (%d saved)", a.transcript.DisplayTitle(), a.repo.Len())))
				headerDirty = false
			}
			fmt.Fprint(out, promptStyle.Render("> "))
			if !scanner.Scan() {
				fmt.Fprintln(out)
				return scanner.Err()
			}
			line := scanner.Text()

			if strings.HasPrefix(strings.TrimSpace(line), "/") {
				if quit := runChatCommand(out, a, strings.TrimSpace(line)); quit {
					return nil
				}
				continue
			}

			if err := a.controller.Send(context.Background(), line); err != nil {
				var verr *internal.ValidationError
				var terr *internal.TransportError
				switch {
				case errors.As(err, &verr):
					fmt.Fprintln(out, noticeStyle.Render(verr.Reason))
				case errors.As(err, &terr):
					fmt.Fprintln(out, noticeStyle.Render("Failed to fetch a response from the server."))
					internal.LogDebug("send failed: %v", err)
				default:
					fmt.Fprintln(out, noticeStyle.Render(err.Error()))
				}
				continue
			}

			msgs := a.transcript.Messages()
			if n := len(msgs); n > 0 && msgs[n-1].Sender == internal.SenderBot {
				fmt.Fprintln(out, replyStyle.Render(msgs[n-1].Text))
			}
		}
	},
}

// runChatCommand handles a /-prefixed REPL line. It returns true when
// the loop should exit.
func runChatCommand(out io.Writer, a *app, line string) bool {
	cmdWord, rest, _ := strings.Cut(line, " ")
	arg := strings.TrimSpace(rest)

	switch cmdWord {
	case "/quit", "/exit":
		return true
	case "/new":
		a.controller.NewChat()
	case "/open":
		if arg == "" {
			fmt.Fprintln(out, noticeStyle.Render("usage: /open <title>"))
			return false
		}
		if a.repo.Find(arg) == nil {
			fmt.Fprintln(out, noticeStyle.Render(fmt.Sprintf("no session titled %q", arg)))
			return false
		}
		a.controller.LoadChat(arg)
		replayTranscript(out, a.transcript.Messages())
	case "/delete":
		if arg == "" {
			fmt.Fprintln(out, noticeStyle.Render("usage: /delete <title>"))
			return false
		}
		a.controller.DeleteChat(arg)
	case "/list":
		sessions := a.controller.Sessions()
		if len(sessions) == 0 {
			fmt.Fprintln(out, helpStyle.Render("No saved sessions"))
			return false
		}
		for _, s := range sessions {
			fmt.Fprintf(out, "  %s (%d messages)\n", internal.TruncateTitle(s.Title, 50), len(s.Messages))
		}
	default:
		fmt.Fprintln(out, noticeStyle.Render(fmt.Sprintf("unknown command %s", cmdWord)))
	}
	return false
}

// replayTranscript prints the bound transcript when entering a session.
func replayTranscript(out io.Writer, msgs []internal.Message) {
	for _, msg := range msgs {
		if msg.Sender == internal.SenderUser {
			fmt.Fprintln(out, promptStyle.Render("> ")+msg.Text)
		} else {
			fmt.Fprintln(out, replyStyle.Render(msg.Text))
		}
	}
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
