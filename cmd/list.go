package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/chatkeep/internal"
	"github.com/spf13/cobra"
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved sessions",
	Long:  `List all saved chat sessions in insertion order (oldest first).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		sessions := a.controller.Sessions()
		if len(sessions) == 0 {
			fmt.Println(headerStyle.Render("No sessions found"))
			return nil
		}

		header := headerStyle.Render(fmt.Sprintf("Found %d session(s)", len(sessions)))
		fmt.Println(header)
		fmt.Println()

		// Use tabwriter for aligned columns
		w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', tabwriter.AlignRight)

		_, _ = fmt.Fprintln(w, titleStyle.Render("Title")+"\t"+titleStyle.Render("Messages")+"\t")
		_, _ = fmt.Fprintln(w, strings.Repeat("─", 70))

		active := ""
		if !a.transcript.IsDraft() {
			active = a.transcript.Title()
		}

		for _, s := range sessions {
			title := internal.TruncateTitle(s.Title, 50)
			if s.Title == active {
				title = activeStyle.Render(title + " *")
			}
			count := countStyle.Render(strconv.Itoa(len(s.Messages)))
			_, _ = fmt.Fprintln(w, title+"\t"+count+"\t")
		}

		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
