package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a fresh chat",
	Long: `Detach the active transcript into a fresh, untitled chat. The
previous session, if it was saved, stays in history.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		a.controller.NewChat()
		fmt.Fprintln(cmd.OutOrStdout(), "Started a new chat")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}
