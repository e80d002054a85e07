package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteAll bool

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete [title]",
	Short: "Delete a saved session",
	Long: `Delete a saved session by title. Deleting the active session rebinds
the transcript to the oldest remaining session, or to a fresh chat when
none remain. Deleting an unknown title is a no-op.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if deleteAll {
			for _, s := range a.controller.Sessions() {
				a.controller.DeleteChat(s.Title)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All sessions deleted")
			return nil
		}

		if len(args) == 0 {
			return fmt.Errorf("a title is required unless --all is set")
		}
		a.controller.DeleteChat(args[0])
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q\n", args[0])
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteAll, "all", false, "Delete every saved session")
	rootCmd.AddCommand(deleteCmd)
}
