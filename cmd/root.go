package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/chatkeep/internal"
	"github.com/spf13/cobra"
)

var (
	verbose   bool
	cfgFile   string
	storePath string
	endpoint  string
	apiKey    string
	version   string = "dev"
	commit    string = "unknown"
	date      string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chatkeep",
	Short: "Persisted chat sessions against a text-generation endpoint",
	Long: `A CLI chat client that keeps named conversation sessions in a local
SQLite store and talks to a remote text-generation endpoint.

Every conversation is titled after its first message and written through
to durable storage, so sessions survive restarts. Sessions can be
listed, reopened, deleted, and exported in several formats.

Quick Start:
  chatkeep chat                  # Interactive chat (use /list, /open, /new, /delete inside)
  chatkeep send "Hello"          # One-shot message into the active chat
  chatkeep list                  # List saved sessions
  chatkeep show "Hello"          # Print a session's transcript
  chatkeep export --format md    # Export sessions as Markdown

Configuration comes from ~/.chatkeep.yaml, a .env file, or CHATKEEP_*
environment variables; flags override all of them.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/.chatkeep.yaml)")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "Session store database (default ~/.chatkeep/chatkeep.db)")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "Generation endpoint base URL")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "API key forwarded to the endpoint")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
