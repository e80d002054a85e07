package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iksnae/chatkeep/internal"
	"github.com/iksnae/chatkeep/internal/export"
	"github.com/spf13/cobra"
)

var (
	format      string
	outputDir   string
	exportTitle string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export sessions to file",
	Long: `Export chat sessions to various formats (jsonl, md, yaml, json).

You can export all sessions or a specific one by title. Use
'chatkeep list' to see available titles. Without --output, a single
session is written to stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		exporter, err := export.NewExporter(format)
		if err != nil {
			return err
		}

		sessions := a.controller.Sessions()
		if exportTitle != "" {
			sess := a.repo.Find(exportTitle)
			if sess == nil {
				return fmt.Errorf("no session titled %q", exportTitle)
			}
			sessions = []internal.Session{*sess}
		}
		if len(sessions) == 0 {
			return fmt.Errorf("no sessions to export")
		}

		// Single session without an output dir goes to stdout.
		if outputDir == "" && len(sessions) == 1 {
			return exporter.Export(&sessions[0], cmd.OutOrStdout())
		}

		dir := outputDir
		if dir == "" {
			dir = "."
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		for i := range sessions {
			path := filepath.Join(dir, exportFilename(sessions[i].Title, exporter.Extension()))
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", path, err)
			}
			if err := exporter.Export(&sessions[i], f); err != nil {
				f.Close()
				return fmt.Errorf("failed to export %q: %w", sessions[i].Title, err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to close %s: %w", path, err)
			}
			internal.LogInfo("Exported %q to %s", sessions[i].Title, path)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d session(s) to %s\n", len(sessions), dir)
		return nil
	},
}

// exportFilename derives a safe file name from a session title.
func exportFilename(title, ext string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, title)
	name = strings.Trim(name, "_")
	if len(name) > 60 {
		name = name[:60]
	}
	if name == "" {
		name = "session"
	}
	return name + "." + ext
}

func init() {
	exportCmd.Flags().StringVarP(&format, "format", "f", "json", "Export format: jsonl, md, yaml, json")
	exportCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (default: stdout for one session)")
	exportCmd.Flags().StringVarP(&exportTitle, "title", "t", "", "Export only the session with this title")
	rootCmd.AddCommand(exportCmd)
}
