package cmd

import (
	"bytes"
	"testing"

	"github.com/iksnae/chatkeep/testutil"
)

func TestExportCommand_InvalidFormat(t *testing.T) {
	rootCmd.SetArgs([]string{"export", "--format", "invalid", "--store", testutil.TempStorePath(t)})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	if err := rootCmd.Execute(); err == nil {
		t.Error("export with an invalid format should fail")
	}
}

func TestExportCommand_EmptyStore(t *testing.T) {
	rootCmd.SetArgs([]string{"export", "--format", "json", "--store", testutil.TempStorePath(t)})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	if err := rootCmd.Execute(); err == nil {
		t.Error("export with no sessions should fail")
	}
}

func TestExportFilename(t *testing.T) {
	tests := []struct {
		title string
		ext   string
		want  string
	}{
		{"Hello", "json", "Hello.json"},
		{"What is Go?", "md", "What_is_Go.md"},
		{"a/b\\c", "yaml", "a_b_c.yaml"},
		{"???", "jsonl", "session.jsonl"},
		{"", "json", "session.json"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := exportFilename(tt.title, tt.ext); got != tt.want {
				t.Errorf("exportFilename(%q, %q) = %q, want %q", tt.title, tt.ext, got, tt.want)
			}
		})
	}
}
