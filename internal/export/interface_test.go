package export

import (
	"strings"
	"testing"
)

func TestNewExporter(t *testing.T) {
	tests := []struct {
		format  string
		wantExt string
		wantErr bool
	}{
		{"json", "json", false},
		{"jsonl", "jsonl", false},
		{"md", "md", false},
		{"markdown", "md", false},
		{"yaml", "yaml", false},
		{"csv", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			exporter, err := NewExporter(tt.format)
			if tt.wantErr {
				if err == nil {
					t.Errorf("NewExporter(%q) should fail", tt.format)
				} else if !strings.Contains(err.Error(), "unsupported format") {
					t.Errorf("NewExporter(%q) error = %v", tt.format, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewExporter(%q) error = %v", tt.format, err)
			}
			if exporter.Extension() != tt.wantExt {
				t.Errorf("Extension() = %q, want %q", exporter.Extension(), tt.wantExt)
			}
		})
	}
}
