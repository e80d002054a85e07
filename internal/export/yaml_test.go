package export

import (
	"bytes"
	"testing"

	"github.com/iksnae/chatkeep/internal"
	"gopkg.in/yaml.v3"
)

func TestYAMLExporter_Export(t *testing.T) {
	session := internal.CreateTestSession("Hello")

	var buf bytes.Buffer
	e := &YAMLExporter{}
	if err := e.Export(session, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var decoded internal.Session
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded.Title != session.Title {
		t.Errorf("title = %q, want %q", decoded.Title, session.Title)
	}
	if len(decoded.Messages) != len(session.Messages) {
		t.Fatalf("got %d messages, want %d", len(decoded.Messages), len(session.Messages))
	}
	if decoded.Messages[1].Sender != internal.SenderUser {
		t.Errorf("message 1 sender = %q, want user", decoded.Messages[1].Sender)
	}
}
