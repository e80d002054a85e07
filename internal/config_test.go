package internal

import (
	"path/filepath"
	"testing"

	"github.com/iksnae/chatkeep/testutil"
)

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() with missing file error = %v", err)
	}
	if cfg.Endpoint != DefaultEndpoint {
		t.Errorf("Endpoint = %q, want default %q", cfg.Endpoint, DefaultEndpoint)
	}
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chatkeep.yaml")
	testutil.WriteFile(t, path, []byte(
		"endpoint: https://api.example.com\napi_key: from-file\nprovider: gemini\nmodel: gemini-pro\n"))

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Endpoint != "https://api.example.com" {
		t.Errorf("Endpoint = %q", cfg.Endpoint)
	}
	if cfg.APIKey != "from-file" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
	if cfg.Provider != "gemini" || cfg.Model != "gemini-pro" {
		t.Errorf("Provider/Model = %q/%q", cfg.Provider, cfg.Model)
	}
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chatkeep.yaml")
	testutil.WriteFile(t, path, []byte("endpoint: [broken"))

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() with malformed yaml should fail")
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chatkeep.yaml")
	testutil.WriteFile(t, path, []byte("endpoint: https://file.example.com\napi_key: from-file\n"))

	t.Setenv("CHATKEEP_ENDPOINT", "https://env.example.com")
	t.Setenv("CHATKEEP_API_KEY", "from-env")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Endpoint != "https://env.example.com" {
		t.Errorf("Endpoint = %q, env should override the file", cfg.Endpoint)
	}
	if cfg.APIKey != "from-env" {
		t.Errorf("APIKey = %q, env should override the file", cfg.APIKey)
	}
}
