package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultEndpoint is the generation backend assumed when nothing is
// configured.
const DefaultEndpoint = "http://localhost:8080"

// Config holds endpoint, credential, and storage settings. Sources are
// layered: defaults, then the yaml config file, then a .env file, then
// environment variables. Command-line flags override on top in cmd.
type Config struct {
	Endpoint  string `yaml:"endpoint"`
	APIKey    string `yaml:"api_key"`
	Provider  string `yaml:"provider,omitempty"`
	Model     string `yaml:"model,omitempty"`
	StorePath string `yaml:"store,omitempty"`
}

// DefaultConfigPath returns ~/.chatkeep.yaml.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".chatkeep.yaml"), nil
}

// DefaultStorePath returns ~/.chatkeep/chatkeep.db.
func DefaultStorePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".chatkeep", "chatkeep.db"), nil
}

// LoadConfig reads configuration from path (or the default location
// when path is empty). A missing config file or .env file is not an
// error; a malformed config file is.
func LoadConfig(path string) (Config, error) {
	cfg := Config{Endpoint: DefaultEndpoint}

	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return cfg, err
		}
		path = defaultPath
	}

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	// .env in the working directory, if present.
	_ = godotenv.Load()

	if v := os.Getenv("CHATKEEP_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("CHATKEEP_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("CHATKEEP_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("CHATKEEP_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("CHATKEEP_STORE"); v != "" {
		cfg.StorePath = v
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	return cfg, nil
}
