package client

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the CLI-side configuration loaded from the user's config
// directory. Environment variables override the file.
type Config struct {
	ServerURL string `yaml:"server_url"`
	Token     string `yaml:"token"`
}

// DefaultConfigPath returns the default config file path
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".tempo", "config.yaml")
	}
	return filepath.Join(dir, "tempo", "config.yaml")
}

// LoadConfig reads the config file at path. A missing file is not an
// error; it yields defaults that env vars can still fill in.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		ServerURL: "http://localhost:8080",
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if url := os.Getenv("TEMPO_SERVER_URL"); url != "" {
		cfg.ServerURL = url
	}
	if token := os.Getenv("TEMPO_TOKEN"); token != "" {
		cfg.Token = token
	}

	return cfg, nil
}

// SaveConfig writes the config file, creating the directory if needed.
func SaveConfig(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
