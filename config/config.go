// Package config loads the optional banter config file.
//
// Resolution order, highest to lowest: command-line flags, the file given
// by -config, ~/.config/banter/config.yaml. Flags are merged in cmd; this
// package only reads and validates the file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the full file schema.
type Config struct {
	// Provider to use: "gemini" or "anthropic". Empty = auto-detect from
	// API key environment variables.
	Provider string `yaml:"provider"`

	// Model is the default model ID passed to the provider.
	Model string `yaml:"model"`

	// Models is the selectable model list the UI cycles through. The
	// names are opaque identifiers handed to the provider as-is.
	Models []string `yaml:"models"`

	// MaxSessions caps the session list; 0 = default (10).
	MaxSessions int `yaml:"max_sessions"`

	// MaxMessages caps each session's history; 0 = default (50).
	MaxMessages int `yaml:"max_messages"`

	// ContextWindow bounds how many recent messages feed each prompt;
	// 0 = default (10).
	ContextWindow int `yaml:"context_window"`

	// PersistPath enables the durable sqlite store at the given path.
	// Empty = in-memory only (state discarded on exit).
	PersistPath string `yaml:"persist_path"`

	// ExportDir is where exported transcripts are written.
	// Empty = current directory.
	ExportDir string `yaml:"export_dir"`
}

// DefaultPath returns ~/.config/banter/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "banter", "config.yaml")
}

// Load reads the config file at path. A missing file at the default
// location is not an error: the zero Config is returned.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && path == DefaultPath() {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Provider {
	case "", "gemini", "anthropic":
	default:
		return fmt.Errorf("unknown provider %q", c.Provider)
	}
	if c.MaxSessions < 0 || c.MaxMessages < 0 || c.ContextWindow < 0 {
		return fmt.Errorf("limits must be non-negative")
	}
	return nil
}
