package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// PhraseConfig stores the generator settings the composer starts from.
type PhraseConfig struct {
	Mode     string `json:"mode,omitempty"`
	Root     string `json:"root,omitempty"` // pitch class name, sharp spelling
	Octave   int    `json:"octave,omitempty"`
	Bars     int    `json:"bars,omitempty"`
	Tempo    int    `json:"tempo,omitempty"` // BPM
	Channel  int    `json:"channel,omitempty"`
	Velocity int    `json:"velocity,omitempty"`
	Arpeggio bool   `json:"arpeggio,omitempty"` // walk chord tones instead of the scale
}

// ExportConfig stores where rendered files land.
type ExportConfig struct {
	Dir  string `json:"dir,omitempty"`  // empty means the working directory
	JSON bool   `json:"json,omitempty"` // also write the JSON rendering
}

// Config is the main configuration structure
type Config struct {
	Phrase PhraseConfig `json:"phrase,omitempty"`
	Export ExportConfig `json:"export,omitempty"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Phrase: PhraseConfig{
			Mode:     "ionian",
			Root:     "C",
			Octave:   4,
			Bars:     2,
			Tempo:    120,
			Velocity: 100,
		},
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "midifun"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ExportDir returns the directory exports land in, defaulting to the
// working directory.
func (c *Config) ExportDir() string {
	if c.Export.Dir != "" {
		return c.Export.Dir
	}
	return "."
}
