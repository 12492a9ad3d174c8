package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Config holds application configuration.
type Config struct {
	PlayerURL      string `json:"playerUrl"`      // base URL of the player server
	VideoDir       string `json:"videoDir"`       // local mount of the video directory
	PreviewCommand string `json:"previewCommand"` // empty = platform default
	StatusInterval int    `json:"statusInterval"` // seconds between status polls
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		PlayerURL:      "http://beamerpi:5000",
		VideoDir:       "/opt/videoplayer/videos",
		StatusInterval: 2,
	}
}

// LoadConfig reads config from the JSON file.
// Creates the file with defaults if it doesn't exist.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			config := DefaultConfig()
			// Create the config file with defaults
			if saveErr := SaveConfig(path, &config); saveErr != nil {
				// Non-fatal: return defaults even if save fails
				return &config, nil
			}
			return &config, nil
		}
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Apply defaults for missing fields
	defaults := DefaultConfig()
	if config.PlayerURL == "" {
		config.PlayerURL = defaults.PlayerURL
	}
	if config.VideoDir == "" {
		config.VideoDir = defaults.VideoDir
	}
	if config.StatusInterval <= 0 {
		config.StatusInterval = defaults.StatusInterval
	}

	return &config, nil
}

// SaveConfig writes config to the JSON file.
// Creates the directory if it doesn't exist.
func SaveConfig(path string, config *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfigFilePath returns the default config path: ~/.config/beamerctl/config.json
func DefaultConfigFilePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "beamerctl", "config.json"), nil
}

// DefaultLogFilePath returns the default log path: ~/.config/beamerctl/beamerctl.log
func DefaultLogFilePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "beamerctl", "beamerctl.log"), nil
}
