// Package config loads and persists Stageboard configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the full Stageboard configuration
type Config struct {
	User          UserConfig     `json:"user"`
	Database      DatabaseConfig `json:"database"`
	Board         BoardConfig    `json:"board"`
	Notifications NotifyConfig   `json:"notifications"`
}

// UserConfig identifies the local user, used as the comment author
type UserConfig struct {
	Name string `json:"name"`
}

// DatabaseConfig contains local store settings
type DatabaseConfig struct {
	Path string `json:"path"`
}

// BoardConfig contains board display settings
type BoardConfig struct {
	DefaultSort       string `json:"defaultSort"`
	SortDescending    bool   `json:"sortDescending"`
	ToastTimeoutMs    int    `json:"toastTimeoutMs"`
	DefaultProject    string `json:"defaultProject"`
	ShowInternalTasks bool   `json:"showInternalTasks"`
}

// NotifyConfig contains notification settings
type NotifyConfig struct {
	StageCompleted bool `json:"stageCompleted"`
	TaskCreated    bool `json:"taskCreated"`
	PersistErrors  bool `json:"persistErrors"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	userName := os.Getenv("USER")
	if userName == "" {
		userName = "user"
	}

	return &Config{
		User: UserConfig{
			Name: userName,
		},
		Database: DatabaseConfig{
			Path: filepath.Join(homeDir, ".stageboard", "stageboard.db"),
		},
		Board: BoardConfig{
			DefaultSort:       "priority",
			SortDescending:    false,
			ToastTimeoutMs:    3000,
			DefaultProject:    "",
			ShowInternalTasks: true,
		},
		Notifications: NotifyConfig{
			StageCompleted: true,
			TaskCreated:    true,
			PersistErrors:  true,
		},
	}
}

// Load reads configuration from ~/.stageboard/config.json, falling back to
// defaults when the file does not exist.
func Load() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return LoadFrom(filepath.Join(homeDir, ".stageboard", "config.json"))
}

// LoadFrom reads configuration from the given path. A missing file is not an
// error; defaults are returned instead.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return MergeWithDefaults(&cfg), nil
}

// Save writes the configuration to the given path, creating the parent
// directory if needed.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.User.Name == "" {
		cfg.User.Name = defaults.User.Name
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = defaults.Database.Path
	}
	if cfg.Board.DefaultSort == "" {
		cfg.Board.DefaultSort = defaults.Board.DefaultSort
	}
	if cfg.Board.ToastTimeoutMs == 0 {
		cfg.Board.ToastTimeoutMs = defaults.Board.ToastTimeoutMs
	}

	return cfg
}
