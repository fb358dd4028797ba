// ABOUTME: Hearth configuration management with backend selection.
// ABOUTME: Handles settings, default child, and storage backend factory function.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hearthlog/hearth/internal/charm"
	"github.com/hearthlog/hearth/internal/storage"
)

// Config stores hearth tool configuration.
type Config struct {
	// Backend selects the storage backend: "charm" (default) or "sqlite".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for data storage. SQLite puts hearth.db
	// here; the Charm backend puts its local KV store here.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/hearth.
	DataDir string `json:"data_dir,omitempty"`

	// DefaultChild is the child ID used when commands omit --child.
	DefaultChild string `json:"default_child,omitempty"`

	// ProfileBindings maps external profile names (e.g. OS login, device
	// label) to child IDs so shared machines resolve the right learner.
	ProfileBindings map[string]string `json:"profile_bindings,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "charm".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "charm"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// ResolveChild picks the child ID for a command invocation: an explicit
// flag wins, then a profile binding, then the configured default.
func (c *Config) ResolveChild(flag, profile string) string {
	if flag != "" {
		return flag
	}
	if profile != "" {
		if id, ok := c.ProfileBindings[profile]; ok {
			return id
		}
	}
	return c.DefaultChild
}

// BindProfile records a profile-to-child binding.
func (c *Config) BindProfile(profile, childID string) {
	if c.ProfileBindings == nil {
		c.ProfileBindings = make(map[string]string)
	}
	c.ProfileBindings[profile] = childID
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage creates a Repository implementation based on the configured backend.
func (c *Config) OpenStorage() (storage.Repository, error) {
	backend := c.GetBackend()
	dataDir := c.GetDataDir()

	switch backend {
	case "charm":
		return charm.InitClient(dataDir)
	case "sqlite":
		dbPath := filepath.Join(dataDir, "hearth.db")
		return storage.Open(dbPath)
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "hearth", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
