package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	configDir  = ".config/prism"
	configFile = "config.json"
)

// rawConfig is the JSON-unmarshaling intermediary.
type rawConfig struct {
	Catalog rawCatalogConfig `json:"catalog"`
	Chat    rawChatConfig    `json:"chat"`
	Keymap  KeymapConfig     `json:"keymap"`
	UI      rawUIConfig      `json:"ui"`
}

type rawCatalogConfig struct {
	BaseURL string `json:"baseUrl"`
	Timeout string `json:"timeout"`
}

type rawChatConfig struct {
	HistoryDBPath string `json:"historyDbPath"`
	HistoryLimit  *int   `json:"historyLimit"`
}

type rawUIConfig struct {
	ShowFooter  *bool `json:"showFooter"`
	ShowSidebar *bool `json:"showSidebar"`
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from a specific path.
// If path is empty, uses ~/.config/prism/config.json
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil // Return defaults on error
		}
		path = filepath.Join(home, configDir, configFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	mergeConfig(cfg, &raw)

	cfg.Chat.HistoryDBPath = ExpandPath(cfg.Chat.HistoryDBPath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// mergeConfig merges raw config values into the defaults.
func mergeConfig(cfg *Config, raw *rawConfig) {
	// Catalog
	if raw.Catalog.BaseURL != "" {
		cfg.Catalog.BaseURL = raw.Catalog.BaseURL
	}
	if raw.Catalog.Timeout != "" {
		if d, err := time.ParseDuration(raw.Catalog.Timeout); err == nil {
			cfg.Catalog.Timeout = d
		}
	}

	// Chat
	if raw.Chat.HistoryDBPath != "" {
		cfg.Chat.HistoryDBPath = raw.Chat.HistoryDBPath
	}
	if raw.Chat.HistoryLimit != nil {
		cfg.Chat.HistoryLimit = *raw.Chat.HistoryLimit
	}

	// Keymap
	if raw.Keymap.Overrides != nil {
		for k, v := range raw.Keymap.Overrides {
			cfg.Keymap.Overrides[k] = v
		}
	}

	// UI
	if raw.UI.ShowFooter != nil {
		cfg.UI.ShowFooter = *raw.UI.ShowFooter
	}
	if raw.UI.ShowSidebar != nil {
		cfg.UI.ShowSidebar = *raw.UI.ShowSidebar
	}
}

// ExpandPath expands ~ to home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// ConfigDir returns the prism config directory.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir)
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, configFile)
}
