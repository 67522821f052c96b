package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// saveConfig is the JSON-marshaling intermediary that uses string durations.
type saveConfig struct {
	Catalog saveCatalogConfig `json:"catalog"`
	Chat    saveChatConfig    `json:"chat"`
	Keymap  KeymapConfig      `json:"keymap"`
	UI      saveUIConfig      `json:"ui"`
}

type saveCatalogConfig struct {
	BaseURL string `json:"baseUrl,omitempty"`
	Timeout string `json:"timeout,omitempty"`
}

type saveChatConfig struct {
	HistoryDBPath string `json:"historyDbPath,omitempty"`
	HistoryLimit  *int   `json:"historyLimit,omitempty"`
}

type saveUIConfig struct {
	ShowFooter  *bool `json:"showFooter,omitempty"`
	ShowSidebar *bool `json:"showSidebar,omitempty"`
}

// toSaveConfig converts Config to the JSON-serializable format.
func toSaveConfig(cfg *Config) saveConfig {
	return saveConfig{
		Catalog: saveCatalogConfig{
			BaseURL: cfg.Catalog.BaseURL,
			Timeout: cfg.Catalog.Timeout.String(),
		},
		Chat: saveChatConfig{
			HistoryDBPath: cfg.Chat.HistoryDBPath,
			HistoryLimit:  &cfg.Chat.HistoryLimit,
		},
		Keymap: cfg.Keymap,
		UI: saveUIConfig{
			ShowFooter:  &cfg.UI.ShowFooter,
			ShowSidebar: &cfg.UI.ShowSidebar,
		},
	}
}

// Save writes the config to ~/.config/prism/config.json
func Save(cfg *Config) error {
	return SaveTo(cfg, ConfigPath())
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	sc := toSaveConfig(cfg)
	data, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
