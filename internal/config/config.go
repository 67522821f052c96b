package config

import "time"

// Config is the root configuration structure.
type Config struct {
	Catalog CatalogConfig `json:"catalog"`
	Chat    ChatConfig    `json:"chat"`
	Keymap  KeymapConfig  `json:"keymap"`
	UI      UIConfig      `json:"ui"`
}

// CatalogConfig configures the theme catalog server connection.
type CatalogConfig struct {
	BaseURL string        `json:"baseUrl"`
	Timeout time.Duration `json:"timeout"`
}

// ChatConfig configures the chat page.
type ChatConfig struct {
	HistoryDBPath string `json:"historyDbPath"` // empty = <config dir>/history.db
	HistoryLimit  int    `json:"historyLimit"`  // messages loaded at startup
}

// KeymapConfig holds key binding overrides. Keys are "context/key"
// (bare keys mean the global context), values are command names.
type KeymapConfig struct {
	Overrides map[string]string `json:"overrides"`
}

// UIConfig configures UI appearance.
type UIConfig struct {
	ShowFooter  bool `json:"showFooter"`
	ShowSidebar bool `json:"showSidebar"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Catalog: CatalogConfig{
			BaseURL: "http://localhost:8000/api",
			Timeout: 10 * time.Second,
		},
		Chat: ChatConfig{
			HistoryLimit: 200,
		},
		Keymap: KeymapConfig{
			Overrides: make(map[string]string),
		},
		UI: UIConfig{
			ShowFooter:  true,
			ShowSidebar: true,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Catalog.Timeout <= 0 {
		c.Catalog.Timeout = 10 * time.Second
	}
	if c.Chat.HistoryLimit < 0 {
		c.Chat.HistoryLimit = 200
	}
	return nil
}
