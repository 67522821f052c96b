package plugin

import (
	"log/slog"

	"github.com/prismchat/prism/internal/catalog"
	"github.com/prismchat/prism/internal/history"
	"github.com/prismchat/prism/internal/keymap"
	"github.com/prismchat/prism/internal/theme"
)

// Context carries the shared services handed to every plugin at Init.
type Context struct {
	ConfigDir string
	Theme     *theme.Engine
	Catalog   *catalog.Client
	History   *history.Store
	Keymap    *keymap.Registry
	Logger    *slog.Logger

	// HistoryLimit caps how many messages the chat page loads at
	// startup. Zero or negative means the whole transcript.
	HistoryLimit int
}

// Log returns the context logger, falling back to the default.
func (c *Context) Log() *slog.Logger {
	if c == nil || c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}
