package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/prismchat/prism/internal/app"
	"github.com/prismchat/prism/internal/catalog"
	"github.com/prismchat/prism/internal/config"
	"github.com/prismchat/prism/internal/history"
	"github.com/prismchat/prism/internal/keymap"
	"github.com/prismchat/prism/internal/plugin"
	"github.com/prismchat/prism/internal/plugins/chat"
	"github.com/prismchat/prism/internal/plugins/preview"
	"github.com/prismchat/prism/internal/plugins/themes"
	"github.com/prismchat/prism/internal/state"
	"github.com/prismchat/prism/internal/theme"
	"github.com/prismchat/prism/internal/version"
)

// Version is set at build time via ldflags
var Version = ""

var (
	configPath  = flag.String("config", "", "path to config file")
	serverURL   = flag.String("server", "", "theme catalog base URL (overrides config)")
	debugFlag   = flag.Bool("debug", false, "enable debug logging")
	versionFlag = flag.Bool("version", false, "print version and exit")
)

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Printf("prism version %s\n", effectiveVersion(Version))
		os.Exit(0)
	}

	logLevel := slog.LevelInfo
	if *debugFlag {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *serverURL != "" {
		cfg.Catalog.BaseURL = *serverURL
	}

	configDir := config.ConfigDir()

	if err := state.InitWithDir(configDir); err != nil {
		logger.Warn("ui state unavailable", "err", err)
	}

	// Theme selection store + engine.
	selStore, err := theme.NewSelectionStore(configDir, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open theme selection store: %v\n", err)
		os.Exit(1)
	}
	defer selStore.Close()

	client := catalog.NewClient(cfg.Catalog.BaseURL)
	client.Client = &http.Client{Timeout: cfg.Catalog.Timeout}

	bus := theme.NewBus()
	engine := theme.NewEngine(selStore, client, bus, theme.DetectTerminal, logger)
	engine.Start(context.Background())

	// Pick up selection changes written by other prism processes.
	if err := selStore.Watch(func(sel theme.Selection) {
		engine.AdoptSelection(context.Background(), sel)
	}); err != nil {
		logger.Warn("selection watcher unavailable", "err", err)
	}

	// Chat history store.
	historyPath := cfg.Chat.HistoryDBPath
	if historyPath == "" {
		historyPath = history.DefaultDBPath(configDir)
	}
	historyStore, err := history.NewStore(historyPath)
	if err != nil {
		logger.Warn("chat history unavailable", "path", historyPath, "err", err)
		historyStore = nil
	} else {
		defer historyStore.Close()
	}

	// Keymap with user overrides ("context/key" -> command; bare keys
	// are global).
	km := keymap.NewRegistry()
	keymap.RegisterDefaults(km)
	for key, command := range cfg.Keymap.Overrides {
		kctx := "global"
		k := key
		if idx := strings.Index(key, "/"); idx > 0 {
			kctx = key[:idx]
			k = key[idx+1:]
		}
		km.RegisterBinding(keymap.Binding{Key: k, Command: command, Context: kctx})
	}

	registry := plugin.NewRegistry()
	registry.Register(chat.New())
	registry.Register(themes.New())
	registry.Register(preview.New())

	pluginCtx := &plugin.Context{
		ConfigDir:    configDir,
		Theme:        engine,
		Catalog:      client,
		History:      historyStore,
		Keymap:       km,
		Logger:       logger,
		HistoryLimit: cfg.Chat.HistoryLimit,
	}
	if err := registry.InitAll(pluginCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize pages: %v\n", err)
		os.Exit(1)
	}

	model := app.New(registry, km, cfg, engine, bus.Subscribe(), logger)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithReportFocus())

	// Background update check; result arrives as a toast.
	go func() {
		if m := version.CheckAsync(effectiveVersion(Version))(); m != nil {
			p.Send(m)
		}
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// effectiveVersion returns the version string, with fallback to build info.
func effectiveVersion(v string) string {
	if v != "" {
		return v
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "devel"
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: prism [options]\n\n")
		fmt.Fprintf(os.Stderr, "A themed terminal chat shell.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
}
