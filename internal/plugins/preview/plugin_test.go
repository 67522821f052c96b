package preview

import (
	"strings"
	"testing"

	"github.com/prismchat/prism/internal/keymap"
	"github.com/prismchat/prism/internal/plugin"
	"github.com/prismchat/prism/internal/theme"
)

func newTestPlugin(t *testing.T) (*Plugin, *theme.Engine) {
	t.Helper()
	store, err := theme.NewSelectionStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewSelectionStore() error: %v", err)
	}
	engine := theme.NewEngine(store, nil, theme.NewBus(), func() theme.EffectiveMode { return theme.EffectiveDark }, nil)

	km := keymap.NewRegistry()
	keymap.RegisterDefaults(km)

	p := New()
	if err := p.Init(&plugin.Context{Theme: engine, Keymap: km}); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	return p, engine
}

func TestViewShowsEveryRole(t *testing.T) {
	p, engine := newTestPlugin(t)
	out := p.View(80, 40)

	pal := engine.CurrentPalette()
	for _, r := range roles {
		hex := r.get(pal.Colors)
		if !strings.Contains(out, hex) {
			t.Errorf("view missing %s value %s", r.name, hex)
		}
	}
	if !strings.Contains(out, "base theme") {
		t.Error("view missing source description")
	}
}

func TestViewFollowsMode(t *testing.T) {
	p, engine := newTestPlugin(t)

	engine.SetBaseMode(theme.ModeLight)
	out := p.View(80, 40)
	if !strings.Contains(out, "light mode") {
		t.Errorf("view does not reflect light mode:\n%s", out)
	}
	light := engine.CurrentPalette()
	if !strings.Contains(out, light.Colors.Background) {
		t.Error("view missing light background color")
	}
}
