package chat

import (
	"fmt"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/prismchat/prism/internal/history"
	"github.com/prismchat/prism/internal/keymap"
	"github.com/prismchat/prism/internal/plugin"
	"github.com/prismchat/prism/internal/theme"
)

func newTestPlugin(t *testing.T) (*Plugin, *history.Store) {
	t.Helper()
	store, err := history.NewStore(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("history.NewStore() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	selStore, err := theme.NewSelectionStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewSelectionStore() error: %v", err)
	}
	engine := theme.NewEngine(selStore, nil, theme.NewBus(), func() theme.EffectiveMode { return theme.EffectiveDark }, nil)

	km := keymap.NewRegistry()
	keymap.RegisterDefaults(km)

	p := New()
	if err := p.Init(&plugin.Context{History: store, Theme: engine, Keymap: km}); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	return p, store
}

func drive(t *testing.T, p *Plugin, cmd tea.Cmd) *Plugin {
	t.Helper()
	for cmd != nil {
		m := cmd()
		if m == nil {
			return p
		}
		if batch, ok := m.(tea.BatchMsg); ok {
			for _, c := range batch {
				p = drive(t, p, c)
			}
			return p
		}
		next, nextCmd := p.Update(m)
		p = next.(*Plugin)
		cmd = nextCmd
	}
	return p
}

func typeText(t *testing.T, p *Plugin, s string) *Plugin {
	t.Helper()
	for _, r := range s {
		next, _ := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		p = next.(*Plugin)
	}
	return p
}

func TestSendMessagePersists(t *testing.T) {
	p, store := newTestPlugin(t)
	p = drive(t, p, p.Start())

	next, _ := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i")})
	p = next.(*Plugin)
	if !p.inputFocus {
		t.Fatal("i did not focus the composer")
	}

	p = typeText(t, p, "hello world")
	next, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p = drive(t, next.(*Plugin), cmd)

	if len(p.messages) != 1 {
		t.Fatalf("transcript has %d messages, want 1", len(p.messages))
	}
	if p.messages[0].Content != "hello world" || p.messages[0].Role != history.RoleUser {
		t.Errorf("message = %+v", p.messages[0])
	}

	persisted, err := store.Recent(0)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(persisted) != 1 || persisted[0].Content != "hello world" {
		t.Errorf("persisted = %+v", persisted)
	}
}

func TestSendEmptyMessageIgnored(t *testing.T) {
	p, _ := newTestPlugin(t)
	p = drive(t, p, p.Start())

	next, _ := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i")})
	p = next.(*Plugin)
	p = typeText(t, p, "   ")
	next, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p = drive(t, next.(*Plugin), cmd)

	if len(p.messages) != 0 {
		t.Errorf("blank message was appended: %+v", p.messages)
	}
}

func TestStartLoadsPersistedTranscript(t *testing.T) {
	p, store := newTestPlugin(t)
	if _, err := store.Append(history.RoleUser, "earlier"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Append(history.RoleAssistant, "**reply**"); err != nil {
		t.Fatal(err)
	}

	p = drive(t, p, p.Start())
	if len(p.messages) != 2 {
		t.Fatalf("loaded %d messages, want 2", len(p.messages))
	}
	if p.messages[1].Role != history.RoleAssistant {
		t.Errorf("second message role = %s", p.messages[1].Role)
	}
}

func TestStartHonorsHistoryLimit(t *testing.T) {
	store, err := history.NewStore(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("history.NewStore() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	for i := 0; i < 5; i++ {
		if _, err := store.Append(history.RoleUser, fmt.Sprintf("message %d", i)); err != nil {
			t.Fatal(err)
		}
	}

	km := keymap.NewRegistry()
	keymap.RegisterDefaults(km)
	p := New()
	if err := p.Init(&plugin.Context{History: store, Keymap: km, HistoryLimit: 2}); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	p = drive(t, p, p.Start())
	if len(p.messages) != 2 {
		t.Fatalf("loaded %d messages, want the configured limit of 2", len(p.messages))
	}
	// The tail of the transcript, in order.
	if p.messages[0].Content != "message 3" || p.messages[1].Content != "message 4" {
		t.Errorf("loaded messages = %q, %q", p.messages[0].Content, p.messages[1].Content)
	}
}

func TestEscBlursComposer(t *testing.T) {
	p, _ := newTestPlugin(t)
	next, _ := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i")})
	p = next.(*Plugin)

	next, _ = p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	p = next.(*Plugin)
	if p.inputFocus {
		t.Error("esc did not blur the composer")
	}
	if p.FocusContext() != "chat" {
		t.Errorf("FocusContext = %s", p.FocusContext())
	}
}

func TestClearHistoryConfirmed(t *testing.T) {
	p, store := newTestPlugin(t)
	if _, err := store.Append(history.RoleUser, "wipe me"); err != nil {
		t.Fatal(err)
	}
	p = drive(t, p, p.Start())

	next, _ := p.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	p = next.(*Plugin)
	if p.confirmClear == nil {
		t.Fatal("ctrl+l did not open the confirm dialog")
	}
	if !p.ConsumesTextInput() {
		t.Error("open dialog should consume keys")
	}

	next, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p = drive(t, next.(*Plugin), cmd)

	if p.confirmClear != nil {
		t.Error("dialog still open after confirm")
	}
	if len(p.messages) != 0 {
		t.Errorf("transcript not cleared: %+v", p.messages)
	}
	n, err := store.Count()
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("store count = %d after clear", n)
	}
}

func TestClearHistoryCancelled(t *testing.T) {
	p, store := newTestPlugin(t)
	if _, err := store.Append(history.RoleUser, "keep me"); err != nil {
		t.Fatal(err)
	}
	p = drive(t, p, p.Start())

	next, _ := p.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	p = next.(*Plugin)
	next, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	p = drive(t, next.(*Plugin), cmd)

	if p.confirmClear != nil {
		t.Error("dialog still open after cancel")
	}
	if len(p.messages) != 1 {
		t.Errorf("transcript = %+v, want untouched", p.messages)
	}
	if n, _ := store.Count(); n != 1 {
		t.Errorf("store count = %d, want 1", n)
	}
}

func TestPaletteChangeInvalidatesRenderCache(t *testing.T) {
	p, _ := newTestPlugin(t)
	p.rendered = []string{"stale"}
	p.renderedFor = renderKey{width: 80, count: 1}

	next, _ := p.Update(theme.PaletteChanged{Palette: theme.BuildBasePalette(theme.EffectiveLight)})
	p = next.(*Plugin)
	if p.renderedFor != (renderKey{}) {
		t.Error("palette change did not invalidate the render cache")
	}
}
