package chat

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/prismchat/prism/internal/history"
	"github.com/prismchat/prism/internal/msg"
	"github.com/prismchat/prism/internal/plugin"
	"github.com/prismchat/prism/internal/styles"
	"github.com/prismchat/prism/internal/theme"
	"github.com/prismchat/prism/internal/ui"
)

const (
	pluginID   = "chat"
	pluginName = "chat"
	pluginIcon = "C"
)

// historyLoadedMsg carries the persisted transcript at startup.
type historyLoadedMsg struct {
	messages []history.Message
	err      error
}

// messageSavedMsg reports a persisted message.
type messageSavedMsg struct {
	message *history.Message
	err     error
}

// Plugin implements the chat transcript page.
type Plugin struct {
	ctx     *plugin.Context
	focused bool

	width  int
	height int

	messages []history.Message
	cursor   int // selected message, len(messages) means "follow tail"
	scroll   int

	input      textinput.Model
	inputFocus bool

	confirmClear *ui.ConfirmDialog

	loadErr error

	// Rendered transcript cache, invalidated on palette or size change.
	renderedFor renderKey
	rendered    []string
}

type renderKey struct {
	width       int
	markdown    string
	fingerprint uint64
	count       int
}

// New creates a new chat plugin.
func New() *Plugin {
	ti := textinput.New()
	ti.Placeholder = "type a message"
	ti.CharLimit = 4096
	return &Plugin{input: ti}
}

func (p *Plugin) ID() string   { return pluginID }
func (p *Plugin) Name() string { return pluginName }
func (p *Plugin) Icon() string { return pluginIcon }

// Init initializes the plugin with context.
func (p *Plugin) Init(ctx *plugin.Context) error {
	p.ctx = ctx
	p.messages = nil
	p.cursor = 0
	p.scroll = 0
	p.inputFocus = false
	p.loadErr = nil
	return nil
}

// Start loads the tail of the persisted transcript, capped by the
// configured history limit.
func (p *Plugin) Start() tea.Cmd {
	store := p.ctx.History
	if store == nil {
		return nil
	}
	limit := p.ctx.HistoryLimit
	return func() tea.Msg {
		msgs, err := store.Recent(limit)
		return historyLoadedMsg{messages: msgs, err: err}
	}
}

func (p *Plugin) Stop() {}

func (p *Plugin) IsFocused() bool   { return p.focused }
func (p *Plugin) SetFocused(f bool) { p.focused = f }

func (p *Plugin) FocusContext() string {
	if p.inputFocus {
		return "chat-input"
	}
	return "chat"
}

// ConsumesTextInput reports whether typed characters go to the composer.
// An open dialog also takes every key.
func (p *Plugin) ConsumesTextInput() bool { return p.inputFocus || p.confirmClear != nil }

// Update handles messages.
func (p *Plugin) Update(m tea.Msg) (plugin.Plugin, tea.Cmd) {
	switch m := m.(type) {
	case historyLoadedMsg:
		p.loadErr = m.err
		if m.err == nil {
			p.messages = m.messages
			p.cursor = len(p.messages)
		}
		return p, nil

	case messageSavedMsg:
		if m.err != nil {
			p.ctx.Log().Warn("persist chat message failed", "err", m.err)
			return p, msg.ShowErrorToast("message not saved", 2*time.Second)
		}
		p.messages = append(p.messages, *m.message)
		if p.cursor >= len(p.messages)-1 {
			p.cursor = len(p.messages)
		}
		return p, nil

	case theme.PaletteChanged:
		// Rendered markdown depends on the palette; drop the cache.
		p.renderedFor = renderKey{}
		return p, nil

	case tea.KeyMsg:
		if p.confirmClear != nil {
			return p.updateConfirm(m)
		}
		if p.inputFocus {
			return p.updateInput(m)
		}
		return p.handleKey(m)
	}

	return p, nil
}

func (p *Plugin) handleKey(m tea.KeyMsg) (plugin.Plugin, tea.Cmd) {
	cmd, ok := p.ctx.Keymap.Resolve(m, "chat")
	if !ok {
		return p, nil
	}
	switch cmd {
	case "focus-input":
		p.inputFocus = true
		p.input.Focus()
		return p, textinput.Blink
	case "scroll-down":
		if p.cursor < len(p.messages) {
			p.cursor++
		}
	case "scroll-up":
		if p.cursor > 0 {
			p.cursor--
		}
	case "scroll-top":
		p.cursor = 0
	case "scroll-bottom":
		p.cursor = len(p.messages)
	case "copy-message":
		return p, p.copySelected()
	case "clear-history":
		d := ui.NewConfirmDialog("Clear history?", "All messages will be deleted. This cannot be undone.")
		d.ConfirmLabel = " Clear "
		d.BorderColor = styles.Error
		p.confirmClear = d
	}
	return p, nil
}

func (p *Plugin) updateConfirm(m tea.KeyMsg) (plugin.Plugin, tea.Cmd) {
	switch p.confirmClear.HandleKey(m) {
	case "confirm":
		p.confirmClear = nil
		return p, p.clearHistory()
	case "cancel":
		p.confirmClear = nil
	}
	return p, nil
}

func (p *Plugin) updateInput(m tea.KeyMsg) (plugin.Plugin, tea.Cmd) {
	if cmd, ok := p.ctx.Keymap.Resolve(m, "chat-input"); ok {
		switch cmd {
		case "blur-input":
			p.inputFocus = false
			p.input.Blur()
			return p, nil
		case "send-message":
			return p, p.sendMessage()
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(m)
	return p, cmd
}

func (p *Plugin) sendMessage() tea.Cmd {
	content := strings.TrimSpace(p.input.Value())
	if content == "" {
		return nil
	}
	p.input.SetValue("")
	store := p.ctx.History
	if store == nil {
		now := time.Now().UTC()
		p.messages = append(p.messages, history.Message{Role: history.RoleUser, Content: content, CreatedAt: now})
		p.cursor = len(p.messages)
		return nil
	}
	return func() tea.Msg {
		saved, err := store.Append(history.RoleUser, content)
		return messageSavedMsg{message: saved, err: err}
	}
}

func (p *Plugin) copySelected() tea.Cmd {
	sel, ok := p.selectedMessage()
	if !ok {
		return nil
	}
	if err := clipboard.WriteAll(sel.Content); err != nil {
		p.ctx.Log().Warn("clipboard write failed", "err", err)
		return msg.ShowErrorToast("copy failed", 2*time.Second)
	}
	return msg.ShowToast("message copied", 2*time.Second)
}

func (p *Plugin) clearHistory() tea.Cmd {
	if p.ctx.History != nil {
		if err := p.ctx.History.Clear(); err != nil {
			p.ctx.Log().Warn("clear chat history failed", "err", err)
			return msg.ShowErrorToast("clear failed", 2*time.Second)
		}
	}
	p.messages = nil
	p.cursor = 0
	p.renderedFor = renderKey{}
	return msg.ShowToast("history cleared", 2*time.Second)
}

// selectedMessage returns the message under the cursor. When the cursor
// follows the tail, that is the newest message.
func (p *Plugin) selectedMessage() (history.Message, bool) {
	if len(p.messages) == 0 {
		return history.Message{}, false
	}
	idx := p.cursor
	if idx >= len(p.messages) {
		idx = len(p.messages) - 1
	}
	return p.messages[idx], true
}
