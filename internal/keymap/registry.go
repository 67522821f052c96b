package keymap

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Binding maps a key to a command within an activation context.
type Binding struct {
	Key     string `json:"key"`
	Command string `json:"command"`
	Context string `json:"context"`
}

// Registry resolves key presses to commands. Context-specific bindings
// shadow global ones; later registrations for the same key+context
// replace earlier ones, which is how config overrides work.
type Registry struct {
	bindings map[string]map[string]string // context -> key -> command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{bindings: make(map[string]map[string]string)}
}

// RegisterBinding adds or replaces a binding.
func (r *Registry) RegisterBinding(b Binding) {
	if b.Key == "" || b.Command == "" {
		return
	}
	ctx := b.Context
	if ctx == "" {
		ctx = "global"
	}
	if r.bindings[ctx] == nil {
		r.bindings[ctx] = make(map[string]string)
	}
	r.bindings[ctx][b.Key] = b.Command
}

// Resolve returns the command for a key press in the given context,
// falling back to global bindings when the context has none.
func (r *Registry) Resolve(msg tea.KeyMsg, context string) (string, bool) {
	key := msg.String()
	if m, ok := r.bindings[context]; ok {
		if cmd, ok := m[key]; ok {
			return cmd, true
		}
	}
	if context != "global" {
		if cmd, ok := r.bindings["global"][key]; ok {
			return cmd, true
		}
	}
	return "", false
}

// BindingsForContext returns the bindings active in a context, for the
// footer and help view. Context-specific entries come first.
func (r *Registry) BindingsForContext(context string) []Binding {
	var out []Binding
	for key, cmd := range r.bindings[context] {
		out = append(out, Binding{Key: key, Command: cmd, Context: context})
	}
	if context != "global" {
		for key, cmd := range r.bindings["global"] {
			if _, shadowed := r.bindings[context][key]; shadowed {
				continue
			}
			out = append(out, Binding{Key: key, Command: cmd, Context: "global"})
		}
	}
	return out
}
