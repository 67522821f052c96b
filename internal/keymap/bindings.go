package keymap

// DefaultBindings returns the default key bindings.
func DefaultBindings() []Binding {
	return []Binding{
		// Global bindings
		{Key: "q", Command: "quit", Context: "global"},
		{Key: "ctrl+c", Command: "quit", Context: "global"},
		{Key: "tab", Command: "next-page", Context: "global"},
		{Key: "shift+tab", Command: "prev-page", Context: "global"},
		{Key: "1", Command: "focus-page-1", Context: "global"},
		{Key: "2", Command: "focus-page-2", Context: "global"},
		{Key: "3", Command: "focus-page-3", Context: "global"},
		{Key: "m", Command: "cycle-mode", Context: "global"},
		{Key: "ctrl+t", Command: "clear-theme", Context: "global"},
		{Key: "?", Command: "toggle-help", Context: "global"},

		// Chat context
		{Key: "i", Command: "focus-input", Context: "chat"},
		{Key: "enter", Command: "focus-input", Context: "chat"},
		{Key: "j", Command: "scroll-down", Context: "chat"},
		{Key: "k", Command: "scroll-up", Context: "chat"},
		{Key: "down", Command: "scroll-down", Context: "chat"},
		{Key: "up", Command: "scroll-up", Context: "chat"},
		{Key: "g", Command: "scroll-top", Context: "chat"},
		{Key: "G", Command: "scroll-bottom", Context: "chat"},
		{Key: "y", Command: "copy-message", Context: "chat"},
		{Key: "ctrl+l", Command: "clear-history", Context: "chat"},

		// Chat input context (typed text is consumed by the input field)
		{Key: "esc", Command: "blur-input", Context: "chat-input"},
		{Key: "enter", Command: "send-message", Context: "chat-input"},

		// Themes context
		{Key: "j", Command: "cursor-down", Context: "themes"},
		{Key: "k", Command: "cursor-up", Context: "themes"},
		{Key: "down", Command: "cursor-down", Context: "themes"},
		{Key: "up", Command: "cursor-up", Context: "themes"},
		{Key: "enter", Command: "apply-theme", Context: "themes"},
		{Key: "esc", Command: "clear-preview", Context: "themes"},
		{Key: "/", Command: "filter", Context: "themes"},
		{Key: "r", Command: "refresh", Context: "themes"},

		// Theme filter context
		{Key: "esc", Command: "cancel", Context: "themes-filter"},
		{Key: "enter", Command: "confirm", Context: "themes-filter"},

		// Preview context
		{Key: "j", Command: "scroll-down", Context: "preview"},
		{Key: "k", Command: "scroll-up", Context: "preview"},
	}
}

// RegisterDefaults registers all default bindings with the registry.
func RegisterDefaults(r *Registry) {
	for _, b := range DefaultBindings() {
		r.RegisterBinding(b)
	}
}
