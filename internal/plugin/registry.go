package plugin

// Registry holds the registered plugins in display order.
type Registry struct {
	plugins []Plugin
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a plugin. Order of registration is sidebar order.
func (r *Registry) Register(p Plugin) {
	r.plugins = append(r.plugins, p)
}

// Plugins returns all registered plugins in order.
func (r *Registry) Plugins() []Plugin {
	return r.plugins
}

// Get returns the plugin with the given ID.
func (r *Registry) Get(id string) (Plugin, bool) {
	for _, p := range r.plugins {
		if p.ID() == id {
			return p, true
		}
	}
	return nil, false
}

// InitAll initializes every plugin with the shared context, returning
// the first error encountered.
func (r *Registry) InitAll(ctx *Context) error {
	for _, p := range r.plugins {
		if err := p.Init(ctx); err != nil {
			return err
		}
	}
	return nil
}

// StopAll stops every plugin.
func (r *Registry) StopAll() {
	for _, p := range r.plugins {
		p.Stop()
	}
}
