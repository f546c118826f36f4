package plugin

import (
	"fmt"
	"strings"
)

// Registry holds the plugins available to an editing session.
//
// Plugins are added explicitly, never discovered by scanning the file
// system, and are listed in registration order.
type Registry struct {
	plugins map[string]Plugin
	order   []string
}

// NewRegistry creates a registry holding the given plugins.
func NewRegistry(plugins ...Plugin) (*Registry, error) {
	r := &Registry{plugins: make(map[string]Plugin)}
	for _, p := range plugins {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a plugin. Names are matched case-insensitively.
func (r *Registry) Register(p Plugin) error {
	if p == nil {
		return fmt.Errorf("%w: nil plugin", ErrInvalidPlugin)
	}
	name := strings.TrimSpace(p.Name())
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidPlugin)
	}
	key := strings.ToLower(name)
	if _, exists := r.plugins[key]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, name)
	}
	r.plugins[key] = p
	r.order = append(r.order, key)
	return nil
}

// Get returns the plugin registered under name.
func (r *Registry) Get(name string) (Plugin, error) {
	p, ok := r.plugins[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPluginNotFound, name)
	}
	return p, nil
}

// At returns the i-th plugin in registration order.
func (r *Registry) At(i int) (Plugin, bool) {
	if i < 0 || i >= len(r.order) {
		return nil, false
	}
	return r.plugins[r.order[i]], true
}

// List returns all plugins in registration order.
func (r *Registry) List() []Plugin {
	out := make([]Plugin, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.plugins[key])
	}
	return out
}

// Len returns the number of registered plugins.
func (r *Registry) Len() int {
	return len(r.order)
}

// Run executes the named plugin. Failures raised by the plugin are wrapped
// in an ExecError.
func (r *Registry) Run(name string, doc Document, clip Clipboard) (string, error) {
	p, err := r.Get(name)
	if err != nil {
		return "", err
	}
	msg, err := p.Execute(doc, clip)
	if err != nil {
		return "", &ExecError{Plugin: p.Name(), Err: err}
	}
	return msg, nil
}
