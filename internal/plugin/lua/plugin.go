package lua

import (
	"fmt"
	"path/filepath"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/quill/internal/plugin"
)

// Plugin is a plugin implemented by a Lua script.
type Plugin struct {
	name        string
	description string
	source      string

	state  *State
	bridge *bridge
}

// Load reads and runs the script at path and returns the plugin it defines.
func Load(path string, opts ...StateOption) (*Plugin, error) {
	fallback := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return load(path, fallback, opts, func(s *State) error {
		return s.DoFile(path)
	})
}

// LoadString runs code as a script and returns the plugin it defines.
// name is used when the script sets no name global.
func LoadString(name, code string, opts ...StateOption) (*Plugin, error) {
	return load("<"+name+">", name, opts, func(s *State) error {
		return s.DoString(code)
	})
}

func load(source, fallback string, opts []StateOption, run func(*State) error) (*Plugin, error) {
	p := &Plugin{
		source: source,
		state:  NewState(opts...),
		bridge: &bridge{},
	}
	p.bridge.install(p.state)

	if err := run(p.state); err != nil {
		p.state.Close()
		return nil, fmt.Errorf("load %s: %w", source, err)
	}
	if p.state.GetGlobal("execute").Type() != lua.LTFunction {
		p.state.Close()
		return nil, fmt.Errorf("load %s: %w", source, ErrMissingExecute)
	}

	p.name = globalString(p.state, "name", fallback)
	p.description = globalString(p.state, "description", "Lua plugin "+source)
	return p, nil
}

func globalString(s *State, name, fallback string) string {
	if v, ok := s.GetGlobal(name).(lua.LString); ok && strings.TrimSpace(string(v)) != "" {
		return string(v)
	}
	return fallback
}

// Name implements plugin.Plugin.
func (p *Plugin) Name() string { return p.name }

// Description implements plugin.Plugin.
func (p *Plugin) Description() string { return p.description }

// Source returns the script path, or a placeholder for inline scripts.
func (p *Plugin) Source() string { return p.source }

// Execute implements plugin.Plugin by calling the script's execute function.
func (p *Plugin) Execute(doc plugin.Document, clip plugin.Clipboard) (string, error) {
	p.bridge.bind(doc, clip)
	defer p.bridge.unbind()

	results, err := p.state.Call("execute")
	if err != nil {
		return "", err
	}
	if len(results) > 0 {
		if msg, ok := results[0].(lua.LString); ok {
			return string(msg), nil
		}
	}
	return "", nil
}

// Close releases the script's Lua state.
func (p *Plugin) Close() error {
	return p.state.Close()
}
