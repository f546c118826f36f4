package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds all editor settings.
type Config struct {
	Log       LogConfig       `toml:"log" yaml:"log"`
	Editor    EditorConfig    `toml:"editor" yaml:"editor"`
	Clipboard ClipboardConfig `toml:"clipboard" yaml:"clipboard"`
	Plugins   PluginsConfig   `toml:"plugins" yaml:"plugins"`
}

// LogConfig configures logging. An empty File disables log output.
type LogConfig struct {
	Level      string `toml:"level" yaml:"level"`
	File       string `toml:"file" yaml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups" yaml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days" yaml:"max_age_days"`
	Compress   bool   `toml:"compress" yaml:"compress"`
}

// EditorConfig configures the editing session.
type EditorConfig struct {
	// Watch reloads the open file when it changes on disk.
	Watch bool `toml:"watch" yaml:"watch"`
	// ScratchText is the initial text when no file is opened.
	ScratchText string `toml:"scratch_text" yaml:"scratch_text"`
}

// ClipboardConfig configures the clipboard stack.
type ClipboardConfig struct {
	// System mirrors the stack top to the system clipboard.
	System bool `toml:"system" yaml:"system"`
	// MaxDepth bounds the stack. Zero means unbounded.
	MaxDepth int `toml:"max_depth" yaml:"max_depth"`
}

// PluginsConfig selects the plugins to load.
type PluginsConfig struct {
	// Builtin names the built-in plugins to enable. Empty enables all.
	Builtin []string `toml:"builtin" yaml:"builtin"`
	// Lua lists script plugins to load.
	Lua []LuaPlugin `toml:"lua" yaml:"lua"`
}

// LuaPlugin is a script plugin entry.
type LuaPlugin struct {
	Path      string `toml:"path" yaml:"path"`
	TimeoutMS int    `toml:"timeout_ms" yaml:"timeout_ms"`
}

// Timeout returns the execution timeout. Zero selects the runtime default.
func (p LuaPlugin) Timeout() time.Duration {
	return time.Duration(p.TimeoutMS) * time.Millisecond
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load reads the file at path on top of the defaults.
// An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := decode(path, data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode fills cfg from data using the decoder for path's extension.
func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			perr := &ParseError{Path: path, Message: err.Error(), Err: err}
			var derr *toml.DecodeError
			if errors.As(err, &derr) {
				perr.Line, perr.Column = derr.Position()
			}
			return perr
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return &ParseError{Path: path, Message: err.Error(), Err: err}
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return nil
}

var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks every setting and returns the first failure.
func (c *Config) Validate() error {
	if !logLevels[strings.ToLower(c.Log.Level)] {
		return &ValidationError{Path: "log.level", Message: "must be one of debug, info, warn, error", Value: c.Log.Level}
	}
	nonNegative := []struct {
		path  string
		value int
	}{
		{"log.max_size_mb", c.Log.MaxSizeMB},
		{"log.max_backups", c.Log.MaxBackups},
		{"log.max_age_days", c.Log.MaxAgeDays},
		{"clipboard.max_depth", c.Clipboard.MaxDepth},
	}
	for _, s := range nonNegative {
		if s.value < 0 {
			return &ValidationError{Path: s.path, Message: "must not be negative", Value: s.value}
		}
	}
	for i, p := range c.Plugins.Lua {
		if strings.TrimSpace(p.Path) == "" {
			return &ValidationError{Path: fmt.Sprintf("plugins.lua[%d].path", i), Message: "is required", Value: p.Path}
		}
		if p.TimeoutMS < 0 {
			return &ValidationError{Path: fmt.Sprintf("plugins.lua[%d].timeout_ms", i), Message: "must not be negative", Value: p.TimeoutMS}
		}
	}
	return nil
}

// BuiltinEnabled reports whether the named built-in plugin is enabled.
func (c *Config) BuiltinEnabled(name string) bool {
	if len(c.Plugins.Builtin) == 0 {
		return true
	}
	for _, n := range c.Plugins.Builtin {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}
