package config

import (
	"os"
	"strconv"
	"strings"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "QUILL_"

// ApplyEnv applies QUILL_* environment overrides using os.LookupEnv.
func (c *Config) ApplyEnv() error {
	return c.applyEnv(os.LookupEnv)
}

// applyEnv applies overrides from lookup. Empty values count as set.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok {
		c.Log.Level = strings.ToLower(v)
	}
	if v, ok := lookup(EnvPrefix + "LOG_FILE"); ok {
		c.Log.File = v
	}

	bools := []struct {
		name   string
		path   string
		target *bool
	}{
		{"WATCH", "editor.watch", &c.Editor.Watch},
		{"CLIPBOARD_SYSTEM", "clipboard.system", &c.Clipboard.System},
	}
	for _, b := range bools {
		v, ok := lookup(EnvPrefix + b.name)
		if !ok {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return &ValidationError{Path: b.path, Message: "invalid boolean in " + EnvPrefix + b.name, Value: v}
		}
		*b.target = parsed
	}

	if v, ok := lookup(EnvPrefix + "CLIPBOARD_MAX_DEPTH"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &ValidationError{Path: "clipboard.max_depth", Message: "invalid integer in " + EnvPrefix + "CLIPBOARD_MAX_DEPTH", Value: v}
		}
		c.Clipboard.MaxDepth = n
	}
	return c.Validate()
}
