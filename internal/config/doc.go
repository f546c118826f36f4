// Package config provides the configuration for Quill.
//
// Settings are read from a single TOML or YAML file, chosen by extension.
// Keys missing from the file keep their defaults, and unknown keys are
// rejected. Environment variables with the QUILL_ prefix are applied on
// top of the file, and command line flags on top of both.
//
// Example TOML:
//
//	[log]
//	level = "debug"
//	file = "/tmp/quill.log"
//
//	[clipboard]
//	system = true
//	max_depth = 50
//
//	[[plugins.lua]]
//	path = "~/.config/quill/reverse.lua"
//	timeout_ms = 2000
package config
