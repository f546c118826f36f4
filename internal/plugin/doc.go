// Package plugin provides the plugin system for Quill.
//
// A plugin is a named operation that runs against the current document and
// the clipboard stack, and reports a short message to the user.
//
// Plugins live in a Registry and are registered explicitly. Nothing is
// discovered by scanning directories. Two plugins ship with the editor
// (see Builtins):
//
//   - Uppercase capitalizes the first letter of every word
//   - Statistics counts the lines, words, and characters
//
// Scripted plugins are provided by the lua subpackage and are loaded from
// the paths listed in the configuration.
//
// # Usage
//
//	reg, err := plugin.NewRegistry(plugin.Builtins()...)
//	if err != nil {
//	    return err
//	}
//	msg, err := reg.Run("Statistics", model, model.Clipboard())
package plugin
