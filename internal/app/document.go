package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dshills/quill/internal/engine"
	"github.com/dshills/quill/internal/engine/buffer"
)

// Document ties a model to the file it was loaded from.
//
// Unsaved changes are tracked against the model revision recorded at the
// last load or save, so cursor and selection changes never count as edits.
type Document struct {
	// Path is the absolute file path (empty for scratch documents).
	Path string

	// Name is the display name.
	Name string

	model *engine.Model
	saved uint64
}

// NewDocument creates a document for model backed by path.
// An empty path creates a scratch document.
func NewDocument(model *engine.Model, path string) (*Document, error) {
	d := &Document{model: model}
	if path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, NewOperationError("open", path, err)
		}
		d.Path = abs
		d.Name = filepath.Base(abs)
	}
	d.saved = model.Revision()
	return d, nil
}

// IsModified returns true if the document has unsaved changes.
func (d *Document) IsModified() bool {
	return d.model.Revision() != d.saved
}

// IsScratch returns true if the document has no file.
func (d *Document) IsScratch() bool {
	return d.Path == ""
}

// Load replaces the model text with the file contents.
// A missing file leaves an empty document that Save will create.
func (d *Document) Load() error {
	if d.IsScratch() {
		return NewOperationError("open", "", ErrNoPath)
	}

	content, err := os.ReadFile(d.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			d.replace("")
			return nil
		}
		return NewOperationError("open", d.Path, err)
	}
	d.replace(string(content))
	return nil
}

// Save writes the model text to the file.
func (d *Document) Save() error {
	if d.IsScratch() {
		return NewOperationError("save", "", ErrNoPath)
	}
	if err := os.WriteFile(d.Path, []byte(d.model.Text()), 0644); err != nil {
		return NewOperationError("save", d.Path, err)
	}
	d.saved = d.model.Revision()
	return nil
}

// Reconcile handles a change to the file on disk. It reloads the file
// unless the document has unsaved changes, and reports whether the model
// was replaced.
func (d *Document) Reconcile() (bool, error) {
	if d.IsScratch() {
		return false, nil
	}

	content, err := os.ReadFile(d.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, NewOperationError("reload", d.Path, err)
	}
	if buffer.NormalizeLineEndings(string(content)) == d.model.Text() {
		return false, nil
	}
	if d.IsModified() {
		return false, NewOperationError("reload", d.Path, fmt.Errorf("file changed on disk; unsaved changes kept"))
	}
	d.replace(string(content))
	return true, nil
}

// replace sets the model text without marking the document modified.
func (d *Document) replace(text string) {
	d.model.SetText(text)
	d.saved = d.model.Revision()
}
