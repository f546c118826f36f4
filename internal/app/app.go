// Package app wires the editing model, renderer, plugins, and file handling
// into the Quill terminal application and runs its event loop.
package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/dshills/quill/internal/config"
	"github.com/dshills/quill/internal/engine"
	"github.com/dshills/quill/internal/engine/clipboard"
	"github.com/dshills/quill/internal/plugin"
	"github.com/dshills/quill/internal/plugin/lua"
	"github.com/dshills/quill/internal/renderer"
)

// Application is the terminal editor.
//
// All model access happens on the goroutine running Run. Screen events and
// file watcher signals are delivered to it over channels.
type Application struct {
	config *config.Config
	logger *Logger

	model    *engine.Model
	document *Document
	plugins  *plugin.Registry
	scripts  []*lua.Plugin
	sysclip  *SystemClipboard
	watcher  *FileWatcher

	screen tcell.Screen
	view   *renderer.View

	message string
}

// Options configures the application.
type Options struct {
	// Config holds the settings. Nil uses config.Default().
	Config *config.Config

	// File is the file to edit. Empty starts a scratch document.
	File string

	// Logger receives log output. Nil disables logging.
	Logger *Logger

	// Screen is the screen to draw on. Nil creates a terminal screen in Run.
	Screen tcell.Screen

	// ClipboardWriter replaces the system clipboard writer.
	ClipboardWriter func(string) error
}

// New creates an application from opts.
func New(opts Options) (*Application, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = NullLogger
	}

	app := &Application{
		config: cfg,
		logger: logger.WithField("session", uuid.NewString()),
		screen: opts.Screen,
	}

	stack := clipboard.NewStack(clipboard.WithMaxDepth(cfg.Clipboard.MaxDepth))
	app.model = engine.New(cfg.Editor.ScratchText, engine.WithClipboard(stack))

	doc, err := NewDocument(app.model, opts.File)
	if err != nil {
		return nil, err
	}
	app.document = doc
	if !doc.IsScratch() {
		if err := doc.Load(); err != nil {
			return nil, err
		}
		app.logger.Info("opened %s", doc.Path)
	}

	if err := app.loadPlugins(); err != nil {
		app.closePlugins()
		return nil, err
	}

	if cfg.Clipboard.System {
		if opts.ClipboardWriter == nil && !systemClipboardAvailable() {
			app.logger.WithComponent("sysclip").Warn("system clipboard unavailable; mirroring disabled")
		} else {
			app.sysclip = NewSystemClipboard(stack, opts.ClipboardWriter, app.logger)
			app.sysclip.Attach()
		}
	}

	if cfg.Editor.Watch && !doc.IsScratch() {
		w, err := NewFileWatcher(doc.Path)
		if err != nil {
			app.logger.WithComponent("watcher").Warn("cannot watch %s: %v", doc.Path, err)
		} else {
			app.watcher = w
		}
	}

	return app, nil
}

// loadPlugins registers the enabled built-ins and the configured scripts.
func (app *Application) loadPlugins() error {
	reg, err := plugin.NewRegistry()
	if err != nil {
		return err
	}
	app.plugins = reg

	for _, p := range plugin.Builtins() {
		if !app.config.BuiltinEnabled(p.Name()) {
			continue
		}
		if err := reg.Register(p); err != nil {
			return err
		}
	}

	log := app.logger.WithComponent("plugin")
	for _, entry := range app.config.Plugins.Lua {
		script, err := lua.Load(entry.Path,
			lua.WithExecutionTimeout(entry.Timeout()),
			lua.WithOutput(&logWriter{logger: log}),
		)
		if err != nil {
			return NewOperationError("load plugin", entry.Path, err)
		}
		app.scripts = append(app.scripts, script)
		if err := reg.Register(script); err != nil {
			return NewOperationError("load plugin", entry.Path, err)
		}
		log.Info("loaded %s from %s", script.Name(), entry.Path)
	}
	return nil
}

// Model returns the editing model.
func (app *Application) Model() *engine.Model {
	return app.model
}

// Document returns the edited document.
func (app *Application) Document() *Document {
	return app.document
}

// Plugins returns the plugin registry.
func (app *Application) Plugins() *plugin.Registry {
	return app.plugins
}

// Message returns the last status message.
func (app *Application) Message() string {
	return app.message
}

// Run initializes the screen and processes events until quit.
func (app *Application) Run() error {
	if app.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return NewOperationError("init", "screen", err)
		}
		app.screen = s
	}
	if err := app.screen.Init(); err != nil {
		return NewOperationError("init", "screen", err)
	}
	defer app.screen.Fini()

	app.view = renderer.New(app.screen, app.model)
	app.view.Attach()
	defer app.view.Detach()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go app.screen.ChannelEvents(events, quit)

	app.logger.Info("started")
	defer app.logger.Info("stopped")

	var changes <-chan struct{}
	var watchErrs <-chan error
	if app.watcher != nil {
		changes = app.watcher.Changes()
		watchErrs = app.watcher.Errors()
	}

	app.redraw()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := app.handleEvent(ev); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}
		case <-changes:
			app.fileChanged()
		case err := <-watchErrs:
			app.logger.WithComponent("watcher").Warn("watch error: %v", err)
		}
		app.redraw()
	}
}

// handleEvent processes a screen event.
// Returns ErrQuit if the application should exit.
func (app *Application) handleEvent(ev tcell.Event) error {
	switch e := ev.(type) {
	case *tcell.EventKey:
		app.message = ""
		return app.handleKey(e)
	case *tcell.EventResize:
		app.screen.Sync()
		if app.view != nil {
			app.view.Invalidate()
		}
	}
	return nil
}

// redraw refreshes the status line and draws the view if needed.
func (app *Application) redraw() {
	if app.view == nil {
		return
	}
	app.view.SetStatus(renderer.Status{
		Name:     app.document.Name,
		Modified: app.document.IsModified(),
		Message:  app.message,
	})
	app.view.Draw()
}

// save writes the document and reports the result.
func (app *Application) save() {
	if err := app.document.Save(); err != nil {
		app.fail(err)
		return
	}
	app.message = "saved " + app.document.Name
	app.logger.Info("saved %s", app.document.Path)
}

// reload discards changes and rereads the file.
func (app *Application) reload() {
	if err := app.document.Load(); err != nil {
		app.fail(err)
		return
	}
	app.message = "reloaded " + app.document.Name
}

// fileChanged reloads the document after an external change.
func (app *Application) fileChanged() {
	reloaded, err := app.document.Reconcile()
	if err != nil {
		app.fail(err)
		return
	}
	if reloaded {
		app.message = app.document.Name + " changed on disk; reloaded"
		app.logger.Info("reloaded %s after external change", app.document.Path)
	}
}

// runPlugin executes the i-th registered plugin.
func (app *Application) runPlugin(i int) {
	p, ok := app.plugins.At(i)
	if !ok {
		app.fail(fmt.Errorf("F%d: %w", i+1, ErrNoPlugin))
		return
	}
	msg, err := app.plugins.Run(p.Name(), app.model, app.model.Clipboard())
	if err != nil {
		app.fail(err)
		return
	}
	app.message = msg
	app.logger.WithComponent("plugin").Debug("ran %s", p.Name())
}

// fail shows err in the status line and logs it.
func (app *Application) fail(err error) {
	app.message = "error: " + err.Error()
	app.logger.Error("%v", err)
}

// Shutdown releases the watcher, plugins, and clipboard mirror.
func (app *Application) Shutdown() error {
	var errs []error
	if app.watcher != nil {
		errs = append(errs, app.watcher.Close())
		app.watcher = nil
	}
	if app.sysclip != nil {
		app.sysclip.Detach()
		app.sysclip = nil
	}
	errs = append(errs, app.closePlugins())
	return errors.Join(errs...)
}

func (app *Application) closePlugins() error {
	var errs []error
	for _, s := range app.scripts {
		errs = append(errs, s.Close())
	}
	app.scripts = nil
	return errors.Join(errs...)
}

// logWriter sends plugin print output to the logger, one entry per write.
type logWriter struct {
	logger *Logger
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.logger.Info("print: %s", trimNewline(string(p)))
	return len(p), nil
}

func trimNewline(s string) string {
	if n := len(s); n > 0 && s[n-1] == '\n' {
		return s[:n-1]
	}
	return s
}

var _ io.Writer = (*logWriter)(nil)
