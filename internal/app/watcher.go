package app

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher reports changes to a single file.
//
// The parent directory is watched so that editors which save by renaming
// a temporary file over the original are still seen. Changes are coalesced:
// any number of events before the receiver catches up yields one signal.
type FileWatcher struct {
	mu sync.Mutex

	watcher *fsnotify.Watcher
	path    string

	changes chan struct{}
	errors  chan error

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// NewFileWatcher starts watching path.
func NewFileWatcher(path string) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &FileWatcher{
		watcher: fsw,
		path:    abs,
		changes: make(chan struct{}, 1),
		errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Changes returns the channel signalled when the file changes.
func (w *FileWatcher) Changes() <-chan struct{} {
	return w.changes
}

// Errors returns the channel of watch errors.
func (w *FileWatcher) Errors() <-chan error {
	return w.errors
}

// Path returns the watched file.
func (w *FileWatcher) Path() string {
	return w.path
}

// Close stops the watcher.
func (w *FileWatcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	err := w.watcher.Close()
	w.closedWg.Wait()
	return err
}

// processLoop forwards fsnotify events for the watched file.
func (w *FileWatcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			select {
			case w.changes <- struct{}{}:
			default:
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}
