package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Logger is the minimal logging capability Watcher needs for
// debug-level diagnostics.
type Logger interface {
	Debugf(format string, args ...any)
}

// Watcher re-reads the config file at path whenever it changes on disk
// and invokes onReload with the freshly loaded Config. It runs its own
// goroutine; call Close to stop it.
type Watcher struct {
	fsw      *fsnotify.Watcher
	path     string
	onReload func(*Config)
	logger   Logger
	done     chan struct{}
}

// NewWatcher starts watching the directory containing path (fsnotify
// watches directories, not bare files, so renames/atomic saves are
// still observed) and calls onReload on every write or create event
// for that exact file.
func NewWatcher(path string, onReload func(*Config)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{fsw: fsw, path: path, onReload: onReload, done: make(chan struct{})}
	go w.loop()
	return w, nil
}

func (w *Watcher) SetLogger(l Logger) { w.logger = l }

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				if w.logger != nil {
					w.logger.Debugf("config: reload of %s failed: %v", w.path, err)
				}
				continue
			}
			w.onReload(cfg)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			if w.logger != nil {
				w.logger.Debugf("config: watch error: %v", err)
			}
		case <-w.done:
			return
		}
	}
}

// Close stops the watch goroutine and releases the underlying fsnotify
// watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
