package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/scena/engine/core"
)

// Watcher reloads a configuration file whenever it changes on disk and hands
// the result to a callback. Parse and validation failures are logged and the
// previous configuration stays in effect.
type Watcher struct {
	path     string
	onChange func(*Config)

	done     chan struct{}
	fsnotify *fsnotify.Watcher
}

// NewWatcher starts watching the given configuration file. Close stops the
// watcher; it must be called exactly once.
func NewWatcher(path string, onChange func(*Config)) (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory instead of the file: editors replace files on
	// save, which silently drops a per-file watch.
	if err := fsWatch.Add(filepath.Dir(path)); err != nil {
		fsWatch.Close()
		return nil, err
	}

	w := &Watcher{
		path:     path,
		onChange: onChange,
		done:     make(chan struct{}),
		fsnotify: fsWatch,
	}
	go w.start()
	return w, nil
}

func (w *Watcher) start() {
	for {
		select {
		case e := <-w.fsnotify.Events:
			if filepath.Clean(e.Name) != filepath.Clean(w.path) {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				w.reload()
			}

		case e := <-w.fsnotify.Errors:
			core.LogError(e.Error())

		case <-w.done:
			w.fsnotify.Close()
			return
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		core.LogError("configuration reload failed: %s", err.Error())
		return
	}
	core.LogInfo("configuration reloaded from %s", w.path)
	w.onChange(cfg)
}

// Close stops watching the file.
func (w *Watcher) Close() {
	close(w.done)
}
