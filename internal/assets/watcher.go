package assets

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"lumen/internal/logging"
)

// Watcher reports files under the watched directories that were written or
// created. Consumers drain Events between frames; events are dropped rather
// than blocking the render loop.
type Watcher struct {
	fsw    *fsnotify.Watcher
	Events chan string
	done   chan struct{}
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create watcher: %v", err)
	}

	w := &Watcher{
		fsw:    fsw,
		Events: make(chan string, 16),
		done:   make(chan struct{}),
	}

	for _, dir := range dirs {
		if err := w.addRecursive(dir); err != nil {
			fsw.Close()
			return nil, err
		}
	}

	go w.loop()
	return w, nil
}

func (w *Watcher) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if werr := w.fsw.Add(path); werr != nil {
				return fmt.Errorf("could not watch %s: %v", path, werr)
			}
		}
		return nil
	})
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case e, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			select {
			case w.Events <- e.Name:
			default:
				logging.Debug("dropping change event for %s", e.Name)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logging.Warn("asset watcher: %v", err)
		}
	}
}

func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
