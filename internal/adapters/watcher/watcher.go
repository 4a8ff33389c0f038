// Package watcher implements file system watching for notebook documents.
package watcher

import (
	"context"
	"iter"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/nbxlab/nbenv/internal/core/ports"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 100

// Watcher implements notebook watching using fsnotify. Parent directories
// are watched rather than the files themselves so editors that replace files
// on save (rename-over) are still observed.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	watched   map[string]struct{}
	events    chan ports.WatchEvent
}

// NewWatcher creates a new file system watcher.
func NewWatcher() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsWatcher: fw,
		watched:   make(map[string]struct{}),
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
	}, nil
}

// Start begins watching the directories containing the given files.
func (w *Watcher) Start(ctx context.Context, paths []string) error {
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		w.watched[abs] = struct{}{}

		dir := filepath.Dir(abs)
		if err := w.fsWatcher.Add(dir); err != nil {
			return err
		}
	}

	go w.processEvents(ctx)
	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator of file system events for the watched files.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if _, tracked := w.watched[abs]; !tracked {
				continue
			}
			w.forward(ctx, abs, event.Op)
		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			// Errors are transient; keep watching.
		}
	}
}

func (w *Watcher) forward(ctx context.Context, path string, op fsnotify.Op) {
	var watchOp ports.WatchOp
	switch {
	case op.Has(fsnotify.Create):
		watchOp = ports.OpCreate
	case op.Has(fsnotify.Write):
		watchOp = ports.OpWrite
	case op.Has(fsnotify.Remove):
		watchOp = ports.OpRemove
	case op.Has(fsnotify.Rename):
		watchOp = ports.OpRename
	default:
		return
	}

	select {
	case w.events <- ports.WatchEvent{Path: path, Operation: watchOp}:
	case <-ctx.Done():
	}
}
