package corpus

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher re-runs a callback whenever a watched corpus file is written.
// Directories are filtered to corpus files; explicitly watched files
// pass through regardless of extension.
type Watcher struct {
	watcher    *fsnotify.Watcher
	logger     *zap.Logger
	onChange   func(path string)
	watched    map[string]bool
	isWatching bool
}

func NewWatcher(logger *zap.Logger, onChange func(path string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	return &Watcher{
		watcher:  fsw,
		logger:   logger,
		onChange: onChange,
		watched:  map[string]bool{},
	}, nil
}

func (w *Watcher) Start(paths []string) error {
	if w.isWatching {
		return fmt.Errorf("already watching")
	}

	for _, path := range paths {
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		w.watched[path] = true
	}

	w.isWatching = true
	go w.watchLoop()
	return nil
}

func (w *Watcher) Stop() error {
	if !w.isWatching {
		return nil
	}

	w.isWatching = false
	return w.watcher.Close()
}

func (w *Watcher) watchLoop() {
	for w.isWatching {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFileEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch failure", zap.Error(err))
		}
	}
}

func (w *Watcher) handleFileEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Write != fsnotify.Write {
		return
	}
	if !w.watched[event.Name] && !hasCorpusExtension(event.Name) {
		return
	}

	// wait for a while after the change so editor write bursts coalesce
	// into a single rerun
	time.Sleep(100 * time.Millisecond)
	w.onChange(event.Name)
}
