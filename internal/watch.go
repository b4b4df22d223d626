package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	tt "github.com/elmlint/elin/internal/types"
)

// Watcher re-lints elm files as they change on disk.
type Watcher struct {
	engine     *Engine
	logger     *zap.Logger
	watcher    *fsnotify.Watcher
	watchDirs  []string
	isWatching bool
	onIssues   func(filename string, issues []tt.Issue)
}

// NewWatcher wires a file watcher to the engine. onIssues receives the
// findings of every re-linted file.
func NewWatcher(engine *Engine, logger *zap.Logger, dirs []string, onIssues func(string, []tt.Issue)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("error creating watcher: %w", err)
	}
	return &Watcher{
		engine:    engine,
		logger:    logger,
		watcher:   fw,
		watchDirs: dirs,
		onIssues:  onIssues,
	}, nil
}

func (w *Watcher) StartWatching() error {
	if w.isWatching {
		return fmt.Errorf("already watching")
	}

	for _, dir := range w.watchDirs {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return w.watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}

	w.isWatching = true
	go w.watchLoop()
	return nil
}

func (w *Watcher) StopWatching() error {
	if !w.isWatching {
		w.logger.Warn("not watching")
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
			w.logger.Error("watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) handleFileEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Write != fsnotify.Write {
		return
	}
	if !strings.HasSuffix(event.Name, ".elm") {
		return
	}
	// editors write in bursts; let the file settle before re-linting
	time.Sleep(100 * time.Millisecond)
	issues, err := w.engine.Run(event.Name)
	if err != nil {
		w.logger.Error("lint error", zap.String("file", event.Name), zap.Error(err))
		return
	}
	w.onIssues(event.Name, issues)
}
