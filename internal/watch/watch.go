// Package watch reports when anything below a set of directory trees changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/taigrr/folder-compare/internal/pathfilter"
)

// DefaultDebounce is the quiet period that must pass after the last event
// before a change is reported.
const DefaultDebounce = 300 * time.Millisecond

// Watcher merges bursts of filesystem events under its roots into single
// change notifications. fsnotify is not recursive, so every directory is
// registered on its own and new directories are added as they appear.
type Watcher struct {
	fsw      *fsnotify.Watcher
	filter   *pathfilter.PathFilter
	debounce time.Duration
	logger   *slog.Logger
}

// New registers every directory below roots that filter does not exclude.
func New(roots []string, filter *pathfilter.PathFilter, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if filter == nil {
		filter, _ = pathfilter.New(nil)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &Watcher{fsw: fsw, filter: filter, debounce: debounce, logger: logger}
	for _, root := range roots {
		if err := w.addTree(root, false); err != nil {
			fsw.Close()
			return nil, err
		}
	}
	return w, nil
}

// addTree registers root and every directory below it. The exclusion check
// covers root itself only when checkRoot is set.
func (w *Watcher) addTree(root string, checkRoot bool) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return fmt.Errorf("failed to watch %s: %w", root, err)
			}
			w.logger.Warn("not watching unreadable entry", "path", path, "error", err)
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if (path != root || checkRoot) && w.filter.IsDirExcluded(filepath.ToSlash(path)) {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			if path == root {
				return fmt.Errorf("failed to watch %s: %w", root, err)
			}
			w.logger.Warn("failed to watch directory", "path", path, "error", err)
		}
		return nil
	})
}

// Watched returns the directories currently registered.
func (w *Watcher) Watched() []string {
	return w.fsw.WatchList()
}

// Run calls onChange once per burst of events until ctx is done. It closes
// the watcher before returning.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	defer w.fsw.Close()

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return errors.New("watcher closed")
			}
			if w.isExcluded(ev.Name) {
				w.logger.Debug("ignoring event for excluded path", "path", ev.Name, "op", ev.Op.String())
				continue
			}
			if ev.Has(fsnotify.Create) {
				// picks up directories created, or moved in, after startup
				if err := w.addTree(ev.Name, true); err != nil {
					w.logger.Debug("not watching new entry", "path", ev.Name, "error", err)
				}
			}
			if ev.Has(fsnotify.Chmod) && !ev.Has(fsnotify.Write) {
				continue
			}
			w.logger.Debug("filesystem event", "path", ev.Name, "op", ev.Op.String())
			pending = time.After(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return errors.New("watcher closed")
			}
			w.logger.Warn("watch error", "error", err)

		case <-pending:
			pending = nil
			onChange()
		}
	}
}

func (w *Watcher) isExcluded(path string) bool {
	slashPath := filepath.ToSlash(path)
	return w.filter.IsExcluded(slashPath) || w.filter.IsDirExcluded(slashPath)
}
