// Package watch re-checks source files as they change.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/sirkon/stylecheck/internal/walk"
)

// DefaultDebounce is used when Config.Debounce is not set.
const DefaultDebounce = 100 * time.Millisecond

// Config configures the watcher.
type Config struct {
	// Root is either a directory watched recursively or a single file.
	Root string

	// Debounce is how long to collect changes before checking them.
	Debounce time.Duration

	// Logger for watcher events.
	Logger *slog.Logger
}

// Watcher checks files under Root again after they were created or written.
type Watcher struct {
	root     string
	single   bool
	debounce time.Duration
	scanner  walk.FileScanner
	fsw      *fsnotify.Watcher
	logger   *slog.Logger

	// Paths changed since the last flush.
	pending map[string]struct{}
}

// New is [Watcher] constructor.
func New(cfg Config, scanner walk.FileScanner) (*Watcher, error) {
	info, err := os.Stat(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("stat watch root: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fs watcher: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{
		root:     cfg.Root,
		single:   !info.IsDir(),
		debounce: debounce,
		scanner:  scanner,
		fsw:      fsw,
		logger:   logger,
		pending:  map[string]struct{}{},
	}, nil
}

// Run watches for changes until the context is done. Changed files are
// checked one at a time, in sorted order, from the calling goroutine.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		if err := w.fsw.Close(); err != nil {
			w.logger.Debug("failed to close fs watcher", "error", err)
		}
	}()

	if w.single {
		// Editors often replace files, so the parent directory is watched.
		if err := w.fsw.Add(filepath.Dir(w.root)); err != nil {
			return fmt.Errorf("watch %s: %w", w.root, err)
		}
	} else if err := w.addRecursive(w.root); err != nil {
		return fmt.Errorf("watch %s: %w", w.root, err)
	}

	w.logger.Info("watching for changes", "root", w.root, "debounce", w.debounce)

	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", "error", err)

		case <-ticker.C:
			w.flush(ctx)
		}
	}
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			w.logger.Warn("failed to walk directory", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.IsDir() {
			return nil
		}

		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}

		if err := w.fsw.Add(path); err != nil {
			w.logger.Warn("failed to watch directory", "path", path, "error", err)
		} else {
			w.logger.Debug("watching directory", "path", path)
		}

		return nil
	})
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := event.Name

	if w.single {
		if filepath.Clean(path) != filepath.Clean(w.root) {
			return
		}
		if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) {
			w.pending[w.root] = struct{}{}
		}
		return
	}

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			if err := w.addRecursive(path); err != nil {
				w.logger.Warn("failed to watch new directory", "path", path, "error", err)
			}
			return
		}
	}

	if !walk.Eligible(path) {
		return
	}

	if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) {
		w.pending[path] = struct{}{}
		w.logger.Debug("file change detected", "path", path, "op", event.Op.String())
	}
}

func (w *Watcher) flush(ctx context.Context) {
	if len(w.pending) == 0 {
		return
	}

	paths := make([]string, 0, len(w.pending))
	for path := range w.pending {
		paths = append(paths, path)
	}
	slices.Sort(paths)
	clear(w.pending)

	for _, path := range paths {
		if ctx.Err() != nil {
			return
		}

		if _, err := os.Stat(path); err != nil {
			// Removed or renamed before we got to it.
			continue
		}

		if err := w.scanner.ScanFile(path); err != nil {
			w.logger.Warn("failed to check file", "path", path, "error", err)
		}
	}
}
