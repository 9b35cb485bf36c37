package fixture

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// WatcherConfig configures the fixture watcher
type WatcherConfig struct {
	// Root is the directory to watch
	Root string

	// Pattern selects the files whose changes count (default: DefaultPattern)
	Pattern string

	// DebounceDelay is how long to wait for more changes before reporting
	DebounceDelay time.Duration

	// Logger for logging events
	Logger *slog.Logger
}

// Watcher reports changes to fixture files below a root directory.
type Watcher struct {
	config  WatcherConfig
	watcher *fsnotify.Watcher
	logger  *slog.Logger

	// Debouncing: collect changes before reporting
	pendingMu sync.Mutex
	pending   map[string]fsnotify.Op // path → most recent operation
}

// NewWatcher creates a new fixture watcher
func NewWatcher(config WatcherConfig) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Pattern == "" {
		config.Pattern = DefaultPattern
	}
	if config.DebounceDelay <= 0 {
		config.DebounceDelay = 100 * time.Millisecond
	}

	return &Watcher{
		config:  config,
		watcher: fsw,
		logger:  config.Logger,
		pending: make(map[string]fsnotify.Op),
	}, nil
}

// Watch calls fn with the sorted paths of changed fixture files until ctx is
// done. Changes arriving within one debounce period are reported together.
func (w *Watcher) Watch(ctx context.Context, fn func(changed []string)) error {
	defer w.watcher.Close()

	if err := w.addWatchesRecursive(w.config.Root); err != nil {
		return err
	}

	w.logger.Info("Fixture watcher started",
		"root", w.config.Root,
		"pattern", w.config.Pattern,
		"debounce", w.config.DebounceDelay)

	ticker := time.NewTicker(w.config.DebounceDelay)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("Watcher error", "error", err)

		case <-ticker.C:
			if changed := w.flushPending(); len(changed) > 0 {
				fn(changed)
			}
		}
	}
}

// Watch watches root with the given config and calls fn on changes until
// ctx is done. config.Root is overwritten by root.
func Watch(ctx context.Context, root string, config WatcherConfig, fn func(changed []string)) error {
	config.Root = root
	w, err := NewWatcher(config)
	if err != nil {
		return err
	}
	return w.Watch(ctx, fn)
}

// addWatchesRecursive adds watches to all directories
func (w *Watcher) addWatchesRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Only watch directories
		if !d.IsDir() {
			return nil
		}

		// Skip hidden directories below the root
		if path != root && skipDir(path) {
			return filepath.SkipDir
		}

		if err := w.watcher.Add(path); err != nil {
			w.logger.Warn("Failed to watch directory",
				"path", path,
				"error", err)
		} else {
			w.logger.Debug("Watching directory", "path", path)
		}

		return nil
	})
}

func skipDir(path string) bool {
	base := filepath.Base(path)
	return base == "vendor" || strings.HasPrefix(base, ".")
}

// handleFSEvent processes a single fsnotify event
func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	path := event.Name

	// New directories need their own watch
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			w.handleNewDirectory(path)
			return
		}
	}

	relPath, err := filepath.Rel(w.config.Root, path)
	if err != nil {
		return
	}
	if ok, _ := doublestar.Match(w.config.Pattern, filepath.ToSlash(relPath)); !ok {
		return
	}

	// Accumulate pending changes
	w.pendingMu.Lock()
	w.pending[path] = event.Op
	w.pendingMu.Unlock()

	w.logger.Debug("Fixture change detected",
		"path", relPath,
		"op", event.Op.String())
}

// handleNewDirectory adds a watch to a newly created directory
func (w *Watcher) handleNewDirectory(path string) {
	if skipDir(path) {
		return
	}

	if err := w.watcher.Add(path); err != nil {
		w.logger.Warn("Failed to watch new directory",
			"path", path,
			"error", err)
	} else {
		w.logger.Debug("Added watch for new directory", "path", path)
	}
}

// flushPending returns and clears the accumulated changes
func (w *Watcher) flushPending() []string {
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()

	if len(w.pending) == 0 {
		return nil
	}

	changed := make([]string, 0, len(w.pending))
	for path := range w.pending {
		changed = append(changed, path)
	}
	w.pending = make(map[string]fsnotify.Op)

	sort.Strings(changed)
	return changed
}
