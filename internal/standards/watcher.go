package standards

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/wqsuite/internal/ports"
)

// DefaultDebounceDelay is how long the watcher waits after the last change
// before reloading.
const DefaultDebounceDelay = 200 * time.Millisecond

// Watcher reloads a standards file into a Registry whenever it changes.
// Limits reloaded this way apply to the next analysis; the parameter names
// an open session was created with do not change.
type Watcher struct {
	mu sync.Mutex

	path          string
	registry      *Registry
	logger        ports.Logger
	debounceDelay time.Duration
	onReload      func([]Standard)

	cancel   context.CancelFunc
	wg       sync.WaitGroup
	debounce *time.Timer
}

// WatcherConfig holds the options of a Watcher.
type WatcherConfig struct {
	// Path is the standards file to watch.
	Path string

	// DebounceDelay is the quiet period after a change before reloading.
	// Default: 200 milliseconds
	DebounceDelay time.Duration

	// OnReload, if set, is called after every successful reload.
	OnReload func([]Standard)
}

// NewWatcher creates a watcher for cfg.Path feeding registry.
func NewWatcher(cfg WatcherConfig, registry *Registry, logger ports.Logger) *Watcher {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = DefaultDebounceDelay
	}
	return &Watcher{
		path:          cfg.Path,
		registry:      registry,
		logger:        logger,
		debounceDelay: cfg.DebounceDelay,
		onReload:      cfg.OnReload,
	}
}

// Start begins watching. The directory holding the file is watched so that
// editors which replace the file by rename are picked up.
func (w *Watcher) Start(ctx context.Context) error {
	if w.path == "" {
		w.logger.Warn("standards watcher disabled: no standards file configured")
		return nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	w.mu.Lock()
	w.cancel = cancel
	w.mu.Unlock()

	w.wg.Add(1)
	go w.watchLoop(watchCtx, fsw)

	w.logger.Info("standards watcher started", ports.Path(w.path))
	return nil
}

// Stop ends watching and waits for the loop to exit.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	cancel := w.cancel
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
	return nil
}

// Reload reads the file and swaps it into the registry.
// On any error the previous standards stay active.
func (w *Watcher) Reload() error {
	set, err := LoadFile(w.path)
	if err != nil {
		w.logger.Error("standards reload failed", ports.Path(w.path), ports.Err(err))
		return err
	}
	if err := w.registry.Replace(set); err != nil {
		w.logger.Error("standards rejected", ports.Path(w.path), ports.Err(err))
		return err
	}
	w.logger.Info("standards reloaded",
		ports.Path(w.path),
		ports.Int("parameters", len(set)),
	)
	if w.onReload != nil {
		w.onReload(set)
	}
	return nil
}

func (w *Watcher) watchLoop(ctx context.Context, fsw *fsnotify.Watcher) {
	defer w.wg.Done()
	defer fsw.Close()

	name := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.debounceReload(ctx)

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error("standards watcher error", ports.Err(err))
		}
	}
}

func (w *Watcher) debounceReload(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(w.debounceDelay, func() {
		if ctx.Err() != nil {
			return
		}
		_ = w.Reload()
	})
}
