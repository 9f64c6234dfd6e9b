package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bft-labs/wqsuite/internal/ports"
)

// Janitor periodically removes old generated documents from the output
// directory, keeping only the newest ones.
type Janitor struct {
	mu sync.Mutex

	dir            string
	keep           int
	interval       time.Duration
	suffix         string
	runImmediately bool
	logger         ports.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// JanitorConfig holds configuration options for the Janitor.
type JanitorConfig struct {
	// Dir is the output directory to prune.
	Dir string

	// Keep is how many of the newest documents survive a pass.
	// Default: 20
	Keep int

	// Interval is how often to prune.
	// Default: 1 hour
	Interval time.Duration

	// Suffix selects the files the janitor owns.
	// Default: ".pdf"
	Suffix string

	// RunImmediately if true, prunes once on start.
	RunImmediately bool
}

// DefaultJanitorConfig returns a JanitorConfig with sensible defaults.
func DefaultJanitorConfig() JanitorConfig {
	return JanitorConfig{
		Keep:           20,
		Interval:       time.Hour,
		Suffix:         ".pdf",
		RunImmediately: true,
	}
}

// NewJanitor creates a janitor. Non-positive values fall back to defaults.
func NewJanitor(cfg JanitorConfig, logger ports.Logger) *Janitor {
	def := DefaultJanitorConfig()
	if cfg.Keep <= 0 {
		cfg.Keep = def.Keep
	}
	if cfg.Interval <= 0 {
		cfg.Interval = def.Interval
	}
	if cfg.Suffix == "" {
		cfg.Suffix = def.Suffix
	}
	return &Janitor{
		dir:            cfg.Dir,
		keep:           cfg.Keep,
		interval:       cfg.Interval,
		suffix:         cfg.Suffix,
		runImmediately: cfg.RunImmediately,
		logger:         logger,
	}
}

// Start begins the cleanup loop.
func (j *Janitor) Start(ctx context.Context) {
	if j.dir == "" {
		j.logger.Warn("report janitor disabled: no output directory configured")
		return
	}

	loopCtx, cancel := context.WithCancel(ctx)
	j.mu.Lock()
	j.cancel = cancel
	j.mu.Unlock()

	j.logger.Info("report janitor started",
		ports.String("dir", j.dir),
		ports.Int("keep", j.keep),
		ports.Duration("interval", j.interval),
	)

	j.wg.Add(1)
	go j.loop(loopCtx)
}

// Stop ends the cleanup loop and waits for it to exit.
func (j *Janitor) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *Janitor) loop(ctx context.Context) {
	defer j.wg.Done()

	if j.runImmediately {
		j.Prune(ctx)
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.Prune(ctx)
		}
	}
}

// Prune performs one pass and returns how many files were removed.
func (j *Janitor) Prune(ctx context.Context) int {
	docs, err := listDocuments(j.dir, j.suffix)
	if err != nil {
		if !os.IsNotExist(err) {
			j.logger.Error("report janitor: list failed", ports.String("dir", j.dir), ports.Err(err))
		}
		return 0
	}
	if len(docs) <= j.keep {
		return 0
	}

	removed := 0
	var freed int64
	for _, doc := range docs[j.keep:] {
		if ctx.Err() != nil {
			break
		}
		if err := os.Remove(doc.path); err != nil {
			j.logger.Error("report janitor: remove failed", ports.Path(doc.path), ports.Err(err))
			continue
		}
		removed++
		freed += doc.size
	}

	if removed > 0 {
		j.logger.Info("report janitor completed",
			ports.Int("removed", removed),
			ports.String("freed", formatBytes(freed)),
		)
	}
	return removed
}

type document struct {
	path    string
	modTime time.Time
	size    int64
}

// listDocuments returns the matching files newest first.
func listDocuments(dir, suffix string) ([]document, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var docs []document
	for _, e := range ents {
		if e.IsDir() || !strings.HasSuffix(e.Name(), suffix) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, err
		}
		docs = append(docs, document{
			path:    filepath.Join(dir, e.Name()),
			modTime: info.ModTime(),
			size:    info.Size(),
		})
	}
	sort.Slice(docs, func(a, b int) bool {
		if docs[a].modTime.Equal(docs[b].modTime) {
			return docs[a].path > docs[b].path
		}
		return docs[a].modTime.After(docs[b].modTime)
	})
	return docs, nil
}

func formatBytes(b int64) string {
	const (
		_          = iota
		KB float64 = 1 << (10 * iota)
		MB
	)

	fb := float64(b)
	switch {
	case fb >= MB:
		return fmt.Sprintf("%.2fMiB", fb/MB)
	case fb >= KB:
		return fmt.Sprintf("%.2fKiB", fb/KB)
	default:
		return fmt.Sprintf("%dB", b)
	}
}
