package wqsuite

import (
	"context"
	"fmt"
	"sync"

	"github.com/bft-labs/wqsuite/internal/adapters/fs"
	"github.com/bft-labs/wqsuite/internal/adapters/pdf"
	"github.com/bft-labs/wqsuite/internal/analysis"
	"github.com/bft-labs/wqsuite/internal/app"
	"github.com/bft-labs/wqsuite/internal/domain"
	"github.com/bft-labs/wqsuite/internal/ports"
	"github.com/bft-labs/wqsuite/internal/proposal"
	"github.com/bft-labs/wqsuite/internal/standards"
)

// Suite owns the shared services and the sessions opened on them.
// Use New() to create an instance, then Start() to run the background
// watcher and janitor.
type Suite struct {
	config    Config
	logger    ports.Logger
	lifecycle *app.Lifecycle
	emitter   *eventEmitterWrapper

	registry *standards.Registry
	sessions *app.Manager
	watcher  *standards.Watcher
	janitor  *fs.Janitor

	mu sync.Mutex
}

// New creates a Suite. Standards are loaded here, so a broken standards file
// is reported before anything starts.
func New(cfg Config, opts ...Option) (*Suite, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger
	emitter := &eventEmitterWrapper{handler: o.eventHandler}

	set := standards.Defaults()
	if cfg.StandardsFile != "" {
		loaded, err := standards.LoadFile(cfg.StandardsFile)
		if err != nil {
			return nil, fmt.Errorf("load standards: %w", err)
		}
		set = loaded
	}
	registry, err := standards.NewRegistry(set)
	if err != nil {
		return nil, err
	}

	out := fs.NewOutputDir(cfg.OutputDir)
	renderer := pdf.NewRenderer(out, logger)
	sessions, err := app.NewManager(app.Collaborators{
		Catalog:   registry,
		Analyzer:  analysis.NewAnalyzer(registry),
		Reports:   renderer,
		Proposals: proposal.NewGenerator(renderer, logger),
	}, logger)
	if err != nil {
		return nil, err
	}

	s := &Suite{
		config:    cfg,
		logger:    logger,
		lifecycle: app.NewLifecycle(logger, emitter),
		emitter:   emitter,
		registry:  registry,
		sessions:  sessions,
	}

	if cfg.WatchStandards {
		s.watcher = standards.NewWatcher(standards.WatcherConfig{
			Path:          cfg.StandardsFile,
			DebounceDelay: cfg.DebounceDelay,
			OnReload: func(set []standards.Standard) {
				emitter.onReload(cfg.StandardsFile, len(set))
			},
		}, registry, logger)
	}
	if cfg.ReportKeep > 0 {
		s.janitor = fs.NewJanitor(fs.JanitorConfig{
			Dir:            cfg.OutputDir,
			Keep:           cfg.ReportKeep,
			Interval:       cfg.JanitorInterval,
			RunImmediately: true,
		}, logger)
	}
	return s, nil
}

// Start runs the background workers. Returns immediately.
func (s *Suite) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.lifecycle.CanStart() {
		return fmt.Errorf("suite already %s", s.lifecycle.State())
	}
	if err := s.lifecycle.TransitionTo(app.StateStarting, "Start() called"); err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.lifecycle.SetCancel(cancel)

	if s.watcher != nil {
		if err := s.watcher.Start(runCtx); err != nil {
			cancel()
			_ = s.lifecycle.TransitionTo(app.StateCrashed, "standards watcher failed: "+err.Error())
			return err
		}
	}
	if s.janitor != nil {
		s.janitor.Start(runCtx)
	}

	return s.lifecycle.TransitionTo(app.StateRunning, "workers started")
}

// Stop closes every session and stops the background workers.
func (s *Suite) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions.CloseAll()
	if !s.lifecycle.CanStop() {
		return nil
	}
	if err := s.lifecycle.TransitionTo(app.StateStopping, "Stop() called"); err != nil {
		return err
	}
	s.lifecycle.Cancel()

	if s.watcher != nil {
		if err := s.watcher.Stop(); err != nil {
			s.logger.Error("standards watcher shutdown failed", ports.Err(err))
		}
	}
	if s.janitor != nil {
		s.janitor.Stop()
	}
	return s.lifecycle.TransitionTo(app.StateStopped, "graceful shutdown")
}

// Status returns the current lifecycle state.
// Safe to call concurrently from any goroutine.
func (s *Suite) Status() State {
	return State(s.lifecycle.State())
}

// OpenSession opens a new session with an empty batch.
func (s *Suite) OpenSession() (*app.Session, error) {
	return s.sessions.Open()
}

// CloseSession closes a session and drops its batch.
func (s *Suite) CloseSession(id string) error {
	return s.sessions.Close(id)
}

// Sessions returns the number of open sessions.
func (s *Suite) Sessions() int {
	return s.sessions.Len()
}

// Catalog returns the parameter names new sessions will offer.
func (s *Suite) Catalog() []domain.ParameterID {
	return s.registry.Names()
}

// Standards returns the active standards.
func (s *Suite) Standards() []standards.Standard {
	return s.registry.All()
}

// OutputDir returns where documents are written.
func (s *Suite) OutputDir() string {
	return s.config.OutputDir
}
