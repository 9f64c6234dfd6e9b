// Package app holds the per-session controller that connects the batch
// editor to the analysis, report and proposal collaborators, the session
// manager, and the lifecycle of the background runtime.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/bft-labs/wqsuite/internal/domain"
	"github.com/bft-labs/wqsuite/internal/editor"
	"github.com/bft-labs/wqsuite/internal/ports"
)

// User-facing notice texts.
const (
	MsgAddParametersFirst = "Add parameters first!"
	MsgMissingProposal    = "Please fill in Project Name and Population."
	MsgProposalGenerated  = "Proposal Generated!"
)

// Collaborators are the external services a session consumes.
type Collaborators struct {
	Catalog   ports.ParameterCatalog
	Analyzer  ports.BatchAnalyzer
	Reports   ports.ReportRenderer
	Proposals ports.ProposalGenerator
}

func (c Collaborators) validate() error {
	if c.Catalog == nil || c.Analyzer == nil || c.Reports == nil || c.Proposals == nil {
		return errors.New("session collaborators incomplete")
	}
	return nil
}

// AnalysisResult is the outcome of a successful analysis run.
type AnalysisResult struct {
	Findings   domain.Findings
	Report     domain.Report
	ReportPath string
}

// Session is the state of one interactive user. It owns its editor; nothing
// in it is shared with other sessions. A session is driven from one goroutine.
type Session struct {
	id      string
	editor  *editor.BatchEditor
	collab  Collaborators
	logger  ports.Logger
	closed  bool
	results *AnalysisResult
}

// NewSession opens a session. The catalog is read once, here.
func NewSession(id string, c Collaborators, logger ports.Logger) (*Session, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	ed, err := editor.New(c.Catalog.Names(), editor.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return &Session{id: id, editor: ed, collab: c, logger: logger}, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Closed reports whether the session was closed.
func (s *Session) Closed() bool { return s.closed }

// Names returns the catalog captured when the session opened.
func (s *Session) Names() []domain.ParameterID { return s.editor.Names() }

// Snapshot returns the editor state to render.
func (s *Session) Snapshot() editor.Snapshot { return s.editor.Snapshot() }

// LastAnalysis returns the most recent successful analysis, if any.
func (s *Session) LastAnalysis() (AnalysisResult, bool) {
	if s.results == nil {
		return AnalysisResult{}, false
	}
	return *s.results, true
}

// Dispatch applies one editor action and returns the snapshot to render next.
func (s *Session) Dispatch(a editor.Action) (editor.Snapshot, editor.Notice, error) {
	if s.closed {
		return editor.Snapshot{}, editor.Notice{}, domain.ErrSessionClosed
	}
	return s.editor.Dispatch(a)
}

// ApplyRowActions applies row actions computed from one snapshot.
func (s *Session) ApplyRowActions(actions []editor.Action) (editor.Snapshot, error) {
	if s.closed {
		return editor.Snapshot{}, domain.ErrSessionClosed
	}
	return s.editor.ApplyRowActions(actions)
}

// RunAnalysis analyzes the current batch and renders its report.
//
// An empty batch yields a warning notice and the analyzer is not called.
// When the report cannot be written the findings are still returned with a
// warning notice; the render error is logged.
func (s *Session) RunAnalysis(ctx context.Context) (AnalysisResult, editor.Notice, error) {
	if s.closed {
		return AnalysisResult{}, editor.Notice{}, domain.ErrSessionClosed
	}
	entries := s.editor.Entries()
	if len(entries) == 0 {
		s.logger.Info("analysis requested for empty batch", ports.Session(s.id))
		return AnalysisResult{}, editor.Warning(MsgAddParametersFirst), nil
	}

	findings, report, err := s.collab.Analyzer.Analyze(ctx, entries)
	if err != nil {
		s.logger.Error("analysis failed", ports.Session(s.id), ports.Err(err))
		return AnalysisResult{}, editor.Error("Analysis failed: " + err.Error()), fmt.Errorf("analyze: %w", err)
	}
	result := AnalysisResult{Findings: findings, Report: report}

	path, err := s.collab.Reports.RenderReport(ctx, report)
	if err != nil {
		s.logger.Error("report rendering failed", ports.Session(s.id), ports.Err(err))
		s.results = &result
		return result, editor.Warning("Analysis complete, but the report could not be saved."), nil
	}
	result.ReportPath = path
	s.results = &result

	s.logger.Info("analysis complete",
		ports.Session(s.id),
		ports.Int("entries", len(entries)),
		ports.Int("failures", report.FailCount),
		ports.String("report", path),
	)
	return result, editor.Success("Report saved to " + path), nil
}

// GenerateProposal validates the inputs and generates the proposal document.
// Missing name or population yields an error notice without calling the
// generator.
func (s *Session) GenerateProposal(ctx context.Context, in domain.ProposalInputs) (string, editor.Notice, error) {
	if s.closed {
		return "", editor.Notice{}, domain.ErrSessionClosed
	}
	if err := in.Validate(); err != nil {
		if errors.Is(err, domain.ErrMissingProposalFields) {
			return "", editor.Error(MsgMissingProposal), nil
		}
		s.logger.Info("proposal inputs rejected", ports.Session(s.id), ports.Err(err))
		return "", editor.Error(err.Error()), nil
	}

	path, err := s.collab.Proposals.GenerateProposal(ctx, in)
	if err != nil {
		s.logger.Error("proposal generation failed", ports.Session(s.id), ports.Err(err))
		return "", editor.Error("Proposal could not be generated."), fmt.Errorf("generate proposal: %w", err)
	}
	return path, editor.Success(MsgProposalGenerated), nil
}

func (s *Session) close() {
	s.closed = true
	s.results = nil
}
