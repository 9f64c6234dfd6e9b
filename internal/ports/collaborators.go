package ports

import (
	"context"

	"github.com/bft-labs/wqsuite/internal/domain"
)

// ParameterCatalog supplies the closed set of parameter identifiers.
type ParameterCatalog interface {
	// Names returns the identifiers in display order. The list is never
	// empty; its first element is the default staged parameter.
	Names() []domain.ParameterID
}

// BatchAnalyzer evaluates a batch against parameter standards.
type BatchAnalyzer interface {
	// Analyze returns display findings and the report data for the batch.
	// Callers guarantee entries is non-empty.
	Analyze(ctx context.Context, entries []domain.Entry) (domain.Findings, domain.Report, error)
}

// ReportRenderer produces a document from analysis report data.
type ReportRenderer interface {
	// RenderReport writes the report and returns the path of the document.
	RenderReport(ctx context.Context, report domain.Report) (string, error)
}

// ProposalGenerator produces a water supply proposal document.
type ProposalGenerator interface {
	// GenerateProposal writes the proposal and returns the path of the document.
	// Callers guarantee inputs passed domain.ProposalInputs.Validate.
	GenerateProposal(ctx context.Context, inputs domain.ProposalInputs) (string, error)
}
