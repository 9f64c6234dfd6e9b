package proposal

import (
	"context"
	"time"

	"github.com/bft-labs/wqsuite/internal/domain"
	"github.com/bft-labs/wqsuite/internal/ports"
)

// Renderer writes a plan to a document and returns its path.
type Renderer interface {
	RenderProposal(ctx context.Context, plan Plan) (string, error)
}

// Generator implements ports.ProposalGenerator.
type Generator struct {
	renderer Renderer
	logger   ports.Logger
	now      func() time.Time
}

// NewGenerator creates a generator rendering through r.
func NewGenerator(r Renderer, logger ports.Logger) *Generator {
	return &Generator{renderer: r, logger: logger, now: time.Now}
}

// GenerateProposal builds the plan and renders it.
func (g *Generator) GenerateProposal(ctx context.Context, in domain.ProposalInputs) (string, error) {
	plan, err := Build(in, g.now())
	if err != nil {
		return "", err
	}
	path, err := g.renderer.RenderProposal(ctx, plan)
	if err != nil {
		return "", err
	}
	g.logger.Info("proposal generated",
		ports.String("project", in.Name),
		ports.Int("design_population", plan.DesignPopulation),
		ports.Path(path),
	)
	return path, nil
}
