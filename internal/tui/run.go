package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bft-labs/wqsuite/internal/ports"
)

// Run starts the full-screen program over session s and blocks until the user
// quits or ctx is cancelled.
func Run(ctx context.Context, s Session, logger ports.Logger) error {
	p := tea.NewProgram(New(ctx, s, logger), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
