package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/bft-labs/wqsuite/internal/domain"
	"github.com/bft-labs/wqsuite/internal/editor"
	"github.com/bft-labs/wqsuite/internal/ports"
)

// proposalFields is the raw text the proposal form edits. It outlives each
// form so a rejected submission can be corrected in place.
type proposalFields struct {
	Name       string
	Community  domain.CommunityModel
	Population string
	Growth     string
	Source     domain.WaterSource
	Years      string
}

func defaultProposalFields() *proposalFields {
	return &proposalFields{
		Community: domain.CommunityGeometric,
		Growth:    "0.0",
		Source:    domain.SourceRiver,
		Years:     "1",
	}
}

// inputs converts the fields. An empty population reads as 0 so the session
// reports it as missing.
func (f *proposalFields) inputs() (domain.ProposalInputs, error) {
	in := domain.ProposalInputs{
		Name:      strings.TrimSpace(f.Name),
		Community: f.Community,
		Source:    f.Source,
	}
	var err error
	if s := strings.TrimSpace(f.Population); s != "" {
		if in.CurrentPopulation, err = strconv.Atoi(s); err != nil {
			return in, fmt.Errorf("current population: %w", err)
		}
	}
	if in.GrowthRatePercent, err = strconv.ParseFloat(strings.TrimSpace(f.Growth), 64); err != nil {
		return in, fmt.Errorf("growth rate: %w", err)
	}
	if in.DesignPeriodYears, err = strconv.Atoi(strings.TrimSpace(f.Years)); err != nil {
		return in, fmt.Errorf("design period: %w", err)
	}
	return in, nil
}

func newProposalForm(f *proposalFields, width int) *huh.Form {
	communities := []huh.Option[domain.CommunityModel]{
		huh.NewOption(domain.CommunityGeometric.Label(), domain.CommunityGeometric),
		huh.NewOption(domain.CommunityArithmetic.Label(), domain.CommunityArithmetic),
	}
	sources := make([]huh.Option[domain.WaterSource], 0, len(domain.WaterSources))
	for _, s := range domain.WaterSources {
		sources = append(sources, huh.NewOption(s.Label(), s))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project Name").
				Placeholder("e.g. Hill Village Scheme").
				Value(&f.Name),
			huh.NewSelect[domain.CommunityModel]().
				Title("Community Type").
				Options(communities...).
				Value(&f.Community),
			huh.NewInput().
				Title("Current Population").
				Value(&f.Population).
				Validate(validateOptionalCount),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Growth Rate (%)").
				Value(&f.Growth).
				Validate(validateRate),
			huh.NewSelect[domain.WaterSource]().
				Title("Water Source").
				Options(sources...).
				Value(&f.Source),
			huh.NewInput().
				Title("Design Period (Years)").
				Value(&f.Years).
				Validate(validateYears),
		),
	).WithTheme(huh.ThemeCharm())
	if width > 0 {
		form = form.WithWidth(width)
	}
	return form
}

func validateOptionalCount(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return errors.New("enter a whole number")
	}
	return nil
}

func validateRate(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return errors.New("enter a rate of 0 or more")
	}
	return nil
}

func validateYears(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return errors.New("enter at least 1 year")
	}
	return nil
}

// updateProposal forwards msg to the form. A completed form is submitted and
// replaced by a fresh one over the same fields; the form's own completion
// command is dropped so the program keeps running.
func (m *Model) updateProposal(msg tea.Msg) tea.Cmd {
	model, cmd := m.form.Update(msg)
	if updated, ok := model.(*huh.Form); ok {
		m.form = updated
	}
	switch m.form.State {
	case huh.StateCompleted:
		return tea.Batch(m.submitProposal(), m.resetForm())
	case huh.StateAborted:
		return m.resetForm()
	default:
		return cmd
	}
}

func (m *Model) resetForm() tea.Cmd {
	m.form = newProposalForm(m.fields, max(m.width-4, 0))
	return m.form.Init()
}

func (m *Model) submitProposal() tea.Cmd {
	in, err := m.fields.inputs()
	if err != nil {
		return m.showNotice(editor.Error(err.Error()))
	}
	path, notice, err := m.session.GenerateProposal(m.ctx, in)
	if err != nil {
		m.logger.Error("proposal failed", ports.String("project", in.Name), ports.Err(err))
	}
	if path != "" {
		m.proposalPath = path
	}
	return m.showNotice(notice)
}
