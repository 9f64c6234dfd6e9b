package domain

import (
	"fmt"
	"strings"
)

// CommunityModel selects the population growth law of a proposal.
type CommunityModel string

const (
	// CommunityGeometric models a city: compound growth.
	CommunityGeometric CommunityModel = "geometric"
	// CommunityArithmetic models a village: linear growth.
	CommunityArithmetic CommunityModel = "arithmetic"
)

// Label returns the human-readable community type.
func (c CommunityModel) Label() string {
	switch c {
	case CommunityGeometric:
		return "City (Geometric)"
	case CommunityArithmetic:
		return "Village (Arithmetic)"
	default:
		return string(c)
	}
}

// WaterSource is the raw water source of a proposal.
type WaterSource string

const (
	SourceRiver       WaterSource = "river"
	SourceGroundwater WaterSource = "groundwater"
	SourceRainwater   WaterSource = "rainwater"
)

// WaterSources lists every supported source in display order.
var WaterSources = []WaterSource{SourceRiver, SourceGroundwater, SourceRainwater}

// Label returns the human-readable source name.
func (s WaterSource) Label() string {
	switch s {
	case SourceRiver:
		return "River/Stream"
	case SourceGroundwater:
		return "Groundwater (Borehole)"
	case SourceRainwater:
		return "Rainwater"
	default:
		return string(s)
	}
}

// ProposalInputs holds the inputs of the proposal workflow.
type ProposalInputs struct {
	Name              string
	Community         CommunityModel
	CurrentPopulation int
	GrowthRatePercent float64
	Source            WaterSource
	DesignPeriodYears int
}

// Validate checks the inputs. Missing name or population yields
// ErrMissingProposalFields; any other out-of-range value yields ErrInvalidProposal.
func (p ProposalInputs) Validate() error {
	if strings.TrimSpace(p.Name) == "" || p.CurrentPopulation == 0 {
		return ErrMissingProposalFields
	}
	if p.CurrentPopulation < 0 {
		return fmt.Errorf("%w: population must be at least 1", ErrInvalidProposal)
	}
	if p.GrowthRatePercent < 0 {
		return fmt.Errorf("%w: growth rate must not be negative", ErrInvalidProposal)
	}
	if p.DesignPeriodYears < 1 {
		return fmt.Errorf("%w: design period must be at least 1 year", ErrInvalidProposal)
	}
	switch p.Community {
	case CommunityGeometric, CommunityArithmetic:
	default:
		return fmt.Errorf("%w: unknown community model %q", ErrInvalidProposal, p.Community)
	}
	switch p.Source {
	case SourceRiver, SourceGroundwater, SourceRainwater:
	default:
		return fmt.Errorf("%w: unknown water source %q", ErrInvalidProposal, p.Source)
	}
	return nil
}
