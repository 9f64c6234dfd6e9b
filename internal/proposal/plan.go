// Package proposal turns community and source data into a water supply
// proposal: projected population, design demand, storage and a treatment
// train for the chosen source.
package proposal

import (
	"math"
	"time"

	"github.com/bft-labs/wqsuite/internal/domain"
)

const (
	// Per-capita demand in litres per person per day.
	cityDemandLPCD    = 150.0
	villageDemandLPCD = 60.0

	maxDayFactor   = 1.8
	peakHourFactor = 2.7

	// Rainwater storage must bridge the dry season.
	dryDays = 120

	scheduleStep = 5
)

// YearPopulation is one row of the projection table.
type YearPopulation struct {
	Year       int
	Population int
}

// Plan is a computed proposal, ready to be rendered.
type Plan struct {
	Inputs      domain.ProposalInputs
	GeneratedAt time.Time

	Schedule         []YearPopulation
	DesignPopulation int

	PerCapitaLPCD  float64
	AverageDayM3   float64
	MaxDayM3       float64
	PeakHourM3PerH float64
	StorageM3      float64
	StorageBasis   string

	Treatment []string
}

// Project returns the population after years under the inputs' growth law.
func Project(model domain.CommunityModel, population int, ratePercent float64, years int) int {
	r := ratePercent / 100
	var p float64
	switch model {
	case domain.CommunityArithmetic:
		p = float64(population) * (1 + r*float64(years))
	default:
		p = float64(population) * math.Pow(1+r, float64(years))
	}
	return int(math.Round(p))
}

// Build computes the plan for validated inputs.
func Build(in domain.ProposalInputs, now time.Time) (Plan, error) {
	if err := in.Validate(); err != nil {
		return Plan{}, err
	}

	plan := Plan{Inputs: in, GeneratedAt: now}
	for y := 0; y < in.DesignPeriodYears; y += scheduleStep {
		plan.Schedule = append(plan.Schedule, YearPopulation{
			Year:       y,
			Population: Project(in.Community, in.CurrentPopulation, in.GrowthRatePercent, y),
		})
	}
	plan.DesignPopulation = Project(in.Community, in.CurrentPopulation, in.GrowthRatePercent, in.DesignPeriodYears)
	plan.Schedule = append(plan.Schedule, YearPopulation{Year: in.DesignPeriodYears, Population: plan.DesignPopulation})

	plan.PerCapitaLPCD = cityDemandLPCD
	if in.Community == domain.CommunityArithmetic {
		plan.PerCapitaLPCD = villageDemandLPCD
	}
	plan.AverageDayM3 = float64(plan.DesignPopulation) * plan.PerCapitaLPCD / 1000
	plan.MaxDayM3 = plan.AverageDayM3 * maxDayFactor
	plan.PeakHourM3PerH = plan.AverageDayM3 * peakHourFactor / 24

	switch in.Source {
	case domain.SourceRainwater:
		plan.StorageM3 = plan.AverageDayM3 * dryDays
		plan.StorageBasis = "120 dry-season days of average demand"
	default:
		plan.StorageM3 = plan.MaxDayM3 / 3
		plan.StorageBasis = "one third of maximum day demand"
	}
	plan.Treatment = TreatmentTrain(in.Source)
	return plan, nil
}

// TreatmentTrain returns the treatment units recommended for a source.
func TreatmentTrain(source domain.WaterSource) []string {
	switch source {
	case domain.SourceRiver:
		return []string{
			"Intake screening",
			"Coagulation and flocculation",
			"Sedimentation",
			"Rapid sand filtration",
			"Chlorination",
		}
	case domain.SourceGroundwater:
		return []string{
			"Borehole pump with sanitary seal",
			"Aeration for iron and manganese removal",
			"Pressure filtration",
			"Chlorination",
		}
	case domain.SourceRainwater:
		return []string{
			"Roof catchment with gutter screens",
			"First-flush diverter",
			"Slow sand filtration",
			"Chlorination at the storage tank",
		}
	default:
		return nil
	}
}
