package proposal

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/bft-labs/wqsuite/internal/domain"
)

func validInputs() domain.ProposalInputs {
	return domain.ProposalInputs{
		Name:              "Riverside",
		Community:         domain.CommunityGeometric,
		CurrentPopulation: 10000,
		GrowthRatePercent: 3,
		Source:            domain.SourceRiver,
		DesignPeriodYears: 20,
	}
}

func TestProject(t *testing.T) {
	tests := []struct {
		name  string
		model domain.CommunityModel
		p0    int
		rate  float64
		years int
		want  int
	}{
		{"geometric 20y", domain.CommunityGeometric, 10000, 3, 20, 18061},
		{"arithmetic 20y", domain.CommunityArithmetic, 10000, 3, 20, 16000},
		{"zero growth", domain.CommunityGeometric, 500, 0, 25, 500},
		{"year zero", domain.CommunityArithmetic, 1234, 5, 0, 1234},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Project(tt.model, tt.p0, tt.rate, tt.years); got != tt.want {
				t.Errorf("Project() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBuild_City(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	plan, err := Build(validInputs(), now)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	years := make([]int, 0, len(plan.Schedule))
	for _, row := range plan.Schedule {
		years = append(years, row.Year)
	}
	if diff := cmp.Diff([]int{0, 5, 10, 15, 20}, years); diff != "" {
		t.Errorf("schedule years (-want +got):\n%s", diff)
	}
	if plan.DesignPopulation != 18061 {
		t.Errorf("DesignPopulation = %d, want 18061", plan.DesignPopulation)
	}
	if plan.PerCapitaLPCD != 150 {
		t.Errorf("PerCapitaLPCD = %v, want 150", plan.PerCapitaLPCD)
	}
	wantAvg := 18061 * 150.0 / 1000
	if math.Abs(plan.AverageDayM3-wantAvg) > 1e-9 {
		t.Errorf("AverageDayM3 = %v, want %v", plan.AverageDayM3, wantAvg)
	}
	if math.Abs(plan.StorageM3-plan.MaxDayM3/3) > 1e-9 {
		t.Errorf("StorageM3 = %v, want a third of max day", plan.StorageM3)
	}
	if len(plan.Treatment) == 0 || plan.Treatment[0] != "Intake screening" {
		t.Errorf("Treatment = %v", plan.Treatment)
	}
	if !plan.GeneratedAt.Equal(now) {
		t.Errorf("GeneratedAt = %v", plan.GeneratedAt)
	}
}

func TestBuild_VillageRainwater(t *testing.T) {
	in := validInputs()
	in.Community = domain.CommunityArithmetic
	in.Source = domain.SourceRainwater
	in.DesignPeriodYears = 7

	plan, err := Build(in, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if len(plan.Schedule) != 3 || plan.Schedule[2].Year != 7 {
		t.Errorf("schedule = %+v, want years 0, 5, 7", plan.Schedule)
	}
	if plan.PerCapitaLPCD != 60 {
		t.Errorf("PerCapitaLPCD = %v, want 60", plan.PerCapitaLPCD)
	}
	if math.Abs(plan.StorageM3-plan.AverageDayM3*120) > 1e-9 {
		t.Errorf("StorageM3 = %v, want 120 days of average demand", plan.StorageM3)
	}
}

func TestBuild_InvalidInputs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.ProposalInputs)
		want   error
	}{
		{"blank name", func(in *domain.ProposalInputs) { in.Name = "  " }, domain.ErrMissingProposalFields},
		{"zero population", func(in *domain.ProposalInputs) { in.CurrentPopulation = 0 }, domain.ErrMissingProposalFields},
		{"negative rate", func(in *domain.ProposalInputs) { in.GrowthRatePercent = -1 }, domain.ErrInvalidProposal},
		{"zero period", func(in *domain.ProposalInputs) { in.DesignPeriodYears = 0 }, domain.ErrInvalidProposal},
		{"bad source", func(in *domain.ProposalInputs) { in.Source = "ocean" }, domain.ErrInvalidProposal},
		{"bad model", func(in *domain.ProposalInputs) { in.Community = "exponential" }, domain.ErrInvalidProposal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInputs()
			tt.mutate(&in)
			if _, err := Build(in, time.Now()); !errors.Is(err, tt.want) {
				t.Errorf("Build() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestTreatmentTrain_EverySource(t *testing.T) {
	for _, s := range domain.WaterSources {
		if len(TreatmentTrain(s)) == 0 {
			t.Errorf("no treatment train for %s", s)
		}
	}
	if TreatmentTrain("ocean") != nil {
		t.Error("unknown source returned a treatment train")
	}
}
