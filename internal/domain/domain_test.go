package domain

import (
	"errors"
	"testing"
)

func TestEntry_String(t *testing.T) {
	tests := []struct {
		entry Entry
		want  string
	}{
		{Entry{Name: "pH", Value: 7.2}, "pH: 7.2"},
		{Entry{Name: "Turbidity", Value: 4}, "Turbidity: 4"},
		{Entry{Name: "Lead", Value: 0.015}, "Lead: 0.015"},
	}
	for _, tt := range tests {
		if got := tt.entry.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestSeverity_String(t *testing.T) {
	tests := map[Severity]string{
		SeverityFail:    "FAIL",
		SeverityPass:    "PASS",
		SeverityInfo:    "INFO",
		SeveritySection: "SECTION",
		SeverityTitle:   "TITLE",
		SeverityPlain:   "PLAIN",
	}
	for sev, want := range tests {
		if got := sev.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", sev, got, want)
		}
	}
}

func TestFindings_Count(t *testing.T) {
	f := Findings{
		{Severity: SeverityTitle, Text: "t"},
		{Severity: SeverityPass, Text: "a"},
		{Severity: SeverityFail, Text: "b"},
		{Severity: SeverityPass, Text: "c"},
	}
	if got := f.Count(SeverityPass); got != 2 {
		t.Errorf("Count(Pass) = %d, want 2", got)
	}
	if got := f.Count(SeverityInfo); got != 0 {
		t.Errorf("Count(Info) = %d, want 0", got)
	}
}

func TestReport_Compliant(t *testing.T) {
	if (Report{}).Compliant() {
		t.Error("empty report should not be compliant")
	}
	if !(Report{PassCount: 2}).Compliant() {
		t.Error("all-pass report should be compliant")
	}
	if (Report{PassCount: 2, FailCount: 1}).Compliant() {
		t.Error("report with a failure should not be compliant")
	}
}

func TestProposalInputs_Validate(t *testing.T) {
	valid := ProposalInputs{
		Name:              "Hilltop",
		Community:         CommunityArithmetic,
		CurrentPopulation: 800,
		GrowthRatePercent: 2.5,
		Source:            SourceGroundwater,
		DesignPeriodYears: 15,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*ProposalInputs)
		want   error
	}{
		{"missing name", func(p *ProposalInputs) { p.Name = "" }, ErrMissingProposalFields},
		{"missing population", func(p *ProposalInputs) { p.CurrentPopulation = 0 }, ErrMissingProposalFields},
		{"negative population", func(p *ProposalInputs) { p.CurrentPopulation = -4 }, ErrInvalidProposal},
		{"negative growth", func(p *ProposalInputs) { p.GrowthRatePercent = -0.1 }, ErrInvalidProposal},
		{"zero period", func(p *ProposalInputs) { p.DesignPeriodYears = 0 }, ErrInvalidProposal},
		{"unknown source", func(p *ProposalInputs) { p.Source = "sea" }, ErrInvalidProposal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			if err := in.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLabels(t *testing.T) {
	if got := SourceRiver.Label(); got != "River/Stream" {
		t.Errorf("SourceRiver.Label() = %q", got)
	}
	if got := CommunityGeometric.Label(); got != "City (Geometric)" {
		t.Errorf("CommunityGeometric.Label() = %q", got)
	}
}
