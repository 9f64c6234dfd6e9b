package pdf

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bft-labs/wqsuite/internal/adapters/fs"
	"github.com/bft-labs/wqsuite/internal/domain"
	"github.com/bft-labs/wqsuite/internal/proposal"
	"github.com/bft-labs/wqsuite/pkg/log"
)

func TestReportName(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	if got, want := ReportName(at), "Water_Analysis_Report_20260314_092653.pdf"; got != want {
		t.Errorf("ReportName() = %q, want %q", got, want)
	}
}

func TestProposalName(t *testing.T) {
	tests := []struct {
		project string
		want    string
	}{
		{"Riverside Town", "Proposal_riverside-town.pdf"},
		{"  Lake  View 2 ", "Proposal_lake-view-2.pdf"},
		{"!!!", "Proposal_project.pdf"},
	}
	for _, tt := range tests {
		if got := ProposalName(tt.project); got != tt.want {
			t.Errorf("ProposalName(%q) = %q, want %q", tt.project, got, tt.want)
		}
	}
}

func assertPDF(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("%s is not a PDF document", path)
	}
}

func TestRenderer_RenderReport(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(fs.NewOutputDir(dir), log.NewNoopLogger())

	report := domain.Report{
		Title:       "Water Quality Analysis Report",
		GeneratedAt: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
		Rows: []domain.ReportRow{
			{Parameter: "pH", Category: "Physical", Value: 7.2, Limit: "6.5 - 8.5", Status: domain.StatusPass},
			{Parameter: "Turbidity", Category: "Physical", Value: 9, Unit: "NTU", Limit: "max 5 NTU",
				Status: domain.StatusFail, Remedy: "Coagulation, sedimentation and filtration."},
			{Parameter: "Zinc", Value: 1, Status: domain.StatusUnknown},
		},
		PassCount: 1,
		FailCount: 1,
	}

	path, err := r.RenderReport(context.Background(), report)
	if err != nil {
		t.Fatalf("RenderReport() error = %v", err)
	}
	if filepath.Base(path) != "Water_Analysis_Report_20260314_090000.pdf" {
		t.Errorf("path = %q", path)
	}
	assertPDF(t, path)
}

func TestRenderer_RenderProposal(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(fs.NewOutputDir(dir), log.NewNoopLogger())

	plan, err := proposal.Build(domain.ProposalInputs{
		Name:              "Riverside Town",
		Community:         domain.CommunityGeometric,
		CurrentPopulation: 12000,
		GrowthRatePercent: 2.5,
		Source:            domain.SourceRiver,
		DesignPeriodYears: 20,
	}, time.Now())
	if err != nil {
		t.Fatal(err)
	}

	path, err := r.RenderProposal(context.Background(), plan)
	if err != nil {
		t.Fatalf("RenderProposal() error = %v", err)
	}
	if path != filepath.Join(dir, "Proposal_riverside-town.pdf") {
		t.Errorf("path = %q", path)
	}
	assertPDF(t, path)
}

func TestRenderer_CanceledContext(t *testing.T) {
	r := NewRenderer(fs.NewOutputDir(t.TempDir()), log.NewNoopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.RenderReport(ctx, domain.Report{Title: "x"}); err == nil {
		t.Error("RenderReport() with canceled context succeeded")
	}
}
