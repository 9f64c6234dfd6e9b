// Package pdf renders analysis reports and supply proposals as PDF documents
// using gofpdf.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/gosimple/slug"
	"github.com/jung-kurt/gofpdf"

	"github.com/bft-labs/wqsuite/internal/adapters/fs"
	"github.com/bft-labs/wqsuite/internal/domain"
	"github.com/bft-labs/wqsuite/internal/ports"
	"github.com/bft-labs/wqsuite/internal/proposal"
)

const (
	reportPrefix   = "Water_Analysis_Report"
	proposalPrefix = "Proposal"
	stampLayout    = "20060102_150405"

	pageWidth = 190.0
	lineH     = 7.0
)

// Renderer writes PDF documents into an output directory.
// It implements ports.ReportRenderer and proposal.Renderer.
type Renderer struct {
	out    *fs.OutputDir
	logger ports.Logger
	now    func() time.Time
}

// NewRenderer creates a renderer writing into out.
func NewRenderer(out *fs.OutputDir, logger ports.Logger) *Renderer {
	return &Renderer{out: out, logger: logger, now: time.Now}
}

// ReportName returns the file name of a report generated at t.
func ReportName(t time.Time) string {
	return fmt.Sprintf("%s_%s.pdf", reportPrefix, t.Format(stampLayout))
}

// ProposalName returns the file name of the proposal for a project.
func ProposalName(project string) string {
	s := slug.Make(project)
	if s == "" {
		s = "project"
	}
	return fmt.Sprintf("%s_%s.pdf", proposalPrefix, s)
}

// RenderReport writes the analysis report and returns its path.
func (r *Renderer) RenderReport(ctx context.Context, report domain.Report) (string, error) {
	generated := report.GeneratedAt
	if generated.IsZero() {
		generated = r.now()
	}

	doc := newDocument(report.Title)
	tr := doc.UnicodeTranslatorFromDescriptor("")

	heading(doc, report.Title)
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(pageWidth, lineH, "Generated "+generated.Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
	doc.CellFormat(pageWidth, lineH,
		fmt.Sprintf("%d passed, %d failed, %d evaluated", report.PassCount, report.FailCount, len(report.Rows)),
		"", 1, "L", false, 0, "")
	doc.Ln(3)

	widths := []float64{52, 26, 28, 42, 18, 24}
	tableHeader(doc, widths, []string{"Parameter", "Category", "Value", "Limit", "Unit", "Status"})
	doc.SetFont("Helvetica", "", 9)
	for _, row := range report.Rows {
		cells := []string{
			tr(string(row.Parameter)),
			row.Category,
			domain.FormatValue(row.Value),
			row.Limit,
			tr(row.Unit),
		}
		for i, c := range cells {
			doc.CellFormat(widths[i], lineH, c, "1", 0, "L", false, 0, "")
		}
		statusColor(doc, row.Status)
		doc.CellFormat(widths[5], lineH, string(row.Status), "1", 1, "C", false, 0, "")
		doc.SetTextColor(0, 0, 0)
	}

	var remedies []domain.ReportRow
	for _, row := range report.Rows {
		if row.Status == domain.StatusFail && row.Remedy != "" {
			remedies = append(remedies, row)
		}
	}
	if len(remedies) > 0 {
		doc.Ln(4)
		subheading(doc, "Recommended Treatment")
		doc.SetFont("Helvetica", "", 10)
		for _, row := range remedies {
			doc.MultiCell(pageWidth, 6, tr(fmt.Sprintf("%s: %s", row.Parameter, row.Remedy)), "", "L", false)
		}
	}

	doc.Ln(4)
	subheading(doc, "Verdict")
	doc.SetFont("Helvetica", "", 10)
	verdict := "The sample does not meet the drinking-water standards."
	if report.Compliant() {
		verdict = "The sample meets the drinking-water standards."
	}
	doc.MultiCell(pageWidth, 6, verdict, "", "L", false)

	return r.write(ctx, doc, ReportName(generated))
}

// RenderProposal writes the supply proposal and returns its path.
func (r *Renderer) RenderProposal(ctx context.Context, plan proposal.Plan) (string, error) {
	in := plan.Inputs
	doc := newDocument("Water Supply Proposal")
	tr := doc.UnicodeTranslatorFromDescriptor("")

	heading(doc, tr("Water Supply Proposal: "+in.Name))
	if !plan.GeneratedAt.IsZero() {
		doc.SetFont("Helvetica", "", 10)
		doc.CellFormat(pageWidth, lineH, "Generated "+plan.GeneratedAt.Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
	}
	doc.Ln(2)

	subheading(doc, "1. Design Basis")
	keyValues(doc, [][2]string{
		{"Community type", in.Community.Label()},
		{"Current population", fmt.Sprintf("%d", in.CurrentPopulation)},
		{"Growth rate", fmt.Sprintf("%s %% per year", domain.FormatValue(in.GrowthRatePercent))},
		{"Water source", in.Source.Label()},
		{"Design period", fmt.Sprintf("%d years", in.DesignPeriodYears)},
	})

	subheading(doc, "2. Population Projection")
	widths := []float64{40, 60}
	tableHeader(doc, widths, []string{"Year", "Population"})
	doc.SetFont("Helvetica", "", 10)
	for _, row := range plan.Schedule {
		doc.CellFormat(widths[0], lineH, fmt.Sprintf("%d", row.Year), "1", 0, "C", false, 0, "")
		doc.CellFormat(widths[1], lineH, fmt.Sprintf("%d", row.Population), "1", 1, "R", false, 0, "")
	}
	doc.Ln(3)

	subheading(doc, "3. Water Demand")
	keyValues(doc, [][2]string{
		{"Design population", fmt.Sprintf("%d", plan.DesignPopulation)},
		{"Per-capita demand", fmt.Sprintf("%.0f L/capita/day", plan.PerCapitaLPCD)},
		{"Average day demand", fmt.Sprintf("%.1f m3/day", plan.AverageDayM3)},
		{"Maximum day demand", fmt.Sprintf("%.1f m3/day", plan.MaxDayM3)},
		{"Peak hour demand", fmt.Sprintf("%.1f m3/hour", plan.PeakHourM3PerH)},
	})

	subheading(doc, "4. Storage")
	keyValues(doc, [][2]string{
		{"Required storage", fmt.Sprintf("%.1f m3", plan.StorageM3)},
		{"Basis", plan.StorageBasis},
	})

	subheading(doc, "5. Treatment Train")
	doc.SetFont("Helvetica", "", 10)
	for i, unit := range plan.Treatment {
		doc.CellFormat(pageWidth, 6, fmt.Sprintf("%d. %s", i+1, unit), "", 1, "L", false, 0, "")
	}

	return r.write(ctx, doc, ProposalName(in.Name))
}

func (r *Renderer) write(ctx context.Context, doc *gofpdf.Fpdf, name string) (string, error) {
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	path, err := r.out.Write(ctx, name, buf.Bytes())
	if err != nil {
		return "", err
	}
	r.logger.Debug("document written", ports.Path(path), ports.Int("bytes", buf.Len()))
	return path, nil
}

func newDocument(title string) *gofpdf.Fpdf {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle(title, true)
	doc.SetCreator("wqsuite", false)
	doc.SetMargins(10, 12, 10)
	doc.AliasNbPages("")
	doc.SetFooterFunc(func() {
		doc.SetY(-12)
		doc.SetFont("Helvetica", "I", 8)
		doc.SetTextColor(120, 120, 120)
		doc.CellFormat(0, 8, fmt.Sprintf("Page %d/{nb}", doc.PageNo()), "", 0, "C", false, 0, "")
		doc.SetTextColor(0, 0, 0)
	})
	doc.AddPage()
	return doc
}

func heading(doc *gofpdf.Fpdf, text string) {
	doc.SetFont("Helvetica", "B", 16)
	doc.SetTextColor(0, 51, 102)
	doc.CellFormat(pageWidth, 10, text, "", 1, "C", false, 0, "")
	doc.SetTextColor(0, 0, 0)
	doc.Ln(2)
}

func subheading(doc *gofpdf.Fpdf, text string) {
	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(pageWidth, 8, text, "", 1, "L", false, 0, "")
}

func tableHeader(doc *gofpdf.Fpdf, widths []float64, titles []string) {
	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(220, 230, 241)
	for i, t := range titles {
		doc.CellFormat(widths[i], lineH, t, "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)
}

func keyValues(doc *gofpdf.Fpdf, rows [][2]string) {
	for _, kv := range rows {
		doc.SetFont("Helvetica", "B", 10)
		doc.CellFormat(55, 6, kv[0]+":", "", 0, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 10)
		doc.CellFormat(pageWidth-55, 6, kv[1], "", 1, "L", false, 0, "")
	}
	doc.Ln(3)
}

func statusColor(doc *gofpdf.Fpdf, s domain.Status) {
	switch s {
	case domain.StatusPass:
		doc.SetTextColor(0, 128, 0)
	case domain.StatusFail:
		doc.SetTextColor(192, 0, 0)
	default:
		doc.SetTextColor(100, 100, 100)
	}
}
