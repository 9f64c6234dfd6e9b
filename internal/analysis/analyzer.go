// Package analysis evaluates a batch of lab measurements against the active
// parameter standards and produces display findings plus report data.
package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/bft-labs/wqsuite/internal/domain"
	"github.com/bft-labs/wqsuite/internal/standards"
)

// ReportTitle heads both the findings and the rendered report.
const ReportTitle = "Water Quality Analysis Report"

// Lookup resolves a parameter to its standard. *standards.Registry satisfies it.
type Lookup interface {
	Lookup(name domain.ParameterID) (standards.Standard, bool)
}

// Analyzer implements ports.BatchAnalyzer.
type Analyzer struct {
	lookup Lookup
	now    func() time.Time
}

// NewAnalyzer creates an analyzer reading limits from lookup at call time,
// so reloaded standards apply to the next analysis.
func NewAnalyzer(lookup Lookup) *Analyzer {
	return &Analyzer{lookup: lookup, now: time.Now}
}

// Analyze evaluates entries. Findings are grouped by category in report
// order; within a category entries keep batch order.
func (a *Analyzer) Analyze(ctx context.Context, entries []domain.Entry) (domain.Findings, domain.Report, error) {
	if len(entries) == 0 {
		return nil, domain.Report{}, domain.ErrEmptyBatch
	}
	if err := ctx.Err(); err != nil {
		return nil, domain.Report{}, err
	}

	report := domain.Report{Title: ReportTitle, GeneratedAt: a.now()}
	findings := domain.Findings{
		{Severity: domain.SeverityTitle, Text: ReportTitle},
		{Severity: domain.SeverityPlain, Text: fmt.Sprintf("Parameters evaluated: %d", len(entries))},
	}

	groups := make(map[string][]domain.Entry)
	var unknown []domain.Entry
	for _, e := range entries {
		s, ok := a.lookup.Lookup(e.Name)
		if !ok {
			unknown = append(unknown, e)
			continue
		}
		groups[s.Category] = append(groups[s.Category], e)
	}

	for _, category := range standards.Categories {
		group := groups[category]
		if len(group) == 0 {
			continue
		}
		findings = append(findings, domain.Finding{Severity: domain.SeveritySection, Text: category + " Parameters"})
		for _, e := range group {
			s, _ := a.lookup.Lookup(e.Name)
			row, lines := evaluate(e, s)
			findings = append(findings, lines...)
			report.Rows = append(report.Rows, row)
			if row.Status == domain.StatusPass {
				report.PassCount++
			} else {
				report.FailCount++
			}
		}
	}

	if len(unknown) > 0 {
		findings = append(findings, domain.Finding{Severity: domain.SeveritySection, Text: "Unrecognised Parameters"})
		for _, e := range unknown {
			findings = append(findings, domain.Finding{
				Severity: domain.SeverityInfo,
				Text:     fmt.Sprintf("%s = %s: no standard on record, not evaluated", e.Name, domain.FormatValue(e.Value)),
			})
			report.Rows = append(report.Rows, domain.ReportRow{
				Parameter: e.Name,
				Value:     e.Value,
				Limit:     "-",
				Status:    domain.StatusUnknown,
			})
		}
	}

	evaluated := report.PassCount + report.FailCount
	findings = append(findings,
		domain.Finding{Severity: domain.SeveritySection, Text: "Summary"},
		domain.Finding{Severity: domain.SeverityPlain, Text: fmt.Sprintf("%d of %d parameters comply with the standards.", report.PassCount, evaluated)},
	)
	switch {
	case evaluated == 0:
		findings = append(findings, domain.Finding{Severity: domain.SeverityInfo, Text: "No parameter could be evaluated."})
	case report.FailCount == 0:
		findings = append(findings, domain.Finding{Severity: domain.SeverityPass, Text: "Water sample complies with all evaluated standards."})
	default:
		findings = append(findings, domain.Finding{Severity: domain.SeverityFail, Text: fmt.Sprintf("Water sample is NOT compliant: %d parameter(s) require treatment.", report.FailCount)})
	}

	return findings, report, nil
}

// evaluate checks one entry and returns its report row and display lines.
func evaluate(e domain.Entry, s standards.Standard) (domain.ReportRow, domain.Findings) {
	row := domain.ReportRow{
		Parameter: e.Name,
		Category:  s.Category,
		Value:     e.Value,
		Unit:      s.Unit,
		Limit:     s.LimitText(),
	}
	value := domain.FormatValue(e.Value)
	if s.Unit != "" {
		value += " " + s.Unit
	}

	switch s.Check(e.Value) {
	case standards.Invalid:
		row.Status = domain.StatusFail
		return row, domain.Findings{
			{Severity: domain.SeverityFail, Text: fmt.Sprintf("%s = %s is not a valid measurement (limit %s)", e.Name, value, row.Limit)},
		}
	case standards.BelowMin:
		row.Status = domain.StatusFail
		row.Remedy = s.Remedy
		return row, domain.Findings{
			{Severity: domain.SeverityFail, Text: fmt.Sprintf("%s = %s is below the minimum (limit %s)", e.Name, value, row.Limit)},
			{Severity: domain.SeverityInfo, Text: "Recommended treatment: " + s.Remedy},
		}
	case standards.AboveMax:
		row.Status = domain.StatusFail
		row.Remedy = s.Remedy
		return row, domain.Findings{
			{Severity: domain.SeverityFail, Text: fmt.Sprintf("%s = %s exceeds the maximum (limit %s)", e.Name, value, row.Limit)},
			{Severity: domain.SeverityInfo, Text: "Recommended treatment: " + s.Remedy},
		}
	default:
		row.Status = domain.StatusPass
		return row, domain.Findings{
			{Severity: domain.SeverityPass, Text: fmt.Sprintf("%s = %s is within the standard (limit %s)", e.Name, value, row.Limit)},
		}
	}
}
