package domain

import "time"

// Status is the compliance outcome of a single report row.
type Status string

const (
	StatusPass    Status = "PASS"
	StatusFail    Status = "FAIL"
	StatusUnknown Status = "N/A"
)

// ReportRow is one evaluated parameter in a Report.
type ReportRow struct {
	Parameter ParameterID
	Category  string
	Value     float64
	Unit      string
	Limit     string
	Status    Status
	Remedy    string
}

// Report is the structured analysis result handed to a report renderer.
// The editor never inspects it.
type Report struct {
	Title       string
	GeneratedAt time.Time
	Rows        []ReportRow
	PassCount   int
	FailCount   int
}

// Compliant reports whether every evaluated row passed.
func (r Report) Compliant() bool {
	return r.FailCount == 0 && r.PassCount > 0
}
