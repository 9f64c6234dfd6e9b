package domain

// Severity classifies one line of analysis output.
type Severity int

const (
	SeverityPlain Severity = iota
	SeverityTitle
	SeveritySection
	SeverityInfo
	SeverityPass
	SeverityFail
)

// String returns the tag used in logs and plain-text output.
func (s Severity) String() string {
	switch s {
	case SeverityFail:
		return "FAIL"
	case SeverityPass:
		return "PASS"
	case SeverityInfo:
		return "INFO"
	case SeveritySection:
		return "SECTION"
	case SeverityTitle:
		return "TITLE"
	default:
		return "PLAIN"
	}
}

// Finding is a single severity-tagged line produced by an analyzer.
// Findings are consumed purely for display.
type Finding struct {
	Severity Severity
	Text     string
}

// Findings is an ordered list of analysis lines.
type Findings []Finding

// Count returns the number of findings with the given severity.
func (f Findings) Count(s Severity) int {
	n := 0
	for _, item := range f {
		if item.Severity == s {
			n++
		}
	}
	return n
}
