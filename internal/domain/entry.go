package domain

import "strconv"

// ParameterID names a water-quality parameter from a closed catalog
// (for example "pH" or "Turbidity").
type ParameterID string

// String returns the identifier as a plain string.
func (p ParameterID) String() string { return string(p) }

// Entry is one (parameter, lab value) pair in a working batch.
// Within one batch no two entries share a Name.
type Entry struct {
	Name  ParameterID `json:"name"`
	Value float64     `json:"value"`
}

// String renders the entry the way rows are displayed: "pH: 7.2".
func (e Entry) String() string {
	return string(e.Name) + ": " + FormatValue(e.Value)
}

// FormatValue formats a lab value with the shortest exact representation.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
