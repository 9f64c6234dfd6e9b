// Package standards holds the water-quality parameter catalog: each
// parameter's unit, category, permissible limits and the treatment to
// recommend when a sample violates them.
package standards

import (
	"fmt"
	"math"

	"github.com/bft-labs/wqsuite/internal/domain"
)

// Categories in report order.
const (
	CategoryPhysical        = "Physical"
	CategoryChemical        = "Chemical"
	CategoryMicrobiological = "Microbiological"
)

// Categories lists the known categories in the order reports group them.
var Categories = []string{CategoryPhysical, CategoryChemical, CategoryMicrobiological}

// Standard is the permissible range of one parameter. A nil bound is open.
type Standard struct {
	Name     domain.ParameterID
	Unit     string
	Category string
	Min      *float64
	Max      *float64
	Remedy   string
}

// Verdict is the outcome of checking one value against a Standard.
type Verdict int

const (
	Within Verdict = iota
	BelowMin
	AboveMax
	// Invalid marks NaN or infinite values, which no bound can be compared with.
	Invalid
)

// Check compares value with the standard's bounds. Bounds are inclusive.
func (s Standard) Check(value float64) Verdict {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Invalid
	}
	if s.Min != nil && value < *s.Min {
		return BelowMin
	}
	if s.Max != nil && value > *s.Max {
		return AboveMax
	}
	return Within
}

// LimitText renders the permissible range, e.g. "6.5 - 8.5" or "max 5 NTU".
func (s Standard) LimitText() string {
	unit := ""
	if s.Unit != "" {
		unit = " " + s.Unit
	}
	switch {
	case s.Min != nil && s.Max != nil:
		return fmt.Sprintf("%s - %s%s", domain.FormatValue(*s.Min), domain.FormatValue(*s.Max), unit)
	case s.Max != nil:
		return fmt.Sprintf("max %s%s", domain.FormatValue(*s.Max), unit)
	case s.Min != nil:
		return fmt.Sprintf("min %s%s", domain.FormatValue(*s.Min), unit)
	default:
		return "no limit"
	}
}

// validate checks a standard loaded from outside the package.
func (s Standard) validate() error {
	if s.Name == "" {
		return fmt.Errorf("parameter name is required")
	}
	if s.Min != nil && s.Max != nil && *s.Min > *s.Max {
		return fmt.Errorf("%s: min %v greater than max %v", s.Name, *s.Min, *s.Max)
	}
	switch s.Category {
	case CategoryPhysical, CategoryChemical, CategoryMicrobiological:
	default:
		return fmt.Errorf("%s: unknown category %q", s.Name, s.Category)
	}
	return nil
}

func bound(v float64) *float64 { return &v }
