package standards

import (
	"errors"
	"math"
	"testing"

	"github.com/bft-labs/wqsuite/internal/domain"
)

func TestStandard_Check(t *testing.T) {
	ph := Standard{Name: "pH", Category: CategoryPhysical, Min: bound(6.5), Max: bound(8.5)}
	turb := Standard{Name: "Turbidity", Unit: "NTU", Category: CategoryPhysical, Max: bound(5)}

	tests := []struct {
		name  string
		s     Standard
		value float64
		want  Verdict
	}{
		{"ph within", ph, 7.2, Within},
		{"ph at lower bound", ph, 6.5, Within},
		{"ph at upper bound", ph, 8.5, Within},
		{"ph low", ph, 6.4, BelowMin},
		{"ph high", ph, 9.0, AboveMax},
		{"turbidity ok", turb, 4.0, Within},
		{"turbidity high", turb, 5.1, AboveMax},
		{"turbidity zero", turb, 0, Within},
		{"ph not a number", ph, math.NaN(), Invalid},
		{"turbidity infinite", turb, math.Inf(1), Invalid},
		{"open lower bound negative infinity", turb, math.Inf(-1), Invalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Check(tt.value); got != tt.want {
				t.Errorf("Check(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestStandard_LimitText(t *testing.T) {
	tests := []struct {
		s    Standard
		want string
	}{
		{Standard{Min: bound(6.5), Max: bound(8.5)}, "6.5 - 8.5"},
		{Standard{Unit: "NTU", Max: bound(5)}, "max 5 NTU"},
		{Standard{Unit: "mg/L", Min: bound(0.2)}, "min 0.2 mg/L"},
		{Standard{}, "no limit"},
	}
	for _, tt := range tests {
		if got := tt.s.LimitText(); got != tt.want {
			t.Errorf("LimitText() = %q, want %q", got, tt.want)
		}
	}
}

func TestDefaults(t *testing.T) {
	set := Defaults()
	if len(set) == 0 || set[0].Name != "pH" {
		t.Fatalf("first default = %+v, want pH", set)
	}
	seen := map[domain.ParameterID]bool{}
	for _, s := range set {
		if err := s.validate(); err != nil {
			t.Errorf("default %s invalid: %v", s.Name, err)
		}
		if seen[s.Name] {
			t.Errorf("duplicate default %s", s.Name)
		}
		seen[s.Name] = true
		if s.Remedy == "" {
			t.Errorf("default %s has no remedy", s.Name)
		}
	}
	if !seen["Turbidity"] {
		t.Error("Turbidity missing from defaults")
	}
}

func TestRegistry(t *testing.T) {
	r, err := NewRegistry(Defaults())
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	names := r.Names()
	if names[0] != "pH" {
		t.Errorf("Names()[0] = %s, want pH", names[0])
	}
	if s, ok := r.Lookup("Iron"); !ok || s.Unit != "mg/L" {
		t.Errorf("Lookup(Iron) = %+v, %v", s, ok)
	}
	if _, ok := r.Lookup("Unobtainium"); ok {
		t.Error("Lookup found an unknown parameter")
	}
	if len(r.All()) != len(names) {
		t.Errorf("All() has %d entries, Names() %d", len(r.All()), len(names))
	}
}

func TestRegistry_ReplaceRejectsInvalid(t *testing.T) {
	r, err := NewRegistry(Defaults())
	if err != nil {
		t.Fatal(err)
	}

	if err := r.Replace(nil); !errors.Is(err, domain.ErrEmptyCatalog) {
		t.Errorf("Replace(nil) error = %v, want ErrEmptyCatalog", err)
	}
	bad := []Standard{{Name: "pH", Category: CategoryPhysical, Min: bound(9), Max: bound(1)}}
	if err := r.Replace(bad); err == nil {
		t.Error("Replace accepted min > max")
	}
	if got := len(r.Names()); got != len(Defaults()) {
		t.Errorf("registry changed after rejected replace: %d names", got)
	}
}

func TestNewRegistry_Empty(t *testing.T) {
	if _, err := NewRegistry(nil); !errors.Is(err, domain.ErrEmptyCatalog) {
		t.Errorf("NewRegistry(nil) error = %v, want ErrEmptyCatalog", err)
	}
}
