package standards

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bft-labs/wqsuite/internal/domain"
)

func TestMerge_OverridesAndAppends(t *testing.T) {
	f, err := ParseFile([]byte(`
[[parameter]]
name = "Turbidity"
max = 1.0

[[parameter]]
name = "Boron"
unit = "mg/L"
category = "Chemical"
max = 2.4
remedy = "Reverse osmosis."
`))
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}

	set, err := Merge(Defaults(), f)
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	if len(set) != len(Defaults())+1 {
		t.Fatalf("len = %d, want %d", len(set), len(Defaults())+1)
	}
	if set[0].Name != "pH" {
		t.Errorf("order changed: first = %s", set[0].Name)
	}

	byName := map[domain.ParameterID]Standard{}
	for _, s := range set {
		byName[s.Name] = s
	}
	turb := byName["Turbidity"]
	if turb.Max == nil || *turb.Max != 1.0 {
		t.Errorf("Turbidity max = %v, want 1.0", turb.Max)
	}
	if turb.Unit != "NTU" || turb.Remedy == "" {
		t.Errorf("Turbidity lost unset fields: %+v", turb)
	}
	boron := set[len(set)-1]
	if boron.Name != "Boron" || boron.Category != CategoryChemical || *boron.Max != 2.4 {
		t.Errorf("appended Boron = %+v", boron)
	}
}

func TestMerge_Replace(t *testing.T) {
	f, err := ParseFile([]byte(`
replace = true

[[parameter]]
name = "Salinity"
unit = "ppt"
category = "Physical"
max = 0.5
`))
	if err != nil {
		t.Fatal(err)
	}
	set, err := Merge(Defaults(), f)
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	if len(set) != 1 || set[0].Name != "Salinity" {
		t.Errorf("set = %+v, want only Salinity", set)
	}
}

func TestMerge_NoBounds(t *testing.T) {
	f := File{Parameters: []FileParameter{{Name: "pH", NoMax: true}}}
	set, err := Merge(Defaults(), f)
	if err != nil {
		t.Fatal(err)
	}
	if set[0].Max != nil || set[0].Min == nil {
		t.Errorf("pH = %+v, want min kept and max cleared", set[0])
	}
}

func TestMerge_Errors(t *testing.T) {
	tests := []struct {
		name string
		file File
		want error
	}{
		{"replace with nothing", File{Replace: true}, domain.ErrEmptyCatalog},
		{"unknown category", File{Parameters: []FileParameter{{Name: "X", Category: "Spiritual"}}}, nil},
		{"missing name", File{Parameters: []FileParameter{{Category: CategoryPhysical}}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Merge(Defaults(), tt.file)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "standards.toml")
	if err := os.WriteFile(path, []byte("[[parameter]]\nname = \"Iron\"\nmax = 0.1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	set, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	for _, s := range set {
		if s.Name == "Iron" && (s.Max == nil || *s.Max != 0.1) {
			t.Errorf("Iron max = %v, want 0.1", s.Max)
		}
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
	bad := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(bad, []byte("[[parameter]\nname="), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(bad); err == nil {
		t.Error("expected decode error")
	}
}
