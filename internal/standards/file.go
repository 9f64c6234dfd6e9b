package standards

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/bft-labs/wqsuite/internal/domain"
)

// File mirrors a standards override file:
//
//	replace = false
//
//	[[parameter]]
//	name = "Turbidity"
//	max = 1.0
//
// Entries naming a built-in parameter override only the fields they set;
// other entries are appended. With replace = true the built-in set is dropped.
type File struct {
	Replace    bool            `toml:"replace"`
	Parameters []FileParameter `toml:"parameter"`
}

// FileParameter is one [[parameter]] table.
type FileParameter struct {
	Name     string   `toml:"name"`
	Unit     *string  `toml:"unit"`
	Category string   `toml:"category"`
	Min      *float64 `toml:"min"`
	Max      *float64 `toml:"max"`
	NoMin    bool     `toml:"no_min"`
	NoMax    bool     `toml:"no_max"`
	Remedy   string   `toml:"remedy"`
}

// ParseFile decodes a standards file.
func ParseFile(data []byte) (File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("decode standards: %w", err)
	}
	return f, nil
}

// LoadFile reads the file at path and merges it over the built-in set.
func LoadFile(path string) ([]Standard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := ParseFile(data)
	if err != nil {
		return nil, err
	}
	return Merge(Defaults(), f)
}

// Merge applies f on top of base and returns the resulting set.
func Merge(base []Standard, f File) ([]Standard, error) {
	var out []Standard
	if !f.Replace {
		out = append(out, base...)
	}
	index := make(map[domain.ParameterID]int, len(out))
	for i, s := range out {
		index[s.Name] = i
	}

	for _, p := range f.Parameters {
		name := domain.ParameterID(p.Name)
		if i, ok := index[name]; ok {
			out[i] = p.apply(out[i])
			continue
		}
		s := p.apply(Standard{Name: name})
		index[name] = len(out)
		out = append(out, s)
	}

	for _, s := range out {
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("standards: %w", err)
		}
	}
	if len(out) == 0 {
		return nil, domain.ErrEmptyCatalog
	}
	return out, nil
}

func (p FileParameter) apply(s Standard) Standard {
	if p.Unit != nil {
		s.Unit = *p.Unit
	}
	if p.Category != "" {
		s.Category = p.Category
	}
	if p.Min != nil {
		s.Min = bound(*p.Min)
	}
	if p.Max != nil {
		s.Max = bound(*p.Max)
	}
	if p.NoMin {
		s.Min = nil
	}
	if p.NoMax {
		s.Max = nil
	}
	if p.Remedy != "" {
		s.Remedy = p.Remedy
	}
	return s
}
