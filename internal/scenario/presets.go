package scenario

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Preset is a named combination of knob values.
type Preset struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	RevenuePct  float64    `yaml:"revenue_pct"`
	ExpensesPct float64    `yaml:"expenses_pct"`
	HireCost    int64      `yaml:"hire_cost"`
	HireStart   int        `yaml:"hire_start"`
	VendorsPct  float64    `yaml:"vendors_pct"`
	Payroll     PayrollPct `yaml:"payroll"`
}

// Apply assigns the preset's knobs to s. Report and Span are kept.
func (p Preset) Apply(s *State) {
	s.RevAdjPct = p.RevenuePct
	s.ExpAdjPct = p.ExpensesPct
	s.HireCost = p.HireCost
	s.HireStartOffset = p.HireStart
	s.VendorAdjPct = p.VendorsPct
	s.PayrollAdjPct = p.Payroll
}

type presetFile struct {
	Presets []Preset `yaml:"presets"`
}

// BuiltinPresets returns the presets shipped with the binary.
func BuiltinPresets() []Preset {
	return []Preset{
		{Name: "baseline", Description: "No adjustments"},
		{
			Name:        "lean",
			Description: "Flat revenue, trimmed vendors and payroll",
			ExpensesPct: -5,
			VendorsPct:  -15,
			Payroll:     PayrollPct{Sal: -5},
		},
		{
			Name:        "growth",
			Description: "Revenue up 15% with expenses following",
			RevenuePct:  15,
			ExpensesPct: 8,
			VendorsPct:  10,
		},
		{
			Name:        "hiring-spree",
			Description: "Two senior hires starting in month 3",
			RevenuePct:  5,
			HireCost:    18000,
			HireStart:   2,
			Payroll:     PayrollPct{Sal: 20, Ben: 15, Tax: 20},
		},
	}
}

// LoadPresets reads presets from a YAML file.
func LoadPresets(path string) ([]Preset, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is supplied by the local user
	if err != nil {
		return nil, fmt.Errorf("reading presets: %w", err)
	}
	return ParsePresets(data)
}

// ParsePresets decodes a presets document. Presets without a name are
// rejected so they can be addressed from the CLI and the daemon.
func ParsePresets(data []byte) ([]Preset, error) {
	var f presetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing presets: %w", err)
	}
	for i, p := range f.Presets {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("parsing presets: entry %d has no name", i)
		}
	}
	return f.Presets, nil
}

// FindPreset looks a preset up by name, case-insensitively.
func FindPreset(presets []Preset, name string) (Preset, bool) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}

// MergePresets appends extra to base, replacing base entries with the same name.
func MergePresets(base, extra []Preset) []Preset {
	out := append([]Preset(nil), base...)
	for _, p := range extra {
		replaced := false
		for i := range out {
			if strings.EqualFold(out[i].Name, p.Name) {
				out[i] = p
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, p)
		}
	}
	return out
}
