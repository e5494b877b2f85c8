// Package model defines the algorithm-family dataset and the quadrant
// classification rules built on top of it.
//
// A Family is one row of the hand-curated suitability table: two empirically
// derived scores (Complexity Fit and Data Fit), display coordinates that may
// be nudged away from the true scores for visual separation, an adoption
// frequency, and three task-specific suitability scores. The table is defined
// once at startup and never mutated; everything selection-dependent lives in
// pkg/analysis.
package model

import (
	"fmt"
	"sort"
)

// Family is a single algorithm family record.
type Family struct {
	Name string `yaml:"name" json:"name"`

	// True scores drive classification and the detail panel.
	TrueC float64 `yaml:"complexity_fit" json:"complexity_fit"`
	TrueD float64 `yaml:"data_fit" json:"data_fit"`

	// Plot coordinates drive point placement. They usually equal the true
	// scores but are occasionally adjusted to keep overlapping families
	// readable (e.g. Naïve-Bayesian vs Bayesian Networks).
	PlotC float64 `yaml:"plot_complexity" json:"plot_complexity"`
	PlotD float64 `yaml:"plot_data_fit" json:"plot_data_fit"`

	// Frequency is the adoption share observed in the literature review.
	Frequency float64 `yaml:"frequency" json:"frequency"`

	// Per-task suitability scores in [0,1].
	Safety   float64 `yaml:"safety" json:"safety"`
	Schedule float64 `yaml:"schedule" json:"schedule"`
	Cost     float64 `yaml:"cost" json:"cost"`
}

// Quadrant classifies the family by its true scores.
func (f Family) Quadrant() Quadrant {
	return ClassifyQuadrant(f.TrueC, f.TrueD)
}

// TaskScore returns the suitability score for the given task context.
// For ContextGeneral there is no per-task score; it returns the adoption
// frequency, which is what drives bubble size in that context.
func (f Family) TaskScore(ctx TaskContext) float64 {
	switch ctx {
	case ContextSafety:
		return f.Safety
	case ContextSchedule:
		return f.Schedule
	case ContextCost:
		return f.Cost
	default:
		return f.Frequency
	}
}

// Dataset is the full table. It is immutable after load: accessors return
// copies or read-only views, and all derived state is computed elsewhere.
type Dataset struct {
	families []Family
	byName   map[string]int
}

// NewDataset builds a Dataset from rows and validates it. The row order is
// preserved; it is the display order of the original table (alphabetical).
func NewDataset(rows []Family) (*Dataset, error) {
	ds := &Dataset{
		families: make([]Family, len(rows)),
		byName:   make(map[string]int, len(rows)),
	}
	copy(ds.families, rows)
	for i, f := range ds.families {
		if _, dup := ds.byName[f.Name]; dup {
			return nil, fmt.Errorf("duplicate family %q", f.Name)
		}
		ds.byName[f.Name] = i
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

// Validate enforces the table invariants. Violations are configuration/data
// errors and must surface once at load time, never per interaction.
func (d *Dataset) Validate() error {
	if len(d.families) == 0 {
		return fmt.Errorf("dataset is empty")
	}
	var total, safetyTotal, scheduleTotal, costTotal float64
	for _, f := range d.families {
		if f.Name == "" {
			return fmt.Errorf("family with empty name")
		}
		for _, s := range []struct {
			label string
			v     float64
		}{
			{"complexity_fit", f.TrueC},
			{"data_fit", f.TrueD},
			{"safety", f.Safety},
			{"schedule", f.Schedule},
			{"cost", f.Cost},
		} {
			if s.v < 0 || s.v > 1 {
				return fmt.Errorf("%s: %s %.3f out of [0,1]", f.Name, s.label, s.v)
			}
		}
		if f.Frequency < 0 {
			return fmt.Errorf("%s: negative frequency %.3f", f.Name, f.Frequency)
		}
		total += f.Frequency
		safetyTotal += f.Safety
		scheduleTotal += f.Schedule
		costTotal += f.Cost
	}
	// Percentages are normalized by the active column's total, so every
	// column needs a positive sum, not just frequency.
	for _, s := range []struct {
		label string
		v     float64
	}{
		{"frequency", total},
		{"safety", safetyTotal},
		{"schedule", scheduleTotal},
		{"cost", costTotal},
	} {
		if s.v <= 0 {
			return fmt.Errorf("total %s must be positive, got %.3f", s.label, s.v)
		}
	}
	return nil
}

// Len returns the number of families.
func (d *Dataset) Len() int {
	return len(d.families)
}

// Families returns a copy of the rows in display order.
func (d *Dataset) Families() []Family {
	out := make([]Family, len(d.families))
	copy(out, d.families)
	return out
}

// ByName returns the family with the given name.
func (d *Dataset) ByName(name string) (Family, bool) {
	i, ok := d.byName[name]
	if !ok {
		return Family{}, false
	}
	return d.families[i], true
}

// Names returns all family names in display order. Selector options are
// always derived from this, so a selection can never reference an absent row.
func (d *Dataset) Names() []string {
	out := make([]string, len(d.families))
	for i, f := range d.families {
		out[i] = f.Name
	}
	return out
}

// TotalFrequency is the normalization denominator for percentage display.
func (d *Dataset) TotalFrequency() float64 {
	total := 0.0
	for _, f := range d.families {
		total += f.Frequency
	}
	return total
}

// SortedByFrequency returns the families ordered by descending frequency,
// ties broken by name for deterministic output.
func (d *Dataset) SortedByFrequency() []Family {
	out := d.Families()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Frequency == out[j].Frequency {
			return out[i].Name < out[j].Name
		}
		return out[i].Frequency > out[j].Frequency
	})
	return out
}
