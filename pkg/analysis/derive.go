// Package analysis computes everything derived from the static table: share
// percentages, chart/legend labels, selection-dependent render attributes and
// the summary metrics panel. All functions here are pure; the interactive
// session recomputes them per interaction.
package analysis

import (
	"fmt"

	"github.com/quadrantlab/algoquad/pkg/model"
)

// DerivedRow is one family plus its context-dependent derived columns.
type DerivedRow struct {
	model.Family

	// SizeValue drives bubble size: adoption frequency in the general
	// context, task score scaled by TaskSizeMultiplier otherwise.
	SizeValue float64
	// Percent is the family's share of the active size column, 0-100.
	Percent float64
	// ChartLabel is the on-bubble text, e.g. "Boosting/Gradient, 25.7%".
	ChartLabel string
	// LegendLabel extends the chart label with the raw scores.
	LegendLabel string
}

// TaskSizeMultiplier scales task scores (all in [0,1]) so the largest bubble
// is as visually prominent as the largest frequency bubble.
const TaskSizeMultiplier = 40.0

// Derive computes the derived columns for every family under the given task
// context. The division is safe by construction: Validate guarantees a
// non-empty table with positive total frequency, and task scores only reach
// the denominator through a non-empty sum of non-negative values.
func Derive(ds *model.Dataset, ctx model.TaskContext) []DerivedRow {
	fams := ds.Families()

	total := 0.0
	for _, f := range fams {
		total += f.TaskScore(ctx)
	}

	rows := make([]DerivedRow, len(fams))
	for i, f := range fams {
		v := f.TaskScore(ctx)
		pct := 0.0
		if total > 0 {
			pct = 100 * v / total
		}
		size := v
		if ctx != model.ContextGeneral {
			size = v * TaskSizeMultiplier
		}
		rows[i] = DerivedRow{
			Family:      f,
			SizeValue:   size,
			Percent:     pct,
			ChartLabel:  fmt.Sprintf("%s, %.1f%%", f.Name, pct),
			LegendLabel: fmt.Sprintf("%s, %.1f%% (C=%.2f, D=%.2f)", f.Name, pct, f.TrueC, f.TrueD),
		}
	}
	return rows
}

// MaxSizeValue returns the largest size value in the rows, used to normalize
// bubble radii. Returns 0 for an empty slice.
func MaxSizeValue(rows []DerivedRow) float64 {
	max := 0.0
	for _, r := range rows {
		if r.SizeValue > max {
			max = r.SizeValue
		}
	}
	return max
}
