package analysis_test

import (
	"math"
	"testing"

	"github.com/quadrantlab/algoquad/internal/dataset"
	"github.com/quadrantlab/algoquad/pkg/analysis"
	"github.com/quadrantlab/algoquad/pkg/model"
)

func TestDeriveGeneralContext(t *testing.T) {
	ds := dataset.Embedded()
	rows := analysis.Derive(ds, model.ContextGeneral)
	if len(rows) != ds.Len() {
		t.Fatalf("got %d rows, want %d", len(rows), ds.Len())
	}

	var boost *analysis.DerivedRow
	for i := range rows {
		if rows[i].Name == "Boosting/Gradient" {
			boost = &rows[i]
		}
	}
	if boost == nil {
		t.Fatal("Boosting/Gradient missing from derived rows")
	}

	// Frequency 25.7 of a ~100 total displays as 25.7%.
	if boost.ChartLabel != "Boosting/Gradient, 25.7%" {
		t.Errorf("chart label = %q", boost.ChartLabel)
	}
	if boost.LegendLabel != "Boosting/Gradient, 25.7% (C=0.84, D=0.74)" {
		t.Errorf("legend label = %q", boost.LegendLabel)
	}
	// In the general context the size value is the raw frequency.
	if boost.SizeValue != boost.Frequency {
		t.Errorf("size = %v, want frequency %v", boost.SizeValue, boost.Frequency)
	}
}

// Percentages sum to 100 within floating-point tolerance for every active
// size column.
func TestDerivePercentagesSumTo100(t *testing.T) {
	ds := dataset.Embedded()
	for _, ctx := range model.TaskContexts() {
		sum := 0.0
		for _, r := range analysis.Derive(ds, ctx) {
			if r.Percent < 0 || r.Percent > 100 {
				t.Errorf("%s/%v: percent %v out of range", r.Name, ctx, r.Percent)
			}
			sum += r.Percent
		}
		if math.Abs(sum-100) > 1e-9 {
			t.Errorf("context %v: percentages sum to %v", ctx, sum)
		}
	}
}

// Changing the task context changes only the size column and its derived
// values, never point positions.
func TestDeriveContextDoesNotMovePoints(t *testing.T) {
	ds := dataset.Embedded()
	general := analysis.Derive(ds, model.ContextGeneral)
	for _, ctx := range []model.TaskContext{model.ContextSafety, model.ContextSchedule, model.ContextCost} {
		rows := analysis.Derive(ds, ctx)
		for i := range rows {
			if rows[i].PlotC != general[i].PlotC || rows[i].PlotD != general[i].PlotD {
				t.Errorf("context %v moved %s: (%v,%v) vs (%v,%v)", ctx, rows[i].Name,
					rows[i].PlotC, rows[i].PlotD, general[i].PlotC, general[i].PlotD)
			}
			want := rows[i].TaskScore(ctx) * analysis.TaskSizeMultiplier
			if rows[i].SizeValue != want {
				t.Errorf("context %v: %s size = %v, want %v", ctx, rows[i].Name, rows[i].SizeValue, want)
			}
		}
	}
}

func TestMaxSizeValue(t *testing.T) {
	ds := dataset.Embedded()
	rows := analysis.Derive(ds, model.ContextGeneral)
	if got := analysis.MaxSizeValue(rows); got != 25.7 {
		t.Errorf("max size = %v, want 25.7", got)
	}
	if got := analysis.MaxSizeValue(nil); got != 0 {
		t.Errorf("max size of empty = %v", got)
	}
}

func TestSummarize(t *testing.T) {
	ds := dataset.Embedded()
	s := analysis.Summarize(ds)

	if s.FamilyCount != 11 {
		t.Errorf("family count = %d", s.FamilyCount)
	}
	if s.WeightedMeanC < 0 || s.WeightedMeanC > 1 || s.WeightedMeanD < 0 || s.WeightedMeanD > 1 {
		t.Errorf("weighted means out of range: C=%v D=%v", s.WeightedMeanC, s.WeightedMeanD)
	}
	// The table is frequency-dominated by Boosting (C=0.84), so the weighted
	// mean complexity must land well above the unweighted midpoint.
	if s.WeightedMeanC < 0.5 {
		t.Errorf("weighted mean complexity = %v, implausibly low", s.WeightedMeanC)
	}
	if math.Abs(s.CorrCD) > 1 {
		t.Errorf("correlation = %v", s.CorrCD)
	}

	total := 0
	for _, n := range s.QuadrantCounts {
		total += n
	}
	if total != 11 {
		t.Errorf("quadrant counts sum to %d, want 11", total)
	}
	if s.QuadrantCounts[model.QuadrantBestOfBoth] == 0 {
		t.Error("expected at least one best-of-both family")
	}
}
