package ui

import (
	"fmt"
	"strings"

	"github.com/quadrantlab/algoquad/pkg/analysis"
	"github.com/quadrantlab/algoquad/pkg/model"
)

// renderLegend renders the family list: one row per family in table order,
// with the bubble glyph in the family color, the legend label, and markers
// for the cursor and the spotlight.
func renderLegend(t Theme, attrs []analysis.PointAttrs, cursor string, width int) string {
	maxSize := 0.0
	for _, a := range attrs {
		if a.Size > maxSize {
			maxSize = a.Size
		}
	}

	var sb strings.Builder
	for i, a := range attrs {
		if i > 0 {
			sb.WriteByte('\n')
		}

		glyph := t.FamilyStyle(a.Color, !a.Spotlit).Render(glyphFor(a.Size, maxSize))
		label := fmt.Sprintf("%s, %.1f%% (C=%.2f, D=%.2f)", a.Name, a.Percent, a.X, a.Y)

		line := glyph + " " + truncate(label, width-4)
		if a.Name == cursor {
			line = t.Selected.Render(line)
		} else if !a.Spotlit {
			line = " " + t.Faded.Render(truncate(label, width-4))
		} else {
			line = " " + line
		}
		sb.WriteString(line)
	}

	if len(attrs) == 0 {
		sb.WriteString(t.MutedText.Render("no families match the filter"))
	}
	return sb.String()
}

// renderDetail renders the detail panel for the family under the cursor:
// the raw scores, the active-context share, and the quadrant classification.
func renderDetail(t Theme, ds *model.Dataset, attrs []analysis.PointAttrs, st analysis.State, cursor string, width int) string {
	var cur *analysis.PointAttrs
	for i := range attrs {
		if attrs[i].Name == cursor {
			cur = &attrs[i]
		}
	}
	if cur == nil {
		return t.MutedText.Render("select a family with j/k")
	}
	f, ok := ds.ByName(cur.Name)
	if !ok {
		return t.MutedText.Render("select a family with j/k")
	}

	var sb strings.Builder
	sb.WriteString(t.PanelTitle.Render(truncate(cur.Name, width-2)))
	sb.WriteByte('\n')
	sb.WriteString(t.MutedText.Render(cur.Quadrant.Caption()))
	sb.WriteString("\n\n")

	row := func(k, v string) {
		sb.WriteString(padRight(k, 16))
		sb.WriteString(v)
		sb.WriteByte('\n')
	}
	row("complexity fit", fmt.Sprintf("%.2f", f.TrueC))
	row("data fit", fmt.Sprintf("%.2f", f.TrueD))
	if f.PlotC != f.TrueC || f.PlotD != f.TrueD {
		row("plotted at", fmt.Sprintf("(%.2f, %.2f)", f.PlotC, f.PlotD))
	}
	row("frequency", fmt.Sprintf("%.1f", f.Frequency))
	row("adoption rank", fmt.Sprintf("%d of %d", adoptionRank(ds, f.Name), ds.Len()))
	row("share", fmt.Sprintf("%.1f%% of %s", cur.Percent, st.Context.ColumnLabel()))
	if st.Context != model.ContextGeneral {
		row("task score", fmt.Sprintf("%.2f", cur.TaskScore))
	}
	sb.WriteByte('\n')

	// interpretive one-liner per quadrant
	sb.WriteString(t.MutedText.Render(truncate(quadrantHint(cur.Quadrant), width-2)))
	return sb.String()
}

// adoptionRank is the 1-based position of a family in the descending
// frequency ordering of the full table, ignoring the active filter.
func adoptionRank(ds *model.Dataset, name string) int {
	for i, f := range ds.SortedByFrequency() {
		if f.Name == name {
			return i + 1
		}
	}
	return 0
}

func quadrantHint(q model.Quadrant) string {
	switch q {
	case model.QuadrantBestOfBoth:
		return "strong theory and robust on real data"
	case model.QuadrantSimpleRobust:
		return "modest theory but holds up on real data"
	case model.QuadrantLimited:
		return "weak fit on both axes"
	case model.QuadrantComplexFragile:
		return "powerful in theory, brittle in practice"
	default:
		return ""
	}
}
