package ui

import (
	"strings"
	"testing"

	"github.com/quadrantlab/algoquad/internal/dataset"
	"github.com/quadrantlab/algoquad/pkg/analysis"
)

func TestRenderChartDimensions(t *testing.T) {
	attrs := analysis.Attributes(dataset.Embedded(), analysis.DefaultState())
	out := renderChart(TestTheme(), attrs, "", 80, 24)

	lines := strings.Split(out, "\n")
	if len(lines) != 24 {
		t.Fatalf("got %d lines, want 24", len(lines))
	}
}

func TestRenderChartDrawsMediansAndPoints(t *testing.T) {
	attrs := analysis.Attributes(dataset.Embedded(), analysis.DefaultState())
	out := renderChart(TestTheme(), attrs, "", 80, 24)

	if !strings.Contains(out, "┊") {
		t.Error("no vertical median line")
	}
	if !strings.Contains(out, "╌") {
		t.Error("no horizontal median line")
	}

	glyphs := 0
	for _, g := range bubbleGlyphs {
		glyphs += strings.Count(out, g)
	}
	// Families can collide on coarse grids, so at least half must show.
	if glyphs < len(attrs)/2 {
		t.Errorf("found %d bubble glyphs for %d families", glyphs, len(attrs))
	}
}

func TestRenderChartCursorLabel(t *testing.T) {
	attrs := analysis.Attributes(dataset.Embedded(), analysis.DefaultState())
	out := renderChart(TestTheme(), attrs, "Random Forest", 100, 30)

	if !strings.Contains(out, "Random Forest") {
		t.Error("cursor family label not drawn")
	}
}

func TestRenderChartEmpty(t *testing.T) {
	out := renderChart(TestTheme(), nil, "", 60, 20)
	if out == "" {
		t.Fatal("empty chart render")
	}
	// Overlay still draws with no points.
	if !strings.Contains(out, "┊") {
		t.Error("empty chart missing quadrant overlay")
	}
}

func TestGlyphForScalesWithSize(t *testing.T) {
	small := glyphFor(1, 100)
	large := glyphFor(100, 100)
	if small != bubbleGlyphs[0] {
		t.Errorf("small glyph = %q", small)
	}
	if large != bubbleGlyphs[len(bubbleGlyphs)-1] {
		t.Errorf("large glyph = %q", large)
	}
	if glyphFor(5, 0) != bubbleGlyphs[0] {
		t.Error("zero max size should give the smallest glyph")
	}
}
