package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/quadrantlab/algoquad/pkg/analysis"
	"github.com/quadrantlab/algoquad/pkg/model"
)

// Bubble glyphs from smallest to largest share of the active size column.
var bubbleGlyphs = []string{"·", "•", "●", "◉"}

// glyphFor picks a bubble glyph by the point's share of the largest size
// value, so the text chart keeps the area encoding of the graphical one.
func glyphFor(size, maxSize float64) string {
	if maxSize <= 0 {
		return bubbleGlyphs[0]
	}
	ratio := size / maxSize
	switch {
	case ratio < 0.15:
		return bubbleGlyphs[0]
	case ratio < 0.40:
		return bubbleGlyphs[1]
	case ratio < 0.70:
		return bubbleGlyphs[2]
	default:
		return bubbleGlyphs[3]
	}
}

type canvasCell struct {
	ch     string
	styled string
}

type canvas struct {
	width, height int
	cells         [][]canvasCell
}

func newCanvas(width, height int) *canvas {
	cells := make([][]canvasCell, height)
	for y := range cells {
		cells[y] = make([]canvasCell, width)
		for x := range cells[y] {
			cells[y][x] = canvasCell{ch: " ", styled: " "}
		}
	}
	return &canvas{width: width, height: height, cells: cells}
}

func (c *canvas) set(x, y int, ch, styled string) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = canvasCell{ch: ch, styled: styled}
}

// writeString writes a horizontal run of single-cell characters, clipped to
// the canvas. Centered on x when center is true.
func (c *canvas) writeString(x, y int, s string, style lipgloss.Style, center bool) {
	runes := []rune(s)
	if center {
		x -= len(runes) / 2
	}
	for i, r := range runes {
		ch := string(r)
		c.set(x+i, y, ch, style.Render(ch))
	}
}

func (c *canvas) String() string {
	var sb strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			sb.WriteString(cell.styled)
		}
	}
	return sb.String()
}

// renderChart draws the scatter chart as a character grid: quadrant captions,
// dashed median lines, one glyph per visible family, and a label for the
// point under the cursor. Points draw last so they sit on top.
func renderChart(t Theme, attrs []analysis.PointAttrs, cursor string, width, height int) string {
	if width < 20 {
		width = 20
	}
	if height < 8 {
		height = 8
	}

	span := analysis.AxisMax - analysis.AxisMin
	toX := func(v float64) int {
		return int((v - analysis.AxisMin) / span * float64(width-1))
	}
	// Data-fit grows upward, rows grow downward.
	toY := func(v float64) int {
		return (height - 1) - int((v-analysis.AxisMin)/span*float64(height-1))
	}

	c := newCanvas(width, height)

	// quadrant captions, drawn first so everything else wins a collision
	for _, a := range analysis.Annotations() {
		text := truncate(a.Text, width/2-2)
		c.writeString(toX(a.X), toY(a.Y), text, t.MutedText, true)
	}

	// median lines
	mx := toX(model.CMedian)
	my := toY(model.DMedian)
	dash := t.Faded
	for y := 0; y < height; y++ {
		if c.cells[y][mx].ch == " " {
			c.set(mx, y, "┊", dash.Render("┊"))
		}
	}
	for x := 0; x < width; x++ {
		if c.cells[my][x].ch == " " {
			c.set(x, my, "╌", dash.Render("╌"))
		}
	}
	c.set(mx, my, "┼", dash.Render("┼"))

	rows := make([]analysis.PointAttrs, len(attrs))
	copy(rows, attrs)
	maxSize := 0.0
	for _, a := range rows {
		if a.Size > maxSize {
			maxSize = a.Size
		}
	}

	// label for the cursor point only; the full legend lives in the side panel
	for _, a := range rows {
		if a.Name != cursor {
			continue
		}
		x, y := toX(a.X), toY(a.Y)
		ly := y - 1
		if a.Anchor == analysis.AnchorBottomCenter {
			ly = y + 1
		}
		if ly < 0 {
			ly = y + 1
		}
		if ly >= height {
			ly = y - 1
		}
		label := truncate(a.Label, width-2)
		style := t.FamilyStyle(a.Color, !a.Spotlit).Bold(true)
		c.writeString(x, ly, label, style, true)
	}

	// points
	for _, pass := range []bool{false, true} {
		for _, a := range rows {
			if a.Spotlit != pass {
				continue
			}
			glyph := glyphFor(a.Size, maxSize)
			style := t.FamilyStyle(a.Color, !a.Spotlit)
			if a.Name == cursor {
				style = style.Bold(true).Underline(true)
			}
			c.set(toX(a.X), toY(a.Y), glyph, style.Render(glyph))
		}
	}

	return c.String()
}

// renderAxisCaption returns the one-line axis legend under the chart.
func renderAxisCaption(t Theme, width int) string {
	caption := fmt.Sprintf("x: Complexity Fit (C, median %.2f)   y: Data Fit (D, median %.2f)", model.CMedian, model.DMedian)
	return t.MutedText.Render(truncate(caption, width))
}
