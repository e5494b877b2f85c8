// Package export renders the quadrant chart to static files. SVG is the
// primary format; PNG rasterizes the same layout for contexts that cannot
// display vector output. A JSON surface serves automation.
package export

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/quadrantlab/algoquad/pkg/analysis"
	"github.com/quadrantlab/algoquad/pkg/model"

	"git.sr.ht/~sbinet/gg"
	"github.com/ajstarks/svgo"
	"golang.org/x/image/font/basicfont"
)

// ChartSnapshotOptions controls chart snapshot export behaviour.
type ChartSnapshotOptions struct {
	Path    string         // Output path; format inferred from extension when Format empty
	Format  string         // "svg" or "png" (case-insensitive). If empty, inferred from Path.
	Title   string         // Optional title rendered in the header block
	Dataset *model.Dataset // Table to render
	State   analysis.State // Selection, spotlight and task context
	Width   int            // Canvas width in pixels, default 1000
	Height  int            // Canvas height in pixels, default 760
}

// SaveChartSnapshot renders a static chart snapshot (SVG or PNG): quadrant
// shading, median lines, caption annotations, sized bubbles with labels, and a
// summary block with the aggregate metrics.
func SaveChartSnapshot(opts ChartSnapshotOptions) error {
	if opts.Dataset == nil || opts.Dataset.Len() == 0 {
		return fmt.Errorf("no families to export")
	}

	format := strings.ToLower(strings.TrimPrefix(opts.Format, "."))
	if format == "" {
		switch strings.ToLower(filepath.Ext(opts.Path)) {
		case ".svg":
			format = "svg"
		case ".png":
			format = "png"
		default:
			format = "svg" // safe default
			if opts.Path != "" && filepath.Ext(opts.Path) == "" {
				opts.Path = opts.Path + ".svg"
			}
		}
	}
	if format != "svg" && format != "png" {
		return fmt.Errorf("unsupported format %q (want svg or png)", format)
	}
	if opts.Path == "" {
		return fmt.Errorf("output path is required")
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return fmt.Errorf("create parent dir: %w", err)
	}

	layout := buildChartLayout(opts)

	switch format {
	case "svg":
		return renderChartSVG(opts.Path, layout)
	case "png":
		return renderChartPNG(opts.Path, layout)
	default:
		return fmt.Errorf("unhandled format %q", format)
	}
}

// --- layout computation ----------------------------------------------------

type chartPoint struct {
	analysis.PointAttrs
	PX, PY float64 // pixel position
	Radius float64
}

type chartRect struct {
	X, Y, W, H  float64
	Fill        string
	FillOpacity float64
}

type chartText struct {
	X, Y float64
	Text string
}

type chartLayout struct {
	Width, Height  int
	PlotX, PlotY   float64 // top-left corner of the plot area
	PlotW, PlotH   float64
	Rects          []chartRect
	MedianV        float64 // pixel x of the complexity median line
	MedianH        float64 // pixel y of the data-fit median line
	Annotations    []chartText
	Points         []chartPoint
	Header         headerInfo
	XLabel, YLabel string
}

type headerInfo struct {
	Title   string
	Context string
	Lines   []string
}

// Bubble radii in pixels for the smallest and largest size values.
const (
	minRadius = 6.0
	maxRadius = 34.0
)

func buildChartLayout(opts ChartSnapshotOptions) chartLayout {
	const (
		marginLeft   = 70.0
		marginRight  = 40.0
		marginTop    = 120.0
		marginBottom = 60.0
	)

	width := opts.Width
	if width <= 0 {
		width = 1000
	}
	height := opts.Height
	if height <= 0 {
		height = 760
	}

	plotX := marginLeft
	plotY := marginTop
	plotW := float64(width) - marginLeft - marginRight
	plotH := float64(height) - marginTop - marginBottom

	span := analysis.AxisMax - analysis.AxisMin
	toPX := func(v float64) float64 { return plotX + (v-analysis.AxisMin)/span*plotW }
	// Data-fit grows upward, pixel y grows downward.
	toPY := func(v float64) float64 { return plotY + plotH - (v-analysis.AxisMin)/span*plotH }

	var rects []chartRect
	for _, r := range analysis.QuadrantRects() {
		x0, x1 := toPX(r.X0), toPX(r.X1)
		y0, y1 := toPY(r.Y1), toPY(r.Y0)
		rects = append(rects, chartRect{
			X: x0, Y: y0, W: x1 - x0, H: y1 - y0,
			Fill:        r.Fill,
			FillOpacity: r.FillOpacity,
		})
	}

	var anns []chartText
	for _, a := range analysis.Annotations() {
		anns = append(anns, chartText{X: toPX(a.X), Y: toPY(a.Y), Text: a.Text})
	}

	rows := analysis.Derive(opts.Dataset, opts.State.Context)
	maxSize := analysis.MaxSizeValue(rows)
	attrs := analysis.Attributes(opts.Dataset, opts.State)

	points := make([]chartPoint, 0, len(attrs))
	for _, a := range attrs {
		r := maxRadius
		if maxSize > 0 {
			// Area-proportional sizing: radius grows with the square root so
			// a bubble twice the value covers twice the area.
			r = minRadius + (maxRadius-minRadius)*math.Sqrt(a.Size/maxSize)
		}
		points = append(points, chartPoint{
			PointAttrs: a,
			PX:         toPX(a.X),
			PY:         toPY(a.Y),
			Radius:     r,
		})
	}

	title := strings.TrimSpace(opts.Title)
	if title == "" {
		title = "Algorithm Families: Complexity Fit vs Data Fit"
	}

	s := analysis.Summarize(opts.Dataset)
	header := headerInfo{
		Title:   title,
		Context: "context: " + opts.State.Context.ColumnLabel(),
		Lines: []string{
			fmt.Sprintf("families: %d  total frequency: %.1f", s.FamilyCount, s.TotalFrequency),
			fmt.Sprintf("weighted mean C: %.2f  weighted mean D: %.2f  corr(C,D): %+.2f", s.WeightedMeanC, s.WeightedMeanD, s.CorrCD),
		},
	}

	return chartLayout{
		Width:       width,
		Height:      height,
		PlotX:       plotX,
		PlotY:       plotY,
		PlotW:       plotW,
		PlotH:       plotH,
		Rects:       rects,
		MedianV:     toPX(model.CMedian),
		MedianH:     toPY(model.DMedian),
		Annotations: anns,
		Points:      points,
		Header:      header,
		XLabel:      "Complexity Fit (C)",
		YLabel:      "Data Fit (D)",
	}
}

// --- rendering -------------------------------------------------------------

var (
	snapBackdrop   = color.RGBA{0xff, 0xff, 0xff, 0xff}
	snapHeaderBG   = color.RGBA{0xf3, 0xf4, 0xf6, 0xff}
	snapText       = color.RGBA{0x11, 0x11, 0x11, 0xff}
	snapSubtle     = color.RGBA{0x66, 0x66, 0x66, 0xff}
	snapAxis       = color.RGBA{0x44, 0x44, 0x44, 0xff}
	snapMedian     = color.RGBA{0x88, 0x88, 0x88, 0xff}
	snapAnnotation = color.RGBA{0x64, 0x64, 0x64, 0x80}
)

func renderChartSVG(path string, layout chartLayout) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return renderChartSVGToWriter(file, layout)
}

func renderChartSVGToWriter(w io.Writer, layout chartLayout) error {
	canvas := svg.New(w)
	canvas.Start(layout.Width, layout.Height)
	canvas.Rect(0, 0, layout.Width, layout.Height, fmt.Sprintf("fill:%s", css(snapBackdrop)))

	// header
	canvas.Roundrect(16, 16, layout.Width-32, 88, 10, 10, fmt.Sprintf("fill:%s", css(snapHeaderBG)))
	canvas.Text(32, 40, layout.Header.Title, fmt.Sprintf("fill:%s;font-size:16px;font-family:monospace;font-weight:bold", css(snapText)))
	canvas.Text(32, 60, layout.Header.Context, fmt.Sprintf("fill:%s;font-size:13px;font-family:monospace", css(snapSubtle)))
	for i, line := range layout.Header.Lines {
		canvas.Text(32, 78+i*16, line, fmt.Sprintf("fill:%s;font-size:12px;font-family:monospace", css(snapSubtle)))
	}

	// quadrant shading below everything else
	for _, r := range layout.Rects {
		canvas.Rect(int(r.X), int(r.Y), int(r.W), int(r.H),
			fmt.Sprintf("fill:%s;fill-opacity:%.2f", r.Fill, r.FillOpacity))
	}

	// median lines
	dash := fmt.Sprintf("stroke:%s;stroke-width:1;stroke-dasharray:6,4", css(snapMedian))
	canvas.Line(int(layout.MedianV), int(layout.PlotY), int(layout.MedianV), int(layout.PlotY+layout.PlotH), dash)
	canvas.Line(int(layout.PlotX), int(layout.MedianH), int(layout.PlotX+layout.PlotW), int(layout.MedianH), dash)

	// axes
	axisStyle := fmt.Sprintf("stroke:%s;stroke-width:1.5", css(snapAxis))
	canvas.Line(int(layout.PlotX), int(layout.PlotY+layout.PlotH), int(layout.PlotX+layout.PlotW), int(layout.PlotY+layout.PlotH), axisStyle)
	canvas.Line(int(layout.PlotX), int(layout.PlotY), int(layout.PlotX), int(layout.PlotY+layout.PlotH), axisStyle)
	canvas.Text(int(layout.PlotX+layout.PlotW/2), layout.Height-16, layout.XLabel,
		fmt.Sprintf("fill:%s;font-size:13px;font-family:monospace;text-anchor:middle", css(snapText)))
	canvas.TranslateRotate(22, int(layout.PlotY+layout.PlotH/2), -90)
	canvas.Text(0, 0, layout.YLabel,
		fmt.Sprintf("fill:%s;font-size:13px;font-family:monospace;text-anchor:middle", css(snapText)))
	canvas.Gend()

	// quadrant captions
	for _, a := range layout.Annotations {
		canvas.Text(int(a.X), int(a.Y), a.Text,
			fmt.Sprintf("fill:%s;fill-opacity:0.5;font-size:13px;font-family:monospace;text-anchor:middle", css(snapAnnotation)))
	}

	// bubbles; faded ones first so the spotlit bubble stays on top
	for _, pass := range []bool{false, true} {
		for _, p := range layout.Points {
			if p.Spotlit != pass {
				continue
			}
			canvas.Circle(int(p.PX), int(p.PY), int(p.Radius),
				fmt.Sprintf("fill:%s;fill-opacity:%.2f;stroke:%s;stroke-opacity:%.2f;stroke-width:1",
					p.Color, p.Opacity, css(snapAxis), p.Opacity))
			lx, ly := labelOffset(p)
			labelOpacity := p.Opacity
			canvas.Text(int(lx), int(ly), p.Label,
				fmt.Sprintf("fill:%s;fill-opacity:%.2f;font-size:12px;font-family:monospace;text-anchor:middle", css(snapText), labelOpacity))
		}
	}

	canvas.End()
	return nil
}

func renderChartPNG(path string, layout chartLayout) error {
	dc := gg.NewContext(layout.Width, layout.Height)
	dc.SetColor(snapBackdrop)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	// header
	dc.SetColor(snapHeaderBG)
	dc.DrawRoundedRectangle(16, 16, float64(layout.Width)-32, 88, 10)
	dc.Fill()
	dc.SetColor(snapText)
	dc.DrawStringAnchored(layout.Header.Title, 32, 40, 0, 0.5)
	dc.SetColor(snapSubtle)
	dc.DrawStringAnchored(layout.Header.Context, 32, 60, 0, 0.5)
	for i, line := range layout.Header.Lines {
		dc.DrawStringAnchored(line, 32, 78+float64(i)*16, 0, 0.5)
	}

	for _, r := range layout.Rects {
		fill := hexColor(r.Fill)
		dc.SetRGBA(float64(fill.R)/255, float64(fill.G)/255, float64(fill.B)/255, r.FillOpacity)
		dc.DrawRectangle(r.X, r.Y, r.W, r.H)
		dc.Fill()
	}

	dc.SetColor(snapMedian)
	dc.SetLineWidth(1)
	dc.SetDash(6, 4)
	dc.DrawLine(layout.MedianV, layout.PlotY, layout.MedianV, layout.PlotY+layout.PlotH)
	dc.Stroke()
	dc.DrawLine(layout.PlotX, layout.MedianH, layout.PlotX+layout.PlotW, layout.MedianH)
	dc.Stroke()
	dc.SetDash()

	dc.SetColor(snapAxis)
	dc.SetLineWidth(1.5)
	dc.DrawLine(layout.PlotX, layout.PlotY+layout.PlotH, layout.PlotX+layout.PlotW, layout.PlotY+layout.PlotH)
	dc.Stroke()
	dc.DrawLine(layout.PlotX, layout.PlotY, layout.PlotX, layout.PlotY+layout.PlotH)
	dc.Stroke()
	dc.SetColor(snapText)
	dc.DrawStringAnchored(layout.XLabel, layout.PlotX+layout.PlotW/2, float64(layout.Height)-16, 0.5, 0.5)
	dc.Push()
	dc.RotateAbout(-math.Pi/2, 22, layout.PlotY+layout.PlotH/2)
	dc.DrawStringAnchored(layout.YLabel, 22, layout.PlotY+layout.PlotH/2, 0.5, 0.5)
	dc.Pop()

	dc.SetColor(snapAnnotation)
	for _, a := range layout.Annotations {
		dc.DrawStringAnchored(a.Text, a.X, a.Y, 0.5, 0.5)
	}

	for _, pass := range []bool{false, true} {
		for _, p := range layout.Points {
			if p.Spotlit != pass {
				continue
			}
			fill := hexColor(p.Color)
			dc.SetRGBA(float64(fill.R)/255, float64(fill.G)/255, float64(fill.B)/255, p.Opacity)
			dc.DrawCircle(p.PX, p.PY, p.Radius)
			dc.Fill()
			dc.SetRGBA(float64(snapAxis.R)/255, float64(snapAxis.G)/255, float64(snapAxis.B)/255, p.Opacity)
			dc.SetLineWidth(1)
			dc.DrawCircle(p.PX, p.PY, p.Radius)
			dc.Stroke()

			lx, ly := labelOffset(p)
			dc.SetRGBA(float64(snapText.R)/255, float64(snapText.G)/255, float64(snapText.B)/255, p.Opacity)
			dc.DrawStringAnchored(p.Label, lx, ly, 0.5, 0.5)
		}
	}

	return dc.SavePNG(path)
}

// labelOffset places a bubble's label according to its anchor so dense regions
// of the chart stay readable.
func labelOffset(p chartPoint) (float64, float64) {
	switch p.Anchor {
	case analysis.AnchorTopCenter:
		return p.PX, p.PY - p.Radius - 8
	case analysis.AnchorBottomCenter:
		return p.PX, p.PY + p.Radius + 14
	default:
		return p.PX, p.PY - 2
	}
}

// --- helpers ---------------------------------------------------------------

func css(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func hexColor(s string) color.RGBA {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{0x9e, 0x9e, 0x9e, 0xff}
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{0x9e, 0x9e, 0x9e, 0xff}
	}
	return color.RGBA{r, g, b, 0xff}
}
