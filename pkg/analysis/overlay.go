package analysis

import "github.com/quadrantlab/algoquad/pkg/model"

// Axis range of the chart. Slightly wider than [0,1] so edge bubbles and the
// quadrant shading have breathing room, matching the original layout.
const (
	AxisMin = -0.1
	AxisMax = 1.1
)

// QuadrantRect is one constant background region of the chart.
type QuadrantRect struct {
	Quadrant       model.Quadrant
	X0, Y0, X1, Y1 float64
	Fill           string  // hex fill color
	FillOpacity    float64 // drawn below the data layer
}

// AnnotationColor is the grey used for quadrant captions.
const AnnotationColor = "rgba(100, 100, 100, 0.5)"

// Annotation is a constant text label placed inside a quadrant.
type Annotation struct {
	X, Y float64
	Text string
}

// overlayFillOpacity is shared by all four background rects.
const overlayFillOpacity = 0.4

// QuadrantRects returns the four background regions partitioned at the median
// thresholds. These are constants independent of selection state.
func QuadrantRects() []QuadrantRect {
	return []QuadrantRect{
		{model.QuadrantBestOfBoth, model.CMedian, model.DMedian, AxisMax, AxisMax, "#F0F4F8", overlayFillOpacity},
		{model.QuadrantSimpleRobust, AxisMin, model.DMedian, model.CMedian, AxisMax, "#F5F5F0", overlayFillOpacity},
		{model.QuadrantLimited, AxisMin, AxisMin, model.CMedian, model.DMedian, "#FAF0F0", overlayFillOpacity},
		{model.QuadrantComplexFragile, model.CMedian, AxisMin, AxisMax, model.DMedian, "#FDFDF0", overlayFillOpacity},
	}
}

// Annotations returns the four quadrant captions at their fixed positions.
func Annotations() []Annotation {
	return []Annotation{
		{0.95, 0.65, model.QuadrantBestOfBoth.Caption()},
		{0.40, 0.65, model.QuadrantSimpleRobust.Caption()},
		{0.40, 0.10, model.QuadrantLimited.Caption()},
		{0.95, 0.10, model.QuadrantComplexFragile.Caption()},
	}
}
