package model

// Quadrant thresholds. The medians partition the (C,D) plane into the four
// regions used for background shading and for the interpretive label of a
// selected family.
const (
	CMedian = 0.80
	DMedian = 0.20
)

// Quadrant identifies one of the four regions of the (C,D) plane.
type Quadrant int

const (
	QuadrantBestOfBoth     Quadrant = iota + 1 // Q1: high C, high D
	QuadrantSimpleRobust                       // Q2: low C, high D
	QuadrantLimited                            // Q3: low C, low D
	QuadrantComplexFragile                     // Q4: high C, low D
)

// ClassifyQuadrant maps a (complexity, data-fit) pair to its quadrant.
// The function is total over [0,1]²: scores exactly at a median threshold are
// assigned to the "high" side (>=). The source variants disagreed on this
// tie-break; >= is the rule used everywhere in this codebase.
func ClassifyQuadrant(c, d float64) Quadrant {
	highC := c >= CMedian
	highD := d >= DMedian
	switch {
	case highC && highD:
		return QuadrantBestOfBoth
	case !highC && highD:
		return QuadrantSimpleRobust
	case !highC && !highD:
		return QuadrantLimited
	default:
		return QuadrantComplexFragile
	}
}

// String returns the interpretive label shown in the detail panel.
func (q Quadrant) String() string {
	switch q {
	case QuadrantBestOfBoth:
		return "Best of Both"
	case QuadrantSimpleRobust:
		return "Simple & Robust"
	case QuadrantLimited:
		return "Limited Applicability"
	case QuadrantComplexFragile:
		return "Complex & Fragile"
	default:
		return "Unknown"
	}
}

// Caption returns the annotation text drawn inside the quadrant region,
// e.g. "Quadrant 1: Best of Both".
func (q Quadrant) Caption() string {
	switch q {
	case QuadrantBestOfBoth:
		return "Quadrant 1: Best of Both"
	case QuadrantSimpleRobust:
		return "Quadrant 2: Simple & Robust"
	case QuadrantLimited:
		return "Quadrant 3: Limited Applicability"
	case QuadrantComplexFragile:
		return "Quadrant 4: Complex & Fragile"
	default:
		return "Unknown"
	}
}

// Quadrants returns all four quadrants in numbering order.
func Quadrants() []Quadrant {
	return []Quadrant{QuadrantBestOfBoth, QuadrantSimpleRobust, QuadrantLimited, QuadrantComplexFragile}
}
