package analysis

import "github.com/quadrantlab/algoquad/pkg/model"

// Opacity constants for the spotlight/fade effect.
const (
	FullOpacity = 1.0
	// FadeOpacity is the low constant applied to non-selected points so the
	// spotlighted family stands out without the rest disappearing.
	FadeOpacity = 0.15
)

// SpotlightAll is the sentinel meaning no single family is spotlighted.
const SpotlightAll = "all"

// State is the complete selection state of a session: which families pass the
// filter, which single family (if any) is spotlighted, and the active task
// context. It is an immutable snapshot; interactions build a new State and
// recompute attributes from it.
type State struct {
	// Visible lists the families that pass the multi-select filter.
	// nil means no filter (all families visible). An empty non-nil slice is
	// a cleared filter: the chart must render empty but valid.
	Visible []string
	// Spotlight is the single highlighted family, or SpotlightAll.
	Spotlight string
	// Context selects the size-encoding column.
	Context model.TaskContext
	// Fade is the opacity applied to non-spotlit points. Zero (the zero
	// value) falls back to FadeOpacity.
	Fade float64
}

// FadeValue returns the effective fade opacity for this state.
func (s State) FadeValue() float64 {
	if s.Fade <= 0 {
		return FadeOpacity
	}
	return s.Fade
}

// DefaultState is the session-start state: everything visible, nothing
// spotlighted, general context.
func DefaultState() State {
	return State{Spotlight: SpotlightAll, Context: model.ContextGeneral, Fade: FadeOpacity}
}

// IsVisible reports whether the named family passes the filter.
func (s State) IsVisible(name string) bool {
	if s.Visible == nil {
		return true
	}
	for _, n := range s.Visible {
		if n == name {
			return true
		}
	}
	return false
}

// IsSpotlit reports whether the named family renders at full opacity.
func (s State) IsSpotlit(name string) bool {
	return s.Spotlight == SpotlightAll || s.Spotlight == name
}

// Anchor is a label anchor position relative to the point.
type Anchor string

const (
	AnchorTopCenter    Anchor = "top center"
	AnchorMiddleCenter Anchor = "middle center"
	AnchorBottomCenter Anchor = "bottom center"
	AnchorMiddleRight  Anchor = "middle right"
)

// labelAnchors holds the per-family anchor exceptions that keep the crowded
// lower-left corner of the chart readable. Everything else uses the default.
var labelAnchors = map[string]Anchor{
	"Bayesian Networks": AnchorBottomCenter,
	"Naïve-Bayesian":    AnchorTopCenter,
	"Regression":        AnchorBottomCenter,
	"KNN":               AnchorBottomCenter,
	"SVM":               AnchorTopCenter,
	"ANN":               AnchorBottomCenter,
}

// DefaultAnchor is used for any family without an explicit anchor entry.
const DefaultAnchor = AnchorMiddleCenter

// LabelAnchor returns the label anchor for a family.
func LabelAnchor(name string) Anchor {
	if a, ok := labelAnchors[name]; ok {
		return a
	}
	return DefaultAnchor
}

// familyColors is the muted pastel palette from the original chart, keyed by
// family name.
var familyColors = map[string]string{
	"ANN":                        "#DBA9C7",
	"Bayesian Networks":          "#88C9D4",
	"Boosting/Gradient":          "#8FBC8F",
	"Decision Tree":              "#B39EB5",
	"Ensemble":                   "#F4C2C2",
	"Extremely Randomized Trees": "#D9D98C",
	"KNN":                        "#A9A9A9",
	"Naïve-Bayesian":             "#BC8F8F",
	"Random Forest":              "#E9967A",
	"Regression":                 "#8CBED6",
	"SVM":                        "#708090",
}

// fallbackColor covers families added through a dataset override that have no
// palette entry.
const fallbackColor = "#9E9E9E"

// FamilyColor returns the fixed hex color for a family.
func FamilyColor(name string) string {
	if c, ok := familyColors[name]; ok {
		return c
	}
	return fallbackColor
}

// PointAttrs is the full per-point render attribute set. The mapping from
// (family, state) to PointAttrs is total: every combination yields a defined
// value and there are no error states.
type PointAttrs struct {
	Name      string
	X, Y      float64 // plot coordinates
	Size      float64 // size value from the active column
	Color     string  // fixed per-family hex
	Opacity   float64 // FullOpacity or the state's fade value
	Label     string  // chart label text
	LabelDim  bool    // near-transparent label when faded
	Anchor    Anchor
	Spotlit   bool
	Quadrant  model.Quadrant
	Percent   float64
	TaskScore float64 // raw value of the active column (unscaled)
}

// Attributes computes the render attributes for every visible family under
// the given state. Families filtered out are omitted entirely; the quadrant
// overlay is drawn regardless, so an empty result still renders a valid chart.
func Attributes(ds *model.Dataset, st State) []PointAttrs {
	rows := Derive(ds, st.Context)
	fade := st.FadeValue()
	out := make([]PointAttrs, 0, len(rows))
	for _, r := range rows {
		if !st.IsVisible(r.Name) {
			continue
		}
		spotlit := st.IsSpotlit(r.Name)
		opacity := fade
		if spotlit {
			opacity = FullOpacity
		}
		out = append(out, PointAttrs{
			Name:      r.Name,
			X:         r.PlotC,
			Y:         r.PlotD,
			Size:      r.SizeValue,
			Color:     FamilyColor(r.Name),
			Opacity:   opacity,
			Label:     r.ChartLabel,
			LabelDim:  !spotlit,
			Anchor:    LabelAnchor(r.Name),
			Spotlit:   spotlit,
			Quadrant:  r.Family.Quadrant(),
			Percent:   r.Percent,
			TaskScore: r.Family.TaskScore(st.Context),
		})
	}
	return out
}
