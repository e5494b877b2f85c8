package analysis_test

import (
	"testing"

	"github.com/quadrantlab/algoquad/internal/dataset"
	"github.com/quadrantlab/algoquad/pkg/analysis"
	"github.com/quadrantlab/algoquad/pkg/model"

	"pgregory.net/rapid"
)

func TestAttributesSelectAll(t *testing.T) {
	ds := dataset.Embedded()
	attrs := analysis.Attributes(ds, analysis.DefaultState())

	if len(attrs) != ds.Len() {
		t.Fatalf("got %d points, want %d", len(attrs), ds.Len())
	}
	for _, a := range attrs {
		if a.Opacity != analysis.FullOpacity {
			t.Errorf("%s: opacity %v under select-all, want %v", a.Name, a.Opacity, analysis.FullOpacity)
		}
		if a.LabelDim {
			t.Errorf("%s: label dimmed under select-all", a.Name)
		}
	}
}

func TestAttributesSpotlight(t *testing.T) {
	ds := dataset.Embedded()
	st := analysis.DefaultState()
	st.Spotlight = "KNN"
	attrs := analysis.Attributes(ds, st)

	spotlit := 0
	for _, a := range attrs {
		if a.Name == "KNN" {
			spotlit++
			if a.Opacity != analysis.FullOpacity {
				t.Errorf("KNN opacity = %v", a.Opacity)
			}
			if a.Quadrant != model.QuadrantLimited {
				t.Errorf("KNN quadrant = %v", a.Quadrant)
			}
		} else {
			if a.Opacity != analysis.FadeOpacity {
				t.Errorf("%s: opacity = %v, want fade %v", a.Name, a.Opacity, analysis.FadeOpacity)
			}
			if !a.LabelDim {
				t.Errorf("%s: label not dimmed", a.Name)
			}
		}
	}
	if spotlit != 1 {
		t.Errorf("%d spotlit points, want exactly 1", spotlit)
	}
}

func TestAttributesFilter(t *testing.T) {
	ds := dataset.Embedded()
	st := analysis.DefaultState()
	st.Visible = []string{"SVM", "Regression"}
	attrs := analysis.Attributes(ds, st)

	if len(attrs) != 2 {
		t.Fatalf("got %d points, want 2", len(attrs))
	}

	// Cleared multi-select: empty but valid result, no error path.
	st.Visible = []string{}
	attrs = analysis.Attributes(ds, st)
	if len(attrs) != 0 {
		t.Errorf("cleared filter yielded %d points", len(attrs))
	}
}

func TestAttributesFadeOverride(t *testing.T) {
	ds := dataset.Embedded()
	st := analysis.DefaultState()
	st.Spotlight = "SVM"
	st.Fade = 0.4
	for _, a := range analysis.Attributes(ds, st) {
		want := 0.4
		if a.Name == "SVM" {
			want = analysis.FullOpacity
		}
		if a.Opacity != want {
			t.Errorf("%s: opacity = %v, want %v", a.Name, a.Opacity, want)
		}
	}

	// The zero value keeps the stock fade so hand-built states stay valid.
	if got := (analysis.State{}).FadeValue(); got != analysis.FadeOpacity {
		t.Errorf("zero-value fade = %v, want %v", got, analysis.FadeOpacity)
	}
}

func TestLabelAnchorFallback(t *testing.T) {
	if a := analysis.LabelAnchor("SVM"); a != analysis.AnchorTopCenter {
		t.Errorf("SVM anchor = %v", a)
	}
	if a := analysis.LabelAnchor("Something Else"); a != analysis.DefaultAnchor {
		t.Errorf("fallback anchor = %v", a)
	}
}

func TestFamilyColorFallback(t *testing.T) {
	if c := analysis.FamilyColor("Random Forest"); c != "#E9967A" {
		t.Errorf("Random Forest color = %q", c)
	}
	if c := analysis.FamilyColor("Unlisted"); c == "" {
		t.Error("missing fallback color")
	}
}

// The mapping is pure and total: for any spotlight choice drawn from the
// table's own keys (or the select-all sentinel) every visible point has a
// defined attribute set, exactly one opacity level, and positions taken
// straight from the table.
func TestAttributesTotal(t *testing.T) {
	ds := dataset.Embedded()
	names := ds.Names()

	rapid.Check(t, func(t *rapid.T) {
		choice := rapid.SampledFrom(append([]string{analysis.SpotlightAll}, names...)).Draw(t, "spotlight")
		ctx := rapid.SampledFrom(model.TaskContexts()).Draw(t, "context")
		visible := rapid.SliceOfDistinct(rapid.SampledFrom(names), func(s string) string { return s }).Draw(t, "visible")

		st := analysis.State{Visible: visible, Spotlight: choice, Context: ctx}
		attrs := analysis.Attributes(ds, st)

		if len(attrs) != len(visible) {
			t.Fatalf("got %d points for %d visible families", len(attrs), len(visible))
		}
		fullCount := 0
		for _, a := range attrs {
			switch a.Opacity {
			case analysis.FullOpacity:
				fullCount++
			case analysis.FadeOpacity:
			default:
				t.Fatalf("%s: undefined opacity %v", a.Name, a.Opacity)
			}
			f, ok := ds.ByName(a.Name)
			if !ok {
				t.Fatalf("attribute for unknown family %q", a.Name)
			}
			if a.X != f.PlotC || a.Y != f.PlotD {
				t.Fatalf("%s: position (%v,%v) differs from table (%v,%v)", a.Name, a.X, a.Y, f.PlotC, f.PlotD)
			}
			if a.Color == "" || a.Anchor == "" {
				t.Fatalf("%s: missing color or anchor", a.Name)
			}
		}
		if choice == analysis.SpotlightAll {
			if fullCount != len(attrs) {
				t.Fatalf("select-all: %d/%d points at full opacity", fullCount, len(attrs))
			}
		} else if fullCount > 1 {
			t.Fatalf("spotlight %q: %d points at full opacity", choice, fullCount)
		}
	})
}
