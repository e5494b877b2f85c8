package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quadrantlab/algoquad/pkg/model"
)

func TestEmbedded(t *testing.T) {
	ds := Embedded()
	if ds.Len() != 11 {
		t.Fatalf("embedded table has %d families, want 11", ds.Len())
	}
	if err := ds.Validate(); err != nil {
		t.Fatalf("embedded table invalid: %v", err)
	}

	// Anchor rows from the source table.
	boost, ok := ds.ByName("Boosting/Gradient")
	if !ok {
		t.Fatal("Boosting/Gradient missing")
	}
	if boost.TrueC != 0.84 || boost.TrueD != 0.74 || boost.Frequency != 25.7 {
		t.Errorf("Boosting/Gradient = %+v", boost)
	}
	if boost.Quadrant() != model.QuadrantBestOfBoth {
		t.Errorf("Boosting/Gradient quadrant = %v", boost.Quadrant())
	}

	knn, _ := ds.ByName("KNN")
	if knn.Quadrant() != model.QuadrantLimited {
		t.Errorf("KNN quadrant = %v", knn.Quadrant())
	}

	// Plot coordinates are nudged only where the table says so.
	ert, _ := ds.ByName("Extremely Randomized Trees")
	if ert.TrueC == ert.PlotC && ert.TrueD == ert.PlotD {
		t.Error("Extremely Randomized Trees should have adjusted plot coordinates")
	}

	total := ds.TotalFrequency()
	if total < 99.9 || total > 100.3 {
		t.Errorf("total frequency = %.2f, want ~100", total)
	}
}

func TestLoadEmptyPathSelectsEmbedded(t *testing.T) {
	ds, src, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if src.Type != SourceEmbedded {
		t.Errorf("source = %v, want embedded", src.Type)
	}
	if ds.Len() != 11 {
		t.Errorf("got %d families", ds.Len())
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "families.yaml")
	doc := `families:
  - name: Alpha
    complexity_fit: 0.9
    data_fit: 0.5
    plot_complexity: 0.9
    plot_data_fit: 0.5
    frequency: 60
    safety: 0.8
    schedule: 0.7
    cost: 0.6
  - name: Beta
    complexity_fit: 0.2
    data_fit: 0.4
    plot_complexity: 0.2
    plot_data_fit: 0.4
    frequency: 40
    safety: 0.3
    schedule: 0.4
    cost: 0.5
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	ds, src, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if src.Type != SourceFile || src.Path != path {
		t.Errorf("source = %+v", src)
	}
	if ds.Len() != 2 {
		t.Fatalf("got %d families, want 2", ds.Len())
	}
	alpha, _ := ds.ByName("Alpha")
	if alpha.TrueC != 0.9 {
		t.Errorf("Alpha complexity = %v", alpha.TrueC)
	}
	if !strings.Contains(src.String(), "file") {
		t.Errorf("source string = %q", src.String())
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		if _, _, err := Load(filepath.Join(dir, "nope.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("bad yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		os.WriteFile(path, []byte("families: [what"), 0o644)
		if _, _, err := Load(path); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("out of range score", func(t *testing.T) {
		path := filepath.Join(dir, "range.yaml")
		os.WriteFile(path, []byte(`families:
  - name: Bad
    complexity_fit: 1.5
    data_fit: 0.5
    frequency: 10
`), 0o644)
		_, _, err := Load(path)
		if err == nil {
			t.Fatal("expected validation error")
		}
		if !strings.Contains(err.Error(), "out of [0,1]") {
			t.Errorf("error %q does not mention the bound", err)
		}
	})

	t.Run("zero task score column", func(t *testing.T) {
		// A table whose safety column sums to zero would make the safety
		// context percentages sum to 0 instead of 100.
		path := filepath.Join(dir, "zerosafety.yaml")
		os.WriteFile(path, []byte(`families:
  - name: Alpha
    complexity_fit: 0.9
    data_fit: 0.5
    frequency: 60
    schedule: 0.7
    cost: 0.6
  - name: Beta
    complexity_fit: 0.2
    data_fit: 0.4
    frequency: 40
    schedule: 0.4
    cost: 0.5
`), 0o644)
		_, _, err := Load(path)
		if err == nil {
			t.Fatal("expected validation error")
		}
		if !strings.Contains(err.Error(), "total safety") {
			t.Errorf("error %q does not mention the safety column", err)
		}
	})

	t.Run("empty families", func(t *testing.T) {
		path := filepath.Join(dir, "empty.yaml")
		os.WriteFile(path, []byte("families: []\n"), 0o644)
		if _, _, err := Load(path); err == nil {
			t.Error("expected error for empty table")
		}
	})
}
