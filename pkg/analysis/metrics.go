package analysis

import (
	"github.com/quadrantlab/algoquad/pkg/model"

	"gonum.org/v1/gonum/stat"
)

// Summary holds the aggregate metrics shown in the side panel and embedded in
// exports. All values are computed over the full table, not the filtered view,
// so the panel stays meaningful while experimenting with filters.
type Summary struct {
	FamilyCount    int     `json:"family_count"`
	TotalFrequency float64 `json:"total_frequency"`
	WeightedMeanC  float64 `json:"weighted_mean_complexity"`
	WeightedMeanD  float64 `json:"weighted_mean_data_fit"`
	// CorrCD is the Pearson correlation between complexity fit and data fit
	// across families. Near zero in the curated table: theoretical power and
	// robustness are roughly independent axes.
	CorrCD         float64                `json:"corr_complexity_data_fit"`
	QuadrantCounts map[model.Quadrant]int `json:"quadrant_counts"`
}

// Summarize computes the aggregate metrics for a dataset. Frequency-weighted
// means answer "what does the field actually use", as opposed to the
// unweighted centroid of the table.
func Summarize(ds *model.Dataset) Summary {
	fams := ds.Families()

	cs := make([]float64, len(fams))
	dsc := make([]float64, len(fams))
	weights := make([]float64, len(fams))
	counts := make(map[model.Quadrant]int, 4)
	for i, f := range fams {
		cs[i] = f.TrueC
		dsc[i] = f.TrueD
		weights[i] = f.Frequency
		counts[f.Quadrant()]++
	}

	return Summary{
		FamilyCount:    len(fams),
		TotalFrequency: ds.TotalFrequency(),
		WeightedMeanC:  stat.Mean(cs, weights),
		WeightedMeanD:  stat.Mean(dsc, weights),
		CorrCD:         stat.Correlation(cs, dsc, nil),
		QuadrantCounts: counts,
	}
}
