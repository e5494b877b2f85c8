// Package dataset selects and loads the algorithm-family table for aq.
//
// The default source is the embedded table below, so the app never depends on
// files being present. A YAML override file can be supplied for experimenting
// with adjusted scores; it is validated once at load and replaces the embedded
// table wholesale.
package dataset

import "github.com/quadrantlab/algoquad/pkg/model"

// embeddedRows is the hand-curated suitability table from the meta-analysis
// of 30 empirical studies. True scores drive classification; plot coordinates
// are nudged for the two families that would otherwise overlap (Extremely
// Randomized Trees, Naïve-Bayesian). Frequencies are percentage shares and
// sum to ~100.
var embeddedRows = []model.Family{
	{Name: "ANN", TrueC: 0.82, TrueD: 0.09, PlotC: 0.82, PlotD: 0.09,
		Frequency: 9.7, Safety: 0.62, Schedule: 0.55, Cost: 0.58},
	{Name: "Bayesian Networks", TrueC: 0.00, TrueD: 0.20, PlotC: 0.00, PlotD: 0.20,
		Frequency: 0.9, Safety: 0.71, Schedule: 0.32, Cost: 0.28},
	{Name: "Boosting/Gradient", TrueC: 0.84, TrueD: 0.74, PlotC: 0.84, PlotD: 0.74,
		Frequency: 25.7, Safety: 0.88, Schedule: 0.91, Cost: 0.90},
	{Name: "Decision Tree", TrueC: 0.53, TrueD: 0.28, PlotC: 0.53, PlotD: 0.28,
		Frequency: 10.6, Safety: 0.58, Schedule: 0.61, Cost: 0.57},
	{Name: "Ensemble", TrueC: 0.80, TrueD: 0.35, PlotC: 0.80, PlotD: 0.35,
		Frequency: 11.5, Safety: 0.73, Schedule: 0.76, Cost: 0.70},
	{Name: "Extremely Randomized Trees", TrueC: 0.80, TrueD: 0.80, PlotC: 0.76, PlotD: 0.82,
		Frequency: 0.9, Safety: 0.69, Schedule: 0.72, Cost: 0.66},
	{Name: "KNN", TrueC: 0.40, TrueD: 0.13, PlotC: 0.40, PlotD: 0.13,
		Frequency: 5.3, Safety: 0.35, Schedule: 0.41, Cost: 0.44},
	{Name: "Naïve-Bayesian", TrueC: 0.00, TrueD: 0.20, PlotC: 0.02, PlotD: 0.25,
		Frequency: 1.8, Safety: 0.52, Schedule: 0.30, Cost: 0.27},
	{Name: "Random Forest", TrueC: 0.88, TrueD: 0.67, PlotC: 0.88, PlotD: 0.67,
		Frequency: 13.3, Safety: 0.84, Schedule: 0.86, Cost: 0.82},
	{Name: "Regression", TrueC: 0.19, TrueD: 0.20, PlotC: 0.19, PlotD: 0.20,
		Frequency: 12.4, Safety: 0.47, Schedule: 0.63, Cost: 0.68},
	{Name: "SVM", TrueC: 0.96, TrueD: 0.20, PlotC: 0.96, PlotD: 0.20,
		Frequency: 8.0, Safety: 0.66, Schedule: 0.59, Cost: 0.52},
}

// Embedded returns the built-in dataset. It panics only if the embedded table
// itself is invalid, which is a programming error caught by the package tests.
func Embedded() *model.Dataset {
	ds, err := model.NewDataset(embeddedRows)
	if err != nil {
		panic("embedded dataset invalid: " + err.Error())
	}
	return ds
}
