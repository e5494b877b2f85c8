package export

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/quadrantlab/algoquad/pkg/analysis"
	"github.com/quadrantlab/algoquad/pkg/model"
)

// RobotFamily is one family row in the robot report, combining the raw table
// values with everything the chart derives from them.
type RobotFamily struct {
	Name          string  `json:"name"`
	TrueC         float64 `json:"true_complexity"`
	TrueD         float64 `json:"true_data_fit"`
	PlotC         float64 `json:"plot_complexity"`
	PlotD         float64 `json:"plot_data_fit"`
	Frequency     float64 `json:"frequency"`
	SizeValue     float64 `json:"size_value"`
	Percent       float64 `json:"percent"`
	Quadrant      string  `json:"quadrant"`
	QuadrantLabel string  `json:"quadrant_label"`
	Color         string  `json:"color"`
	Spotlit       bool    `json:"spotlit,omitempty"`
}

// RobotThresholds reports the median split points used for classification.
type RobotThresholds struct {
	Complexity float64 `json:"complexity"`
	DataFit    float64 `json:"data_fit"`
}

// RobotReport is the machine-readable rendition of the dashboard state. The
// shape is stable so scripts can depend on it.
type RobotReport struct {
	Context    string           `json:"context"`
	Spotlight  string           `json:"spotlight"`
	Thresholds RobotThresholds  `json:"thresholds"`
	Families   []RobotFamily    `json:"families"`
	Summary    analysis.Summary `json:"summary"`
}

// BuildRobotReport assembles the report for the current dataset and state.
// Families follow the visible selection; filtered-out rows are omitted, same
// as on the chart.
func BuildRobotReport(ds *model.Dataset, st analysis.State) RobotReport {
	attrs := analysis.Attributes(ds, st)

	fams := make([]RobotFamily, 0, len(attrs))
	for _, a := range attrs {
		f, ok := ds.ByName(a.Name)
		if !ok {
			continue
		}
		fams = append(fams, RobotFamily{
			Name:          a.Name,
			TrueC:         f.TrueC,
			TrueD:         f.TrueD,
			PlotC:         f.PlotC,
			PlotD:         f.PlotD,
			Frequency:     f.Frequency,
			SizeValue:     a.Size,
			Percent:       a.Percent,
			Quadrant:      a.Quadrant.String(),
			QuadrantLabel: a.Quadrant.Caption(),
			Color:         a.Color,
			Spotlit:       a.Spotlit,
		})
	}

	rep := RobotReport{
		Context:   st.Context.String(),
		Spotlight: st.Spotlight,
		Families:  fams,
		Summary:   analysis.Summarize(ds),
	}
	rep.Thresholds.Complexity = model.CMedian
	rep.Thresholds.DataFit = model.DMedian
	return rep
}

// WriteRobotReport writes the report as indented JSON.
func WriteRobotReport(w io.Writer, ds *model.Dataset, st analysis.State) error {
	rep := BuildRobotReport(ds, st)
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling robot report: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing robot report: %w", err)
	}
	return nil
}
