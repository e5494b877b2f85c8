package ui

import (
	"github.com/charmbracelet/glamour"
)

// methodologyMarkdown documents how the table values were assigned. Shown in
// the full-screen methodology view (m).
const methodologyMarkdown = `# Methodology

The chart compares algorithm families on two hand-scored axes.

## Axes

- **Complexity Fit (C)**: how well the family's theoretical machinery matches
  the structure of typical problems. High values mean the model class can
  express the patterns that actually occur.
- **Data Fit (D)**: how well the family copes with data as it arrives in
  practice: noisy labels, missing values, modest sample sizes, drift.

Both axes are scored in [0, 1]. A handful of families are nudged slightly at
plot time so overlapping points stay readable; the detail panel always shows
the true scores.

## Quadrants

The plane splits at the column medians (C = 0.80, D = 0.20). Scores exactly
on a median classify to the high side.

| Quadrant | Reading |
|----------|---------|
| 1: Best of Both | strong theory, robust in practice |
| 2: Simple & Robust | modest theory, holds up on real data |
| 3: Limited Applicability | weak on both axes |
| 4: Complex & Fragile | powerful in theory, brittle in practice |

## Size encoding

In the general context, bubble area tracks usage frequency across the
surveyed literature. In a task context (safety, schedule, cost), area tracks
the family's suitability score for that task instead; positions never change.

## Caveats

Scores are judgment calls over a survey corpus, not measurements. Treat the
chart as a conversation starter, not a ranking.

For full reproducibility, see the
[source code and analysis pipeline](https://github.com/quadrantlab/algoquad).
`

// renderMethodology renders the methodology document for the given width.
// Glamour failures fall back to the raw markdown, which is still readable.
func renderMethodology(width int) string {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return methodologyMarkdown
	}
	out, err := r.Render(methodologyMarkdown)
	if err != nil {
		return methodologyMarkdown
	}
	return out
}
