package ui

import (
	"github.com/charmbracelet/huh"
)

// newFilterForm builds the multi-select filter modal. The selection slice is
// heap-allocated and shared with the form so it survives Model copies.
func newFilterForm(names []string, visible []string) (*huh.Form, *[]string) {
	selected := make([]string, 0, len(names))
	if visible == nil {
		selected = append(selected, names...)
	} else {
		selected = append(selected, visible...)
	}
	value := &selected

	options := make([]huh.Option[string], 0, len(names))
	for _, n := range names {
		options = append(options, huh.NewOption(n, n))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Visible families").
				Description("space toggles, enter applies, esc cancels").
				Options(options...).
				Value(value),
		),
	).WithTheme(huh.ThemeDracula()).WithShowHelp(false)

	return form, value
}
