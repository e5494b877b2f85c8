package model

import (
	"fmt"
	"strings"
)

// TaskContext selects which column drives bubble size: overall adoption
// frequency, or one of the task-specific suitability scores. Positions on the
// chart never depend on the context, only size and the hover/detail value.
type TaskContext int

const (
	ContextGeneral TaskContext = iota // size = adoption frequency
	ContextSafety
	ContextSchedule
	ContextCost
	numTaskContexts // Keep this last - used for cycling
)

// String returns the context name as used on the command line, in config
// files and in export filenames.
func (c TaskContext) String() string {
	switch c {
	case ContextSafety:
		return "safety"
	case ContextSchedule:
		return "schedule"
	case ContextCost:
		return "cost"
	default:
		return "general"
	}
}

// ColumnLabel names the metric shown for this context in panels and hovers.
func (c TaskContext) ColumnLabel() string {
	if c == ContextGeneral {
		return "adoption frequency"
	}
	return c.String() + " suitability"
}

// Next cycles to the following context, wrapping after Cost.
func (c TaskContext) Next() TaskContext {
	return (c + 1) % numTaskContexts
}

// TaskContexts returns all contexts in radio-selector order.
func TaskContexts() []TaskContext {
	return []TaskContext{ContextGeneral, ContextSafety, ContextSchedule, ContextCost}
}

// ParseTaskContext parses a context name as given on the command line.
func ParseTaskContext(s string) (TaskContext, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "general":
		return ContextGeneral, nil
	case "safety":
		return ContextSafety, nil
	case "schedule":
		return ContextSchedule, nil
	case "cost":
		return ContextCost, nil
	default:
		return ContextGeneral, fmt.Errorf("unknown task context %q (want general, safety, schedule or cost)", s)
	}
}
