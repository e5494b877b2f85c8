package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/quadrantlab/algoquad/pkg/analysis"
	"github.com/quadrantlab/algoquad/pkg/model"
)

// BatchOptions controls a per-context batch export.
type BatchOptions struct {
	Dir     string // output directory, created if missing
	Format  string // "svg" or "png"
	Prefix  string // filename prefix, default "quadrants"
	Dataset *model.Dataset
}

// SaveBatch renders one chart snapshot per task context into Dir, named
// <prefix>-<context>.<format>. Renders run concurrently; the first error
// cancels the rest. Returns the written paths in context order.
func SaveBatch(opts BatchOptions) ([]string, error) {
	if opts.Dataset == nil || opts.Dataset.Len() == 0 {
		return nil, fmt.Errorf("no families to export")
	}
	format := strings.ToLower(opts.Format)
	if format == "" {
		format = "svg"
	}
	if format != "svg" && format != "png" {
		return nil, fmt.Errorf("unsupported format %q (want svg or png)", format)
	}
	prefix := opts.Prefix
	if prefix == "" {
		prefix = "quadrants"
	}

	ctxs := model.TaskContexts()
	paths := make([]string, len(ctxs))

	var g errgroup.Group
	for i, ctx := range ctxs {
		path := filepath.Join(opts.Dir, fmt.Sprintf("%s-%s.%s", prefix, ctx, format))
		paths[i] = path

		g.Go(func() error {
			st := analysis.DefaultState()
			st.Context = ctx
			err := SaveChartSnapshot(ChartSnapshotOptions{
				Path:    path,
				Format:  format,
				Dataset: opts.Dataset,
				State:   st,
			})
			if err != nil {
				return fmt.Errorf("context %s: %w", ctx, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
