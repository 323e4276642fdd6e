package retro

import (
	"context"
	"fmt"
)

// Analyze builds the complete state graph and labels every position,
// the returned table's root is at RootIndex
func Analyze(ctx context.Context, opts *Options) (*Table, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	timer := _NewTimer()
	table, err := Build(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("building state graph: %w", err)
	}
	buildTime := timer.Elapsed()

	if err := Propagate(table); err != nil {
		opts.Logger.Error().Err(err).Msg("propagation-failed")
		return nil, fmt.Errorf("propagating outcomes: %w", err)
	}

	summary := Summarize(table)
	opts.Logger.Info().
		Int("positions", summary.Positions).
		Str("root", summary.RootOutcome.String()).
		Int("workers", max(1, opts.Workers)).
		Dur("build", buildTime).
		Dur("total", timer.Elapsed()).
		Msg("analysis-done")
	opts.Listener.invokeStop(summary)

	return table, nil
}
