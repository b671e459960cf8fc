package sweep

import (
	"context"
	"time"

	"github.com/eunmann/fslimit-sweep/internal/logctx"
	"github.com/eunmann/fslimit-sweep/pkg/humanfmt"
	"github.com/eunmann/fslimit-sweep/pkg/logging"
)

// Driver walks a grid in order and executes one measurement run per
// point, strictly sequentially. Each run is awaited to completion,
// output fully captured, before the next point is considered.
type Driver struct {
	config Config
	grid   Grid
	runner *Runner
}

// NewDriver creates a sweep driver. A nil runner gets the zero-value
// Runner: DefaultTool from PATH, output files in the working directory.
func NewDriver(cfg Config, grid Grid, runner *Runner) *Driver {
	if runner == nil {
		runner = &Runner{}
	}
	return &Driver{config: cfg, grid: grid, runner: runner}
}

// Result summarizes a completed sweep.
type Result struct {
	// Runs is the number of measurement invocations performed.
	Runs int

	// Failed counts runs whose tool exited non-zero. Their output files
	// exist alongside the successful ones.
	Failed int

	// CapturedBytes is the total tool output written across all runs.
	CapturedBytes int64

	// Duration is the whole sweep's wall time.
	Duration time.Duration

	// Outputs holds the output file paths in run order.
	Outputs []string
}

// Run drives the full sweep. It validates the configuration, resolves
// the measurement tool, then executes every grid point in order. Tool
// failures are counted and the sweep continues; a launch or filesystem
// error stops it with the completed runs' files left intact.
func (d *Driver) Run(ctx context.Context) (*Result, error) {
	if err := d.config.Validate(); err != nil {
		return nil, err
	}

	log := logctx.FromContext(ctx)
	start := time.Now()

	// Echo the bounds actually in effect: they come from positional
	// arguments and a swapped pair would otherwise be hard to spot.
	log.Info().
		Str("strategy", d.grid.Name()).
		Int("each_file_bytes", d.config.EachFileBytes).
		Int("split_max", d.config.SplitMax).
		Int("depth_max", d.config.DepthMax).
		Int("runs", d.grid.Len()).
		Msg("sweep bounds")

	toolPath, err := d.runner.Resolve()
	if err != nil {
		return nil, err
	}
	log.Debug().Str("tool", toolPath).Msg("measurement tool resolved")

	tracker := logging.NewTracker(d.grid.Len(), log)
	res := &Result{Outputs: make([]string, 0, d.grid.Len())}

	for pt := range d.grid.Points() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		runCtx := logctx.WithInt(ctx, "split", pt.Split)
		runCtx = logctx.WithInt(runCtx, "depth", pt.Depth)

		rr, err := d.runner.Run(runCtx, d.config, pt)
		if err != nil {
			return nil, err
		}

		res.Runs++
		res.CapturedBytes += rr.CapturedBytes
		res.Outputs = append(res.Outputs, rr.OutputPath)
		if rr.ToolErr != nil {
			res.Failed++
		}

		tracker.RecordRun(rr.Duration, rr.ToolErr != nil)
		tracker.LogProgress()
	}

	res.Duration = time.Since(start)

	evt := log.Info().
		Str("event", "sweep_completed").
		Str("strategy", d.grid.Name()).
		Str("out_dir", d.runner.outDir()).
		Int("runs", res.Runs).
		Int("failed", res.Failed).
		Int64("captured_bytes", res.CapturedBytes).
		Dur("duration", res.Duration)
	if logging.IsPrettyMode() {
		evt = evt.
			Str("duration_h", humanfmt.Duration(res.Duration)).
			Str("captured_h", humanfmt.Bytes(res.CapturedBytes))
	}
	evt.Msg("sweep complete")

	return res, nil
}
