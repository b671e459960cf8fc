package sweep

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/eunmann/fslimit-sweep/internal/logctx"
	"github.com/eunmann/fslimit-sweep/pkg/envinfo"
	"github.com/eunmann/fslimit-sweep/pkg/humanfmt"
	"github.com/eunmann/fslimit-sweep/pkg/logging"
)

// DefaultTool is the measurement executable name, resolved through PATH.
const DefaultTool = "filesystem-limit"

// ErrToolNotFound reports that the measurement tool is not executable
// from this process. No run could succeed, so the whole sweep aborts.
var ErrToolNotFound = errors.New("measurement tool not found")

// Runner launches the measurement tool once per grid point and captures
// its standard output to the run's log file. The zero value is usable:
// it resolves DefaultTool, writes into the working directory, and stamps
// files with the current host and date.
type Runner struct {
	// Tool is the measurement executable name or path. Empty means
	// DefaultTool.
	Tool string

	// OutDir receives the output files. Empty means the working
	// directory.
	OutDir string

	// HostLabel is embedded in output filenames. Empty means the
	// current host's short name.
	HostLabel string

	// Stderr receives the tool's standard error stream. Nil means the
	// harness's own stderr.
	Stderr io.Writer

	// Now supplies the run date. Nil means time.Now.
	Now func() time.Time

	toolPath string
}

// RunResult describes one completed measurement invocation.
type RunResult struct {
	Record     RunRecord
	OutputPath string

	// CapturedBytes is the size of the tool's stdout written to
	// OutputPath.
	CapturedBytes int64

	// Duration is the tool's wall time, launch to exit.
	Duration time.Duration

	// ToolErr is non-nil when the tool exited non-zero. The run still
	// completed: its output is captured and the sweep continues.
	ToolErr error
}

// Resolve locates the measurement tool ahead of the first run, so a
// missing executable aborts the sweep before any point is attempted.
func (r *Runner) Resolve() (string, error) {
	tool := r.Tool
	if tool == "" {
		tool = DefaultTool
	}
	path, err := exec.LookPath(tool)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrToolNotFound, err)
	}
	r.toolPath = path
	return path, nil
}

// Run performs exactly one measurement invocation for the given grid
// point. The tool's stdout is written verbatim to the run's output file.
//
// A non-zero tool exit is reported through RunResult.ToolErr, not the
// error return. A returned error always aborts the sweep: the tool could
// not be launched, or the output file could not be written.
func (r *Runner) Run(ctx context.Context, cfg Config, pt Point) (*RunResult, error) {
	log := logctx.FromContext(ctx)

	toolPath := r.toolPath
	if toolPath == "" {
		var err error
		toolPath, err = r.Resolve()
		if err != nil {
			return nil, err
		}
	}

	rec := RunRecord{
		Config:    cfg,
		Point:     pt,
		Date:      r.now(),
		HostLabel: r.hostLabel(),
	}
	args := rec.Args()
	outPath := filepath.Join(r.outDir(), rec.OutputFileName())

	out, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("create output file %s: %w", outPath, err)
	}

	cmd := exec.CommandContext(ctx, toolPath, args...)
	cmd.Stdout = out
	cmd.Stderr = r.stderr()

	log.Info().
		Str("event", "run_started").
		Str("tool", toolPath).
		Strs("args", args).
		Str("output", outPath).
		Msg("starting measurement run")

	start := time.Now()
	runErr := cmd.Run()
	elapsed := time.Since(start)

	res := &RunResult{Record: rec, OutputPath: outPath, Duration: elapsed}
	if info, statErr := out.Stat(); statErr == nil {
		res.CapturedBytes = info.Size()
	}
	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("close output file %s: %w", outPath, err)
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return nil, fmt.Errorf("launch %s: %w", toolPath, runErr)
		}
		res.ToolErr = runErr
	}

	evt := log.Info()
	if res.ToolErr != nil {
		evt = log.Warn()
	}
	evt = evt.
		Str("event", "run_finished").
		Str("tool", toolPath).
		Strs("args", args).
		Str("output", outPath).
		Int("exit_code", exitCode(runErr)).
		Dur("duration", elapsed).
		Int64("captured_bytes", res.CapturedBytes)
	if logging.IsPrettyMode() {
		evt = evt.
			Str("duration_h", humanfmt.Duration(elapsed)).
			Str("captured_h", humanfmt.Bytes(res.CapturedBytes)).
			Str("throughput_h", humanfmt.Throughput(res.CapturedBytes, elapsed))
	}
	evt.Msg("measurement run finished")

	return res, nil
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

func (r *Runner) hostLabel() string {
	if r.HostLabel != "" {
		return r.HostLabel
	}
	return envinfo.HostLabel()
}

func (r *Runner) outDir() string {
	if r.OutDir != "" {
		return r.OutDir
	}
	return "."
}

func (r *Runner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}

// exitCode reports the tool's exit status: 0 on success, the process
// exit code on failure, -1 if the process never ran or was killed.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
