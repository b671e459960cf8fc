// Package cli implements the positional command-line interface shared by
// the sweep binaries.
package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/eunmann/fslimit-sweep/internal/logctx"
	"github.com/eunmann/fslimit-sweep/pkg/envinfo"
	"github.com/eunmann/fslimit-sweep/pkg/humanfmt"
	"github.com/eunmann/fslimit-sweep/pkg/logging"
	"github.com/eunmann/fslimit-sweep/pkg/sweep"
)

// Variant selects the sweep strategy a binary runs.
type Variant int

const (
	// Full runs every (split, depth) combination.
	Full Variant = iota
	// Reduced runs the baseline point plus the interior grid.
	Reduced
)

// Run executes one sweep. The arguments are positional and
// order-sensitive: eachFileBytes splitMax depthMax, then anything left
// over is handed to the measurement tool verbatim on every run. There
// are no flags, environment variables, or config files.
func Run(variant Variant, progName string, args []string) error {
	cfg, err := parseConfig(progName, args)
	if err != nil {
		return err
	}

	logging.Init(false, true)

	grid := newGrid(variant, cfg)
	log := logging.WithPhase("sweep")
	ctx := logctx.WithLogger(context.Background(), log)
	ctx = logctx.WithStr(ctx, "strategy", grid.Name())

	logEnvironment(cfg)

	driver := sweep.NewDriver(cfg, grid, nil)
	_, err = driver.Run(ctx)
	return err
}

// parseConfig extracts and validates the sweep configuration from the
// positional arguments. Malformed input is fatal here; no run is
// attempted.
func parseConfig(progName string, args []string) (sweep.Config, error) {
	if len(args) < 3 {
		return sweep.Config{}, fmt.Errorf(
			"usage: %s <eachFileBytes> <splitMax> <depthMax> [tool args...]", progName)
	}

	eachFileBytes, err := parseIntArg("eachFileBytes", args[0])
	if err != nil {
		return sweep.Config{}, err
	}
	splitMax, err := parseIntArg("splitMax", args[1])
	if err != nil {
		return sweep.Config{}, err
	}
	depthMax, err := parseIntArg("depthMax", args[2])
	if err != nil {
		return sweep.Config{}, err
	}

	cfg := sweep.Config{
		EachFileBytes: eachFileBytes,
		SplitMax:      splitMax,
		DepthMax:      depthMax,
		Passthrough:   args[3:],
	}
	if err := cfg.Validate(); err != nil {
		return sweep.Config{}, err
	}
	return cfg, nil
}

func parseIntArg(name, raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", name, raw)
	}
	return v, nil
}

func newGrid(variant Variant, cfg sweep.Config) sweep.Grid {
	switch variant {
	case Reduced:
		return sweep.ReducedGrid{SplitMax: cfg.SplitMax, DepthMax: cfg.DepthMax}
	default:
		return sweep.FullGrid{SplitMax: cfg.SplitMax, DepthMax: cfg.DepthMax}
	}
}

// logEnvironment records the execution environment once at startup, the
// facts needed to trace a result file back to the machine and payload
// size that produced it.
func logEnvironment(cfg sweep.Config) {
	env := envinfo.Gather()
	log := logging.WithPhase("setup")

	evt := log.Info().
		Str("hostname", env.Hostname).
		Str("host_label", env.HostLabel).
		Str("os", env.OS).
		Str("arch", env.Arch).
		Int("cpus", env.NumCPU).
		Str("go_version", env.GoVersion)
	if env.RAMReliable {
		evt = evt.Uint64("ram_bytes", env.RAMBytes)
		if logging.IsPrettyMode() {
			evt = evt.Str("ram_h", humanfmt.BytesUint64(env.RAMBytes))
		}
	}
	evt.Msg("execution environment")

	sizeEvt := log.Info().
		Int("each_file_bytes", cfg.EachFileBytes).
		Str("each_file_hex", fmt.Sprintf("0x%x", cfg.EachFileBytes))
	if logging.IsPrettyMode() {
		sizeEvt = sizeEvt.Str("each_file_h", humanfmt.Bytes(int64(cfg.EachFileBytes)))
	}
	sizeEvt.Msg("per-file payload size")
}
