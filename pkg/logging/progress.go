package logging

import (
	"time"

	"github.com/eunmann/fslimit-sweep/pkg/humanfmt"
	"github.com/rs/zerolog"
)

// Tracker follows a sequential sweep through its grid: how many runs
// finished, how many of those failed, and an ETA from a moving average
// of recent run durations. Individual runs can take minutes to hours,
// so the ETA after each run is the operator's main signal.
//
// The sweep executes one run at a time; Tracker is not safe for
// concurrent use.
type Tracker struct {
	total     int
	completed int
	failed    int
	startTime time.Time
	log       zerolog.Logger

	recent    []time.Duration
	maxRecent int
}

// NewTracker creates a tracker for a sweep of total runs.
func NewTracker(total int, log zerolog.Logger) *Tracker {
	return &Tracker{
		total:     total,
		startTime: time.Now(),
		log:       log,
		recent:    make([]time.Duration, 0, 10),
		maxRecent: 10,
	}
}

// RecordRun records one finished run. Failed runs count toward progress
// too: they consumed a grid point and their duration still informs the
// ETA.
func (t *Tracker) RecordRun(d time.Duration, failed bool) {
	t.completed++
	if failed {
		t.failed++
	}

	if len(t.recent) >= t.maxRecent {
		t.recent = t.recent[1:]
	}
	t.recent = append(t.recent, d)
}

// Completed returns the number of finished runs, failures included.
func (t *Tracker) Completed() int {
	return t.completed
}

// Failed returns the number of runs whose tool exited non-zero.
func (t *Tracker) Failed() int {
	return t.failed
}

// Total returns the number of runs in the sweep.
func (t *Tracker) Total() int {
	return t.total
}

// Remaining returns how many runs are still to come.
func (t *Tracker) Remaining() int {
	return t.total - t.completed
}

// ProgressPct returns the progress percentage (0-100).
func (t *Tracker) ProgressPct() float64 {
	if t.total == 0 {
		return 100.0
	}
	return float64(t.completed) * 100.0 / float64(t.total)
}

// ETA estimates the time remaining from the moving average of recent
// run durations, falling back to the overall average when no durations
// have been recorded.
func (t *Tracker) ETA() time.Duration {
	if t.completed == 0 {
		return 0
	}
	remaining := t.Remaining()
	if remaining <= 0 {
		return 0
	}

	var avg time.Duration
	if len(t.recent) > 0 {
		var sum time.Duration
		for _, d := range t.recent {
			sum += d
		}
		avg = sum / time.Duration(len(t.recent))
	} else {
		avg = time.Since(t.startTime) / time.Duration(t.completed)
	}

	return avg * time.Duration(remaining)
}

// Elapsed returns time since tracking started.
func (t *Tracker) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// LogProgress emits one sweep_progress event reflecting the current
// state. Call it after each RecordRun.
func (t *Tracker) LogProgress() {
	evt := t.log.Info().
		Str("event", "sweep_progress").
		Int("completed", t.completed).
		Int("failed", t.failed).
		Int("total", t.total).
		Float64("progress_pct", t.ProgressPct())

	if eta := t.ETA(); eta > 0 {
		evt = evt.Int64("eta_ms", eta.Milliseconds())
		if IsPrettyMode() {
			evt = evt.Str("eta_h", humanfmt.Duration(eta))
		}
	}
	if IsPrettyMode() {
		evt = evt.Str("progress_h",
			humanfmt.Count(int64(t.completed))+"/"+humanfmt.Count(int64(t.total)))
	}

	evt.Msg("sweep progress")
}
