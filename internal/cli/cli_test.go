package cli

import (
	"slices"
	"strings"
	"testing"

	"github.com/eunmann/fslimit-sweep/pkg/sweep"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    sweep.Config
		wantErr string
	}{
		{
			name: "minimal",
			args: []string{"4096", "2", "3"},
			want: sweep.Config{EachFileBytes: 4096, SplitMax: 2, DepthMax: 3},
		},
		{
			name: "with_passthrough",
			args: []string{"512", "1", "1", "--tmp-dir=/mnt/scratch", "-v"},
			want: sweep.Config{EachFileBytes: 512, SplitMax: 1, DepthMax: 1, Passthrough: []string{"--tmp-dir=/mnt/scratch", "-v"}},
		},
		{
			name: "zero_bounds",
			args: []string{"1", "0", "0"},
			want: sweep.Config{EachFileBytes: 1, SplitMax: 0, DepthMax: 0},
		},
		{
			name:    "no_args",
			args:    []string{},
			wantErr: "usage:",
		},
		{
			name:    "too_few_args",
			args:    []string{"4096", "2"},
			wantErr: "usage:",
		},
		{
			name:    "non_numeric_bytes",
			args:    []string{"lots", "2", "3"},
			wantErr: "eachFileBytes",
		},
		{
			name:    "non_numeric_split",
			args:    []string{"4096", "two", "3"},
			wantErr: "splitMax",
		},
		{
			name:    "non_numeric_depth",
			args:    []string{"4096", "2", "3.5"},
			wantErr: "depthMax",
		},
		{
			name:    "zero_bytes",
			args:    []string{"0", "2", "3"},
			wantErr: "each-file bytes",
		},
		{
			name:    "negative_split",
			args:    []string{"4096", "-1", "3"},
			wantErr: "split max",
		},
		{
			name:    "negative_depth",
			args:    []string{"4096", "2", "-3"},
			wantErr: "depth max",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseConfig("fslimit-sweep", tt.args)

			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("parseConfig(%v) error = nil, want error containing %q", tt.args, tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("parseConfig(%v) error = %q, want it to contain %q", tt.args, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("parseConfig(%v) error: %v", tt.args, err)
			}
			if cfg.EachFileBytes != tt.want.EachFileBytes {
				t.Errorf("EachFileBytes = %d, want %d", cfg.EachFileBytes, tt.want.EachFileBytes)
			}
			if cfg.SplitMax != tt.want.SplitMax {
				t.Errorf("SplitMax = %d, want %d", cfg.SplitMax, tt.want.SplitMax)
			}
			if cfg.DepthMax != tt.want.DepthMax {
				t.Errorf("DepthMax = %d, want %d", cfg.DepthMax, tt.want.DepthMax)
			}
			if !slices.Equal(cfg.Passthrough, tt.want.Passthrough) {
				t.Errorf("Passthrough = %v, want %v", cfg.Passthrough, tt.want.Passthrough)
			}
		})
	}
}

func TestParseConfig_UsageNamesProgram(t *testing.T) {
	_, err := parseConfig("fslimit-sweep-reduced", nil)
	if err == nil {
		t.Fatal("parseConfig() error = nil, want usage error")
	}
	if !strings.Contains(err.Error(), "fslimit-sweep-reduced") {
		t.Errorf("usage error = %q, want the program name in it", err)
	}
}

func TestNewGrid(t *testing.T) {
	cfg := sweep.Config{EachFileBytes: 4096, SplitMax: 2, DepthMax: 3}

	full := newGrid(Full, cfg)
	if g, ok := full.(sweep.FullGrid); !ok {
		t.Errorf("newGrid(Full) = %T, want sweep.FullGrid", full)
	} else if g.SplitMax != 2 || g.DepthMax != 3 {
		t.Errorf("newGrid(Full) bounds = (%d,%d), want (2,3)", g.SplitMax, g.DepthMax)
	}

	reduced := newGrid(Reduced, cfg)
	if g, ok := reduced.(sweep.ReducedGrid); !ok {
		t.Errorf("newGrid(Reduced) = %T, want sweep.ReducedGrid", reduced)
	} else if g.SplitMax != 2 || g.DepthMax != 3 {
		t.Errorf("newGrid(Reduced) bounds = (%d,%d), want (2,3)", g.SplitMax, g.DepthMax)
	}
}

func TestRun_BadConfigFailsBeforeAnyRun(t *testing.T) {
	if err := Run(Full, "fslimit-sweep", []string{"4096", "x", "1"}); err == nil {
		t.Fatal("Run() error = nil, want configuration error")
	}
}
