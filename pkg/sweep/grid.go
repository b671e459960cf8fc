// Package sweep orchestrates filesystem-limit benchmark runs across a
// two-dimensional (split, depth) parameter grid: enumerating grid points,
// launching the measurement tool once per point, and capturing each run's
// output to a deterministically named log file.
package sweep

import "iter"

// Point is one (split, depth) coordinate of the sweep grid. It exists
// only for the duration of a single measurement run.
type Point struct {
	Split int
	Depth int
}

// Grid produces the ordered sequence of points for one sweep strategy.
type Grid interface {
	// Points returns a restartable sequence of grid points. Ranging over
	// it again replays the same points in the same order.
	Points() iter.Seq[Point]

	// Len returns the number of points the sequence yields.
	Len() int

	// Name identifies the strategy in logs.
	Name() string
}

// FullGrid enumerates every combination of split in [0, SplitMax] and
// depth in [0, DepthMax], split as the outer loop, depth as the inner.
// A negative bound yields zero points.
type FullGrid struct {
	SplitMax int
	DepthMax int
}

// Name implements Grid.
func (g FullGrid) Name() string { return "full" }

// Len implements Grid.
func (g FullGrid) Len() int {
	if g.SplitMax < 0 || g.DepthMax < 0 {
		return 0
	}
	return (g.SplitMax + 1) * (g.DepthMax + 1)
}

// Points implements Grid.
func (g FullGrid) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for split := 0; split <= g.SplitMax; split++ {
			for depth := 0; depth <= g.DepthMax; depth++ {
				if !yield(Point{Split: split, Depth: depth}) {
					return
				}
			}
		}
	}
}

// ReducedGrid yields the (0,0) baseline point once, then every combination
// of split in [1, SplitMax] and depth in [1, DepthMax], split outer, depth
// inner. Boundary points with exactly one zero coordinate are never
// produced. If either bound is below 1 the second phase is empty and only
// the baseline remains; a negative bound yields zero points.
type ReducedGrid struct {
	SplitMax int
	DepthMax int
}

// Name implements Grid.
func (g ReducedGrid) Name() string { return "reduced" }

// Len implements Grid.
func (g ReducedGrid) Len() int {
	if g.SplitMax < 0 || g.DepthMax < 0 {
		return 0
	}
	if g.SplitMax < 1 || g.DepthMax < 1 {
		return 1
	}
	return 1 + g.SplitMax*g.DepthMax
}

// Points implements Grid.
func (g ReducedGrid) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if g.SplitMax < 0 || g.DepthMax < 0 {
			return
		}
		if !yield(Point{}) {
			return
		}
		for split := 1; split <= g.SplitMax; split++ {
			for depth := 1; depth <= g.DepthMax; depth++ {
				if !yield(Point{Split: split, Depth: depth}) {
					return
				}
			}
		}
	}
}
