// Command fslimit-sweep runs the filesystem-limit measurement tool over
// the full (split, depth) grid: every combination of split in
// [0, splitMax] and depth in [0, depthMax], one output file per run.
//
// Usage: fslimit-sweep <eachFileBytes> <splitMax> <depthMax> [tool args...]
package main

import (
	"fmt"
	"os"

	"github.com/eunmann/fslimit-sweep/internal/cli"
)

func main() {
	if err := cli.Run(cli.Full, "fslimit-sweep", os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
