// Command fslimit-sweep-reduced runs the filesystem-limit measurement
// tool over the reduced grid: the (0,0) baseline once, then every
// combination of split in [1, splitMax] and depth in [1, depthMax].
// 1 + splitMax*depthMax runs instead of the full grid's
// (splitMax+1)*(depthMax+1).
//
// Usage: fslimit-sweep-reduced <eachFileBytes> <splitMax> <depthMax> [tool args...]
package main

import (
	"fmt"
	"os"

	"github.com/eunmann/fslimit-sweep/internal/cli"
)

func main() {
	if err := cli.Run(cli.Reduced, "fslimit-sweep-reduced", os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
