package main

import (
	"fmt"
	"os"
	"time"

	"gridbench/grid"
	"gridbench/kernel"
	"gridbench/utils"
)

func main() {
	cfg := utils.ResolveArgs(os.Args[1:])
	fmt.Fprintf(utils.Output, "Arrays have %d rows of %d columns, repeats = %d\n",
		cfg.Rows, cfg.Cols, cfg.Repeats)

	// Set up the input and output grids. The output grid is never
	// pre-filled; the kernel writes every element.
	in := grid.New(cfg.Cols, cfg.Rows)
	out := grid.New(cfg.Cols, cfg.Rows)
	in.FillSeed()

	stats := &utils.BenchStats{}
	for i := 0; i < cfg.Repeats; i++ {
		start := time.Now()
		kernel.AddIndexSum(in, cfg.Cols, cfg.Rows, out)
		stats.Record(time.Since(start))
	}

	// Check the result of the final call once; timing only covers the
	// loop above.
	if m := kernel.Verify(in, cfg.Cols, cfg.Rows, out); m != nil {
		fmt.Fprintf(utils.Output, "Error %d %d %g %g\n", m.Ix, m.Iy, m.Got, m.In)
	}

	utils.PrintBenchStats(stats)
}
