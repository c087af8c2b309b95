package utils

import (
	"fmt"
	"io"
	"os"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Verbose controls whether timing statistics are printed.
// Set to false to suppress output.
var Verbose = true

// Output is the writer where notices and timing statistics are printed.
// Defaults to os.Stdout.
var Output io.Writer = os.Stdout

// BenchStats accumulates one duration sample per kernel call.
type BenchStats struct {
	Total time.Duration
	calls []time.Duration
}

// Record adds one call's duration to the sample set.
func (s *BenchStats) Record(d time.Duration) {
	s.Total += d
	s.calls = append(s.calls, d)
}

// Calls returns the number of recorded samples.
func (s *BenchStats) Calls() int { return len(s.calls) }

// Mean returns the average duration per call.
func (s *BenchStats) Mean() time.Duration {
	if len(s.calls) == 0 {
		return 0
	}
	return s.Total / time.Duration(len(s.calls))
}

// seconds returns the samples as float64 seconds for the gonum helpers.
func (s *BenchStats) seconds() []float64 {
	sec := make([]float64, len(s.calls))
	for i, d := range s.calls {
		sec[i] = d.Seconds()
	}
	return sec
}

// PrintBenchStats prints the timing summary for the kernel repeat loop.
// Respects the Verbose flag - does nothing if Verbose is false or no
// samples were recorded.
func PrintBenchStats(s *BenchStats) {
	if !Verbose || s.Calls() == 0 {
		return
	}
	sec := s.seconds()
	sigma := 0.0
	if len(sec) > 1 {
		sigma = stat.StdDev(sec, nil)
	}
	fastest := s.calls[floats.MinIdx(sec)]
	slowest := s.calls[floats.MaxIdx(sec)]

	fmt.Fprintln(Output, "\n=== KERNEL TIMING ===")
	fmt.Fprintf(Output, "Total kernel time: %v\n", s.Total)
	fmt.Fprintf(Output, "Calls completed: %d\n", s.Calls())
	fmt.Fprintf(Output, "Average time per call: %.3fµs\n", DurationUS(s.Mean()))
	fmt.Fprintf(Output, "Fastest call: %v\n", fastest)
	fmt.Fprintf(Output, "Slowest call: %v\n", slowest)
	fmt.Fprintf(Output, "Std deviation: %.3fµs\n", sigma*1e6)
}

// DurationUS converts any time.Duration to micro-seconds as float64
func DurationUS(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1_000.0
}
