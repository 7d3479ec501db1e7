package utils

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Verbose controls whether timing statistics are printed.
// Set to false to suppress output.
var Verbose = true

// Output is the writer where timing statistics are printed.
// Defaults to os.Stdout.
var Output io.Writer = os.Stdout

// LoadStats holds timing information for the phases of a dataset load
type LoadStats struct {
	TotalTime      time.Duration
	FetchTime      time.Duration
	ParseTime      time.Duration
	PreprocessTime time.Duration
}

// PrintLoadStats prints detailed timing statistics for a dataset load.
// Respects the Verbose flag - does nothing if Verbose is false.
func PrintLoadStats(stats *LoadStats) {
	if !Verbose {
		return
	}
	fmt.Fprintln(Output, "\n=== LOAD TIMING ===")
	fmt.Fprintf(Output, "Total load time: %v\n", stats.TotalTime)
	if stats.TotalTime <= 0 {
		return
	}
	fmt.Fprintf(Output, "  Remote fetch: %v (%.1f%%)\n", stats.FetchTime, float64(stats.FetchTime)/float64(stats.TotalTime)*100)
	fmt.Fprintf(Output, "  Binary parse: %v (%.1f%%)\n", stats.ParseTime, float64(stats.ParseTime)/float64(stats.TotalTime)*100)
	fmt.Fprintf(Output, "  Preprocessing: %v (%.1f%%)\n", stats.PreprocessTime, float64(stats.PreprocessTime)/float64(stats.TotalTime)*100)
}

// DurationUS converts any time.Duration to micro-seconds as float64
func DurationUS(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1_000.0
}
