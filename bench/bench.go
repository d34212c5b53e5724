// Package bench measures the wall-clock cost of power set generation
// strategies. It is a performance-observation tool only: it runs a strategy a
// fixed number of times over one input, fully materializing the output each
// run, and reports the arithmetic mean of the elapsed times. It performs no
// correctness checking.
package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/benagain/powerset"
	"github.com/benagain/powerset/sets"
)

// Result holds the measured cost of one strategy over one input.
type Result struct {
	// Name identifies the strategy in the report.
	Name string
	// Iterations is the number of timed runs taken.
	Iterations int
	// Mean is the arithmetic mean of the per-run elapsed times.
	Mean time.Duration
}

// String renders the per-strategy report line: strategy name, then the mean
// elapsed time in milliseconds over the run count.
func (r Result) String() string {
	return r.render(r.Name)
}

// render builds the report line with the given name substituted, so callers
// can decorate the name without reformatting the rest of the line.
func (r Result) render(name string) string {
	ms := float64(r.Mean.Nanoseconds()) / float64(time.Millisecond)
	return fmt.Sprintf("%s: %.3fms (mean of %d runs)", name, ms, r.Iterations)
}

// Measure runs gen over input the given number of times and returns the mean
// wall-clock elapsed time per run. Each run's output is fully materialized and
// then discarded. Per-run timings are logged at debug level.
//
// An error is returned only for a non-positive iteration count; generation
// itself cannot fail short of resource exhaustion, which is fatal by design.
func Measure[T comparable](name string, gen powerset.Generator[T], input sets.Set[T], iterations int) (Result, error) {
	if iterations <= 0 {
		return Result{}, fmt.Errorf("bench: iterations must be positive, got %d", iterations)
	}

	var total time.Duration
	for i := 0; i < iterations; i++ {
		start := time.Now()
		subsets := gen(input)
		elapsed := time.Since(start)
		total += elapsed
		logrus.WithFields(logrus.Fields{
			"strategy": name,
			"run":      i + 1,
			"subsets":  len(subsets),
			"elapsed":  elapsed,
		}).Debug("timed run complete")
	}

	return Result{
		Name:       name,
		Iterations: iterations,
		Mean:       total / time.Duration(iterations),
	}, nil
}

// WriteReport writes one report line per result to w, with strategy names
// highlighted. Output degrades to plain text when color is disabled.
func WriteReport(w io.Writer, results []Result) error {
	name := color.New(color.FgCyan, color.Bold)
	for _, r := range results {
		if _, err := fmt.Fprintln(w, r.render(name.Sprint(r.Name))); err != nil {
			return fmt.Errorf("bench: writing report: %w", err)
		}
	}
	return nil
}
