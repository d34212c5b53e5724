package bench_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/sebdah/goldie/v2"

	"github.com/benagain/powerset/bench"
)

func TestWriteReport(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	results := []bench.Result{
		{Name: "recursive", Iterations: 5, Mean: 12345678 * time.Nanosecond},
		{Name: "bitmask", Iterations: 5, Mean: 1500 * time.Microsecond},
		{Name: "doubling", Iterations: 5, Mean: 250 * time.Microsecond},
	}

	var out bytes.Buffer
	if err := bench.WriteReport(&out, results); err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}

	goldie.New(t).Assert(t, t.Name(), out.Bytes())
}

// With color disabled, the report lines must be exactly the Result String
// renderings; the two share one formatter.
func TestWriteReportMatchesResultString(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	results := []bench.Result{
		{Name: "bitmask", Iterations: 5, Mean: 1500 * time.Microsecond},
		{Name: "doubling", Iterations: 2, Mean: 987654 * time.Nanosecond},
	}

	var out bytes.Buffer
	if err := bench.WriteReport(&out, results); err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}

	var want bytes.Buffer
	for _, r := range results {
		want.WriteString(r.String())
		want.WriteByte('\n')
	}
	if out.String() != want.String() {
		t.Errorf("report drifted from Result.String; want:\n%q\ngot:\n%q", want.String(), out.String())
	}
}
