// Command analyze-ease reports shape diagnostics for every easing curve:
// endpoint values, extrema (flagging the intentional back/elastic
// overshoot), and the value jump across the in-out midpoint.
//
// Usage:
//
//	analyze-ease
//	analyze-ease -samples 10001
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"

	interpolation "github.com/tphakala/go-interpolation"
	"github.com/tphakala/go-interpolation/internal/simdops"
)

const (
	defaultSamples = 2001

	// midpointEpsilon is the parameter offset used to probe both sides
	// of the 0.5 handoff in *-in-out curves.
	midpointEpsilon = 1e-9

	// overshootTolerance separates float noise from real overshoot.
	overshootTolerance = 1e-9
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	samples := flag.Int("samples", defaultSamples, "Number of sample points across [0, 1]")
	flag.Parse()

	if *samples < 3 {
		return fmt.Errorf("need at least 3 samples, got %d", *samples)
	}

	ps := floats.Span(make([]float64, *samples), 0, 1)

	fmt.Printf("%-20s %10s %10s %10s %10s %10s %12s\n",
		"curve", "f(0)", "f(1)", "min", "max", "mean", "midpoint gap")
	for _, fn := range interpolation.AllEaseFunctions() {
		out := interpolation.EaseSlice(fn, ps)

		minV := floats.Min(out)
		maxV := floats.Max(out)
		mean := simdops.Float64Ops().Sum(out) / float64(len(out))

		gap := "-"
		if strings.HasSuffix(fn.String(), "-in-out") {
			below := fn.Calc(0.5 - midpointEpsilon)
			above := fn.Calc(0.5 + midpointEpsilon)
			gap = fmt.Sprintf("%.3e", math.Abs(above-below))
		}

		note := ""
		if minV < -overshootTolerance || maxV > 1+overshootTolerance {
			note = "  (overshoots)"
		}

		fmt.Printf("%-20s %10.6f %10.6f %10.6f %10.6f %10.6f %12s%s\n",
			fn, out[0], out[len(out)-1], minV, maxV, mean, gap, note)
	}
	return nil
}
