// Command ease-table prints a sampled table of an easing curve.
//
// Usage:
//
//	ease-table -curve cubic-in-out
//	ease-table -curve elastic-out -samples 101 -csv
//	ease-table -list
//
// The output is suitable for piping into plotting tools or for eyeballing
// a curve before wiring it into an animation.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gonum.org/v1/gonum/floats"

	interpolation "github.com/tphakala/go-interpolation"
)

const (
	defaultSamples = 21
	minSamples     = 2
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	curve := flag.String("curve", "cubic-in-out", "Easing curve name (see -list)")
	samples := flag.Int("samples", defaultSamples, "Number of sample points across [0, 1]")
	csv := flag.Bool("csv", false, "Emit CSV instead of an aligned table")
	list := flag.Bool("list", false, "List all easing curve names and exit")
	flag.Parse()

	if *list {
		for _, fn := range interpolation.AllEaseFunctions() {
			fmt.Println(fn)
		}
		return nil
	}

	fn, err := interpolation.ParseEaseFunction(*curve)
	if err != nil {
		return err
	}
	if *samples < minSamples {
		return fmt.Errorf("need at least %d samples, got %d", minSamples, *samples)
	}

	ps := floats.Span(make([]float64, *samples), 0, 1)
	out := interpolation.EaseSlice(fn, ps)

	if *csv {
		fmt.Println("p,eased")
		for i, p := range ps {
			fmt.Printf("%g,%g\n", p, out[i])
		}
		return nil
	}

	fmt.Fprintf(os.Stdout, "%s (%d samples)\n", fn, *samples)
	fmt.Println("       p    eased")
	for i, p := range ps {
		fmt.Printf("%8.4f %8.4f\n", p, out[i])
	}
	return nil
}
