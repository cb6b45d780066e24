// Command fade-wav applies easing-curve gain envelopes to WAV files.
//
// Usage:
//
//	fade-wav -fade-in 2 -fade-out 3 input.wav output.wav
//	fade-wav -fade-in 1.5 -curve quadratic-out input.wav output.wav
//	fade-wav -config envelope.yaml input.wav output.wav
//
// The default mode fades in from silence and/or out to silence using one
// easing curve. A YAML config file takes over completely when given,
// describing arbitrary gain segments:
//
//	segments:
//	  - {start: 0, end: 2, curve: sine-in-out, from: 0, to: 1}
//	  - {start: 10, end: 12, curve: cubic-out, from: 1, to: 0.3}
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	interpolation "github.com/tphakala/go-interpolation"
)

const (
	// wavPCMFormat is the WAV audio format tag for uncompressed PCM.
	wavPCMFormat = 1

	minRequiredArgs = 2
	defaultCurve    = "sine-in-out"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	fadeIn := flag.Float64("fade-in", 0, "Fade-in duration in seconds")
	fadeOut := flag.Float64("fade-out", 0, "Fade-out duration in seconds")
	curveName := flag.String("curve", defaultCurve, "Easing curve for the fades")
	configPath := flag.String("config", "", "YAML envelope config (overrides -fade-in/-fade-out)")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		return fmt.Errorf("usage: fade-wav [flags] input.wav output.wav")
	}
	inputPath, outputPath := args[0], args[1]

	buf, bitDepth, err := readWAV(inputPath)
	if err != nil {
		return err
	}

	frames := len(buf.Data) / buf.Format.NumChannels
	total := float64(frames) / float64(buf.Format.SampleRate)
	if *verbose {
		log.Printf("Input: %d Hz, %d channels, %d-bit, %.2f s",
			buf.Format.SampleRate, buf.Format.NumChannels, bitDepth, total)
	}

	var env *envelope
	if *configPath != "" {
		env, err = loadEnvelopeConfig(*configPath)
	} else {
		if *fadeIn == 0 && *fadeOut == 0 {
			return fmt.Errorf("nothing to do: set -fade-in, -fade-out, or -config")
		}
		var curve interpolation.EaseFunction
		curve, err = interpolation.ParseEaseFunction(*curveName)
		if err != nil {
			return err
		}
		env, err = fadeEnvelope(*fadeIn, *fadeOut, total, curve)
	}
	if err != nil {
		return err
	}

	start := time.Now()
	applyEnvelope(buf, bitDepth, env)
	if *verbose {
		log.Printf("Applied envelope to %d frames in %v", frames, time.Since(start))
	}

	return writeWAV(outputPath, buf, bitDepth)
}
