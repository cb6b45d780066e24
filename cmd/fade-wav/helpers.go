package main

import (
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"gopkg.in/yaml.v3"

	interpolation "github.com/tphakala/go-interpolation"
)

// fadeSegment is one envelope segment in the YAML config. Times are in
// seconds; From and To are linear gain factors at the segment edges.
type fadeSegment struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
	Curve string  `yaml:"curve"`
	From  float64 `yaml:"from"`
	To    float64 `yaml:"to"`
}

// envelopeConfig is the root of the YAML envelope file.
type envelopeConfig struct {
	Segments []fadeSegment `yaml:"segments"`
}

// segment is a validated envelope segment with a resolved curve tag.
type segment struct {
	start, end float64
	from, to   float64
	curve      interpolation.EaseFunction
}

// envelope is a piecewise gain curve over time. Between segments the
// gain holds the previous segment's end value; before the first
// segment it is unity.
type envelope struct {
	segments []segment
}

// loadEnvelopeConfig reads and validates a YAML envelope file.
func loadEnvelopeConfig(path string) (*envelope, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read envelope config: %w", err)
	}

	var cfg envelopeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse envelope config: %w", err)
	}
	if len(cfg.Segments) == 0 {
		return nil, fmt.Errorf("envelope config %s has no segments", path)
	}

	env := &envelope{segments: make([]segment, 0, len(cfg.Segments))}
	for i, s := range cfg.Segments {
		if s.End <= s.Start {
			return nil, fmt.Errorf("segment %d: end %g must be after start %g", i, s.End, s.Start)
		}
		curve := interpolation.EaseSineInOut
		if s.Curve != "" {
			curve, err = interpolation.ParseEaseFunction(s.Curve)
			if err != nil {
				return nil, fmt.Errorf("segment %d: %w", i, err)
			}
		}
		env.segments = append(env.segments, segment{
			start: s.Start,
			end:   s.End,
			from:  s.From,
			to:    s.To,
			curve: curve,
		})
	}

	sort.Slice(env.segments, func(i, j int) bool {
		return env.segments[i].start < env.segments[j].start
	})
	return env, nil
}

// fadeEnvelope builds a fade-in/fade-out envelope for a clip of the
// given total duration. Either fade may be zero to skip it.
func fadeEnvelope(fadeIn, fadeOut, total float64, curve interpolation.EaseFunction) (*envelope, error) {
	if fadeIn < 0 || fadeOut < 0 {
		return nil, fmt.Errorf("fade durations must be non-negative (in=%g, out=%g)", fadeIn, fadeOut)
	}
	if fadeIn+fadeOut > total {
		return nil, fmt.Errorf("fades (%g s + %g s) exceed clip duration (%g s)", fadeIn, fadeOut, total)
	}

	env := &envelope{}
	if fadeIn > 0 {
		env.segments = append(env.segments, segment{
			start: 0, end: fadeIn,
			from: 0, to: 1,
			curve: curve,
		})
	}
	if fadeOut > 0 {
		env.segments = append(env.segments, segment{
			start: total - fadeOut, end: total,
			from: 1, to: 0,
			curve: curve,
		})
	}
	return env, nil
}

// gain returns the envelope gain at the given time in seconds.
func (e *envelope) gain(at float64) float64 {
	g := 1.0
	for _, s := range e.segments {
		if at < s.start {
			break
		}
		if at <= s.end {
			p := (at - s.start) / (s.end - s.start)
			return interpolation.Lerp(s.from, s.to, interpolation.Ease(s.curve, p))
		}
		g = s.to
	}
	return g
}

// applyEnvelope scales the PCM samples in place, rounding to nearest
// and clamping to the bit depth's representable range.
func applyEnvelope(buf *audio.IntBuffer, bitDepth int, env *envelope) {
	rate := float64(buf.Format.SampleRate)
	channels := buf.Format.NumChannels
	frames := len(buf.Data) / channels

	maxAmp := (1 << (bitDepth - 1)) - 1
	minAmp := -(1 << (bitDepth - 1))

	for frame := 0; frame < frames; frame++ {
		g := env.gain(float64(frame) / rate)
		for ch := 0; ch < channels; ch++ {
			i := frame*channels + ch
			v := int(math.Round(float64(buf.Data[i]) * g))
			if v > maxAmp {
				v = maxAmp
			} else if v < minAmp {
				v = minAmp
			}
			buf.Data[i] = v
		}
	}
}

// readWAV loads a whole WAV file into memory and returns its PCM buffer
// and bit depth.
func readWAV(path string) (*audio.IntBuffer, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, 0, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return buf, int(decoder.BitDepth), nil
}

// writeWAV writes a PCM buffer out as a WAV file.
func writeWAV(path string, buf *audio.IntBuffer, bitDepth int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	enc := wav.NewEncoder(f, buf.Format.SampleRate, bitDepth, buf.Format.NumChannels, wavPCMFormat)
	if err := enc.Write(buf); err != nil {
		_ = enc.Close()
		_ = f.Close()
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to finalize WAV: %w", err)
	}
	return f.Close()
}
