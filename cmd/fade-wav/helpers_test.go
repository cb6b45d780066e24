package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	interpolation "github.com/tphakala/go-interpolation"
)

func TestFadeEnvelopeGain(t *testing.T) {
	env, err := fadeEnvelope(2, 2, 10, interpolation.EaseQuadraticIn)
	require.NoError(t, err)

	// Fade-in edge values.
	assert.InDelta(t, 0.0, env.gain(0), 1e-12)
	assert.InDelta(t, 1.0, env.gain(2), 1e-12)
	// Quadratic-in at half the fade: (0.5)² = 0.25.
	assert.InDelta(t, 0.25, env.gain(1), 1e-12)

	// Unity between the fades.
	assert.InDelta(t, 1.0, env.gain(5), 1e-12)

	// Fade-out edge values; quadratic-in of progress 0.5 gives gain
	// 1 - 0.25 = 0.75 at the fade midpoint.
	assert.InDelta(t, 1.0, env.gain(8), 1e-12)
	assert.InDelta(t, 0.75, env.gain(9), 1e-12)
	assert.InDelta(t, 0.0, env.gain(10), 1e-12)
}

func TestFadeEnvelopeValidation(t *testing.T) {
	_, err := fadeEnvelope(-1, 0, 10, interpolation.EaseSineInOut)
	require.Error(t, err)

	_, err = fadeEnvelope(6, 5, 10, interpolation.EaseSineInOut)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceed clip duration")

	// Zero fades build an empty, always-unity envelope.
	env, err := fadeEnvelope(0, 0, 10, interpolation.EaseSineInOut)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, env.gain(3), 1e-12)
}

func TestLoadEnvelopeConfig(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "env.yaml")
	config := `segments:
  - {start: 0, end: 2, curve: quadratic-in, from: 0, to: 1}
  - {start: 8, end: 10, curve: quadratic-in, from: 1, to: 0.5}
`
	require.NoError(t, os.WriteFile(path, []byte(config), 0o644))

	env, err := loadEnvelopeConfig(path)
	require.NoError(t, err)
	require.Len(t, env.segments, 2)

	assert.InDelta(t, 0.0, env.gain(0), 1e-12)
	assert.InDelta(t, 1.0, env.gain(2), 1e-12)
	assert.InDelta(t, 1.0, env.gain(5), 1e-12)
	// After the last segment the gain holds its end value.
	assert.InDelta(t, 0.5, env.gain(11), 1e-12)
}

func TestLoadEnvelopeConfigErrors(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{"empty", "segments: []", "no segments"},
		{"bad order", "segments:\n  - {start: 2, end: 1}", "must be after"},
		{"bad curve", "segments:\n  - {start: 0, end: 1, curve: warp-core}", "unknown ease function"},
		{"not yaml", "segments: [unclosed", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tmpDir, tt.name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := loadEnvelopeConfig(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}

	_, err := loadEnvelopeConfig(filepath.Join(tmpDir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestApplyEnvelope(t *testing.T) {
	const (
		rate     = 100
		bitDepth = 16
	)
	// One second of full-scale mono samples.
	buf := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: 1, SampleRate: rate},
		Data:   make([]int, rate),
	}
	for i := range buf.Data {
		buf.Data[i] = 10000
	}

	env, err := fadeEnvelope(0.5, 0, 1, interpolation.EaseQuadraticIn)
	require.NoError(t, err)
	applyEnvelope(buf, bitDepth, env)

	// Start of the fade is silent; end of the buffer is untouched.
	assert.Equal(t, 0, buf.Data[0])
	assert.Equal(t, 10000, buf.Data[rate-1])

	// Halfway through the fade (t=0.25 s, progress 0.5): gain 0.25.
	assert.Equal(t, 2500, buf.Data[25])

	// Monotonic ramp through the fade region.
	for i := 1; i <= 50; i++ {
		assert.GreaterOrEqual(t, buf.Data[i], buf.Data[i-1], "i=%d", i)
	}
}

func TestApplyEnvelopeClamps(t *testing.T) {
	buf := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: 1, SampleRate: 10},
		Data:   []int{32767, -32768, 100},
	}
	// A boost envelope that would exceed 16-bit range without clamping.
	env := &envelope{segments: []segment{{
		start: 0, end: 1, from: 2, to: 2,
		curve: interpolation.EaseQuadraticIn,
	}}}
	applyEnvelope(buf, 16, env)

	assert.Equal(t, 32767, buf.Data[0])
	assert.Equal(t, -32768, buf.Data[1])
	assert.Equal(t, 200, buf.Data[2])
}

func TestReadWAVErrors(t *testing.T) {
	_, _, err := readWAV("/nonexistent/file.wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")

	tmpDir := t.TempDir()
	invalid := filepath.Join(tmpDir, "invalid.wav")
	require.NoError(t, os.WriteFile(invalid, []byte("not a wav file"), 0o644))

	_, _, err = readWAV(invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid WAV file")
}
