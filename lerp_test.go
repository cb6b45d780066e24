package interpolation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// testLerpFloatRoundTrip walks 0..10 in tenths in both directions and
// expects exact integer-valued results, mirroring the slope-1 line.
func testLerpFloatRoundTrip[T Float](t *testing.T) {
	t.Helper()
	for x := 0; x <= 10; x++ {
		w := T(x) / 10
		assert.Equal(t, T(x), Lerp(T(0), T(10), w), "ascending x=%d", x)
	}
	for x := 10; x >= 0; x-- {
		w := T(10-x) / 10
		assert.Equal(t, T(x), Lerp(T(10), T(0), w), "descending x=%d", x)
	}
	for x := -10; x < 0; x++ {
		w := T(10+x) / 10
		assert.Equal(t, T(x), Lerp(T(-10), T(0), w), "negative ascending x=%d", x)
	}
	for x := 0; x >= -10; x-- {
		w := T(-x) / 10
		assert.Equal(t, T(x), Lerp(T(0), T(-10), w), "negative descending x=%d", x)
	}
}

func TestLerpFloat32(t *testing.T) { testLerpFloatRoundTrip[float32](t) }
func TestLerpFloat64(t *testing.T) { testLerpFloatRoundTrip[float64](t) }

// testLerpIntRoundTrip is the integer round trip of the same line:
// lerp(0, 10, x/10) must hit every integer exactly in both directions.
func testLerpIntRoundTrip[T Signed, S Float](t *testing.T) {
	t.Helper()
	for x := 0; x <= 10; x++ {
		w := S(x) / 10
		assert.Equal(t, T(x), LerpInt(T(0), T(10), w), "ascending x=%d", x)
	}
	for x := 10; x >= 0; x-- {
		w := S(10-x) / 10
		assert.Equal(t, T(x), LerpInt(T(10), T(0), w), "descending x=%d", x)
	}
	for x := -10; x < 0; x++ {
		w := S(10+x) / 10
		assert.Equal(t, T(x), LerpInt(T(-10), T(0), w), "negative ascending x=%d", x)
	}
	for x := 0; x >= -10; x-- {
		w := S(-x) / 10
		assert.Equal(t, T(x), LerpInt(T(0), T(-10), w), "negative descending x=%d", x)
	}
}

// 8/16/32-bit widths pair with a float32 scalar, 64-bit with float64.
func TestLerpInt8(t *testing.T)  { testLerpIntRoundTrip[int8, float32](t) }
func TestLerpInt16(t *testing.T) { testLerpIntRoundTrip[int16, float32](t) }
func TestLerpInt32(t *testing.T) { testLerpIntRoundTrip[int32, float32](t) }
func TestLerpInt64(t *testing.T) { testLerpIntRoundTrip[int64, float64](t) }

func testLerpUintRoundTrip[T Unsigned, S Float](t *testing.T) {
	t.Helper()
	for x := 0; x <= 10; x++ {
		w := S(x) / 10
		assert.Equal(t, T(x), LerpUint(T(0), T(10), w), "ascending x=%d", x)
	}
	for x := 10; x >= 0; x-- {
		w := S(10-x) / 10
		assert.Equal(t, T(x), LerpUint(T(10), T(0), w), "descending x=%d", x)
	}
}

func TestLerpUint8(t *testing.T)  { testLerpUintRoundTrip[uint8, float32](t) }
func TestLerpUint16(t *testing.T) { testLerpUintRoundTrip[uint16, float32](t) }
func TestLerpUint32(t *testing.T) { testLerpUintRoundTrip[uint32, float32](t) }
func TestLerpUint64(t *testing.T) { testLerpUintRoundTrip[uint64, float64](t) }

// TestLerpEndpointsExact verifies lerp(a, b, 0) == a and
// lerp(a, b, 1) == b exactly. Dyadic values keep float arithmetic exact.
func TestLerpEndpointsExact(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
	}{
		{"integers", 3, 17},
		{"dyadic", 2.5, 7.25},
		{"negative", -4.5, 12.0},
		{"equal", 5.5, 5.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.a, Lerp(tt.a, tt.b, 0.0))
			assert.Equal(t, tt.b, Lerp(tt.a, tt.b, 1.0))
		})
	}

	assert.Equal(t, int32(-7), LerpInt(int32(-7), 13, float32(0)))
	assert.Equal(t, int32(13), LerpInt(int32(-7), 13, float32(1)))
	assert.Equal(t, uint16(9), LerpUint(uint16(9), 200, float32(0)))
	assert.Equal(t, uint16(200), LerpUint(uint16(9), 200, float32(1)))
}

// TestLerpFixedPoint verifies lerp(a, a, t) == a for any weight.
func TestLerpFixedPoint(t *testing.T) {
	for _, w := range []float64{-2, -0.5, 0, 0.25, 0.5, 1, 3.75} {
		assert.Equal(t, 4.2, Lerp(4.2, 4.2, w), "w=%v", w)
		assert.Equal(t, int16(42), LerpInt(int16(42), 42, w), "w=%v", w)
		assert.Equal(t, uint32(42), LerpUint(uint32(42), 42, w), "w=%v", w)
	}
}

// TestLerpExtrapolates verifies that weights outside [0, 1] are not
// clamped; only the easing layer clamps.
func TestLerpExtrapolates(t *testing.T) {
	assert.Equal(t, 15.0, Lerp(0.0, 10, 1.5))
	assert.Equal(t, -5.0, Lerp(0.0, 10, -0.5))
	assert.Equal(t, int32(20), LerpInt(int32(0), 10, float32(2)))
}

// TestLerpHalfwayRounding pins the rounding mode at exact half-integer
// boundaries: round half away from zero.
func TestLerpHalfwayRounding(t *testing.T) {
	// 0 -> 3 at t=0.5 lands on 1.5, which rounds to 2.
	assert.Equal(t, int32(2), LerpInt(int32(0), 3, float32(0.5)))
	// 0 -> -3 at t=0.5 lands on -1.5, which rounds away to -2.
	assert.Equal(t, int32(-2), LerpInt(int32(0), -3, float32(0.5)))
	assert.Equal(t, uint8(2), LerpUint(uint8(0), 3, float32(0.5)))
	// Descending unsigned: 3 -> 0 at t=0.5 is 3 - round(1.5) = 1.
	assert.Equal(t, uint8(1), LerpUint(uint8(3), 0, float32(0.5)))
}

// TestLerpUintNoUnderflow exercises the descending unsigned branch near
// the bottom of the range, where a naive subtraction would wrap.
func TestLerpUintNoUnderflow(t *testing.T) {
	assert.Equal(t, uint8(5), LerpUint(uint8(10), 0, float32(0.5)))
	assert.Equal(t, uint8(0), LerpUint(uint8(10), 0, float32(1)))
	assert.Equal(t, uint64(1), LerpUint(uint64(2), 0, 0.5))
}

// testLerpSliceRoundTrip checks the element-wise integer forms at small
// fixed lengths (2 through 5).
func testLerpSliceRoundTrip[T Signed, S Float](t *testing.T, length int) {
	t.Helper()
	zeros := make([]T, length)
	tens := make([]T, length)
	for i := range tens {
		tens[i] = 10
	}

	for x := 0; x <= 10; x++ {
		w := S(x) / 10
		got := LerpIntSlice(zeros, tens, w)
		for i, v := range got {
			assert.Equal(t, T(x), v, "ascending x=%d elem=%d", x, i)
		}
	}
	for x := 10; x >= 0; x-- {
		w := S(10-x) / 10
		got := LerpIntSlice(tens, zeros, w)
		for i, v := range got {
			assert.Equal(t, T(x), v, "descending x=%d elem=%d", x, i)
		}
	}
}

func TestLerpIntSliceLengths(t *testing.T) {
	for length := 2; length <= 5; length++ {
		testLerpSliceRoundTrip[int8, float32](t, length)
		testLerpSliceRoundTrip[int32, float32](t, length)
		testLerpSliceRoundTrip[int64, float64](t, length)
	}
}

// testLerpUintSliceRoundTrip is the unsigned counterpart, covering both
// the ascending and the underflow-prone descending direction.
func testLerpUintSliceRoundTrip[T Unsigned, S Float](t *testing.T, length int) {
	t.Helper()
	zeros := make([]T, length)
	tens := make([]T, length)
	for i := range tens {
		tens[i] = 10
	}

	for x := 0; x <= 10; x++ {
		w := S(x) / 10
		for i, v := range LerpUintSlice(zeros, tens, w) {
			assert.Equal(t, T(x), v, "ascending x=%d elem=%d", x, i)
		}
	}
	for x := 10; x >= 0; x-- {
		w := S(10-x) / 10
		for i, v := range LerpUintSlice(tens, zeros, w) {
			assert.Equal(t, T(x), v, "descending x=%d elem=%d", x, i)
		}
	}
}

func TestLerpUintSliceLengths(t *testing.T) {
	for length := 2; length <= 5; length++ {
		testLerpUintSliceRoundTrip[uint8, float32](t, length)
		testLerpUintSliceRoundTrip[uint64, float64](t, length)
	}
}

func TestLerpUintSlice(t *testing.T) {
	a := []uint8{0, 10, 200}
	b := []uint8{10, 0, 100}
	got := LerpUintSlice(a, b, float32(0.5))
	assert.Equal(t, []uint8{5, 5, 150}, got)
}

func TestLerpSliceFloat(t *testing.T) {
	a := []float64{0, 1, -2}
	b := []float64{10, 3, 2}
	assert.Equal(t, []float64{5, 2, 0}, LerpSlice(a, b, 0.5))
	assert.Equal(t, a, LerpSlice(a, b, 0))
	assert.Equal(t, b, LerpSlice(a, b, 1))
}

// pt is a minimal Lerper implementation used to exercise the
// interface-based entry points.
type pt struct {
	X, Y float64
}

func (p pt) Lerp(other pt, t float64) pt {
	return pt{
		X: Lerp(p.X, other.X, t),
		Y: Lerp(p.Y, other.Y, t),
	}
}

func TestLerpValue(t *testing.T) {
	a := pt{0, 0}
	b := pt{10, -4}
	assert.Equal(t, pt{5, -2}, LerpValue(a, b, 0.5))
	assert.Equal(t, a, LerpValue(a, b, 0.0))
	assert.Equal(t, b, LerpValue(a, b, 1.0))
}
