package interpolation

import (
	"math"

	"github.com/tphakala/go-interpolation/internal/simdops"
)

// Spatial is the minimal vector algebra needed for geometric
// interpolation: add, subtract, and scale by a scalar of type S.
// Consumer types (points, colors, coordinates) opt in by method;
// [SpatialLerp] then derives linear interpolation for them.
type Spatial[T, S any] interface {
	Add(other T) T
	Sub(other T) T
	Scale(s S) T
}

// SpatialLerp derives linear interpolation from the [Spatial]
// operations: a + (b-a)·t. The weight t is not clamped.
func SpatialLerp[T Spatial[T, S], S any](a, b T, t S) T {
	return a.Add(b.Sub(a).Scale(t))
}

// ScaleInt scales a signed integer by a floating scalar, rounding to
// nearest, half away from zero.
func ScaleInt[T Signed, S Float](v T, s S) T {
	return T(math.Round(float64(S(v) * s)))
}

// ScaleUint scales an unsigned integer by a floating scalar, rounding
// to nearest. Negative scalars are outside the documented domain.
func ScaleUint[T Unsigned, S Float](v T, s S) T {
	return T(math.Round(float64(S(v) * s)))
}

// AbsDiff returns the absolute difference of two unsigned integers,
// branching on magnitude so the subtraction cannot underflow. The
// operation is lossy for unsigned types: the sign of the difference is
// discarded, so it is not an inverse of addition. That is a documented
// limitation of the unsigned contract, not a defect.
func AbsDiff[T Unsigned](a, b T) T {
	if a >= b {
		return a - b
	}
	return b - a
}

// AddSlice adds two float slices element-wise into a freshly allocated
// result. The slices must have equal length.
func AddSlice[T Float](a, b []T) []T {
	out := make([]T, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}

// SubSlice subtracts b from a element-wise into a freshly allocated
// result. The slices must have equal length.
func SubSlice[T Float](a, b []T) []T {
	out := make([]T, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

// simdMinLen is the slice length below which the SIMD call overhead
// outweighs its throughput advantage.
const simdMinLen = 64

// ScaleSlice multiplies every element of a by s into a freshly
// allocated result. Plain []float32 and []float64 inputs above a small
// length threshold take a SIMD fast path.
func ScaleSlice[T Float](a []T, s T) []T {
	out := make([]T, len(a))
	if len(a) >= simdMinLen {
		switch dst := any(out).(type) {
		case []float64:
			simdops.Float64Ops().Scale(dst, any(a).([]float64), any(s).(float64))
			return out
		case []float32:
			simdops.Float32Ops().Scale(dst, any(a).([]float32), any(s).(float32))
			return out
		}
	}
	for i := range a {
		out[i] = a[i] * s
	}
	return out
}
