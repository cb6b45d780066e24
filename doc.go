// Package interpolation provides interpolation primitives for animation
// and transition computations in pure Go.
//
// The library covers linear interpolation (lerp), quadratic and cubic
// Bézier evaluation built by nesting lerps, a family of thirty easing
// curves (quadratic through bounce, each with in/out/in-out variants),
// and a minimal vector-algebra contract (Spatial) so the same math works
// over points, colors, and multi-dimensional coordinates, not just
// scalars.
//
// # Features
//
//   - Thirty easing functions, generic over float32 and float64
//   - An EaseFunction tag type with exhaustive dispatch, String and
//     Parse support for configuration and CLIs
//   - Lerp for floats, signed and unsigned integers (underflow-safe),
//     and element-wise slice forms
//   - Quadratic and cubic Bézier evaluation over scalars or any type
//     implementing the Lerper contract
//   - Spatial (add/sub/scale) contract for consumer vector types
//   - Optional SIMD acceleration for float slice operations via
//     github.com/tphakala/simd
//   - Pure Go, no CGO, no allocation in the scalar paths
//
// # Quick Start
//
// Easing a progress value:
//
//	p := interpolation.CubicInOut(0.25) // 0.0625
//
// Or through the dispatch tag, e.g. when the curve is configured at
// runtime:
//
//	fn, err := interpolation.ParseEaseFunction("elastic-out")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p := fn.Calc(0.25)
//
// Interpolating values:
//
//	x := interpolation.Lerp(10.0, 20.0, 0.5)                 // 15.0
//	g := interpolation.LerpUint(uint8(0), 255, float32(0.5)) // 128
//
// Bézier curves are evaluated with the same machinery:
//
//	y := interpolation.CubBez(0.0, 0.1, 0.9, 1.0, t)
//
// # Easing Functions
//
// Each easing function maps a progress value p to an eased progress
// value. Input is clamped to [0, 1] before evaluation; output is
// conventionally in [0, 1], though the back and elastic families
// intentionally overshoot that range as their defining visual
// characteristic. Ten families are provided: quadratic, cubic, quartic,
// quintic, sine, circular, exponential, elastic, back, and bounce, each
// in an accelerating (In), decelerating (Out), and symmetric (InOut)
// variant.
//
// All functions are total: for any finite input they return a finite
// value, never an error, and never panic.
//
// # Generic Contracts
//
// Two small contracts let consumer types participate in the generic
// machinery:
//
//   - [Lerper]: types that can interpolate toward another value of the
//     same type, given a scalar weight. Used by [LerpValue],
//     [QuadBezValue] and [CubBezValue].
//   - [Spatial]: types with vector add, subtract, and scalar scale.
//     [SpatialLerp] derives linear interpolation from these three
//     operations.
//
// Integer lerp computes in a floating scalar type and rounds to
// nearest, half away from zero. The convention is float32 for widths up
// to 32 bits and float64 for 64-bit values; the scalar type parameter
// leaves the choice with the caller.
//
// # Thread Safety
//
// Every function in this package is a pure function of its inputs with
// no shared state. All of them are safe to call concurrently without
// synchronization.
package interpolation
