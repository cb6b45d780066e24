// Package testutil provides reusable test helper functions for
// interpolation and easing curve tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	// DefaultTolerance suits identities that are exact up to float64
	// rounding across a handful of operations.
	DefaultTolerance = 1e-12

	// CurveTolerance suits comparisons between two float64 evaluations
	// of the same closed-form curve through different code paths.
	CurveTolerance = 1e-9

	// ContinuityEpsilon is the parameter offset used when probing a
	// piecewise curve from both sides of a breakpoint.
	ContinuityEpsilon = 1e-9

	// ContinuityTolerance bounds the allowed jump across a breakpoint
	// of a curve that is continuous by construction. The curves have
	// bounded slope, so a 1e-9 parameter step cannot move the value by
	// more than a few 1e-8.
	ContinuityTolerance = 1e-6
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [minVal, maxVal].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertMonotonic verifies that a slice is monotonically non-decreasing.
func AssertMonotonic(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, "not monotonic",
				"s[%d]=%f < s[%d]=%f", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertContinuousAt verifies that f has no jump at x by evaluating it
// just below and just above and comparing within tol.
func AssertContinuousAt(t *testing.T, f func(float64) float64, x, tol float64) bool {
	t.Helper()
	below := f(x - ContinuityEpsilon)
	above := f(x + ContinuityEpsilon)
	return assert.InDelta(t, below, above, tol,
		"discontinuity at x=%v: f(x-ε)=%v, f(x+ε)=%v", x, below, above)
}
