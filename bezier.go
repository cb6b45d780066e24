package interpolation

// QuadBez evaluates a quadratic Bézier curve with control points x0,
// x1, x2 at parameter t by nesting linear interpolations (de
// Casteljau). At t == 0 the result is x0 and at t == 1 it is x2; t is
// not clamped.
func QuadBez[T Float](x0, x1, x2, t T) T {
	return Lerp(Lerp(x0, x1, t), Lerp(x1, x2, t), t)
}

// CubBez evaluates a cubic Bézier curve with control points x0..x3 at
// parameter t as the interpolation of two quadratic Béziers. At t == 0
// the result is x0 and at t == 1 it is x3; t is not clamped.
func CubBez[T Float](x0, x1, x2, x3, t T) T {
	return Lerp(QuadBez(x0, x1, x2, t), QuadBez(x1, x2, x3, t), t)
}

// QuadBezValue is [QuadBez] over any type implementing the [Lerper]
// contract, so curves can run through points, colors, or other
// vector-like values.
func QuadBezValue[T Lerper[T, S], S any](x0, x1, x2 T, t S) T {
	return LerpValue(LerpValue(x0, x1, t), LerpValue(x1, x2, t), t)
}

// CubBezValue is [CubBez] over any type implementing the [Lerper]
// contract.
func CubBezValue[T Lerper[T, S], S any](x0, x1, x2, x3 T, t S) T {
	return LerpValue(QuadBezValue(x0, x1, x2, t), QuadBezValue(x1, x2, x3, t), t)
}
