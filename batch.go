package interpolation

// EaseSlice applies one easing curve to a slice of progress values,
// returning a freshly allocated result. The dispatch happens once per
// element; for tight loops over a single fixed curve, call the named
// function directly.
func EaseSlice[T Float](fn EaseFunction, ps []T) []T {
	out := make([]T, len(ps))
	for i, p := range ps {
		out[i] = Ease(fn, p)
	}
	return out
}

// LerpBetween interpolates two float slices element-wise into dst and
// returns it. When dst is nil a slice of len(a) is allocated; otherwise
// dst must be at least as long as a. The slices a and b must have equal
// length. Unlike [LerpSlice] this form lets callers reuse an output
// buffer across frames.
func LerpBetween[T Float](dst, a, b []T, t T) []T {
	if dst == nil {
		dst = make([]T, len(a))
	}
	for i := range a {
		dst[i] = a[i] + (b[i]-a[i])*t
	}
	return dst
}
