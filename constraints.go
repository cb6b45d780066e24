package interpolation

// Float is the constraint for floating-point scalar types.
// Easing functions, Lerp and the slice operations are generic over it.
type Float interface {
	~float32 | ~float64
}

// Signed is the constraint for signed integer value types supported by
// [LerpInt] and [ScaleInt].
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the constraint for unsigned integer value types supported
// by [LerpUint], [ScaleUint] and [AbsDiff].
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}
