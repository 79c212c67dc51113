// Package simd provides a fixed-width numeric vector type with elementwise
// arithmetic and reductions, emulating SIMD-style batch processing on top of
// plain scalar Go arithmetic.
//
// Unlike hardware SIMD libraries there is no runtime dispatch and no
// architecture-specific code: the vector width is a single build-time
// constant (WidthBits, default 128) and every operation is an ordinary loop
// over the lanes. The point is the programming model, not the instructions.
//
// Basic usage:
//
//	a := simd.Load([]float32{1, 2, 3, 4})
//	b := simd.Load([]float32{5, 6, 7, 8})
//
//	c := simd.Add(a, b)        // [6 8 10 12]
//	total := simd.ReduceSum(c) // 36
//	dot := simd.Dot(a, b)      // 70
//
// Build with -tags simdw256 or -tags simdw512 to double or quadruple the
// lane count of every vector type in the build.
package simd

// Floats is a constraint for floating-point lane types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}
