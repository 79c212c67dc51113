package simd

// Vec is a fixed-width vector of MaxLanes[T]() lanes of type T.
//
// Vec values are immutable: every operation returns a new vector and no
// function in this package retains a reference to its arguments. Two
// vectors with equal lane sequences are interchangeable; there is no
// identity beyond the contents.
//
// Vec instances should not be created directly; use Load, Set, Zero, or
// Iota instead.
type Vec[T Lanes] struct {
	data []T
}

// Load creates a vector from the leading lanes of src.
//
// If src holds fewer than MaxLanes[T]() values the remaining lanes are
// zero; extra values are ignored. The vector does not alias src.
func Load[T Lanes](src []T) Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	copy(data, src)
	return Vec[T]{data: data}
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{data: make([]T, MaxLanes[T]())}
}

// Iota returns a vector with lanes set to [0, 1, 2, 3, ...].
func Iota[T Lanes]() Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	for i := range data {
		data[i] = T(i)
	}
	return Vec[T]{data: data}
}

// NumLanes returns the number of lanes in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Get returns the value of lane i. Panics if i is outside [0, NumLanes).
func (v Vec[T]) Get(i int) T {
	return v.data[i]
}

// Data returns a copy of the vector's lanes as a slice.
func (v Vec[T]) Data() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)
	return out
}

// Store writes the vector's lanes to dst, stopping at the shorter of the two.
func (v Vec[T]) Store(dst []T) {
	copy(dst, v.data)
}

// Eq reports whether v and other hold the same lane sequence.
func (v Vec[T]) Eq(other Vec[T]) bool {
	if len(v.data) != len(other.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// lanes returns the lane slice, materializing zeroes for the zero Vec so
// that the zero value behaves like Zero[T]().
func (v Vec[T]) lanes() []T {
	if v.data == nil {
		return make([]T, MaxLanes[T]())
	}
	return v.data
}
