package vector

import (
	"fmt"
)

// Indexes of the two components.
const (
	E0 = iota
	E1
)

// Scalar is the set of element types a Vector2 can hold: copyable numeric
// types with native +, -, * and unary negation.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Vector2 is a vector with two components of the same scalar type.
// Every operation returns a new value and leaves its operands untouched.
type Vector2[T Scalar] [2]T

func New[T Scalar](e0, e1 T) Vector2[T] {
	return Vector2[T]{e0, e1}
}

// Get returns the component at index 0 or 1. Any other index is a caller
// bug and panics; untrusted indexes must be validated before the call.
func (v Vector2[T]) Get(index int) T {
	if index < 0 || index >= len(v) {
		panic(fmt.Sprintf("index out of bounds: the len is %d but the index is %d", len(v), index))
	}
	return v[index]
}

func (v Vector2[T]) Add(other Vector2[T]) (sum Vector2[T]) {
	for i := range v {
		sum[i] = v[i] + other[i]
	}
	return sum
}

func (v Vector2[T]) Sub(other Vector2[T]) (sub Vector2[T]) {
	for i := range v {
		sub[i] = v[i] - other[i]
	}
	return
}

func (v Vector2[T]) Neg() (neg Vector2[T]) {
	for i := range v {
		neg[i] = -v[i]
	}
	return
}

// Dot returns the dot product of the two vectors, a scalar.
func (v Vector2[T]) Dot(other Vector2[T]) (dot T) {
	for i := range v {
		dot += v[i] * other[i]
	}
	return
}

func (v Vector2[T]) Scale(factor T) (scaled Vector2[T]) {
	for i := range v {
		scaled[i] = v[i] * factor
	}
	return
}
