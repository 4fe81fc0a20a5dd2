package math

import (
	m "math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// floatBits returns the IEEE 754 bit pattern of x in its own precision.
func floatBits[T constraints.Float](x T) uint64 {
	if unsafe.Sizeof(x) == 4 {
		return uint64(m.Float32bits(float32(x)))
	}
	return m.Float64bits(float64(x))
}

// bitsEqual compares two scalars by bit pattern. -0 and +0 differ, and a
// NaN equals a NaN carrying the same payload.
func bitsEqual[T constraints.Float](a, b T) bool {
	return floatBits(a) == floatBits(b)
}

func hashFloats[T constraints.Float](values ...T) uint64 {
	h := uint64(1)
	for _, v := range values {
		b := floatBits(v)
		h = 31*h + (b ^ (b >> 32))
	}
	return h
}
