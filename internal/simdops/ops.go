// Package simdops provides generic SIMD operations for float32 and float64 types.
// The convolver and coefficient tools are written once against Ops[F] and
// pick up the type-specific kernels from github.com/tphakala/simd.
package simdops

import (
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Ops provides SIMD-accelerated operations for type F.
// Function pointers keep the generic call sites free of type switches.
type Ops[F Float] struct {
	// DotProductUnsafe computes the dot product without bounds checking.
	// Use only when slices are guaranteed to have equal length.
	DotProductUnsafe func(a, b []F) F

	// Sum returns the sum of all elements.
	Sum func(a []F) F
}

// Pre-instantiated operations for each float type.
var (
	ops32 = Ops[float32]{
		DotProductUnsafe: f32.DotProductUnsafe,
		Sum:              f32.Sum,
	}
	ops64 = Ops[float64]{
		DotProductUnsafe: f64.DotProductUnsafe,
		Sum:              f64.Sum,
	}
)

// For returns the Ops instance for type F.
// The type switch happens at construction time, not in hot paths.
func For[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&ops32).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&ops64).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float64")
		}
		return ops
	default:
		panic("simdops: unsupported float type")
	}
}

// BytesPerElement returns the storage size of one F value.
func BytesPerElement[F Float]() int64 {
	var zero F
	if _, ok := any(zero).(float64); ok {
		return bytesPerFloat64
	}
	return bytesPerFloat32
}

const (
	bytesPerFloat32 = 4
	bytesPerFloat64 = 8
)
