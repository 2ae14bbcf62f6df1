// Package engine implements the streaming FIR convolution used by the filters.
//
// A Convolver owns a fixed coefficient vector and a history of the most recent
// input samples. Each Step shifts one sample into the history and returns the
// dot product of history and coefficients. Step never allocates and its cost
// depends only on the tap count.
package engine

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-rtfir/internal/simdops"
)

// ErrNoCoefficients is returned when a convolver is built from an empty vector.
var ErrNoCoefficients = errors.New("convolver needs at least one coefficient")

// State describes whether a convolver has seen any input yet.
type State int

const (
	// StateUninitialized is the state right after construction: the history is all zero.
	StateUninitialized State = iota

	// StateRunning is entered on the first Step and kept until the convolver is dropped.
	StateRunning
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Convolver is a direct-form FIR filter over a mirrored ring buffer.
//
// Type parameter F selects float32 or float64 arithmetic.
//
// Invariant: history[pos+k] == history[pos+k+taps] for the live window, and
// history[pos+k] holds the sample that arrived k steps ago (0 = newest).
// Slots that have not received input yet hold 0.
//
// A Convolver is not safe for concurrent use. Independent convolvers share
// nothing and may run on separate goroutines.
type Convolver[F simdops.Float] struct {
	coeffs  []F
	history []F // 2·taps, each sample written at pos and pos+taps
	taps    int
	pos     int

	useSIMD bool
	ops     *simdops.Ops[F]

	samples uint64
}

// NewConvolver creates a convolver for coeffs. The coefficients are copied,
// so later changes to the caller's slice do not affect the filter.
//
// With useSIMD the dot product runs through github.com/tphakala/simd. Its
// summation order differs from the sequential loop, so results match the
// scalar path within floating-point tolerance rather than bit for bit.
func NewConvolver[F simdops.Float](coeffs []F, useSIMD bool) (*Convolver[F], error) {
	if len(coeffs) < minTaps {
		return nil, ErrNoCoefficients
	}

	taps := len(coeffs)
	c := &Convolver[F]{
		coeffs:  make([]F, taps),
		history: make([]F, historyMirror*taps),
		taps:    taps,
		useSIMD: useSIMD,
		ops:     simdops.For[F](),
	}
	copy(c.coeffs, coeffs)

	return c, nil
}

// Step pushes one sample into the history and returns the filtered output
//
//	y[n] = Σ_{k=0}^{taps-1} x[n-k] · h[k]
//
// The output depends only on the current and the previous taps-1 samples.
func (c *Convolver[F]) Step(sample F) F {
	c.pos--
	if c.pos < 0 {
		c.pos = c.taps - 1
	}
	c.history[c.pos] = sample
	c.history[c.pos+c.taps] = sample
	c.samples++

	window := c.history[c.pos : c.pos+c.taps]

	if c.useSIMD {
		return c.ops.DotProductUnsafe(window, c.coeffs)
	}

	var acc F
	coeffs := c.coeffs[:len(window)]
	for k, h := range coeffs {
		// The conversion keeps each product rounded on its own, so the sum
		// matches a shift-register implementation bit for bit.
		acc += F(window[k] * h)
	}
	return acc
}

// Coefficients returns a copy of the tap weights, oldest offset first.
func (c *Convolver[F]) Coefficients() []F {
	out := make([]F, c.taps)
	copy(out, c.coeffs)
	return out
}

// Taps returns the filter length.
func (c *Convolver[F]) Taps() int {
	return c.taps
}

// State reports whether any sample has been pushed yet.
func (c *Convolver[F]) State() State {
	if c.samples == 0 {
		return StateUninitialized
	}
	return StateRunning
}

// Samples returns how many samples have been pushed through Step.
func (c *Convolver[F]) Samples() uint64 {
	return c.samples
}

// SIMD reports whether the SIMD dot product is in use.
func (c *Convolver[F]) SIMD() bool {
	return c.useSIMD
}

// DCGain returns the sum of the coefficients, the steady-state output for a
// constant input of 1.
func (c *Convolver[F]) DCGain() F {
	return c.ops.Sum(c.coeffs)
}

// MemoryUsage returns the approximate size of the coefficient and history buffers in bytes.
func (c *Convolver[F]) MemoryUsage() int64 {
	return int64(len(c.coeffs)+len(c.history)) * simdops.BytesPerElement[F]()
}
