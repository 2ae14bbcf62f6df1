// Package testutil provides reusable test helper functions for the FIR filter tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-12
	DCGainTolerance  = 1e-2
	SIMDTolerance    = 1e-9
	Float32Tolerance = 1e-5
)

// AssertSymmetricAbout verifies that s mirrors around index center:
// s[center-j] == s[center+j] wherever both indices are in range.
func AssertSymmetricAbout(t *testing.T, s []float64, center int, tolerance float64) bool {
	t.Helper()
	for j := 1; center-j >= 0 && center+j < len(s); j++ {
		lo, hi := center-j, center+j
		if !assert.InDelta(t, s[lo], s[hi], tolerance,
			"slice not symmetric about %d: s[%d]=%g != s[%d]=%g", center, lo, s[lo], hi, s[hi]) {
			return false
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64) bool {
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

// AssertDCGain verifies that the sum of coefficients equals the expected DC gain.
func AssertDCGain(t *testing.T, coeffs []float64, expectedGain, tolerance float64) bool {
	t.Helper()
	var sum float64
	for _, c := range coeffs {
		sum += c
	}
	return assert.InDelta(t, expectedGain, sum, tolerance,
		"DC gain = %f, want %f", sum, expectedGain)
}

// AssertUnitImpulse verifies that s is 1 at index center and 0 elsewhere.
func AssertUnitImpulse(t *testing.T, s []float64, center int, tolerance float64) bool {
	t.Helper()
	for i, v := range s {
		want := 0.0
		if i == center {
			want = 1.0
		}
		if !assert.InDelta(t, want, v, tolerance, "s[%d]=%g, want %g", i, v, want) {
			return false
		}
	}
	return true
}

// AssertSlicesInDelta verifies element-wise closeness of two equal-length slices.
func AssertSlicesInDelta(t *testing.T, expected, actual []float64, tolerance float64) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected)) {
		return false
	}
	for i := range expected {
		if !assert.InDelta(t, expected[i], actual[i], tolerance,
			"index %d: expected %g, got %g", i, expected[i], actual[i]) {
			return false
		}
	}
	return true
}

// AddSlices returns a[i] + b[i] for equal-length slices.
func AddSlices(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}

// Sine returns n samples of a unit sine at normalized frequency f.
func Sine(n int, f float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * f * float64(i))
	}
	return out
}
