// Package filter provides coefficient design for the real-time FIR filters.
//
// All four shapes are sampled from the ideal (rectangular-windowed) sinc
// impulse response. No further window is applied, so the truncation ripple
// of the ideal response is part of the design.
package filter

import (
	"errors"
	"fmt"
	"math"
)

// Design errors.
var (
	// ErrInvalidCutoff indicates a normalized cutoff outside [0, 0.5].
	ErrInvalidCutoff = errors.New("frequencies must be normalized to [0, 0.5]")

	// ErrInvalidTaps indicates a tap count below one.
	ErrInvalidTaps = errors.New("invalid tap count")

	// ErrUnknownShape indicates a shape outside the four defined ones.
	ErrUnknownShape = errors.New("unknown filter shape")
)

// Design computes the coefficient vector for shape.
//
// Lowpass and Highpass use only low; high is ignored and not validated.
// Bandpass and Bandstop use low and high as the band edges. The edges are
// not reordered: low >= high is accepted and evaluated as written.
//
// Coefficients are indexed from -W to W-1 around W = taps/2, so an odd tap
// count leaves the last slot at zero.
func Design(shape Shape, taps int, low, high float64) ([]float64, error) {
	switch shape {
	case Lowpass:
		return DesignLowpass(taps, low)
	case Highpass:
		return DesignHighpass(taps, low)
	case Bandpass:
		return DesignBandpass(taps, low, high)
	case Bandstop:
		return DesignBandstop(taps, low, high)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownShape, int(shape))
	}
}

// DesignLowpass designs an ideal lowpass with normalized cutoff fc.
//
//	h[0] = 2·fc
//	h[i] = sin(2π·fc·i) / (π·i)
func DesignLowpass(taps int, fc float64) ([]float64, error) {
	if err := validate(taps, fc); err != nil {
		return nil, err
	}

	w := twoPi * fc
	return sincTaps(taps, lowpassCenter*fc, func(i float64) float64 {
		return math.Sin(w*i) / (i * math.Pi)
	}), nil
}

// DesignHighpass designs an ideal highpass with normalized cutoff fc,
// the unit impulse minus the lowpass of the same cutoff.
//
//	h[0] = 1 - 2·fc
//	h[i] = -sin(2π·fc·i) / (π·i)
func DesignHighpass(taps int, fc float64) ([]float64, error) {
	if err := validate(taps, fc); err != nil {
		return nil, err
	}

	w := twoPi * fc
	return sincTaps(taps, allPassCenter-lowpassCenter*fc, func(i float64) float64 {
		return -math.Sin(w*i) / (i * math.Pi)
	}), nil
}

// DesignBandpass designs an ideal bandpass between normalized cutoffs low and high.
//
//	h[0] = (2π·high - 2π·low) / π
//	h[i] = (sin(2π·high·i) - sin(2π·low·i)) / (π·i)
func DesignBandpass(taps int, low, high float64) ([]float64, error) {
	if err := validate(taps, low, high); err != nil {
		return nil, err
	}

	wl, wh := twoPi*low, twoPi*high
	return sincTaps(taps, (wh-wl)/math.Pi, func(i float64) float64 {
		return (math.Sin(wh*i) - math.Sin(wl*i)) / (i * math.Pi)
	}), nil
}

// DesignBandstop designs an ideal bandstop between normalized cutoffs low and high,
// the unit impulse minus the bandpass of the same edges.
//
//	h[0] = 1 + (2π·low - 2π·high) / π
//	h[i] = (sin(2π·low·i) - sin(2π·high·i)) / (π·i)
func DesignBandstop(taps int, low, high float64) ([]float64, error) {
	if err := validate(taps, low, high); err != nil {
		return nil, err
	}

	wl, wh := twoPi*low, twoPi*high
	return sincTaps(taps, allPassCenter+(wl-wh)/math.Pi, func(i float64) float64 {
		return (math.Sin(wl*i) - math.Sin(wh*i)) / (i * math.Pi)
	}), nil
}

// CenterIndex returns the slot holding the i == 0 tap for a filter of the given length.
func CenterIndex(taps int) int {
	return taps / centerDivisor
}

// ValidateCutoff reports ErrInvalidCutoff unless fc lies in [0, 0.5].
func ValidateCutoff(fc float64) error {
	// Written as a negated range check so NaN is rejected too.
	if !(fc >= minCutoff && fc <= maxCutoff) {
		return fmt.Errorf("%w: got %g", ErrInvalidCutoff, fc)
	}
	return nil
}

func validate(taps int, cutoffs ...float64) error {
	if taps < minFilterTaps {
		return fmt.Errorf("%w: %d (minimum %d)", ErrInvalidTaps, taps, minFilterTaps)
	}
	for _, fc := range cutoffs {
		if err := ValidateCutoff(fc); err != nil {
			return err
		}
	}
	return nil
}

// sincTaps fills a taps-long vector over i = -W .. W-1. The i == 0 slot takes
// the closed-form limit; every other slot is off(i).
func sincTaps(taps int, center float64, off func(i float64) float64) []float64 {
	coeffs := make([]float64, taps)
	w := CenterIndex(taps)

	for i := -w; i < w; i++ {
		if i == 0 {
			coeffs[w] = center
			continue
		}
		coeffs[i+w] = off(float64(i))
	}

	return coeffs
}
