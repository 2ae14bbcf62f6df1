package filter

import (
	"math"
	"math/cmplx"

	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/dsp/fourier"
)

// FilterResponse holds the frequency response of a filter.
type FilterResponse struct {
	// Frequencies at which response was calculated (normalized, 0 to 0.5)
	Frequencies []float64

	// Magnitude response at each frequency (linear scale)
	Magnitude []float64

	// Phase response at each frequency (radians)
	Phase []float64
}

// ComputeFrequencyResponse calculates the frequency response of a FIR filter.
//
// The coefficients are zero-padded to a power-of-two length of at least
// 2·numPoints and transformed with a real FFT, giving FFTSize/2+1 bins from DC
// up to and including Nyquist. numPoints <= 0 selects a default of 512.
//
// This only inspects a coefficient vector; signals are always filtered in the
// time domain by the convolver.
func ComputeFrequencyResponse(coeffs []float64, numPoints int) FilterResponse {
	if numPoints <= 0 {
		numPoints = defaultPoints
	}

	fftSize := minFFTSize
	for fftSize < fftSizeFactor*numPoints || fftSize < len(coeffs) {
		fftSize <<= fftGrowthShift
	}

	padded := make([]float64, fftSize)
	copy(padded, coeffs)

	fft := fourier.NewFFT(fftSize)
	spectrum := fft.Coefficients(nil, padded)

	bins := fftSize/hermitianBins + 1
	response := FilterResponse{
		Frequencies: make([]float64, bins),
		Magnitude:   make([]float64, bins),
		Phase:       make([]float64, bins),
	}

	for k := range bins {
		response.Frequencies[k] = fft.Freq(k)
		response.Magnitude[k] = cmplx.Abs(spectrum[k])
		response.Phase[k] = cmplx.Phase(spectrum[k])
	}

	return response
}

// Bin returns the index of the bin closest to the normalized frequency f,
// or -1 for an empty response.
func (r FilterResponse) Bin(f float64) int {
	if len(r.Frequencies) == 0 {
		return -1
	}

	best := 0
	for k, freq := range r.Frequencies {
		if math.Abs(freq-f) < math.Abs(r.Frequencies[best]-f) {
			best = k
		}
	}
	return best
}

// MagnitudeAt returns the magnitude of the bin closest to the normalized frequency f.
func (r FilterResponse) MagnitudeAt(f float64) float64 {
	k := r.Bin(f)
	if k < 0 {
		return 0
	}
	return r.Magnitude[k]
}

// MagnitudeDB converts linear magnitude to decibels.
func MagnitudeDB(magnitude float64) float64 {
	if magnitude < minMagnitude {
		magnitude = minMagnitude
	}
	return dbMultiplier * math.Log10(magnitude)
}

// DCGain returns the sum of the coefficients, the filter's gain at 0 Hz.
func DCGain(coeffs []float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}
	return f64.Sum(coeffs)
}

// NormalizedMagnitude returns the magnitude scaled so that its peak is 1.
// An all-zero response is returned unchanged.
func (r FilterResponse) NormalizedMagnitude() []float64 {
	out := make([]float64, len(r.Magnitude))
	peak := 0.0
	for _, m := range r.Magnitude {
		peak = math.Max(peak, m)
	}
	if peak < minMagnitude {
		copy(out, r.Magnitude)
		return out
	}
	f64.Scale(out, r.Magnitude, 1/peak)
	return out
}

// RMS returns the root mean square level of s, or 0 for an empty slice.
func RMS(s []float64) float64 {
	if len(s) == 0 {
		return 0
	}
	return math.Sqrt(f64.DotProductUnsafe(s, s) / float64(len(s)))
}
