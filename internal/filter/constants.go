package filter

import "math"

const (
	// Filter length limits
	minFilterTaps = 1

	// Normalized cutoff range (fraction of the sample rate, Nyquist = 0.5)
	minCutoff = 0.0
	maxCutoff = 0.5

	// Sinc design constants
	twoPi          = 2 * math.Pi
	lowpassCenter  = 2.0 // centre tap of the ideal lowpass is 2·fc
	allPassCenter  = 1.0 // unit impulse subtracted from for highpass and bandstop
	centerDivisor  = 2   // W = taps / 2
	oneBand        = 1
	twoBands       = 2
	defaultPoints  = 512
	minFFTSize     = 2
	fftSizeFactor  = 2
	hermitianBins  = 2 // a real FFT of size N has N/2 + 1 unique bins
	fftGrowthShift = 1

	// Response conversion
	minMagnitude = 1e-10 // Avoid log(0)
	dbMultiplier = 20.0  // 20*log10 for magnitude
)
