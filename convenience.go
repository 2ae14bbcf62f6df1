package rtfir

import "fmt"

// Common sample rates for the Hz constructors.
const (
	// RateTelephony is the telephony (PSTN narrowband) sample rate.
	RateTelephony = 8000

	// RateVoIP is the VoIP wideband sample rate.
	RateVoIP = 16000

	// RateCD is the CD quality sample rate.
	RateCD = 44100

	// RateDAT is the DAT/DVD sample rate.
	RateDAT = 48000

	// RateHiRes96 is the high-resolution 2x DAT sample rate.
	RateHiRes96 = 96000
)

// NewLowpass creates a float64 lowpass filter. fc is normalized to the
// sample rate and must lie in [0, 0.5].
func NewLowpass(taps int, fc float64) (*Filter[float64], error) {
	return New[float64](&Config{Shape: Lowpass, Taps: taps, Cutoff: fc})
}

// NewHighpass creates a float64 highpass filter with normalized cutoff fc.
func NewHighpass(taps int, fc float64) (*Filter[float64], error) {
	return New[float64](&Config{Shape: Highpass, Taps: taps, Cutoff: fc})
}

// NewBandpass creates a float64 bandpass filter passing [low, high],
// both normalized.
func NewBandpass(taps int, low, high float64) (*Filter[float64], error) {
	return New[float64](&Config{Shape: Bandpass, Taps: taps, Cutoff: low, CutoffHigh: high})
}

// NewBandstop creates a float64 bandstop filter rejecting [low, high],
// both normalized.
func NewBandstop(taps int, low, high float64) (*Filter[float64], error) {
	return New[float64](&Config{Shape: Bandstop, Taps: taps, Cutoff: low, CutoffHigh: high})
}

// NewLowpassHz creates a float64 lowpass filter with the cutoff in Hz.
func NewLowpassHz(taps int, cutoffHz, sampleRate float64) (*Filter[float64], error) {
	return newHz(&Config{Shape: Lowpass, Taps: taps, Cutoff: cutoffHz, SampleRate: sampleRate})
}

// NewHighpassHz creates a float64 highpass filter with the cutoff in Hz.
func NewHighpassHz(taps int, cutoffHz, sampleRate float64) (*Filter[float64], error) {
	return newHz(&Config{Shape: Highpass, Taps: taps, Cutoff: cutoffHz, SampleRate: sampleRate})
}

// NewBandpassHz creates a float64 bandpass filter with the band edges in Hz.
func NewBandpassHz(taps int, lowHz, highHz, sampleRate float64) (*Filter[float64], error) {
	return newHz(&Config{
		Shape:      Bandpass,
		Taps:       taps,
		Cutoff:     lowHz,
		CutoffHigh: highHz,
		SampleRate: sampleRate,
	})
}

// NewBandstopHz creates a float64 bandstop filter with the band edges in Hz.
func NewBandstopHz(taps int, lowHz, highHz, sampleRate float64) (*Filter[float64], error) {
	return newHz(&Config{
		Shape:      Bandstop,
		Taps:       taps,
		Cutoff:     lowHz,
		CutoffHigh: highHz,
		SampleRate: sampleRate,
	})
}

// newHz builds a float64 filter whose cutoffs are in Hz. Unlike Config, where
// a zero SampleRate means normalized cutoffs, the rate here must be positive.
func newHz(config *Config) (*Filter[float64], error) {
	if !(config.SampleRate > 0) {
		return nil, fmt.Errorf("%w: sample rate must be positive, got %g", ErrInvalidConfig, config.SampleRate)
	}
	return New[float64](config)
}
