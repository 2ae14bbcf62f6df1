package rtfir

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-rtfir/internal/engine"
	"github.com/tphakala/go-rtfir/internal/filter"
	"github.com/tphakala/go-rtfir/internal/simdops"
	"github.com/tphakala/simd/cpu"
)

// Float is the sample type constraint: float32 or float64.
type Float = simdops.Float

// Shape selects the filter response.
type Shape = filter.Shape

// Supported filter shapes.
const (
	// Lowpass passes frequencies below Cutoff.
	Lowpass = filter.Lowpass

	// Highpass passes frequencies above Cutoff.
	Highpass = filter.Highpass

	// Bandpass passes frequencies between Cutoff and CutoffHigh.
	Bandpass = filter.Bandpass

	// Bandstop rejects frequencies between Cutoff and CutoffHigh.
	Bandstop = filter.Bandstop
)

// State reports whether a filter has processed any input yet.
type State = engine.State

// Filter states.
const (
	// StateUninitialized holds from construction until the first Step.
	StateUninitialized = engine.StateUninitialized

	// StateRunning holds from the first Step on. There is no way back.
	StateRunning = engine.StateRunning
)

// Response is the frequency response of a coefficient vector.
type Response = filter.FilterResponse

// Common errors returned by the filters.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid filter configuration")

	// ErrInvalidCutoff indicates a normalized cutoff frequency outside [0, 0.5].
	ErrInvalidCutoff = filter.ErrInvalidCutoff

	// ErrChannelMismatch indicates a channel count that does not match the bank.
	ErrChannelMismatch = errors.New("channel count mismatch")

	// ErrBufferTooSmall indicates the output buffer is too small.
	ErrBufferTooSmall = errors.New("output buffer too small")
)

// Config holds filter configuration.
type Config struct {
	// Shape selects lowpass, highpass, bandpass or bandstop.
	Shape Shape

	// Taps is the number of coefficients (filter order + 1). Must be at least 1.
	Taps int

	// Cutoff is the cutoff frequency for Lowpass and Highpass, and the lower
	// band edge for Bandpass and Bandstop.
	Cutoff float64

	// CutoffHigh is the upper band edge for Bandpass and Bandstop.
	// Ignored by Lowpass and Highpass.
	CutoffHigh float64

	// SampleRate is the sample rate in Hz. When set, Cutoff and CutoffHigh are
	// in Hz and are divided by SampleRate. When zero, the cutoffs are already
	// normalized (cycles per sample).
	SampleRate float64

	// EnableSIMD uses the SIMD dot product. Results then match the scalar
	// path within floating-point tolerance instead of bit for bit.
	EnableSIMD bool

	// EnableParallel lets a Bank process its channels concurrently.
	// Has no effect on a single Filter.
	EnableParallel bool
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !c.Shape.Valid() {
		return fmt.Errorf("%w: unknown shape %v", ErrInvalidConfig, c.Shape)
	}

	if c.Taps < 1 {
		return fmt.Errorf("%w: taps must be at least 1, got %d", ErrInvalidConfig, c.Taps)
	}

	if c.SampleRate < 0 || math.IsNaN(c.SampleRate) || math.IsInf(c.SampleRate, 0) {
		return fmt.Errorf("%w: sample rate must be a finite non-negative number, got %g", ErrInvalidConfig, c.SampleRate)
	}

	low, high := c.Normalized()
	if err := filter.ValidateCutoff(low); err != nil {
		return err
	}
	if c.Shape.Bands() > 1 {
		if err := filter.ValidateCutoff(high); err != nil {
			return err
		}
	}

	return nil
}

// Normalized returns the cutoffs as fractions of the sample rate.
// For single-cutoff shapes high is always 0.
func (c *Config) Normalized() (low, high float64) {
	low, high = c.Cutoff, c.CutoffHigh
	if c.SampleRate > 0 {
		low /= c.SampleRate
		high /= c.SampleRate
	}
	if c.Shape.Bands() == 1 {
		high = 0
	}
	return low, high
}

// Filter is a real-time FIR filter. It owns its coefficients and its sample
// history; both are sized at construction and never reallocated.
//
// Type parameter F selects float32 or float64 processing. Coefficients are
// always designed in float64 and converted once.
type Filter[F Float] struct {
	shape     Shape
	low, high float64
	conv      *engine.Convolver[F]
}

// New designs the coefficients described by config and returns a filter
// with an all-zero history.
func New[F Float](config *Config) (*Filter[F], error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	low, high := config.Normalized()
	coeffs, err := filter.Design(config.Shape, config.Taps, low, high)
	if err != nil {
		return nil, fmt.Errorf("failed to design %s filter: %w", config.Shape, err)
	}

	conv, err := engine.NewConvolver(convertCoefficients[F](coeffs), config.EnableSIMD)
	if err != nil {
		return nil, fmt.Errorf("failed to create convolver: %w", err)
	}

	return &Filter[F]{
		shape: config.Shape,
		low:   low,
		high:  high,
		conv:  conv,
	}, nil
}

// Step filters one sample: it enters the history and the weighted sum of
// the last Taps samples is returned.
func (f *Filter[F]) Step(sample F) F {
	return f.conv.Step(sample)
}

// Coefficients returns a copy of the tap weights.
func (f *Filter[F]) Coefficients() []F {
	return f.conv.Coefficients()
}

// Taps returns the number of coefficients.
func (f *Filter[F]) Taps() int {
	return f.conv.Taps()
}

// Shape returns the filter shape.
func (f *Filter[F]) Shape() Shape {
	return f.shape
}

// Cutoffs returns the normalized cutoff frequencies. high is 0 for
// Lowpass and Highpass.
func (f *Filter[F]) Cutoffs() (low, high float64) {
	return f.low, f.high
}

// State reports whether the filter has processed any input yet.
func (f *Filter[F]) State() State {
	return f.conv.State()
}

// Samples returns the number of samples processed so far.
func (f *Filter[F]) Samples() uint64 {
	return f.conv.Samples()
}

// Latency returns the group delay of the filter in samples.
func (f *Filter[F]) Latency() int {
	return f.conv.Taps() / latencyDivisor
}

// Response computes the frequency response of the filter's coefficients.
// See ComputeResponse.
func (f *Filter[F]) Response(numPoints int) Response {
	coeffs := f.conv.Coefficients()
	c64 := make([]float64, len(coeffs))
	for i, v := range coeffs {
		c64[i] = float64(v)
	}
	return filter.ComputeFrequencyResponse(c64, numPoints)
}

// Info returns information about the filter.
func (f *Filter[F]) Info() Info {
	info := Info{
		Shape:       f.shape,
		Taps:        f.conv.Taps(),
		CutoffLow:   f.low,
		CutoffHigh:  f.high,
		Latency:     f.Latency(),
		DCGain:      float64(f.conv.DCGain()),
		MemoryUsage: f.conv.MemoryUsage(),
		SIMDEnabled: f.conv.SIMD(),
		SIMDType:    "none",
	}
	if info.SIMDEnabled {
		info.SIMDType = cpu.Info()
	}
	return info
}

// Info describes a filter.
type Info struct {
	// Shape is the filter response shape.
	Shape Shape

	// Taps is the number of coefficients.
	Taps int

	// CutoffLow and CutoffHigh are the normalized cutoffs.
	CutoffLow  float64
	CutoffHigh float64

	// Latency is the group delay in samples.
	Latency int

	// DCGain is the sum of the coefficients.
	DCGain float64

	// MemoryUsage is the approximate memory usage in bytes.
	MemoryUsage int64

	// SIMDEnabled indicates if the SIMD dot product is active.
	SIMDEnabled bool

	// SIMDType describes the SIMD instruction set in use.
	SIMDType string
}

// Design computes the coefficients for shape with normalized cutoffs,
// without building a filter. For Lowpass and Highpass high is ignored.
func Design(shape Shape, taps int, low, high float64) ([]float64, error) {
	return filter.Design(shape, taps, low, high)
}

// ParseShape maps a shape name such as "lowpass" to a Shape.
func ParseShape(name string) (Shape, error) {
	return filter.ParseShape(name)
}

// ComputeResponse calculates the frequency response of a coefficient vector
// with an FFT. numPoints sets the resolution (bins from DC to Nyquist);
// values <= 0 select 512.
func ComputeResponse(coeffs []float64, numPoints int) Response {
	return filter.ComputeFrequencyResponse(coeffs, numPoints)
}

// MagnitudeDB converts a linear magnitude to decibels.
func MagnitudeDB(magnitude float64) float64 {
	return filter.MagnitudeDB(magnitude)
}

// DCGain returns the sum of the coefficients.
func DCGain(coeffs []float64) float64 {
	return filter.DCGain(coeffs)
}

func convertCoefficients[F Float](coeffs []float64) []F {
	out := make([]F, len(coeffs))
	for i, v := range coeffs {
		out[i] = F(v)
	}
	return out
}
