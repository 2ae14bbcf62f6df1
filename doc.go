// Package rtfir provides real-time FIR filtering in pure Go.
//
// A filter is built once from a shape, a tap count and one or two cutoff
// frequencies, then fed one sample at a time. Each call returns one filtered
// sample with a cost that depends only on the tap count, and no memory is
// allocated after construction.
//
// # Features
//
//   - Four canonical shapes: lowpass, highpass, bandpass and bandstop
//   - Closed-form ideal sinc coefficients (no window, truncation ripple included)
//   - Ring-buffer history with zero allocations per sample
//   - Optional SIMD dot product (AVX2/SSE/NEON) via github.com/tphakala/simd
//   - float32 and float64 processing through one generic type
//   - Multi-channel banks with optional parallel channel processing
//   - Pure Go implementation with no CGO dependencies
//
// # Quick Start
//
//	f, err := rtfir.NewLowpassHz(64, 100, 1000) // 64 taps, 100 Hz cutoff at 1 kHz
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, sample := range samples {
//	    out := f.Step(sample)
//	    emit(out)
//	}
//
// For full control use [Config] with [New]:
//
//	f, err := rtfir.New[float32](&rtfir.Config{
//	    Shape:      rtfir.Bandpass,
//	    Taps:       128,
//	    Cutoff:     300,
//	    CutoffHigh: 3400,
//	    SampleRate: 8000,
//	    EnableSIMD: true,
//	})
//
// # Cutoff Frequencies
//
// Cutoffs are normalized to the sample rate: 0.5 is the Nyquist frequency.
// When [Config.SampleRate] is set, cutoffs are given in Hz and divided by the
// sample rate. Any normalized cutoff outside [0, 0.5] fails construction with
// [ErrInvalidCutoff]; a filter is never returned in that case.
//
// # Coefficient Layout
//
// The taps are the ideal impulse response sampled at offsets -W .. W-1 with
// W = taps/2. For an even tap count the centre tap sits at index W. For an odd
// tap count the same range is used and the final coefficient is zero.
//
// # Thread Safety
//
// A [Filter] is not safe for concurrent use: Step mutates its history.
// Separate filters share no state, so each goroutine can own its own filter.
// [Bank] uses exactly that to process channels in parallel.
package rtfir
