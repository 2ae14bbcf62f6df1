// Command rtfir runs a real-time FIR filter from the command line.
//
// Usage:
//
//	rtfir [-shape lowpass] [-taps 64] [-low 100] [-high 200] [-samplerate 1000] [-mode stdin]
//
// Modes:
//
//	stdin     filter one number per input line, print one result per line
//	coeff     print the filter coefficients, one per line
//	perf      filter a million pseudo-random samples and report the rate
//	response  print frequency (Hz) and magnitude (dB) of the filter
//	chirp     sweep a sine from 0 Hz to Nyquist and print the gain per band
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	rtfir "github.com/tphakala/go-rtfir"
)

var errUnknownMode = errors.New("unknown mode")

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() (err error) {
	var (
		shapeName  = flag.String("shape", defaultShape, "Filter shape: lowpass, highpass, bandpass, bandstop")
		taps       = flag.Int("taps", defaultTaps, "Number of filter taps")
		low        = flag.Float64("low", defaultLow, "Cutoff (lowpass/highpass) or lower band edge in Hz")
		high       = flag.Float64("high", defaultHigh, "Upper band edge in Hz (bandpass/bandstop)")
		sampleRate = flag.Float64("samplerate", defaultSampleRate, "Sample rate in Hz")
		mode       = flag.String("mode", defaultMode, "Mode: stdin, coeff, perf, response, chirp")
		points     = flag.Int("points", defaultPoints, "Frequency points for response mode")
		simd       = flag.Bool("simd", false, "Use the SIMD dot product")
	)
	flag.Parse()

	f, err := newFilter(filterFlags{
		shape:      *shapeName,
		taps:       *taps,
		low:        *low,
		high:       *high,
		sampleRate: *sampleRate,
		simd:       *simd,
	})
	if err != nil {
		return err
	}
	shape := f.Shape()

	out := bufio.NewWriter(os.Stdout)
	defer func() {
		if flushErr := out.Flush(); flushErr != nil && err == nil {
			err = flushErr
		}
	}()

	switch *mode {
	case modeStdin:
		return streamFilter(os.Stdin, out, f)
	case modeCoeff:
		return writeCoefficients(out, f)
	case modePerf:
		n, elapsed := runPerformance(f)
		_, err = fmt.Fprintf(out, "Filtered %d samples with %s in %f seconds (%.0f samples/s)\n",
			n, shape, elapsed.Seconds(), float64(n)/elapsed.Seconds())
		return err
	case modeResponse:
		return writeResponse(out, f, *sampleRate, *points)
	case modeChirp:
		return writeChirp(out, f, *sampleRate)
	default:
		return fmt.Errorf("%w: %q", errUnknownMode, *mode)
	}
}

// runPerformance filters perfRepeats passes over perfSamples pseudo-random
// values in [0, 2) and returns the sample count and elapsed time.
func runPerformance(f *rtfir.Filter[float64]) (int, time.Duration) {
	samples := perfInput()

	var sink float64
	start := time.Now()
	for range perfRepeats {
		for _, x := range samples {
			sink += f.Step(x)
		}
	}
	elapsed := time.Since(start)
	_ = sink

	return perfRepeats * len(samples), elapsed
}
