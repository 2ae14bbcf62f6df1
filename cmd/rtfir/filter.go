package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	rtfir "github.com/tphakala/go-rtfir"
	"github.com/tphakala/go-rtfir/internal/filter"
)

// filterFlags holds the filter settings given on the command line.
// Cutoffs are always in Hz.
type filterFlags struct {
	shape      string
	taps       int
	low, high  float64
	sampleRate float64
	simd       bool
}

// newFilter builds the filter described by flags. The sample rate must be
// positive since the cutoffs are in Hz.
func newFilter(flags filterFlags) (*rtfir.Filter[float64], error) {
	if !(flags.sampleRate > 0) {
		return nil, fmt.Errorf("%w: sample rate must be positive, got %g", rtfir.ErrInvalidConfig, flags.sampleRate)
	}

	shape, err := rtfir.ParseShape(flags.shape)
	if err != nil {
		return nil, err
	}

	f, err := rtfir.New[float64](&rtfir.Config{
		Shape:      shape,
		Taps:       flags.taps,
		Cutoff:     flags.low,
		CutoffHigh: flags.high,
		SampleRate: flags.sampleRate,
		EnableSIMD: flags.simd,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create filter: %w", err)
	}
	return f, nil
}

// streamFilter reads one sample per line from r and writes one filtered
// value per line to w. Blank lines are skipped.
func streamFilter(r io.Reader, w io.Writer, f *rtfir.Filter[float64]) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, scannerBufferSize), scannerBufferSize)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		sample, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return fmt.Errorf("line %d: invalid sample %q: %w", line, text, err)
		}

		if _, err := fmt.Fprintf(w, "%f\n", f.Step(sample)); err != nil {
			return err
		}
	}

	return scanner.Err()
}

// writeCoefficients writes one coefficient per line.
func writeCoefficients(w io.Writer, f *rtfir.Filter[float64]) error {
	for _, c := range f.Coefficients() {
		if _, err := fmt.Fprintf(w, "%.17g\n", c); err != nil {
			return err
		}
	}
	return nil
}

// writeResponse writes frequency in Hz and magnitude in dB, tab separated.
func writeResponse(w io.Writer, f *rtfir.Filter[float64], sampleRate float64, points int) error {
	response := f.Response(points)
	for k, freq := range response.Frequencies {
		if _, err := fmt.Fprintf(w, "%.3f\t%.2f\n", freq*sampleRate, rtfir.MagnitudeDB(response.Magnitude[k])); err != nil {
			return err
		}
	}
	return nil
}

// writeChirp sweeps a unit sine linearly from 0 Hz to Nyquist over
// chirpSeconds and filters it. For each of chirpBlocks equal frequency bands
// it writes the band centre in Hz and the gain in dB, the ratio of output to
// input RMS level.
func writeChirp(w io.Writer, f *rtfir.Filter[float64], sampleRate float64) error {
	n := int(chirpSeconds * sampleRate)
	input := chirp(n, sampleRate, 0, sampleRate/2)

	output := make([]float64, n)
	for i, x := range input {
		output[i] = f.Step(x)
	}

	block := n / chirpBlocks
	if block == 0 {
		return fmt.Errorf("chirp too short: %d samples", n)
	}

	for b := range chirpBlocks {
		lo, hi := b*block, (b+1)*block
		centre := (float64(lo+hi) / 2 / float64(n)) * sampleRate / 2
		gain := filter.RMS(output[lo:hi]) / filter.RMS(input[lo:hi])
		if _, err := fmt.Fprintf(w, "%.1f\t%.2f\n", centre, rtfir.MagnitudeDB(gain)); err != nil {
			return err
		}
	}
	return nil
}

// chirp returns n samples of a sine whose frequency rises linearly from
// f0 to f1 Hz.
func chirp(n int, sampleRate, f0, f1 float64) []float64 {
	duration := float64(n) / sampleRate
	rate := (f1 - f0) / duration

	out := make([]float64, n)
	for i := range out {
		t := float64(i) / sampleRate
		phase := rate*t*t/2 + f0*t
		out[i] = math.Sin(2 * math.Pi * phase)
	}
	return out
}

// perfInput returns the performance test samples: perfSamples values of the
// form k/500 with k in [0, 1000).
func perfInput() []float64 {
	rng := rand.New(rand.NewPCG(perfSeed, perfSeed))
	samples := make([]float64, perfSamples)
	for i := range samples {
		samples[i] = float64(rng.IntN(perfRangeSteps)) / perfRangeDiv
	}
	return samples
}
