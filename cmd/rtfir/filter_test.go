package main

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rtfir "github.com/tphakala/go-rtfir"
)

func newTestFilter(t *testing.T) *rtfir.Filter[float64] {
	t.Helper()
	f, err := rtfir.NewLowpassHz(4, 100, 1000)
	require.NoError(t, err)
	return f
}

func TestStreamFilter(t *testing.T) {
	f := newTestFilter(t)

	var out bytes.Buffer
	err := streamFilter(strings.NewReader("1\n\n0\n  0  \n0\n0\n"), &out, f)
	require.NoError(t, err)

	assert.Equal(t, "0.151365\n0.187098\n0.200000\n0.187098\n0.000000\n", out.String())
}

func TestStreamFilter_InvalidLine(t *testing.T) {
	f := newTestFilter(t)

	var out bytes.Buffer
	err := streamFilter(strings.NewReader("1\n2\nabc\n"), &out, f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
	assert.Equal(t, 2, strings.Count(out.String(), "\n"))
}

func TestWriteCoefficients(t *testing.T) {
	f := newTestFilter(t)

	var out bytes.Buffer
	require.NoError(t, writeCoefficients(&out, f))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	for i, line := range lines {
		v, err := strconv.ParseFloat(line, 64)
		require.NoError(t, err)
		assert.Equal(t, f.Coefficients()[i], v)
	}
}

func TestWriteResponse(t *testing.T) {
	f, err := rtfir.NewLowpassHz(16, 100, 1000)
	require.NoError(t, err)

	// 16 points and 16 taps give a 32-point FFT: 17 bins from DC to Nyquist.
	var out bytes.Buffer
	require.NoError(t, writeResponse(&out, f, 1000, 16))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 17)
	assert.True(t, strings.HasPrefix(lines[0], "0.000\t"))
	assert.True(t, strings.HasPrefix(lines[16], "500.000\t"))
}

func TestWriteChirp(t *testing.T) {
	f, err := rtfir.NewLowpassHz(128, 100, 1000)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, writeChirp(&out, f, 1000))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, chirpBlocks)

	gain := func(line string) float64 {
		fields := strings.Split(line, "\t")
		require.Len(t, fields, 2)
		v, err := strconv.ParseFloat(fields[1], 64)
		require.NoError(t, err)
		return v
	}

	// Early bands pass once the history has filled; the last band is well
	// into the stopband.
	assert.Greater(t, gain(lines[3]), -3.0)
	assert.Less(t, gain(lines[chirpBlocks-1]), -20.0)
}

func TestPerfInput(t *testing.T) {
	samples := perfInput()
	require.Len(t, samples, perfSamples)
	for _, s := range samples {
		assert.GreaterOrEqual(t, s, 0.0)
		assert.Less(t, s, 2.0)
	}
	assert.Equal(t, samples, perfInput())
}

func TestRunPerformance(t *testing.T) {
	f := newTestFilter(t)
	n, elapsed := runPerformance(f)
	assert.Equal(t, perfSamples*perfRepeats, n)
	assert.Positive(t, elapsed)
	assert.Equal(t, uint64(n), f.Samples())
}

func TestNewFilter(t *testing.T) {
	f, err := newFilter(filterFlags{shape: "Bandpass", taps: 32, low: 100, high: 200, sampleRate: 1000})
	require.NoError(t, err)
	assert.Equal(t, rtfir.Bandpass, f.Shape())

	low, high := f.Cutoffs()
	assert.InDelta(t, 0.1, low, 1e-12)
	assert.InDelta(t, 0.2, high, 1e-12)
}

// TestNewFilter_RejectsSampleRate verifies the Hz flags are never read as
// normalized cutoffs.
func TestNewFilter_RejectsSampleRate(t *testing.T) {
	for _, rate := range []float64{0, -1000} {
		f, err := newFilter(filterFlags{shape: "lowpass", taps: 8, low: 0.2, sampleRate: rate})
		require.ErrorIs(t, err, rtfir.ErrInvalidConfig, "rate %g", rate)
		assert.Nil(t, f)
	}
}

func TestNewFilter_Errors(t *testing.T) {
	_, err := newFilter(filterFlags{shape: "notch", taps: 8, low: 100, sampleRate: 1000})
	require.Error(t, err)

	_, err = newFilter(filterFlags{shape: "lowpass", taps: 8, low: 600, sampleRate: 1000})
	require.ErrorIs(t, err, rtfir.ErrInvalidCutoff)
}
