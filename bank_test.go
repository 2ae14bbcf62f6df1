package rtfir

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stereoSine(n int) [][]float64 {
	src := make([][]float64, 2)
	for ch := range src {
		src[ch] = make([]float64, n)
		// Different phases so the channels are distinguishable.
		phase := float64(ch) * math.Pi / 4
		for i := range n {
			src[ch][i] = math.Sin(2*math.Pi*0.05*float64(i) + phase)
		}
	}
	return src
}

func newOutput(channels, n int) [][]float64 {
	dst := make([][]float64, channels)
	for ch := range dst {
		dst[ch] = make([]float64, n)
	}
	return dst
}

func TestNewBank_InvalidChannels(t *testing.T) {
	config := &Config{Shape: Lowpass, Taps: 16, Cutoff: 0.1}

	_, err := NewBank[float64](config, 0)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewBank[float64](config, maxChannels+1)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewBank[float64](&Config{Shape: Lowpass, Taps: 16, Cutoff: 0.9}, 2)
	require.ErrorIs(t, err, ErrInvalidCutoff)
}

func TestBank_Channels(t *testing.T) {
	b, err := NewBank[float32](&Config{Shape: Highpass, Taps: 8, Cutoff: 0.2}, 3)
	require.NoError(t, err)

	assert.Equal(t, 3, b.Channels())
	for ch := range 3 {
		require.NotNil(t, b.Channel(ch))
		assert.Equal(t, Highpass, b.Channel(ch).Shape())
	}
	assert.Nil(t, b.Channel(-1))
	assert.Nil(t, b.Channel(3))
	assert.NotSame(t, b.Channel(0), b.Channel(1))
}

// TestBank_MatchesSingleFilters verifies each channel equals a standalone filter.
func TestBank_MatchesSingleFilters(t *testing.T) {
	const n = 512
	config := &Config{Shape: Bandpass, Taps: 33, Cutoff: 0.02, CutoffHigh: 0.1}

	b, err := NewBank[float64](config, 2)
	require.NoError(t, err)

	src := stereoSine(n)
	dst := newOutput(2, n)
	require.NoError(t, b.Process(dst, src))

	for ch := range src {
		f, err := New[float64](config)
		require.NoError(t, err)
		for i, x := range src[ch] {
			require.Equal(t, f.Step(x), dst[ch][i], "channel %d sample %d", ch, i)
		}
	}
}

// TestBank_ParallelMatchesSequential tests that parallel processing produces
// the same output as sequential processing.
func TestBank_ParallelMatchesSequential(t *testing.T) {
	const n = 4410
	config := &Config{Shape: Lowpass, Taps: 64, Cutoff: 0.1}
	parConfig := *config
	parConfig.EnableParallel = true

	seq, err := NewBank[float64](config, 2)
	require.NoError(t, err)
	par, err := NewBank[float64](&parConfig, 2)
	require.NoError(t, err)

	src := stereoSine(n)
	seqOut := newOutput(2, n)
	parOut := newOutput(2, n)

	require.NoError(t, seq.Process(seqOut, src))
	require.NoError(t, par.Process(parOut, src))

	assert.Equal(t, seqOut, parOut)
}

// TestBank_ChunkedStreaming verifies history carries over between calls.
func TestBank_ChunkedStreaming(t *testing.T) {
	const n = 300
	config := &Config{Shape: Bandstop, Taps: 31, Cutoff: 0.1, CutoffHigh: 0.2}

	whole, err := NewBank[float64](config, 2)
	require.NoError(t, err)
	chunked, err := NewBank[float64](config, 2)
	require.NoError(t, err)

	src := stereoSine(n)
	want := newOutput(2, n)
	require.NoError(t, whole.Process(want, src))

	got := newOutput(2, n)
	for start := 0; start < n; start += 64 {
		end := min(start+64, n)
		chunkSrc := [][]float64{src[0][start:end], src[1][start:end]}
		chunkDst := [][]float64{got[0][start:end], got[1][start:end]}
		require.NoError(t, chunked.Process(chunkDst, chunkSrc))
	}

	assert.Equal(t, want, got)
	assert.Equal(t, uint64(n), chunked.Channel(1).Samples())
}

func TestBank_ProcessErrors(t *testing.T) {
	b, err := NewBank[float64](&Config{Shape: Lowpass, Taps: 8, Cutoff: 0.1}, 2)
	require.NoError(t, err)

	src := stereoSine(16)

	err = b.Process(newOutput(2, 16), src[:1])
	require.ErrorIs(t, err, ErrChannelMismatch)

	err = b.Process(newOutput(3, 16), src)
	require.ErrorIs(t, err, ErrChannelMismatch)

	err = b.Process(newOutput(2, 8), src)
	require.ErrorIs(t, err, ErrBufferTooSmall)

	// A failed call leaves every filter untouched.
	assert.Equal(t, StateUninitialized, b.Channel(0).State())
	assert.Equal(t, StateUninitialized, b.Channel(1).State())
}

func TestBank_UnevenChunks(t *testing.T) {
	b, err := NewBank[float64](&Config{Shape: Lowpass, Taps: 8, Cutoff: 0.1, EnableParallel: true}, 2)
	require.NoError(t, err)

	src := [][]float64{{1, 0, 0}, {1}}
	dst := newOutput(2, 4)
	require.NoError(t, b.Process(dst, src))

	assert.Equal(t, uint64(3), b.Channel(0).Samples())
	assert.Equal(t, uint64(1), b.Channel(1).Samples())
	assert.Zero(t, dst[1][1], "slots beyond the chunk stay untouched")
}
