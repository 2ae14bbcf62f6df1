package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// wavInputInfo holds validated input file information.
type wavInputInfo struct {
	file         *os.File
	decoder      *wav.Decoder
	rate         int
	channels     int
	bitDepth     int
	totalSamples int64
	format       *audio.Format
}

// openWAVInput opens and validates a WAV file, returning format information.
func openWAVInput(path string, verbose bool) (*wavInputInfo, error) {
	inputFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		_ = inputFile.Close()
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	format := decoder.Format()
	if format.SampleRate <= 0 || format.NumChannels < 1 {
		_ = inputFile.Close()
		return nil, fmt.Errorf("invalid WAV format in %s: %d Hz, %d channels", path, format.SampleRate, format.NumChannels)
	}

	bitDepth := int(decoder.BitDepth)
	if !supportedBitDepth(bitDepth) {
		_ = inputFile.Close()
		return nil, fmt.Errorf("unsupported bit depth %d in %s", bitDepth, path)
	}

	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit", format.SampleRate, format.NumChannels, bitDepth)
	}

	// Total duration is only used for progress reporting
	duration, err := decoder.Duration()
	if err != nil {
		duration = 0
	}

	return &wavInputInfo{
		file:         inputFile,
		decoder:      decoder,
		rate:         format.SampleRate,
		channels:     format.NumChannels,
		bitDepth:     bitDepth,
		totalSamples: int64(duration.Seconds() * float64(format.SampleRate)),
		format:       format,
	}, nil
}

// Close closes the input file.
func (w *wavInputInfo) Close() error {
	return w.file.Close()
}

// wavOutputWriter wraps the output file and its PCM encoder.
type wavOutputWriter struct {
	file    *os.File
	encoder *wav.Encoder
	buf     *audio.IntBuffer
}

// createWAVOutput creates the output file and encoder.
func createWAVOutput(path string, sampleRate, bitDepth, channels int) (*wavOutputWriter, error) {
	outputFile, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &wavOutputWriter{
		file:    outputFile,
		encoder: wav.NewEncoder(outputFile, sampleRate, bitDepth, channels, wavFormatPCM),
		buf: &audio.IntBuffer{
			Format:         &audio.Format{SampleRate: sampleRate, NumChannels: channels},
			SourceBitDepth: bitDepth,
		},
	}, nil
}

// WriteSamples writes interleaved samples to the output file.
func (w *wavOutputWriter) WriteSamples(samples []int) error {
	w.buf.Data = samples
	return w.encoder.Write(w.buf)
}

// Close finalizes the WAV header and closes the file.
func (w *wavOutputWriter) Close() error {
	if err := w.encoder.Close(); err != nil {
		_ = w.file.Close()
		return err
	}
	return w.file.Close()
}

// filterBuffers holds all preallocated buffers for filtering.
type filterBuffers[F Float] struct {
	intBuffer    *audio.IntBuffer
	channelBufs  [][]F
	filteredBufs [][]F
	srcChunk     [][]F // per-chunk views into channelBufs
	dstChunk     [][]F // per-chunk views into filteredBufs
	outputIntBuf []int
	invMaxVal    float64
	maxVal       float64
}

// newFilterBuffers creates and preallocates all processing buffers. Filtering
// keeps the sample count, so input and output chunks share one size.
func newFilterBuffers[F Float](channels, bitDepth int, format *audio.Format) *filterBuffers[F] {
	channelBufs := make([][]F, channels)
	filteredBufs := make([][]F, channels)
	for ch := range channels {
		channelBufs[ch] = make([]F, bufferSize)
		filteredBufs[ch] = make([]F, bufferSize)
	}

	maxVal := getMaxValue(bitDepth)

	return &filterBuffers[F]{
		intBuffer: &audio.IntBuffer{
			Data:   make([]int, bufferSize*channels),
			Format: format,
		},
		channelBufs:  channelBufs,
		filteredBufs: filteredBufs,
		srcChunk:     make([][]F, channels),
		dstChunk:     make([][]F, channels),
		outputIntBuf: make([]int, bufferSize*channels),
		invMaxVal:    1.0 / maxVal,
		maxVal:       maxVal,
	}
}

// chunk returns the first n samples of every input and output channel.
// The returned headers are reused by the next call.
func (b *filterBuffers[F]) chunk(n int) (dst, src [][]F) {
	for ch := range b.channelBufs {
		b.srcChunk[ch] = b.channelBufs[ch][:n]
		b.dstChunk[ch] = b.filteredBufs[ch][:n]
	}
	return b.dstChunk, b.srcChunk
}

// progressTracker handles progress reporting.
type progressTracker struct {
	totalSamples int64
	lastProgress int
	verbose      bool
}

// newProgressTracker creates a new progress tracker.
func newProgressTracker(totalSamples int64, verbose bool) *progressTracker {
	return &progressTracker{
		totalSamples: totalSamples,
		verbose:      verbose,
	}
}

// reportIfNeeded reports progress if threshold crossed.
func (p *progressTracker) reportIfNeeded(currentSamples int64) {
	if !p.verbose || p.totalSamples == 0 {
		return
	}

	progress := int(float64(currentSamples) / float64(p.totalSamples) * percentScale)
	if progress >= p.lastProgress+progressInterval {
		log.Printf("Progress: %d%%", progress)
		p.lastProgress = progress
	}
}

func supportedBitDepth(bitDepth int) bool {
	switch bitDepth {
	case bitsPerSample16, bitsPerSample24, bitsPerSample32:
		return true
	default:
		return false
	}
}

// getMaxValue returns the maximum sample value for the given bit depth.
func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// deinterleaveInto converts interleaved int samples into preallocated
// per-channel buffers normalized to [-1, 1].
func deinterleaveInto[F Float](data []int, channelBufs [][]F, numChannels, samplesPerChannel int, invMaxVal float64) {
	// Fast path for mono
	if numChannels == monoChannels {
		buf := channelBufs[0]
		for i := range samplesPerChannel {
			buf[i] = F(float64(data[i]) * invMaxVal)
		}
		return
	}

	for i := range samplesPerChannel {
		base := i * numChannels
		for ch := range numChannels {
			channelBufs[ch][i] = F(float64(data[base+ch]) * invMaxVal)
		}
	}
}

// interleaveInto converts per-channel float slices into a preallocated int
// buffer, clamping to [-1, 1]. Returns the number of elements written, or 0
// when dst is too small.
func interleaveInto[F Float](channels [][]F, dst []int, maxVal float64) int {
	if len(channels) == 0 || len(channels[0]) == 0 {
		return 0
	}

	numChannels := len(channels)
	samplesPerChannel := len(channels[0])
	totalLen := samplesPerChannel * numChannels
	if len(dst) < totalLen {
		return 0
	}

	for i := range samplesPerChannel {
		base := i * numChannels
		for ch := range numChannels {
			dst[base+ch] = int(clamp(float64(channels[ch][i])) * maxVal)
		}
	}

	return totalLen
}

func clamp(sample float64) float64 {
	if sample > 1.0 {
		return 1.0
	}
	if sample < -1.0 {
		return -1.0
	}
	return sample
}
