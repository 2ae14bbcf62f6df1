// Command rtfir-wav filters WAV audio files with a real-time FIR filter.
//
// Usage:
//
//	rtfir-wav -shape lowpass -taps 64 -low 1000 input.wav output.wav
//	rtfir-wav -shape bandpass -taps 256 -low 300 -high 3400 speech.wav voice.wav
//	rtfir-wav -shape highpass -low 80 -fast music.wav rumble_free.wav  # float32 precision
//
// Every channel gets its own filter. The output keeps the input's sample
// rate, channel count and bit depth. Filtering introduces a delay of taps/2
// samples; the output has exactly as many samples as the input.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	rtfir "github.com/tphakala/go-rtfir"
)

const (
	// Buffer size for processing (number of samples per channel per chunk)
	bufferSize = 65536

	monoChannels = 1

	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	// Conversion constants
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	// WAV audio format tag for integer PCM
	wavFormatPCM = 1

	// CLI defaults
	defaultShape     = "lowpass"
	defaultTaps      = 64
	defaultLowHz     = 1000.0
	defaultHighHz    = 4000.0
	minRequiredArgs  = 2
	percentScale     = 100
	progressInterval = 10 // Print progress every N%
)

// Float constraint for generic filtering.
type Float = rtfir.Float

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	shapeName := flag.String("shape", defaultShape, "Filter shape: lowpass, highpass, bandpass, bandstop")
	taps := flag.Int("taps", defaultTaps, "Number of filter taps")
	low := flag.Float64("low", defaultLowHz, "Cutoff (lowpass/highpass) or lower band edge in Hz")
	high := flag.Float64("high", defaultHighHz, "Upper band edge in Hz (bandpass/bandstop)")
	fast := flag.Bool("fast", false, "Use float32 precision")
	simd := flag.Bool("simd", true, "Use the SIMD dot product")
	parallel := flag.Bool("parallel", true, "Enable parallel channel processing (faster for stereo/multichannel)")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -shape lowpass -low 1000 input.wav output.wav\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -shape bandpass -taps 256 -low 300 -high 3400 speech.wav voice.wav\n", os.Args[0])
		return errors.New("insufficient arguments")
	}

	shape, err := rtfir.ParseShape(*shapeName)
	if err != nil {
		return err
	}

	opts := filterOptions{
		shape:    shape,
		taps:     *taps,
		low:      *low,
		high:     *high,
		simd:     *simd,
		parallel: *parallel,
		verbose:  *verbose,
	}

	inputPath := args[0]
	outputPath := args[1]

	if *verbose {
		log.Printf("Input: %s", inputPath)
		log.Printf("Output: %s", outputPath)
		log.Printf("Filter: %s, %d taps, %g Hz / %g Hz", shape, *taps, *low, *high)
		if *fast {
			log.Printf("Precision: float32 (fast mode)")
		} else {
			log.Printf("Precision: float64 (high precision)")
		}
	}

	start := time.Now()
	var stats *filterStats
	if *fast {
		stats, err = filterWAV[float32](inputPath, outputPath, opts)
	} else {
		stats, err = filterWAV[float64](inputPath, outputPath, opts)
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Filtered %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Printf("  %s, %d taps (%d channels, %d Hz, %d-bit)\n",
		shape, *taps, stats.channels, stats.rate, stats.bitDepth)
	fmt.Printf("  %d samples, latency %d samples\n", stats.samples, stats.latency)
	fmt.Printf("  Duration: %.2fs, Speed: %.1fx realtime\n",
		elapsed.Seconds(),
		float64(stats.samples)/float64(stats.rate)/elapsed.Seconds())

	return nil
}

type filterOptions struct {
	shape    rtfir.Shape
	taps     int
	low      float64
	high     float64
	simd     bool
	parallel bool
	verbose  bool
}

type filterStats struct {
	rate     int
	channels int
	bitDepth int
	samples  int64
	latency  int
}

func filterWAV[F Float](inputPath, outputPath string, opts filterOptions) (stats *filterStats, err error) {
	// 1. Open and validate input
	input, err := openWAVInput(inputPath, opts.verbose)
	if err != nil {
		return nil, err
	}
	defer func() { _ = input.Close() }()

	// 2. One filter per channel; cutoffs are validated against this file's rate
	bank, err := rtfir.NewBank[F](&rtfir.Config{
		Shape:          opts.shape,
		Taps:           opts.taps,
		Cutoff:         opts.low,
		CutoffHigh:     opts.high,
		SampleRate:     float64(input.rate),
		EnableSIMD:     opts.simd,
		EnableParallel: opts.parallel,
	}, input.channels)
	if err != nil {
		return nil, fmt.Errorf("failed to create filters: %w", err)
	}

	// 3. Create output writer
	output, err := createWAVOutput(outputPath, input.rate, input.bitDepth, input.channels)
	if err != nil {
		return nil, err
	}
	// Close output, capturing close errors on success path (the encoder writes the header sizes on close)
	defer func() {
		if closeErr := output.Close(); err == nil {
			err = closeErr
		}
	}()

	// 4. Initialize processing buffers and tracking
	buffers := newFilterBuffers[F](input.channels, input.bitDepth, input.format)
	stats = &filterStats{
		rate:     input.rate,
		channels: input.channels,
		bitDepth: input.bitDepth,
		latency:  bank.Channel(0).Latency(),
	}
	progress := newProgressTracker(input.totalSamples, opts.verbose)

	// 5. Main processing loop
	for {
		n, err := input.decoder.PCMBuffer(buffers.intBuffer)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read audio data: %w", err)
		}
		if n == 0 {
			break
		}

		// PCMBuffer reports interleaved values; a chunk always holds whole frames
		frames := n / input.channels
		buffers.intBuffer.Data = buffers.intBuffer.Data[:n]

		deinterleaveInto(buffers.intBuffer.Data, buffers.channelBufs, input.channels, frames, buffers.invMaxVal)

		dst, src := buffers.chunk(frames)
		if err := bank.Process(dst, src); err != nil {
			return nil, fmt.Errorf("filtering failed: %w", err)
		}

		outputLen := interleaveInto(dst, buffers.outputIntBuf, buffers.maxVal)
		if err := output.WriteSamples(buffers.outputIntBuf[:outputLen]); err != nil {
			return nil, fmt.Errorf("failed to write audio data: %w", err)
		}

		stats.samples += int64(frames)
		progress.reportIfNeeded(stats.samples)

		// Reset buffer
		buffers.intBuffer.Data = buffers.intBuffer.Data[:cap(buffers.intBuffer.Data)]
	}

	return stats, nil
}
