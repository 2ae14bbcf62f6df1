package main

// Default command-line flag values
const (
	defaultShape      = "lowpass"
	defaultTaps       = 64
	defaultLow        = 100.0  // Hz
	defaultHigh       = 200.0  // Hz
	defaultSampleRate = 1000.0 // Hz
	defaultMode       = modeStdin
	defaultPoints     = 256
)

// Modes
const (
	modeStdin    = "stdin"
	modeCoeff    = "coeff"
	modePerf     = "perf"
	modeResponse = "response"
	modeChirp    = "chirp"
)

// Performance test parameters
const (
	perfSamples    = 1000 // distinct pseudo-random samples
	perfRepeats    = 1000 // passes over the sample set
	perfRangeSteps = 1000 // input values are k/perfRangeDiv for k in [0, perfRangeSteps)
	perfRangeDiv   = 500.0
	perfSeed       = 1
)

// Chirp test parameters
const (
	chirpSeconds = 1.0
	chirpBlocks  = 20 // frequency blocks reported
)

const scannerBufferSize = 64 * 1024
