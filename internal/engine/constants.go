package engine

// History layout constants
const (
	// The history is stored twice back to back so the last taps samples are
	// always one contiguous window.
	historyMirror = 2

	// Minimum number of coefficients a convolver accepts.
	minTaps = 1
)
