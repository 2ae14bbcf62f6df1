package rtfir

// Channel constants
const (
	maxChannels = 256 // Maximum supported channel count
	minChannels = 1
)

// Latency constants
const (
	latencyDivisor = 2 // group delay of the ideal response is taps/2 samples
)
