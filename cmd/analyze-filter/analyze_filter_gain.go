package main

import (
	"fmt"

	"github.com/tphakala/go-rtfir/internal/filter"
)

const (
	// Filter design parameters
	defaultTaps       = 64
	defaultCutoff     = 0.1 // Lowpass/highpass cutoff, cycles per sample
	defaultBandLow    = 0.1
	defaultBandHigh   = 0.3
	defaultNumPoints  = 512
	defaultTapsToShow = 5 // Taps printed either side of the centre

	// Longer filters for the DC gain convergence table
	convergenceStart = 8
	convergenceEnd   = 4096
)

// Probe frequencies, cycles per sample
var probeFrequencies = []float64{0, 0.05, 0.1, 0.2, 0.25, 0.3, 0.4, 0.5}

func main() {
	fmt.Println("=== Analyzing Filter DC Gain ===")

	for _, shape := range []filter.Shape{filter.Lowpass, filter.Highpass, filter.Bandpass, filter.Bandstop} {
		low, high := defaultCutoff, 0.0
		if shape.Bands() > 1 {
			low, high = defaultBandLow, defaultBandHigh
		}

		coeffs, err := filter.Design(shape, defaultTaps, low, high)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		analyze(shape, coeffs, low, high)
	}

	fmt.Println("\n=== Lowpass DC gain vs. taps ===")
	for taps := convergenceStart; taps <= convergenceEnd; taps *= 2 {
		coeffs, err := filter.DesignLowpass(taps, defaultCutoff)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		dc := filter.DCGain(coeffs)
		fmt.Printf("  %5d taps: %.10f (error %+.2e)\n", taps, dc, dc-1)
	}
}

func analyze(shape filter.Shape, coeffs []float64, low, high float64) {
	center := filter.CenterIndex(len(coeffs))

	fmt.Printf("\n%s (fc=%g", shape, low)
	if shape.Bands() > 1 {
		fmt.Printf("..%g", high)
	}
	fmt.Printf(", %d taps)\n", len(coeffs))
	fmt.Printf("  DC gain:     %.10f\n", filter.DCGain(coeffs))
	fmt.Printf("  Centre tap:  c[%d] = %.10f\n", center, coeffs[center])

	fmt.Println("  Taps around centre:")
	for k := max(0, center-defaultTapsToShow); k <= min(len(coeffs)-1, center+defaultTapsToShow); k++ {
		fmt.Printf("    c[%2d] = %+.10f\n", k, coeffs[k])
	}

	response := filter.ComputeFrequencyResponse(coeffs, defaultNumPoints)
	normalized := response.NormalizedMagnitude()
	fmt.Println("  Magnitude:")
	for _, f := range probeFrequencies {
		k := response.Bin(f)
		m := response.Magnitude[k]
		fmt.Printf("    f=%.2f: %.6f (%7.2f dB, %7.2f dB rel. peak)\n",
			f, m, filter.MagnitudeDB(m), filter.MagnitudeDB(normalized[k]))
	}
}
