package filter

import (
	"fmt"
	"strings"
)

// Shape selects one of the four canonical FIR responses.
type Shape int

const (
	// Lowpass passes frequencies below a single cutoff.
	Lowpass Shape = iota

	// Highpass passes frequencies above a single cutoff.
	Highpass

	// Bandpass passes frequencies between a lower and an upper cutoff.
	Bandpass

	// Bandstop rejects frequencies between a lower and an upper cutoff.
	Bandstop
)

var shapeNames = [...]string{
	Lowpass:  "lowpass",
	Highpass: "highpass",
	Bandpass: "bandpass",
	Bandstop: "bandstop",
}

// String returns the lowercase shape name.
func (s Shape) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// Valid reports whether s is one of the four defined shapes.
func (s Shape) Valid() bool {
	return s >= Lowpass && s <= Bandstop
}

// Bands returns how many cutoff frequencies the shape uses.
func (s Shape) Bands() int {
	if s == Bandpass || s == Bandstop {
		return twoBands
	}
	return oneBand
}

// ParseShape maps a shape name (case-insensitive) to a Shape.
func ParseShape(name string) (Shape, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for s, v := range shapeNames {
		if v == n {
			return Shape(s), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}
