package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape_String(t *testing.T) {
	assert.Equal(t, "lowpass", Lowpass.String())
	assert.Equal(t, "highpass", Highpass.String())
	assert.Equal(t, "bandpass", Bandpass.String())
	assert.Equal(t, "bandstop", Bandstop.String())
	assert.Equal(t, "Shape(9)", Shape(9).String())
}

func TestShape_Bands(t *testing.T) {
	assert.Equal(t, 1, Lowpass.Bands())
	assert.Equal(t, 1, Highpass.Bands())
	assert.Equal(t, 2, Bandpass.Bands())
	assert.Equal(t, 2, Bandstop.Bands())
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		in   string
		want Shape
	}{
		{"lowpass", Lowpass},
		{"HighPass", Highpass},
		{" bandpass ", Bandpass},
		{"BANDSTOP", Bandstop},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseShape(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseShape("notch")
	require.ErrorIs(t, err, ErrUnknownShape)
}
