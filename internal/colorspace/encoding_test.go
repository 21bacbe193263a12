package colorspace

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEncoding(t *testing.T) {
	tests := []struct {
		input   string
		want    Encoding
		wantErr bool
	}{
		{"hex", EncodingHex, false},
		{"rgb", EncodingRGB, false},
		{"hsl", EncodingHSL, false},
		{"HSL", EncodingHSL, false},
		{" rgb ", EncodingRGB, false},
		{"cmyk", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseEncoding(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodingString(t *testing.T) {
	assert.Equal(t, "hex", EncodingHex.String())
	assert.Equal(t, "rgb", EncodingRGB.String())
	assert.Equal(t, "hsl", EncodingHSL.String())
}

func TestDetectEncoding(t *testing.T) {
	tests := []struct {
		input string
		want  Encoding
		ok    bool
	}{
		{"#c73d3d", EncodingHex, true},
		{"c73d3d", EncodingHex, true},
		{"rgb(199, 61, 61)", EncodingRGB, true},
		{"RGB(199,61,61)", EncodingRGB, true},
		{"hsl(0, 58%, 51%)", EncodingHSL, true},
		{"199, 61, 61", EncodingRGB, true}, // bare triples default to rgb
		{"not a color", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := DetectEncoding(tt.input)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		enc     Encoding
		want    HSL
		wantErr bool
	}{
		{"hex", "#ff0000", EncodingHex, HSL{0, 1, 0.5}, false},
		{"rgb wrapped", "rgb(255, 0, 0)", EncodingRGB, HSL{0, 1, 0.5}, false},
		{"rgb bare", "255,0,0", EncodingRGB, HSL{0, 1, 0.5}, false},
		{"hsl wrapped", "hsl(0, 100%, 50%)", EncodingHSL, HSL{0, 1, 0.5}, false},
		{"hsl without units", "0, 100, 50", EncodingHSL, HSL{0, 1, 0.5}, false},
		{"hsl full turn wraps", "hsl(360, 100%, 50%)", EncodingHSL, HSL{0, 1, 0.5}, false},
		{"rgb channel too big", "rgb(256, 0, 0)", EncodingRGB, HSL{}, true},
		{"rgb missing component", "rgb(1, 2)", EncodingRGB, HSL{}, true},
		{"hsl degrees too big", "hsl(361, 0%, 0%)", EncodingHSL, HSL{}, true},
		{"hsl percent too big", "hsl(0, 101%, 0%)", EncodingHSL, HSL{}, true},
		{"hex junk", "#zzzzzz", EncodingHex, HSL{}, true},
		{"empty", "", EncodingRGB, HSL{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input, tt.enc)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want.H, got.H, 1e-9)
			assert.InDelta(t, tt.want.S, got.S, 1e-9)
			assert.InDelta(t, tt.want.L, got.L, 1e-9)
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   HSL
		enc  Encoding
		want string
	}{
		{"hex red", HSL{0, 1, 0.5}, EncodingHex, "#ff0000"},
		{"rgb red", HSL{0, 1, 0.5}, EncodingRGB, "rgb(255, 0, 0)"},
		{"hsl red", HSL{0, 1, 0.5}, EncodingHSL, "hsl(0, 100%, 50%)"},
		{"hsl rounds to integers", HSL{0.5014, 0.333, 0.666}, EncodingHSL, "hsl(181, 33%, 67%)"},
		{"hex black", HSL{0, 0, 0}, EncodingHex, "#000000"},
		{"rgb gray", HSL{0.25, 0, 0.5}, EncodingRGB, "rgb(128, 128, 128)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.in, tt.enc))
		})
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		from    Encoding
		to      Encoding
		want    string
		wantErr bool
	}{
		{"hex to rgb", "#ff0000", EncodingHex, EncodingRGB, "rgb(255, 0, 0)", false},
		{"rgb to hex", "rgb(199, 61, 61)", EncodingRGB, EncodingHex, "#c73d3d", false},
		{"hex to hsl", "#ff0000", EncodingHex, EncodingHSL, "hsl(0, 100%, 50%)", false},
		{"hsl to hex", "hsl(0, 100%, 50%)", EncodingHSL, EncodingHex, "#ff0000", false},
		{"identity hex", "#c73d3d", EncodingHex, EncodingHex, "#c73d3d", false},
		{"malformed", "oops", EncodingHex, EncodingRGB, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.value, tt.from, tt.to)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidFormat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
