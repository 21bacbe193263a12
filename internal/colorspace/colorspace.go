// Package colorspace converts colors between RGB, hexadecimal, and HSL
// encodings. Hue, saturation, and lightness are kept as fractions in [0,1];
// hue is a fraction of a full turn, not degrees.
package colorspace

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned when color text does not match the expected
// encoding (e.g. a hex string that is not # followed by six hex digits).
var ErrInvalidFormat = errors.New("invalid color format")

// RGB is a color in sRGB space with 8-bit channels in [0, 255].
type RGB struct {
	R, G, B int
}

// HSL is a color as hue, saturation, and lightness, each in [0, 1].
type HSL struct {
	H, S, L float64
}

// RGBToHSL converts 8-bit RGB channels to HSL fractions.
// A gray input (r == g == b) maps to hue 0 and saturation 0.
func RGBToHSL(c RGB) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxv := math.Max(r, math.Max(g, b))
	minv := math.Min(r, math.Min(g, b))
	l := (maxv + minv) / 2

	if maxv == minv {
		return HSL{H: 0, S: 0, L: l}
	}

	d := maxv - minv
	var s float64
	if l > 0.5 {
		s = d / (2 - maxv - minv)
	} else {
		s = d / (maxv + minv)
	}

	var h float64
	switch maxv {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	case b:
		h = (r-g)/d + 4
	}
	h /= 6

	return HSL{H: h, S: s, L: l}
}

// HSLToRGB converts HSL fractions to 8-bit RGB channels,
// rounding each channel to the nearest integer.
func HSLToRGB(c HSL) RGB {
	if c.S == 0 {
		v := int(math.Round(c.L * 255))
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if c.L < 0.5 {
		q = c.L * (1 + c.S)
	} else {
		q = c.L + c.S - c.L*c.S
	}
	p := 2*c.L - q

	return RGB{
		R: int(math.Round(hueToRGB(p, q, c.H+1.0/3) * 255)),
		G: int(math.Round(hueToRGB(p, q, c.H) * 255)),
		B: int(math.Round(hueToRGB(p, q, c.H-1.0/3) * 255)),
	}
}

// hueToRGB evaluates one channel of the piecewise HSL ramp.
// t is wrapped into [0,1] before the region lookup.
func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// RGBToHex encodes RGB channels as a lowercase "#rrggbb" string.
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// HexToRGB parses a "#rrggbb" string (the leading "#" is optional).
func HexToRGB(s string) (RGB, error) {
	body := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(body) != 6 {
		return RGB{}, fmt.Errorf("%w: %q is not a 6-digit hex color", ErrInvalidFormat, s)
	}

	v, err := strconv.ParseUint(body, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q is not a 6-digit hex color", ErrInvalidFormat, s)
	}

	return RGB{
		R: int(v >> 16),
		G: int(v >> 8 & 0xff),
		B: int(v & 0xff),
	}, nil
}

// HSLToHex encodes an HSL color as a lowercase hex string.
func HSLToHex(c HSL) string {
	return RGBToHex(HSLToRGB(c))
}

// HexToHSL parses a hex string and converts it to HSL.
func HexToHSL(s string) (HSL, error) {
	rgb, err := HexToRGB(s)
	if err != nil {
		return HSL{}, err
	}
	return RGBToHSL(rgb), nil
}
