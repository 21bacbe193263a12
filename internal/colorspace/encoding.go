package colorspace

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Encoding identifies one of the three supported color text encodings.
type Encoding int

const (
	EncodingHex Encoding = iota
	EncodingRGB
	EncodingHSL
)

// ParseEncoding maps an encoding name ("hex", "rgb", "hsl") to its Encoding.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hex":
		return EncodingHex, nil
	case "rgb":
		return EncodingRGB, nil
	case "hsl":
		return EncodingHSL, nil
	}
	return 0, fmt.Errorf("unknown color encoding %q (must be hex, rgb, or hsl)", s)
}

func (e Encoding) String() string {
	switch e {
	case EncodingHex:
		return "hex"
	case EncodingRGB:
		return "rgb"
	case EncodingHSL:
		return "hsl"
	}
	return fmt.Sprintf("Encoding(%d)", int(e))
}

var (
	// Triple patterns accept the wrapped form ("rgb(1, 2, 3)") as well as a
	// bare comma-separated triple. The "%" and "deg" unit suffixes are
	// optional on HSL components.
	rgbPattern = regexp.MustCompile(`^(?:[rR][gG][bB]\s*\(\s*)?(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)?$`)
	hslPattern = regexp.MustCompile(`^(?:[hH][sS][lL]\s*\(\s*)?(\d{1,3})(?:deg)?\s*,\s*(\d{1,3})\s*%?\s*,\s*(\d{1,3})\s*%?\s*\)?$`)
	hexPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)
)

// DetectEncoding guesses the encoding of user-entered color text.
// Explicit "rgb("/"hsl(" wrappers win, then a 6-digit hex body; a bare
// triple is treated as RGB. Reports false when nothing matches.
func DetectEncoding(s string) (Encoding, bool) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "rgb"):
		return EncodingRGB, true
	case strings.HasPrefix(lower, "hsl"):
		return EncodingHSL, true
	case hexPattern.MatchString(s):
		return EncodingHex, true
	case rgbPattern.MatchString(s):
		return EncodingRGB, true
	}
	return 0, false
}

// Parse turns user-entered color text in the given encoding into HSL.
// Malformed text is rejected with ErrInvalidFormat.
func Parse(s string, enc Encoding) (HSL, error) {
	s = strings.TrimSpace(s)
	switch enc {
	case EncodingHex:
		return HexToHSL(s)

	case EncodingRGB:
		m := rgbPattern.FindStringSubmatch(s)
		if m == nil {
			return HSL{}, fmt.Errorf("%w: %q is not an rgb triple", ErrInvalidFormat, s)
		}
		r, _ := strconv.Atoi(m[1])
		g, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[3])
		if r > 255 || g > 255 || b > 255 {
			return HSL{}, fmt.Errorf("%w: rgb channels in %q exceed 255", ErrInvalidFormat, s)
		}
		return RGBToHSL(RGB{R: r, G: g, B: b}), nil

	case EncodingHSL:
		m := hslPattern.FindStringSubmatch(s)
		if m == nil {
			return HSL{}, fmt.Errorf("%w: %q is not an hsl triple", ErrInvalidFormat, s)
		}
		deg, _ := strconv.Atoi(m[1])
		sat, _ := strconv.Atoi(m[2])
		light, _ := strconv.Atoi(m[3])
		if deg > 360 || sat > 100 || light > 100 {
			return HSL{}, fmt.Errorf("%w: hsl components in %q out of range", ErrInvalidFormat, s)
		}
		return HSL{
			H: float64(deg%360) / 360,
			S: float64(sat) / 100,
			L: float64(light) / 100,
		}, nil
	}
	return HSL{}, fmt.Errorf("unknown color encoding %v", enc)
}

// Format renders an HSL color in the requested text encoding:
// lowercase "#rrggbb", "rgb(r, g, b)" with integer channels, or
// "hsl(deg, sat%, light%)" with components rounded to the nearest integer.
func Format(c HSL, enc Encoding) string {
	switch enc {
	case EncodingHex:
		return HSLToHex(c)
	case EncodingRGB:
		rgb := HSLToRGB(c)
		return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
	case EncodingHSL:
		return fmt.Sprintf("hsl(%d, %d%%, %d%%)",
			int(math.Round(c.H*360)),
			int(math.Round(c.S*100)),
			int(math.Round(c.L*100)))
	}
	return ""
}

// Convert parses color text in one encoding and reformats it in another.
func Convert(value string, from, to Encoding) (string, error) {
	c, err := Parse(value, from)
	if err != nil {
		return "", err
	}
	return Format(c, to), nil
}
