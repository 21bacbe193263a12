// Package palette derives ordered tonal variants of a base color by
// spreading lightness around it.
package palette

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/MeKo-Tech/palettize/internal/colorspace"
)

const (
	// MinCount and MaxCount bound the number of variants per palette.
	MinCount = 2
	MaxCount = 20
)

// Palette is an ordered sequence of tonal variants of one base color.
// Index 0 is the darkest variant; lightness is non-decreasing with index,
// except where clamping at 0 or 1 produces equal neighbours.
type Palette struct {
	id     uuid.UUID
	base   colorspace.HSL
	colors []colorspace.HSL
}

// Generate derives n variants of base, varying only lightness.
//
// The variant at index i is offset from the base lightness by
// (i - n/2) / n, clamped into [0,1]. The center index uses integer (floor)
// division, so the variant at index n/2 always carries the base lightness
// and even counts spread one step further down than up.
func Generate(base colorspace.HSL, n int) (*Palette, error) {
	if n < MinCount || n > MaxCount {
		return nil, fmt.Errorf("palette count %d out of range [%d, %d]", n, MinCount, MaxCount)
	}

	center := n / 2
	colors := make([]colorspace.HSL, n)
	for i := range colors {
		factor := float64(i-center) / float64(n)
		colors[i] = colorspace.HSL{
			H: base.H,
			S: base.S,
			L: clamp(base.L+factor, 0, 1),
		}
	}

	return &Palette{
		id:     uuid.New(),
		base:   base,
		colors: colors,
	}, nil
}

// ID returns the palette's generation ID.
func (p *Palette) ID() uuid.UUID {
	return p.id
}

// Base returns the base color the palette was generated from.
func (p *Palette) Base() colorspace.HSL {
	return p.base
}

// Len returns the number of variants.
func (p *Palette) Len() int {
	if p == nil {
		return 0
	}
	return len(p.colors)
}

// At returns the variant at index i, darkest first.
func (p *Palette) At(i int) colorspace.HSL {
	return p.colors[i]
}

// Colors returns a copy of the ordered variants.
func (p *Palette) Colors() []colorspace.HSL {
	out := make([]colorspace.HSL, len(p.colors))
	copy(out, p.colors)
	return out
}

// Formatted renders every variant in the requested encoding, in order.
func (p *Palette) Formatted(enc colorspace.Encoding) []string {
	out := make([]string, len(p.colors))
	for i, c := range p.colors {
		out[i] = colorspace.Format(c, enc)
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
