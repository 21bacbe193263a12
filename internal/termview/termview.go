// Package termview renders palette swatches as ANSI blocks for a quick
// terminal preview.
package termview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MeKo-Tech/palettize/internal/colorspace"
	"github.com/MeKo-Tech/palettize/internal/palette"
)

const blockWidth = 12

// Render returns one line per palette entry, darkest first: a colored
// block followed by the entry's formatted label. Empty palettes render
// as the empty string.
func Render(p *palette.Palette, enc colorspace.Encoding) string {
	if p.Len() == 0 {
		return ""
	}

	labels := p.Formatted(enc)

	var b strings.Builder
	for i := 0; i < p.Len(); i++ {
		style := lipgloss.NewStyle().Background(lipgloss.Color(colorspace.HSLToHex(p.At(i))))
		b.WriteString(style.Render(strings.Repeat(" ", blockWidth)))
		b.WriteString("  ")
		b.WriteString(labels[i])
		b.WriteByte('\n')
	}
	return b.String()
}
