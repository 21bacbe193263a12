package termview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/palettize/internal/colorspace"
	"github.com/MeKo-Tech/palettize/internal/palette"
)

func TestRender(t *testing.T) {
	base, err := colorspace.HexToHSL("#c73d3d")
	require.NoError(t, err)
	p, err := palette.Generate(base, 4)
	require.NoError(t, err)

	out := Render(p, colorspace.EncodingHex)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)

	for _, label := range p.Formatted(colorspace.EncodingHex) {
		assert.Contains(t, out, label)
	}
}

func TestRenderEmpty(t *testing.T) {
	assert.Empty(t, Render(nil, colorspace.EncodingHex))
}
