package swatch

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/palettize/internal/colorspace"
	"github.com/MeKo-Tech/palettize/internal/palette"
)

func testPalette(t *testing.T, n int) *palette.Palette {
	t.Helper()
	base, err := colorspace.HexToHSL("#c73d3d")
	require.NoError(t, err)
	p, err := palette.Generate(base, n)
	require.NoError(t, err)
	return p
}

func TestRenderDimensions(t *testing.T) {
	r := NewRenderer()
	p := testPalette(t, 3)

	img := r.Render(p, colorspace.EncodingHex)
	require.NotNil(t, img)

	assert.Equal(t, 3*r.CellWidth, img.Bounds().Dx())
	assert.Equal(t, r.CellHeight+r.LabelHeight, img.Bounds().Dy())
}

func TestRenderSwatchPixelsExact(t *testing.T) {
	r := NewRenderer()
	p := testPalette(t, 5)

	img := r.Render(p, colorspace.EncodingHex)
	require.NotNil(t, img)

	// The center of every color block carries the exact channel values.
	for i := 0; i < p.Len(); i++ {
		want := colorspace.HSLToRGB(p.At(i))
		got := img.NRGBAAt(i*r.CellWidth+r.CellWidth/2, r.CellHeight/2)
		assert.Equal(t, color.NRGBA{
			R: uint8(want.R), G: uint8(want.G), B: uint8(want.B), A: 255,
		}, got, "cell %d", i)
	}
}

func TestRenderNilAndEmpty(t *testing.T) {
	r := NewRenderer()
	assert.Nil(t, r.Render(nil, colorspace.EncodingHex))
	assert.Nil(t, r.RenderScaled(nil, colorspace.EncodingHex, 2))
}

func TestRenderScaled(t *testing.T) {
	r := NewRenderer()
	p := testPalette(t, 2)

	img := r.RenderScaled(p, colorspace.EncodingHex, 2)
	require.NotNil(t, img)

	assert.Equal(t, 2*2*r.CellWidth, img.Bounds().Dx())
	assert.Equal(t, 2*(r.CellHeight+r.LabelHeight), img.Bounds().Dy())

	// Nearest-neighbour scaling keeps swatch pixels exact.
	for i := 0; i < p.Len(); i++ {
		want := colorspace.HSLToRGB(p.At(i))
		got := img.NRGBAAt(2*(i*r.CellWidth)+r.CellWidth, r.CellHeight)
		assert.Equal(t, color.NRGBA{
			R: uint8(want.R), G: uint8(want.G), B: uint8(want.B), A: 255,
		}, got, "cell %d", i)
	}
}

func TestRenderScaledOneIsUnscaled(t *testing.T) {
	r := NewRenderer()
	p := testPalette(t, 2)

	img := r.RenderScaled(p, colorspace.EncodingHex, 1)
	require.NotNil(t, img)
	assert.Equal(t, 2*r.CellWidth, img.Bounds().Dx())
}

func TestEncodePNG(t *testing.T) {
	r := NewRenderer()
	p := testPalette(t, 2)
	img := r.Render(p, colorspace.EncodingHex)

	for _, compression := range []string{"", "default", "speed", "best", "none"} {
		var buf bytes.Buffer
		require.NoError(t, EncodePNG(&buf, img, compression), "compression %q", compression)

		decoded, err := png.Decode(&buf)
		require.NoError(t, err)
		assert.Equal(t, img.Bounds(), decoded.Bounds())
	}
}

func TestEncodePNGInvalidCompression(t *testing.T) {
	r := NewRenderer()
	p := testPalette(t, 2)
	img := r.Render(p, colorspace.EncodingHex)

	var buf bytes.Buffer
	err := EncodePNG(&buf, img, "maximum")
	assert.Error(t, err)
}

func TestLabelInkContrast(t *testing.T) {
	black := color.NRGBA{A: 255}
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	assert.Equal(t, white, labelInk(color.NRGBA{R: 20, G: 20, B: 40, A: 255}))
	assert.Equal(t, black, labelInk(color.NRGBA{R: 240, G: 240, B: 200, A: 255}))
}
