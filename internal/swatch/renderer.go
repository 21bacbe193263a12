// Package swatch renders a palette as a horizontal strip of labelled
// color swatches.
package swatch

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/disintegration/gift"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/MeKo-Tech/palettize/internal/colorspace"
	"github.com/MeKo-Tech/palettize/internal/palette"
)

// Renderer draws palettes as swatch strips. Zero values fall back to the
// defaults from NewRenderer.
type Renderer struct {
	CellWidth   int
	CellHeight  int
	LabelHeight int
}

// NewRenderer returns a renderer with the default swatch geometry.
func NewRenderer() *Renderer {
	return &Renderer{
		CellWidth:   120,
		CellHeight:  96,
		LabelHeight: 24,
	}
}

// Render draws one cell per palette entry: a solid color block with the
// entry's formatted string below it. Swatch pixels carry the exact
// HSL-to-RGB channel values. Returns nil for a nil or empty palette.
func (r *Renderer) Render(p *palette.Palette, enc colorspace.Encoding) *image.NRGBA {
	if p.Len() == 0 {
		return nil
	}

	cellW := r.CellWidth
	if cellW <= 0 {
		cellW = 120
	}
	cellH := r.CellHeight
	if cellH <= 0 {
		cellH = 96
	}
	labelH := r.LabelHeight
	if labelH <= 0 {
		labelH = 24
	}

	w := cellW * p.Len()
	h := cellH + labelH
	img := image.NewNRGBA(image.Rect(0, 0, w, h))

	labels := p.Formatted(enc)
	for i := 0; i < p.Len(); i++ {
		rgb := colorspace.HSLToRGB(p.At(i))
		fill := color.NRGBA{R: uint8(rgb.R), G: uint8(rgb.G), B: uint8(rgb.B), A: 255}

		cell := image.Rect(i*cellW, 0, (i+1)*cellW, h)
		draw.Draw(img, cell, image.NewUniform(fill), image.Point{}, draw.Src)

		band := image.Rect(i*cellW, cellH, (i+1)*cellW, h)
		drawLabel(img, band, labels[i], labelInk(fill))
	}

	return img
}

// RenderScaled renders at the base geometry and scales the strip by an
// integer factor for hi-DPI output. Nearest-neighbour resampling keeps the
// swatch channel values exact.
func (r *Renderer) RenderScaled(p *palette.Palette, enc colorspace.Encoding, scale int) *image.NRGBA {
	img := r.Render(p, enc)
	if img == nil || scale <= 1 {
		return img
	}

	g := gift.New(gift.Resize(img.Bounds().Dx()*scale, img.Bounds().Dy()*scale, gift.NearestNeighborResampling))
	dst := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst
}

// labelInk picks black or white label text for contrast with the swatch.
func labelInk(c color.NRGBA) color.NRGBA {
	cf := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	_, _, l := cf.Hsl()
	if l > 0.6 {
		return color.NRGBA{A: 255}
	}
	return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
}

// drawLabel centers text in the band, clipping at the band's left edge
// when the label is wider than the cell.
func drawLabel(img *image.NRGBA, band image.Rectangle, text string, ink color.NRGBA) {
	face := basicfont.Face7x13

	width := font.MeasureString(face, text).Ceil()
	x := band.Min.X + (band.Dx()-width)/2
	if x < band.Min.X+2 {
		x = band.Min.X + 2
	}
	y := band.Min.Y + (band.Dy()+face.Ascent)/2

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(ink),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// EncodePNG writes img as PNG with a named compression level
// (default, speed, best, none).
func EncodePNG(w io.Writer, img image.Image, compression string) error {
	level, err := CompressionLevel(compression)
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: level}
	return enc.Encode(w, img)
}

// CompressionLevel maps a compression name to the PNG encoder level.
func CompressionLevel(name string) (png.CompressionLevel, error) {
	switch name {
	case "", "default":
		return png.DefaultCompression, nil
	case "speed":
		return png.BestSpeed, nil
	case "best":
		return png.BestCompression, nil
	case "none":
		return png.NoCompression, nil
	}
	return 0, fmt.Errorf("invalid png compression %q (default, speed, best, none)", name)
}
