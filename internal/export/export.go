// Package export serializes a generated palette to JSON and PNG files.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/MeKo-Tech/palettize/internal/colorspace"
	"github.com/MeKo-Tech/palettize/internal/palette"
	"github.com/MeKo-Tech/palettize/internal/swatch"
)

// Document is the JSON envelope written around the ordered color strings.
type Document struct {
	ID       string   `json:"id"`
	Base     string   `json:"base"`
	Count    int      `json:"count"`
	Encoding string   `json:"encoding"`
	Colors   []string `json:"colors"`
}

// NewDocument builds the export envelope for a palette.
func NewDocument(p *palette.Palette, enc colorspace.Encoding) Document {
	return Document{
		ID:       p.ID().String(),
		Base:     colorspace.Format(p.Base(), enc),
		Count:    p.Len(),
		Encoding: enc.String(),
		Colors:   p.Formatted(enc),
	}
}

// JSONColors returns the bare ordered JSON array of formatted color strings.
func JSONColors(p *palette.Palette, enc colorspace.Encoding) ([]byte, error) {
	if p.Len() == 0 {
		return []byte("[]"), nil
	}
	data, err := json.MarshalIndent(p.Formatted(enc), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal colors: %w", err)
	}
	return data, nil
}

// WriteJSON writes the palette envelope to w.
// A nil or empty palette is a no-op.
func WriteJSON(w io.Writer, p *palette.Palette, enc colorspace.Encoding) error {
	if p.Len() == 0 {
		return nil
	}

	data, err := json.MarshalIndent(NewDocument(p, enc), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal palette: %w", err)
	}
	data = append(data, '\n')

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write palette JSON: %w", err)
	}
	return nil
}

// WriteJSONFile writes the palette envelope to path.
// A nil or empty palette is a no-op and creates no file.
func WriteJSONFile(path string, p *palette.Palette, enc colorspace.Encoding) error {
	if p.Len() == 0 {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create JSON file: %w", err)
	}
	defer f.Close() // nolint:errcheck

	return WriteJSON(f, p, enc)
}

// WritePNG renders the swatch strip and writes it to path.
// A nil or empty palette is a no-op and creates no file.
func WritePNG(path string, p *palette.Palette, enc colorspace.Encoding, scale int, compression string) error {
	img := swatch.NewRenderer().RenderScaled(p, enc, scale)
	if img == nil {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create PNG file: %w", err)
	}
	defer f.Close() // nolint:errcheck

	if err := swatch.EncodePNG(f, img, compression); err != nil {
		return fmt.Errorf("failed to encode swatch PNG: %w", err)
	}
	return nil
}
