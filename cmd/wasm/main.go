//go:build js && wasm
// +build js,wasm

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/MeKo-Tech/palettize/internal/colorspace"
	"github.com/MeKo-Tech/palettize/internal/export"
	"github.com/MeKo-Tech/palettize/internal/palette"
)

// GenerateRequest represents a palette generation request from JS.
type GenerateRequest struct {
	Base  string `json:"base"`
	From  string `json:"from,omitempty"`
	To    string `json:"to,omitempty"`
	Count int    `json:"count"`
}

// ConvertRequest represents a single-color conversion request from JS.
type ConvertRequest struct {
	Value string `json:"value"`
	From  string `json:"from,omitempty"`
	To    string `json:"to,omitempty"`
}

func encodingOrDetect(name, colorText string) (colorspace.Encoding, error) {
	if name != "" {
		return colorspace.ParseEncoding(name)
	}
	enc, ok := colorspace.DetectEncoding(colorText)
	if !ok {
		return 0, fmt.Errorf("cannot detect the encoding of %q", colorText)
	}
	return enc, nil
}

// generatePalette is called from JavaScript to generate a palette.
// It returns the JSON palette envelope as a string.
func generatePalette(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return map[string]string{"error": "missing arguments"}
	}

	var req GenerateRequest
	if err := json.Unmarshal([]byte(args[0].String()), &req); err != nil {
		return map[string]string{"error": fmt.Sprintf("failed to parse request: %v", err)}
	}

	from, err := encodingOrDetect(req.From, req.Base)
	if err != nil {
		return map[string]string{"error": err.Error()}
	}

	to := colorspace.EncodingHex
	if req.To != "" {
		if to, err = colorspace.ParseEncoding(req.To); err != nil {
			return map[string]string{"error": err.Error()}
		}
	}

	base, err := colorspace.Parse(req.Base, from)
	if err != nil {
		return map[string]string{"error": err.Error()}
	}

	p, err := palette.Generate(base, req.Count)
	if err != nil {
		return map[string]string{"error": err.Error()}
	}

	var buf bytes.Buffer
	if err := export.WriteJSON(&buf, p, to); err != nil {
		return map[string]string{"error": err.Error()}
	}
	return buf.String()
}

// convertColor is called from JavaScript to convert one color between
// encodings. It returns the converted color string.
func convertColor(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return map[string]string{"error": "missing arguments"}
	}

	var req ConvertRequest
	if err := json.Unmarshal([]byte(args[0].String()), &req); err != nil {
		return map[string]string{"error": fmt.Sprintf("failed to parse request: %v", err)}
	}

	from, err := encodingOrDetect(req.From, req.Value)
	if err != nil {
		return map[string]string{"error": err.Error()}
	}

	to := colorspace.EncodingHex
	if req.To != "" {
		if to, err = colorspace.ParseEncoding(req.To); err != nil {
			return map[string]string{"error": err.Error()}
		}
	}

	out, err := colorspace.Convert(req.Value, from, to)
	if err != nil {
		return map[string]string{"error": err.Error()}
	}
	return out
}

func main() {
	c := make(chan struct{})

	js.Global().Set("palettizeGenerate", js.FuncOf(generatePalette))
	js.Global().Set("palettizeConvert", js.FuncOf(convertColor))

	fmt.Println("Palettize WASM module loaded")
	<-c
}
