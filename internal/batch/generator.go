// Package batch expands many base colors into palette exports at once.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/MeKo-Tech/palettize/internal/colorspace"
	"github.com/MeKo-Tech/palettize/internal/export"
	"github.com/MeKo-Tech/palettize/internal/palette"
	"github.com/MeKo-Tech/palettize/internal/swatch"
	"github.com/MeKo-Tech/palettize/internal/worker"
)

// Output format names accepted by Options.Format.
const (
	FormatJSON = "json"
	FormatPNG  = "png"
	FormatBoth = "both"
)

// Options configures per-color palette export.
type Options struct {
	OutDir         string
	Format         string
	PNGCompression string
	Count          int
	Scale          int
	Encoding       colorspace.Encoding
	Force          bool
}

// Generator derives and exports one palette per base color.
type Generator struct {
	opts   Options
	logger *slog.Logger
}

// NewGenerator validates options and prepares a generator.
func NewGenerator(opts Options, logger *slog.Logger) (*Generator, error) {
	if opts.OutDir == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	switch opts.Format {
	case FormatJSON, FormatPNG, FormatBoth:
	default:
		return nil, fmt.Errorf("invalid format %q: must be %q, %q, or %q", opts.Format, FormatJSON, FormatPNG, FormatBoth)
	}
	if opts.Count < palette.MinCount || opts.Count > palette.MaxCount {
		return nil, fmt.Errorf("palette count %d out of range [%d, %d]", opts.Count, palette.MinCount, palette.MaxCount)
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if _, err := swatch.CompressionLevel(opts.PNGCompression); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	return &Generator{opts: opts, logger: logger}, nil
}

// Generate expands one base color and writes its exports.
// Returns the primary output path (JSON when written, PNG otherwise).
// Existing outputs are kept unless Force is set.
func (g *Generator) Generate(ctx context.Context, task worker.Task) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	base, err := colorspace.Parse(task.Base, task.From)
	if err != nil {
		return "", fmt.Errorf("failed to parse base color %q: %w", task.Base, err)
	}

	p, err := palette.Generate(base, g.opts.Count)
	if err != nil {
		return "", err
	}

	// One stable name per base color: its hex body.
	name := strings.TrimPrefix(colorspace.HSLToHex(base), "#")
	jsonPath := filepath.Join(g.opts.OutDir, name+".json")
	pngPath := filepath.Join(g.opts.OutDir, name+".png")

	primary := ""
	if g.opts.Format == FormatJSON || g.opts.Format == FormatBoth {
		if g.skipExisting(jsonPath, task.Base) {
			primary = jsonPath
		} else {
			if err := export.WriteJSONFile(jsonPath, p, g.opts.Encoding); err != nil {
				return "", err
			}
			primary = jsonPath
		}
	}

	if g.opts.Format == FormatPNG || g.opts.Format == FormatBoth {
		if !g.skipExisting(pngPath, task.Base) {
			if err := export.WritePNG(pngPath, p, g.opts.Encoding, g.opts.Scale, g.opts.PNGCompression); err != nil {
				return "", err
			}
		}
		if primary == "" {
			primary = pngPath
		}
	}

	return primary, nil
}

func (g *Generator) skipExisting(path, base string) bool {
	if g.opts.Force {
		return false
	}
	if _, err := os.Stat(path); err != nil {
		return false
	}
	g.log().Debug("Output already exists; skipping", "base", base, "path", path)
	return true
}

func (g *Generator) log() *slog.Logger {
	if g.logger != nil {
		return g.logger
	}
	return slog.Default()
}

// ReadBaseList reads one base color per line from path and builds the task
// list, detecting each line's encoding. Blank lines are skipped.
func ReadBaseList(path string) ([]worker.Task, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open base color list: %w", err)
	}
	defer f.Close() // nolint:errcheck

	var tasks []worker.Task
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		enc, ok := colorspace.DetectEncoding(line)
		if !ok {
			return nil, fmt.Errorf("line %d: cannot detect the encoding of %q", lineNo, line)
		}
		tasks = append(tasks, worker.Task{Base: line, From: enc})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read base color list: %w", err)
	}

	return tasks, nil
}
