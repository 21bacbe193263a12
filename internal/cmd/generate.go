package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MeKo-Tech/palettize/internal/colorspace"
	"github.com/MeKo-Tech/palettize/internal/export"
	"github.com/MeKo-Tech/palettize/internal/palette"
	"github.com/MeKo-Tech/palettize/internal/termview"
)

var generateCmd = &cobra.Command{
	Use:   "generate <color>",
	Short: "Generate a tonal palette from a base color",
	Long: `Generate a palette of lightness variants around a base color.

The base color may be given as hex ("#c73d3d"), an rgb triple
("rgb(199, 61, 61)"), or an hsl triple ("hsl(0, 58%, 51%)"). The input
encoding is detected from the text unless --input-encoding is set.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().String("input-encoding", "", "Encoding of the base color (hex, rgb, hsl); detected when empty")
	generateCmd.Flags().Bool("preview", false, "Show ANSI swatch preview in the terminal")
	generateCmd.Flags().String("json", "", "Write the palette as JSON to this path")
	generateCmd.Flags().String("png", "", "Write the rendered swatch strip as PNG to this path")
	generateCmd.Flags().Bool("hidpi", false, "Render the PNG at 2x scale")
	generateCmd.Flags().String("png-compression", "default", "PNG compression (default, speed, best, none)")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"generate.input_encoding", "input-encoding"},
		{"generate.preview", "preview"},
		{"generate.json", "json"},
		{"generate.png", "png"},
		{"generate.hidpi", "hidpi"},
		{"generate.png_compression", "png-compression"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, generateCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	base := args[0]
	inputEncoding := viper.GetString("generate.input_encoding")
	preview := viper.GetBool("generate.preview")
	jsonPath := viper.GetString("generate.json")
	pngPath := viper.GetString("generate.png")
	hidpi := viper.GetBool("generate.hidpi")
	pngCompression := viper.GetString("generate.png_compression")
	count := viper.GetInt("count")

	if logger == nil {
		initLogging()
	}

	from, err := resolveInputEncoding(inputEncoding, base)
	if err != nil {
		return err
	}

	to, err := colorspace.ParseEncoding(viper.GetString("output-encoding"))
	if err != nil {
		return err
	}

	hsl, err := colorspace.Parse(base, from)
	if err != nil {
		return err
	}

	pal, err := palette.Generate(hsl, count)
	if err != nil {
		return err
	}

	logger.Debug("Palette generated",
		"base", base,
		"input_encoding", from.String(),
		"count", count,
		"output_encoding", to.String(),
	)

	for _, s := range pal.Formatted(to) {
		fmt.Fprintln(cmd.OutOrStdout(), s)
	}

	if preview {
		fmt.Fprint(cmd.OutOrStdout(), termview.Render(pal, to))
	}

	if jsonPath != "" {
		if err := export.WriteJSONFile(jsonPath, pal, to); err != nil {
			return err
		}
		logger.Info("Palette JSON written", "path", jsonPath)
	}

	if pngPath != "" {
		scale := 1
		if hidpi {
			scale = 2
		}
		if err := export.WritePNG(pngPath, pal, to, scale, pngCompression); err != nil {
			return err
		}
		logger.Info("Swatch strip written", "path", pngPath, "scale", scale)
	}

	return nil
}

// resolveInputEncoding uses the explicit flag value when present and falls
// back to detecting the encoding from the color text.
func resolveInputEncoding(flagValue, colorText string) (colorspace.Encoding, error) {
	if flagValue != "" {
		return colorspace.ParseEncoding(flagValue)
	}

	enc, ok := colorspace.DetectEncoding(colorText)
	if !ok {
		return 0, fmt.Errorf("cannot detect the encoding of %q; pass --input-encoding", colorText)
	}
	return enc, nil
}
