package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MeKo-Tech/palettize/internal/colorspace"
)

var convertCmd = &cobra.Command{
	Use:   "convert <color>",
	Short: "Convert a color between rgb, hex, and hsl",
	Long:  `Convert a single color between the rgb, hex, and hsl text encodings.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().String("from", "", "Input encoding (hex, rgb, hsl); detected when empty")
	convertCmd.Flags().String("to", "", "Output encoding (defaults to --output-encoding)")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"convert.from", "from"},
		{"convert.to", "to"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, convertCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	value := args[0]
	fromName := viper.GetString("convert.from")
	toName := viper.GetString("convert.to")

	if logger == nil {
		initLogging()
	}

	from, err := resolveInputEncoding(fromName, value)
	if err != nil {
		return err
	}

	if toName == "" {
		toName = viper.GetString("output-encoding")
	}
	to, err := colorspace.ParseEncoding(toName)
	if err != nil {
		return err
	}

	out, err := colorspace.Convert(value, from, to)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
