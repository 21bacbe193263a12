package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MeKo-Tech/palettize/internal/batch"
	"github.com/MeKo-Tech/palettize/internal/colorspace"
	"github.com/MeKo-Tech/palettize/internal/worker"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate palettes for many base colors",
	Long: `Generate and export one palette per base color from an input list.

The input file holds one base color per line (hex, rgb, or hsl text);
each palette is written into the output directory named by the base
color's hex body.`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringP("input", "i", "", "File with one base color per line (required)")
	batchCmd.Flags().String("out-dir", "./palettes", "Output directory for exported palettes")
	batchCmd.Flags().String("format", "both", "Export format: json, png, or both")
	batchCmd.Flags().IntP("workers", "w", 0, "Number of parallel workers (default: number of CPUs)")
	batchCmd.Flags().Bool("progress", true, "Show progress bar")
	batchCmd.Flags().Bool("allow-failures", false, "Continue even if some palettes fail to export")
	batchCmd.Flags().Bool("force", false, "Overwrite exports that already exist")
	batchCmd.Flags().Bool("hidpi", false, "Render PNGs at 2x scale")
	batchCmd.Flags().String("png-compression", "default", "PNG compression (default, speed, best, none)")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"batch.input", "input"},
		{"batch.out_dir", "out-dir"},
		{"batch.format", "format"},
		{"batch.workers", "workers"},
		{"batch.progress", "progress"},
		{"batch.allow_failures", "allow-failures"},
		{"batch.force", "force"},
		{"batch.hidpi", "hidpi"},
		{"batch.png_compression", "png-compression"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, batchCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runBatch(cmd *cobra.Command, args []string) error {
	input := viper.GetString("batch.input")
	outDir := viper.GetString("batch.out_dir")
	format := viper.GetString("batch.format")
	workers := viper.GetInt("batch.workers")
	showProgress := viper.GetBool("batch.progress")
	allowFailures := viper.GetBool("batch.allow_failures")
	force := viper.GetBool("batch.force")
	hidpi := viper.GetBool("batch.hidpi")
	pngCompression := viper.GetString("batch.png_compression")
	count := viper.GetInt("count")

	if logger == nil {
		initLogging()
	}

	if input == "" {
		return fmt.Errorf("--input is required")
	}

	enc, err := colorspace.ParseEncoding(viper.GetString("output-encoding"))
	if err != nil {
		return err
	}

	tasks, err := batch.ReadBaseList(input)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		return fmt.Errorf("no base colors found in %s", input)
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	scale := 1
	if hidpi {
		scale = 2
	}

	gen, err := batch.NewGenerator(batch.Options{
		OutDir:         outDir,
		Format:         format,
		PNGCompression: pngCompression,
		Count:          count,
		Scale:          scale,
		Encoding:       enc,
		Force:          force,
	}, logger)
	if err != nil {
		return err
	}

	logger.Info("Starting batch palette export",
		"input", input,
		"out_dir", outDir,
		"palettes", len(tasks),
		"count", count,
		"encoding", enc.String(),
		"format", format,
		"workers", workers,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("Received interrupt signal, cancelling...")
		cancel()
	}()

	progress := worker.NewProgress(len(tasks), showProgress)

	pool := worker.New(worker.Config{
		Workers:    workers,
		Generator:  gen,
		OnProgress: progress.Callback(),
	})

	results := pool.Run(ctx, tasks)
	progress.Done()

	var failedCount int
	for _, r := range results {
		if r.Err != nil {
			failedCount++
			logger.Error("Palette export failed", "base", r.Task.Base, "error", r.Err)
		}
	}

	logger.Info(progress.Summary())

	if failedCount > 0 {
		if allowFailures {
			logger.Warn("Some palettes failed to export, but continuing due to --allow-failures flag", "failed_count", failedCount)
		} else {
			return fmt.Errorf("%d palettes failed to export", failedCount)
		}
	}

	return nil
}
