package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MeKo-Tech/palettize/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve palette previews over HTTP",
	Long: `Serve a small preview UI plus a JSON palette API and a rendered
swatch-strip PNG endpoint.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "127.0.0.1:8080", "Listen address (host:port)")
	serveCmd.Flags().String("cache-control", "no-store", "Cache-Control header for served responses")
	serveCmd.Flags().Duration("read-header-timeout", 5*time.Second, "HTTP read header timeout")
	serveCmd.Flags().String("png-compression", "default", "PNG compression (default, speed, best, none)")

	mustBind := func(key string, name string) {
		if err := viper.BindPFlag(key, serveCmd.Flags().Lookup(name)); err != nil {
			panic(fmt.Sprintf("failed to bind flag: %v", err))
		}
	}

	mustBind("serve.addr", "addr")
	mustBind("serve.cache_control", "cache-control")
	mustBind("serve.read_header_timeout", "read-header-timeout")
	mustBind("serve.png_compression", "png-compression")
}

func runServe(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	srv := server.New(server.Config{
		Addr:              viper.GetString("serve.addr"),
		CacheControl:      viper.GetString("serve.cache_control"),
		PNGCompression:    viper.GetString("serve.png_compression"),
		DefaultCount:      viper.GetInt("count"),
		ReadHeaderTimeout: viper.GetDuration("serve.read_header_timeout"),
	}, logger)

	return srv.ListenAndServe()
}
