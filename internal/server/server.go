// Package server exposes palette generation over HTTP for browser
// previews: a JSON API plus a rendered swatch-strip PNG endpoint.
package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/MeKo-Tech/palettize/internal/colorspace"
	"github.com/MeKo-Tech/palettize/internal/export"
	"github.com/MeKo-Tech/palettize/internal/palette"
	"github.com/MeKo-Tech/palettize/internal/swatch"
)

// Config configures the preview server.
type Config struct {
	Addr              string
	CacheControl      string
	PNGCompression    string
	DefaultCount      int
	ReadHeaderTimeout time.Duration
}

// Server handles palette preview requests. Each successful generation
// replaces the shared current palette in one step.
type Server struct {
	cfg      Config
	logger   *slog.Logger
	session  *palette.Session
	renderer *swatch.Renderer
}

// New creates a preview server, filling in config defaults.
func New(cfg Config, logger *slog.Logger) *Server {
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8080"
	}
	if cfg.CacheControl == "" {
		cfg.CacheControl = "no-store"
	}
	if cfg.DefaultCount < palette.MinCount || cfg.DefaultCount > palette.MaxCount {
		cfg.DefaultCount = 8
	}
	if cfg.ReadHeaderTimeout <= 0 {
		cfg.ReadHeaderTimeout = 5 * time.Second
	}

	return &Server{
		cfg:      cfg,
		logger:   logger,
		session:  palette.NewSession(),
		renderer: swatch.NewRenderer(),
	}
}

// Handler returns the HTTP handler tree.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(demoPage))
	})

	mux.Handle("/api/palette", withCORS(http.HandlerFunc(s.handlePalette)))
	mux.Handle("/swatch.png", withCORS(http.HandlerFunc(s.handleSwatch)))

	return mux
}

// ListenAndServe runs the server until the listener fails.
func (s *Server) ListenAndServe() error {
	s.log().Info("palette server listening",
		"addr", s.cfg.Addr,
		"default_count", s.cfg.DefaultCount,
	)

	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
	}
	return srv.ListenAndServe()
}

// paletteFromRequest parses the shared query parameters, generates the
// palette, and installs it as the session's current palette.
func (s *Server) paletteFromRequest(r *http.Request) (*palette.Palette, colorspace.Encoding, error) {
	q := r.URL.Query()

	base := q.Get("base")
	if base == "" {
		return nil, 0, fmt.Errorf("missing required parameter %q", "base")
	}

	from, err := s.resolveEncoding(q.Get("from"), base)
	if err != nil {
		return nil, 0, err
	}

	to := colorspace.EncodingHex
	if v := q.Get("to"); v != "" {
		to, err = colorspace.ParseEncoding(v)
		if err != nil {
			return nil, 0, err
		}
	}

	count := s.cfg.DefaultCount
	if v := q.Get("count"); v != "" {
		count, err = strconv.Atoi(v)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid count %q", v)
		}
	}

	hsl, err := colorspace.Parse(base, from)
	if err != nil {
		return nil, 0, err
	}

	p, err := palette.Generate(hsl, count)
	if err != nil {
		return nil, 0, err
	}

	s.session.Set(p)
	return p, to, nil
}

// resolveEncoding uses an explicit "from" parameter when present and
// falls back to detection on the base color text.
func (s *Server) resolveEncoding(from, base string) (colorspace.Encoding, error) {
	if from != "" {
		return colorspace.ParseEncoding(from)
	}
	enc, ok := colorspace.DetectEncoding(base)
	if !ok {
		return 0, fmt.Errorf("cannot detect the encoding of %q; pass from=hex|rgb|hsl", base)
	}
	return enc, nil
}

func (s *Server) handlePalette(w http.ResponseWriter, r *http.Request) {
	p, to, err := s.paletteFromRequest(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", s.cfg.CacheControl)
	if err := export.WriteJSON(w, p, to); err != nil {
		s.log().Error("Failed to write palette response", "error", err)
	}
}

func (s *Server) handleSwatch(w http.ResponseWriter, r *http.Request) {
	p, to, err := s.paletteFromRequest(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	scale := 1
	if v := r.URL.Query().Get("scale"); v != "" {
		scale, err = strconv.Atoi(v)
		if err != nil || scale < 1 || scale > 4 {
			s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid scale %q", v))
			return
		}
	}

	img := s.renderer.RenderScaled(p, to, scale)

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", s.cfg.CacheControl)
	if err := swatch.EncodePNG(w, img, s.cfg.PNGCompression); err != nil {
		s.log().Error("Failed to encode swatch response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.log().Warn("Rejected request", "status", status, "error", err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func (s *Server) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return slog.Default()
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
