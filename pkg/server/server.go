// Package server exposes the schedule parser over HTTP: a PDF is uploaded, its text
// extracted and the parsed schedule returned as JSON (or iCalendar).
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/Ariyalex/pdf-parse-jaku/pkg/extract"
	"github.com/Ariyalex/pdf-parse-jaku/pkg/jadwal"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// Server handles upload requests
type Server struct {
	cfg        Config
	logger     *slog.Logger
	parser     *jadwal.Parser
	limiter    *rate.Limiter
	parseSlots chan struct{}
	metrics    *metrics
	location   *time.Location

	// extractText turns a stored upload into text; replaced in tests
	extractText func(name string, data []byte) (string, error)
}

// New creates a server. Zero limits fall back to safe defaults.
func New(cfg Config, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}
	if cfg.MaxUploadMB <= 0 {
		cfg.MaxUploadMB = 10
	}
	if cfg.MaxConcurrentParses <= 0 {
		cfg.MaxConcurrentParses = 1
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = os.TempDir()
	}

	limit := rate.Inf
	if cfg.RateLimitPerSecond > 0 {
		limit = rate.Limit(cfg.RateLimitPerSecond)
	}
	burst := cfg.RateLimitBurst
	if burst <= 0 {
		burst = 1
	}

	loc := time.UTC
	if cfg.Timezone != "" {
		l, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, fmt.Errorf("could not load timezone %q: %w", cfg.Timezone, err)
		}
		loc = l
	}

	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &Server{
		cfg:         cfg,
		logger:      logger,
		parser:      jadwal.NewParser(jadwal.Options{MinInstructorNameLen: cfg.MinInstructorLen}),
		limiter:     rate.NewLimiter(limit, burst),
		parseSlots:  make(chan struct{}, cfg.MaxConcurrentParses),
		metrics:     newMetrics(),
		location:    loc,
		extractText: extractPDF,
	}, nil
}

// extractPDF only accepts PDFs, whatever the upload claims to be.
func extractPDF(name string, data []byte) (string, error) {
	if !extract.IsPDF(data) {
		return "", extract.ErrNotPDF
	}
	return extract.Text(name, data)
}

// Handler returns the HTTP routes of the service.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /upload", s.handleUpload)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if s.cfg.MetricsEnabled {
		mux.Handle("GET /metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))
	}

	return s.logRequests(mux)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", slog.String("addr", s.cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.logger.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("duration", time.Since(start)),
		)
	})
}
