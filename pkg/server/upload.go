package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Ariyalex/pdf-parse-jaku/pkg/exporter"
	"github.com/Ariyalex/pdf-parse-jaku/pkg/jadwal"

	"github.com/google/uuid"
)

const (
	msgNoFilePart    = "No file part"
	msgNoSelected    = "No selected file"
	msgInvalidFormat = "Invalid file format. Only PDF files are allowed."
)

// handleUpload accepts a multipart "file" field holding a KRS PDF and answers with the
// parsed schedule. The upload is stored under UploadDir only while it is processed.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if !s.limiter.Allow() {
		s.metrics.uploads.WithLabelValues("rate_limited").Inc()
		writeError(w, http.StatusTooManyRequests, "Too many requests, try again later.")
		return
	}

	maxBytes := int64(s.cfg.MaxUploadMB) << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(maxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.metrics.uploads.WithLabelValues("too_large").Inc()
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("File exceeds %d MB.", s.cfg.MaxUploadMB))
			return
		}
		s.metrics.uploads.WithLabelValues("bad_request").Inc()
		writeError(w, http.StatusBadRequest, msgNoFilePart)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		s.metrics.uploads.WithLabelValues("bad_request").Inc()
		// a part named "file" without a filename arrives as a plain form value
		if _, ok := r.MultipartForm.Value["file"]; ok {
			writeError(w, http.StatusBadRequest, msgNoSelected)
			return
		}
		writeError(w, http.StatusBadRequest, msgNoFilePart)
		return
	}
	defer file.Close()

	if header.Filename == "" {
		s.metrics.uploads.WithLabelValues("bad_request").Inc()
		writeError(w, http.StatusBadRequest, msgNoSelected)
		return
	}
	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		s.metrics.uploads.WithLabelValues("bad_request").Inc()
		writeError(w, http.StatusBadRequest, msgInvalidFormat)
		return
	}

	icsOpts, wantICS, err := s.icsOptions(r)
	if err != nil {
		s.metrics.uploads.WithLabelValues("bad_request").Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	select {
	case s.parseSlots <- struct{}{}:
		defer func() { <-s.parseSlots }()
	case <-r.Context().Done():
		s.metrics.uploads.WithLabelValues("cancelled").Inc()
		return
	}

	schedule, err := s.processUpload(file, header)
	if err != nil {
		s.metrics.uploads.WithLabelValues("unreadable").Inc()
		s.logger.Warn("failed to process upload",
			slog.String("filename", header.Filename),
			slog.Any("error", err),
		)
		writeError(w, http.StatusUnprocessableEntity, "Could not read schedule from PDF.")
		return
	}

	s.metrics.uploads.WithLabelValues("ok").Inc()
	s.metrics.courses.Add(float64(len(schedule.Courses)))
	s.logger.Info("parsed schedule",
		slog.String("filename", header.Filename),
		slog.Int("courses", len(schedule.Courses)),
		slog.Int("sessions", schedule.SessionCount()),
	)

	if wantICS {
		var buf bytes.Buffer
		if err := exporter.GenerateICS(schedule, icsOpts, &buf); err != nil {
			if errors.Is(err, exporter.ErrNoSessions) {
				writeError(w, http.StatusUnprocessableEntity, "Schedule has no sessions to export.")
				return
			}
			s.logger.Error("failed to build calendar", slog.Any("error", err))
			writeError(w, http.StatusInternalServerError, "Could not build calendar.")
			return
		}
		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="jadwal.ics"`)
		_, _ = buf.WriteTo(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := exporter.WriteJSON(schedule, w); err != nil {
		s.logger.Error("failed to write response", slog.Any("error", err))
	}
}

// processUpload stores the upload, extracts its text and parses it. The stored copy is
// always removed.
func (s *Server) processUpload(file multipart.File, header *multipart.FileHeader) (*jadwal.Schedule, error) {
	start := time.Now()
	s.metrics.inFlight.Inc()
	defer func() {
		s.metrics.inFlight.Dec()
		s.metrics.parseDuration.Observe(time.Since(start).Seconds())
	}()

	path := filepath.Join(s.cfg.UploadDir, fmt.Sprintf("%s_%s", uuid.New().String()[:8], sanitizeFilename(header.Filename)))

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(path)

	_, err = io.Copy(f, file)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stored upload: %w", err)
	}

	text, err := s.extractText(header.Filename, data)
	if err != nil {
		return nil, err
	}

	return s.parser.Parse(text), nil
}

// icsOptions reads ?format=ics&start=YYYY-MM-DD&weeks=N.
func (s *Server) icsOptions(r *http.Request) (exporter.ICSOptions, bool, error) {
	q := r.URL.Query()
	switch q.Get("format") {
	case "", "json":
		return exporter.ICSOptions{}, false, nil
	case "ics":
	default:
		return exporter.ICSOptions{}, false, fmt.Errorf("unknown format %q", q.Get("format"))
	}

	start, err := time.ParseInLocation("2006-01-02", q.Get("start"), s.location)
	if err != nil {
		return exporter.ICSOptions{}, false, errors.New("start (YYYY-MM-DD) is required for format=ics")
	}

	weeks := 16
	if v := q.Get("weeks"); v != "" {
		weeks, err = strconv.Atoi(v)
		if err != nil || weeks <= 0 {
			return exporter.ICSOptions{}, false, errors.New("weeks must be a positive number")
		}
	}

	return exporter.ICSOptions{Start: start, Weeks: weeks, Location: s.location}, true, nil
}

func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
