package exporter

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Ariyalex/pdf-parse-jaku/pkg/jadwal"
)

// SaveJSON writes the schedule as JSON to path, creating parent directories.
func SaveJSON(path string, s *jadwal.Schedule) error {
	var buf bytes.Buffer
	if err := WriteJSON(s, &buf); err != nil {
		return err
	}
	return saveFile(path, buf.Bytes())
}

// SaveICS writes the schedule as an iCalendar file to path, creating parent directories.
// Nothing is written when the calendar cannot be built.
func SaveICS(path string, s *jadwal.Schedule, opts ICSOptions) error {
	var buf bytes.Buffer
	if err := GenerateICS(s, opts, &buf); err != nil {
		return err
	}
	return saveFile(path, buf.Bytes())
}

func saveFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	return nil
}
