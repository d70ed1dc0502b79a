package exporter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Ariyalex/pdf-parse-jaku/pkg/jadwal"
)

// DefaultJSONFile is the file name the schedule is saved under when none is given
const DefaultJSONFile = "jadwal_mahasiswa.json"

// WriteJSON writes the schedule as indented JSON, keeping non-ASCII and "&" characters as-is.
func WriteJSON(s *jadwal.Schedule, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode schedule: %w", err)
	}
	return nil
}
