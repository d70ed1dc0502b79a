package cache

import (
	"fmt"

	"github.com/Ariyalex/pdf-parse-jaku/pkg/extract"
	"github.com/Ariyalex/pdf-parse-jaku/pkg/jadwal"
)

// ParseDocument extracts and parses a schedule document, reusing a cached result for the
// same bytes, extension and parser options. cached reports whether extraction was skipped.
func ParseDocument(source string, data []byte, p *jadwal.Parser, useCache bool) (s *jadwal.Schedule, cached bool, err error) {
	key := Key(source, data, p.Options())
	if useCache {
		if s, ok := Read(key); ok {
			return s, true, nil
		}
	}

	text, err := extract.Text(source, data)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", source, err)
	}

	s = p.Parse(text)
	if useCache {
		Write(key, source, s)
	}
	return s, false, nil
}
