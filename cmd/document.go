package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Ariyalex/pdf-parse-jaku/pkg/config"
	"github.com/Ariyalex/pdf-parse-jaku/pkg/extract"
)

// document is a KRS file on disk or behind a URL
type document struct {
	location string
	remote   bool
}

func documentsFrom(paths, urls []string) []document {
	docs := make([]document, 0, len(paths)+len(urls))
	for _, p := range paths {
		docs = append(docs, document{location: p})
	}
	for _, u := range urls {
		docs = append(docs, document{location: u, remote: true})
	}
	return docs
}

// load returns the document bytes and the file name used for format detection.
func (d document) load(client *extract.Client) (name string, data []byte, err error) {
	if d.remote {
		data, name, err = client.Fetch(d.location)
		return name, data, err
	}

	data, err = os.ReadFile(d.location)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read document: %w", err)
	}
	return filepath.Base(d.location), data, nil
}

// outputPath places "<name>.<ext>" in the configured output folder, or next to a local input.
func (d document) outputPath(cfg *config.AppConfig, name, ext string) string {
	base := name[:len(name)-len(filepath.Ext(name))]
	if base == "" {
		base = "jadwal"
	}

	dir := cfg.OutputDir
	if dir == "" && !d.remote {
		dir = filepath.Dir(d.location)
	}
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, base+ext)
}

// remember records a local input in the recent files list.
func (d document) remember(cfg *config.AppConfig) {
	if d.remote {
		return
	}
	if abs, err := filepath.Abs(d.location); err == nil {
		cfg.AddRecentFile(abs)
	}
}
