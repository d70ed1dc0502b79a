// Package extract gets plain text out of schedule documents (PDF, HTML, text) so that
// package jadwal can parse it.
package extract

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	// ErrNotPDF is returned when data does not start with the PDF magic bytes.
	ErrNotPDF = errors.New("not a PDF document")
	// ErrUnsupportedFormat is returned for documents that are neither PDF, HTML nor text.
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrEmptyDocument is returned when a document has no extractable text.
	ErrEmptyDocument = errors.New("document contains no text")
)

// Format is the kind of a schedule document
type Format string

const (
	FormatPDF     Format = "pdf"
	FormatHTML    Format = "html"
	FormatText    Format = "text"
	FormatUnknown Format = "unknown"
)

// Detect guesses the document format from its content, falling back to the file name.
func Detect(name string, data []byte) Format {
	if IsPDF(data) {
		return FormatPDF
	}

	head := bytes.ToLower(bytes.TrimSpace(data[:min(len(data), 512)]))
	if bytes.HasPrefix(head, []byte("<!doctype html")) || bytes.HasPrefix(head, []byte("<html")) {
		return FormatHTML
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return FormatPDF
	case ".html", ".htm":
		return FormatHTML
	case ".txt", ".text":
		return FormatText
	}

	if utf8.Valid(data) {
		return FormatText
	}
	return FormatUnknown
}

// Text extracts the text of a document, dispatching on its detected format.
// The result is NFC normalised, since PDF text layers often carry decomposed accents.
func Text(name string, data []byte) (string, error) {
	var (
		text string
		err  error
	)

	switch Detect(name, data) {
	case FormatPDF:
		text, err = PDF(data)
	case FormatHTML:
		text, err = HTML(bytes.NewReader(data))
	case FormatText:
		text = string(data)
		if strings.TrimSpace(text) == "" {
			err = ErrEmptyDocument
		}
	default:
		err = ErrUnsupportedFormat
	}
	if err != nil {
		return "", err
	}

	return norm.NFC.String(text), nil
}
