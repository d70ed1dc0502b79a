// Package cache keeps parsed schedules on disk so re-running jaku on the same document
// skips PDF extraction.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Ariyalex/pdf-parse-jaku/pkg/jadwal"
)

// cacheDuration determines how long a parsed schedule is reused
const cacheDuration = 7 * 24 * time.Hour

// Entry represents the disk data format
type Entry struct {
	Timestamp time.Time        `json:"timestamp"`
	Source    string           `json:"source,omitempty"`
	Schedule  *jadwal.Schedule `json:"schedule"`
}

// Key identifies a document parsed with the given options. The extension of source is
// part of the key because it decides how ambiguous bytes are read.
func Key(source string, data []byte, opts jadwal.Options) string {
	h := sha256.New()
	h.Write(data)
	h.Write([]byte("|ext=" + strings.ToLower(filepath.Ext(source))))
	h.Write([]byte("|min=" + strconv.Itoa(opts.MinInstructorNameLen)))
	return hex.EncodeToString(h.Sum(nil))
}

func getCachePath(key string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}

	cacheDir := filepath.Join(homeDir, ".jaku_cache")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("could not create cache directory: %w", err)
	}

	return filepath.Join(cacheDir, key+".json"), nil
}

// Read returns the cached schedule for key if a valid, unexpired entry exists
func Read(key string) (*jadwal.Schedule, bool) {
	path, err := getCachePath(key)
	if err != nil {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false // File doesn't exist or can't be read
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}

	if entry.Schedule == nil || time.Since(entry.Timestamp) > cacheDuration {
		return nil, false
	}

	return entry.Schedule, true
}

// Write saves the schedule to disk. Failures are ignored, the cache is best effort.
func Write(key, source string, schedule *jadwal.Schedule) {
	path, err := getCachePath(key)
	if err != nil {
		return
	}

	entry := Entry{
		Timestamp: time.Now(),
		Source:    source,
		Schedule:  schedule,
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return
	}

	_ = os.WriteFile(path, data, 0644)
}
