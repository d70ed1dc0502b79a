package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Ariyalex/pdf-parse-jaku/pkg/jadwal"
)

const (
	// DefaultTimezone is where the campus is
	DefaultTimezone = "Asia/Jakarta"
	// DefaultWeeks is the number of lecture weeks in a semester
	DefaultWeeks = 16
	// DateLayout is the format of SemesterStart
	DateLayout = "2006-01-02"

	maxRecentFiles = 5
)

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	AccentColor          string   `json:"accent_color,omitempty"`
	SemesterStart        string   `json:"semester_start,omitempty"` // "2024-09-02"
	Weeks                int      `json:"weeks,omitempty"`
	Timezone             string   `json:"timezone,omitempty"`
	OutputDir            string   `json:"output_dir,omitempty"`
	MinInstructorNameLen int      `json:"min_instructor_name_len,omitempty"`
	RecentFiles          []string `json:"recent_files,omitempty"`
}

// getConfigPath returns the absolute path to ~/.jaku.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".jaku.json"), nil
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, just return an empty default configuration
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Location resolves the configured timezone, defaulting to Asia/Jakarta.
func (c *AppConfig) Location() (*time.Location, error) {
	tz := c.Timezone
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("could not load timezone %q: %w", tz, err)
	}
	return loc, nil
}

// SemesterStartDate parses SemesterStart in loc. ok is false when it is not set.
func (c *AppConfig) SemesterStartDate(loc *time.Location) (t time.Time, ok bool, err error) {
	if c.SemesterStart == "" {
		return time.Time{}, false, nil
	}
	t, err = time.ParseInLocation(DateLayout, c.SemesterStart, loc)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("invalid semester_start %q (want YYYY-MM-DD): %w", c.SemesterStart, err)
	}
	return t, true, nil
}

// WeekCount returns Weeks or the default.
func (c *AppConfig) WeekCount() int {
	if c.Weeks <= 0 {
		return DefaultWeeks
	}
	return c.Weeks
}

// ParserOptions builds the parser options from the saved settings.
func (c *AppConfig) ParserOptions() jadwal.Options {
	opts := jadwal.DefaultOptions()
	if c.MinInstructorNameLen > 0 {
		opts.MinInstructorNameLen = c.MinInstructorNameLen
	}
	return opts
}

// AddRecentFile records path as the most recently parsed document.
func (c *AppConfig) AddRecentFile(path string) {
	recent := []string{path}
	for _, p := range c.RecentFiles {
		if p != path && len(recent) < maxRecentFiles {
			recent = append(recent, p)
		}
	}
	c.RecentFiles = recent
}
