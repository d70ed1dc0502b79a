package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Ariyalex/pdf-parse-jaku/pkg/cache"
	"github.com/Ariyalex/pdf-parse-jaku/pkg/config"
	"github.com/Ariyalex/pdf-parse-jaku/pkg/exporter"
	"github.com/Ariyalex/pdf-parse-jaku/pkg/jadwal"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

const browseChoice = "\x00browse"

// documentTypes are the extensions offered by the file picker
var documentTypes = []string{".pdf", ".html", ".htm", ".txt"}

// RunParseTUI lets the user pick a KRS document, shows the parsed schedule and offers to export it
func RunParseTUI() error {
	fmt.Println(accentStyle.Render("Welcome to the jaku KRS reader!"))

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	path, err := pickDocument(cfg)
	if err != nil {
		return err
	}
	if path == "" {
		fmt.Println(errorStyle.Render("No document selected!"))
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	parser := jadwal.NewParser(cfg.ParserOptions())
	var schedule *jadwal.Schedule
	var cached bool
	var parseErr error

	_ = spinner.New().
		Title(fmt.Sprintf("Reading %s...", filepath.Base(path))).
		Action(func() {
			schedule, cached, parseErr = cache.ParseDocument(path, data, parser, true)
		}).
		Run()

	if parseErr != nil {
		return parseErr
	}

	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	cfg.AddRecentFile(path)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println()
	fmt.Print(RenderSchedule(schedule))
	if cached {
		fmt.Println("(loaded from cache)")
	}
	fmt.Println()

	if len(schedule.Courses) == 0 {
		return nil
	}

	return runExportTUI(cfg, schedule)
}

// pickDocument offers the recently parsed files first, then falls back to a file picker.
func pickDocument(cfg *config.AppConfig) (string, error) {
	if len(cfg.RecentFiles) > 0 {
		options := make([]huh.Option[string], 0, len(cfg.RecentFiles)+1)
		for _, p := range cfg.RecentFiles {
			options = append(options, huh.NewOption(p, p))
		}
		options = append(options, huh.NewOption("📂 Browse for another file...", browseChoice))

		var choice string
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Which KRS document?").
					Options(options...).
					Value(&choice),
			),
		).WithTheme(GetTheme())

		if err := form.Run(); err != nil {
			return "", err
		}
		if choice != browseChoice {
			return choice, nil
		}
	}

	var path string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewFilePicker().
				Title("Select your KRS document").
				Description("The PDF printed from the portal, or a saved HTML/text copy of the KRS page.").
				AllowedTypes(documentTypes).
				CurrentDirectory(".").
				Picking(true).
				Height(12).
				Value(&path),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return "", err
	}
	return path, nil
}

func runExportTUI(cfg *config.AppConfig, s *jadwal.Schedule) error {
	var format string

	formatForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Export this schedule?").
				Options(
					huh.NewOption("💾 JSON ("+exporter.DefaultJSONFile+")", "json"),
					huh.NewOption("📅 Calendar (.ics)", "ics"),
					huh.NewOption("Both", "both"),
					huh.NewOption("No, I'm done", "none"),
				).
				Value(&format),
		),
	).WithTheme(GetTheme())

	if err := formatForm.Run(); err != nil {
		return err
	}
	if format == "none" {
		return nil
	}

	outDir := cfg.OutputDir
	if outDir == "" {
		outDir = "."
	}

	jsonPath := filepath.Join(outDir, exporter.DefaultJSONFile)
	icsPath := filepath.Join(outDir, "jadwal.ics")
	start := cfg.SemesterStart
	weeks := strconv.Itoa(cfg.WeekCount())

	var fields []huh.Field
	if format == "json" || format == "both" {
		fields = append(fields, huh.NewInput().
			Title("JSON file").
			Value(&jsonPath).
			Validate(notEmpty("file name")))
	}
	if format == "ics" || format == "both" {
		fields = append(fields,
			huh.NewInput().
				Title("Calendar file").
				Value(&icsPath).
				Validate(notEmpty("file name")),
			huh.NewInput().
				Title("First day of lectures").
				Description("YYYY-MM-DD, sessions repeat weekly from here.").
				Placeholder("2024-09-02").
				Value(&start).
				Validate(validateDate),
			huh.NewInput().
				Title("Number of weeks").
				Value(&weeks).
				Validate(validatePositive),
		)
	}

	if err := huh.NewForm(huh.NewGroup(fields...)).WithTheme(GetTheme()).Run(); err != nil {
		return err
	}

	if format == "json" || format == "both" {
		if err := exporter.SaveJSON(jsonPath, s); err != nil {
			return err
		}
		fmt.Println(accentStyle.Render(fmt.Sprintf("✅ Saved %d courses to %s", len(s.Courses), jsonPath)))
	}

	if format == "ics" || format == "both" {
		if !strings.HasSuffix(icsPath, ".ics") {
			icsPath += ".ics"
		}

		loc, err := cfg.Location()
		if err != nil {
			return err
		}
		startDate, _ := time.ParseInLocation(config.DateLayout, start, loc)
		n, _ := strconv.Atoi(weeks)

		err = exporter.SaveICS(icsPath, s, exporter.ICSOptions{Start: startDate, Weeks: n, Location: loc})
		if errors.Is(err, exporter.ErrNoSessions) {
			fmt.Println(errorStyle.Render("None of the sessions could be placed on a calendar."))
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}
		fmt.Println(accentStyle.Render(fmt.Sprintf("✅ Exported %d weekly sessions to %s", s.SessionCount(), icsPath)))
	}

	return nil
}

func notEmpty(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", what)
		}
		return nil
	}
}

func validateDate(s string) error {
	if _, err := time.Parse(config.DateLayout, s); err != nil {
		return fmt.Errorf("must be a date like 2024-09-02")
	}
	return nil
}

func validatePositive(s string) error {
	if n, err := strconv.Atoi(s); err != nil || n <= 0 {
		return fmt.Errorf("must be a positive number")
	}
	return nil
}
