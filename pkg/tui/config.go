package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Ariyalex/pdf-parse-jaku/pkg/config"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Semester Dates (For Calendars)", "semester"),
						huh.NewOption("Set Timezone", "timezone"),
						huh.NewOption("Set Output Folder", "output"),
						huh.NewOption("Set Minimum Lecturer Name Length", "minlen"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "theme":
			err = runSetThemeTUI(cfg)
		case "semester":
			err = runSetSemesterTUI(cfg)
		case "timezone":
			err = runSetTimezoneTUI(cfg)
		case "output":
			err = runSetOutputDirTUI(cfg)
		case "minlen":
			err = runSetMinNameLenTUI(cfg)
		case "view":
			fmt.Print(RenderConfig(cfg))
		}

		if err != nil {
			return err
		}
	}
}

// RenderConfig describes the saved settings, filling in defaults for unset values.
func RenderConfig(cfg *config.AppConfig) string {
	var b strings.Builder

	orDefault := func(v, def string) string {
		if v == "" {
			return def + " (default)"
		}
		return v
	}

	b.WriteString(accentStyle.Render("\n--- Current Configuration (~/.jaku.json) ---"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Accent Color: %s\n", orDefault(cfg.AccentColor, defaultAccent))
	fmt.Fprintf(&b, "Semester Start: %s\n", orDefault(cfg.SemesterStart, "Not set"))
	fmt.Fprintf(&b, "Weeks: %d\n", cfg.WeekCount())
	fmt.Fprintf(&b, "Timezone: %s\n", orDefault(cfg.Timezone, config.DefaultTimezone))
	fmt.Fprintf(&b, "Output Folder: %s\n", orDefault(cfg.OutputDir, "."))
	fmt.Fprintf(&b, "Min Lecturer Name Length: %d\n", cfg.ParserOptions().MinInstructorNameLen)
	fmt.Fprintf(&b, "Recent Files: %d\n", len(cfg.RecentFiles))
	b.WriteString("\n")

	return b.String()
}

func runSetSemesterTUI(cfg *config.AppConfig) error {
	start := cfg.SemesterStart
	weeks := strconv.Itoa(cfg.WeekCount())

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("First day of lectures").
				Description("YYYY-MM-DD. Calendar exports start from the first matching weekday.").
				Placeholder("2024-09-02").
				Value(&start).
				Validate(validateDate),
			huh.NewInput().
				Title("Number of lecture weeks").
				Value(&weeks).
				Validate(validatePositive),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.SemesterStart = start
	cfg.Weeks, _ = strconv.Atoi(weeks)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Semester starts %s and runs for %d weeks.\n", cfg.SemesterStart, cfg.Weeks)))
	return nil
}

func runSetTimezoneTUI(cfg *config.AppConfig) error {
	var selected string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which timezone are the printed lecture times in?").
				Options(
					huh.NewOption("WIB (Asia/Jakarta)", "Asia/Jakarta"),
					huh.NewOption("WITA (Asia/Makassar)", "Asia/Makassar"),
					huh.NewOption("WIT (Asia/Jayapura)", "Asia/Jayapura"),
				).
				Value(&selected),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if _, err := time.LoadLocation(selected); err != nil {
		return fmt.Errorf("could not load timezone %q: %w", selected, err)
	}

	cfg.Timezone = selected
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Timezone changed to: %s\n", selected)))
	return nil
}

func runSetOutputDirTUI(cfg *config.AppConfig) error {
	input := cfg.OutputDir

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Where should exported files go?").
				Description("Leave empty to write into the current directory.").
				Placeholder("~/Documents/kuliah").
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.OutputDir = strings.TrimSpace(input)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Output folder saved.\n"))
	return nil
}

func runSetMinNameLenTUI(cfg *config.AppConfig) error {
	input := strconv.Itoa(cfg.ParserOptions().MinInstructorNameLen)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Minimum lecturer name length").
				Description("Shorter fragments next to a session are not treated as lecturers.").
				Value(&input).
				Validate(validatePositive),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.MinInstructorNameLen, _ = strconv.Atoi(input)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Lecturer names now need at least %d characters.\n", cfg.MinInstructorNameLen)))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color for jaku").
				Description("Select a curated Charm style or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s Jaku Teal", colorBlock(defaultAccent)), defaultAccent),
					huh.NewOption(fmt.Sprintf("%s Sakura Pink", colorBlock("205")), "205"),
					huh.NewOption(fmt.Sprintf("%s Ocean Blue", colorBlock("86")), "86"),
					huh.NewOption(fmt.Sprintf("%s Batik Brown", colorBlock("130")), "130"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(ValidateHexColor),
			),
		).WithTheme(GetCustomTheme(defaultAccent))

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Beautiful! The theme color is now saved.\n"))
	return nil
}

// ValidateHexColor accepts "#RRGGBB".
func ValidateHexColor(str string) error {
	if len(str) != 7 || !strings.HasPrefix(str, "#") {
		return fmt.Errorf("must be a valid 6-character hex code starting with #")
	}
	if _, err := strconv.ParseUint(str[1:], 16, 32); err != nil {
		return fmt.Errorf("must be a valid 6-character hex code starting with #")
	}
	return nil
}
