package cmd

import (
	"fmt"
	"time"

	"github.com/Ariyalex/pdf-parse-jaku/pkg/config"
	"github.com/Ariyalex/pdf-parse-jaku/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage jaku configuration",
	Long:  "View or edit your local configuration settings (semester dates for calendar exports, timezone, theme).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		changed := false

		if flags.Changed("accent") {
			cfg.AccentColor, _ = flags.GetString("accent")
			changed = true
		}
		if flags.Changed("semester-start") {
			start, _ := flags.GetString("semester-start")
			if _, err := time.Parse(config.DateLayout, start); err != nil {
				return fmt.Errorf("invalid --semester-start %q (want YYYY-MM-DD): %w", start, err)
			}
			cfg.SemesterStart = start
			changed = true
		}
		if flags.Changed("weeks") {
			weeks, _ := flags.GetInt("weeks")
			if weeks <= 0 {
				return fmt.Errorf("--weeks must be positive, got %d", weeks)
			}
			cfg.Weeks = weeks
			changed = true
		}
		if flags.Changed("timezone") {
			tz, _ := flags.GetString("timezone")
			if _, err := time.LoadLocation(tz); err != nil {
				return fmt.Errorf("unknown timezone %q: %w", tz, err)
			}
			cfg.Timezone = tz
			changed = true
		}
		if flags.Changed("output-dir") {
			cfg.OutputDir, _ = flags.GetString("output-dir")
			changed = true
		}

		if changed {
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Println("✅ Configuration saved.")
		}

		if show, _ := flags.GetBool("show"); show {
			fmt.Print(tui.RenderConfig(cfg))
			return nil
		}
		if changed {
			return nil
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().String("accent", "", "Accent color for the TUI (ANSI number or #RRGGBB)")
	configCmd.Flags().String("semester-start", "", "First day of lectures (YYYY-MM-DD)")
	configCmd.Flags().Int("weeks", 0, "Number of lecture weeks in the semester")
	configCmd.Flags().String("timezone", "", "IANA timezone of the printed lecture times")
	configCmd.Flags().String("output-dir", "", "Folder exported files are written to")
	configCmd.Flags().Bool("show", false, "Print the current configuration")
}
