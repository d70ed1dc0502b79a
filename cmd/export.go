package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Ariyalex/pdf-parse-jaku/pkg/cache"
	"github.com/Ariyalex/pdf-parse-jaku/pkg/config"
	"github.com/Ariyalex/pdf-parse-jaku/pkg/exporter"
	"github.com/Ariyalex/pdf-parse-jaku/pkg/extract"
	"github.com/Ariyalex/pdf-parse-jaku/pkg/jadwal"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [FILE]",
	Short: "Directly export a KRS schedule to an ICS file",
	Long: `Export the sessions of a KRS document as weekly recurring events in an ICS file,
without using the interactive TUI. The semester start and week count default to the
values saved with "jaku config".`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rawURL, _ := cmd.Flags().GetString("url")
		output, _ := cmd.Flags().GetString("output")
		startFlag, _ := cmd.Flags().GetString("start")
		weeks, _ := cmd.Flags().GetInt("weeks")
		noCache, _ := cmd.Flags().GetBool("no-cache")

		var urls []string
		if rawURL != "" {
			urls = []string{rawURL}
		}
		docs := documentsFrom(args, urls)
		if len(docs) != 1 {
			return fmt.Errorf("pass exactly one document: a file or --url")
		}
		doc := docs[0]

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		loc, err := cfg.Location()
		if err != nil {
			return err
		}

		var start time.Time
		if startFlag != "" {
			start, err = time.ParseInLocation(config.DateLayout, startFlag, loc)
			if err != nil {
				return fmt.Errorf("invalid --start %q (want YYYY-MM-DD): %w", startFlag, err)
			}
		} else {
			var ok bool
			start, ok, err = cfg.SemesterStartDate(loc)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no semester start: pass --start or run \"jaku config --semester-start YYYY-MM-DD\"")
			}
		}
		if weeks <= 0 {
			weeks = cfg.WeekCount()
		}

		if !strings.HasSuffix(output, ".ics") {
			output += ".ics"
		}

		parser := jadwal.NewParser(cfg.ParserOptions())
		var schedule *jadwal.Schedule

		_ = spinner.New().
			Title(fmt.Sprintf("Exporting schedule from %s to %s...", doc.location, output)).
			Action(func() {
				var name string
				var data []byte
				name, data, err = doc.load(extract.NewClient())
				if err != nil {
					return
				}
				schedule, _, err = cache.ParseDocument(name, data, parser, !noCache)
			}).
			Run()

		if err != nil {
			return fmt.Errorf("failed to parse schedule: %w", err)
		}

		if len(schedule.Courses) == 0 {
			return fmt.Errorf("no courses found in %s", doc.location)
		}

		err = exporter.SaveICS(output, schedule, exporter.ICSOptions{Start: start, Weeks: weeks, Location: loc})
		if errors.Is(err, exporter.ErrNoSessions) {
			return fmt.Errorf("no session in %s has a day and time that can be placed on a calendar", doc.location)
		}
		if err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		doc.remember(cfg)
		if err := config.Save(cfg); err != nil {
			return err
		}

		fmt.Printf("Successfully exported %d sessions of %d courses to %s\n", schedule.SessionCount(), len(schedule.Courses), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().String("url", "", "Download the document from this URL instead of a file")
	exportCmd.Flags().StringP("output", "o", "schedule.ics", "Output file path")
	exportCmd.Flags().StringP("start", "s", "", "First day of lectures (YYYY-MM-DD), defaults to the saved semester start")
	exportCmd.Flags().IntP("weeks", "w", 0, "Number of lecture weeks, defaults to the saved value")
	exportCmd.Flags().Bool("no-cache", false, "Always extract the document again")
}
