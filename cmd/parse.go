package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/Ariyalex/pdf-parse-jaku/pkg/cache"
	"github.com/Ariyalex/pdf-parse-jaku/pkg/config"
	"github.com/Ariyalex/pdf-parse-jaku/pkg/exporter"
	"github.com/Ariyalex/pdf-parse-jaku/pkg/extract"
	"github.com/Ariyalex/pdf-parse-jaku/pkg/jadwal"
	"github.com/Ariyalex/pdf-parse-jaku/pkg/tui"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type parsedDocument struct {
	doc      document
	name     string
	schedule *jadwal.Schedule
	cached   bool
}

var parseCmd = &cobra.Command{
	Use:   "parse [FILE...]",
	Short: "Parse KRS documents into JSON schedules",
	Long: `Parse one or more KRS documents (PDF, HTML or text) into the jadwal JSON format.
A single document is printed to stdout unless --output is given; several documents are
parsed concurrently and each one is saved as <name>.json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		urls, _ := cmd.Flags().GetStringSlice("url")
		output, _ := cmd.Flags().GetString("output")
		showTable, _ := cmd.Flags().GetBool("table")
		noCache, _ := cmd.Flags().GetBool("no-cache")
		jobs, _ := cmd.Flags().GetInt("jobs")

		docs := documentsFrom(args, urls)
		if len(docs) == 0 {
			return fmt.Errorf("no document given: pass a file or --url")
		}
		if len(docs) > 1 && output != "" {
			return fmt.Errorf("--output can only be used with a single document")
		}
		if jobs < 1 {
			jobs = 1
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		parser := jadwal.NewParser(cfg.ParserOptions())
		client := extract.NewClient()
		results := make([]parsedDocument, len(docs))

		parseAll := func() error {
			g := new(errgroup.Group)
			g.SetLimit(jobs)
			for i, doc := range docs {
				g.Go(func() error {
					name, data, err := doc.load(client)
					if err != nil {
						return err
					}
					s, cached, err := cache.ParseDocument(name, data, parser, !noCache)
					if err != nil {
						return err
					}
					results[i] = parsedDocument{doc: doc, name: name, schedule: s, cached: cached}
					return nil
				})
			}
			return g.Wait()
		}

		// JSON on stdout must stay clean for pipes
		toStdout := len(docs) == 1 && output == "" && !showTable
		if toStdout {
			err = parseAll()
		} else {
			_ = spinner.New().
				Title(fmt.Sprintf("Parsing %d document(s)...", len(docs))).
				Action(func() {
					err = parseAll()
				}).
				Run()
		}
		if err != nil {
			return err
		}

		for _, r := range results {
			r.doc.remember(cfg)
		}
		if err := config.Save(cfg); err != nil {
			return err
		}

		if len(results) == 1 {
			return writeSingle(results[0], output, showTable)
		}

		for _, r := range results {
			if showTable {
				fmt.Println(r.doc.location)
				fmt.Print(tui.RenderSchedule(r.schedule))
			}
			path := r.doc.outputPath(cfg, r.name, ".json")
			if err := exporter.SaveJSON(path, r.schedule); err != nil {
				return fmt.Errorf("failed to save %s: %w", r.doc.location, err)
			}
			fmt.Printf("%s: %d courses -> %s%s\n", r.doc.location, len(r.schedule.Courses), path, cachedNote(r.cached))
		}
		return nil
	},
}

func writeSingle(r parsedDocument, output string, showTable bool) error {
	if showTable {
		fmt.Print(tui.RenderSchedule(r.schedule))
	}

	if output != "" {
		if err := exporter.SaveJSON(output, r.schedule); err != nil {
			return err
		}
		fmt.Printf("Successfully saved %d courses to %s%s\n", len(r.schedule.Courses), output, cachedNote(r.cached))
		return nil
	}

	if showTable {
		return nil
	}
	return exporter.WriteJSON(r.schedule, os.Stdout)
}

func cachedNote(cached bool) string {
	if cached {
		return " (cached)"
	}
	return ""
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringSlice("url", nil, "Download and parse the document at this URL (repeatable)")
	parseCmd.Flags().StringP("output", "o", "", "Write the JSON to this file instead of stdout (single document only)")
	parseCmd.Flags().BoolP("table", "t", false, "Print a summary table")
	parseCmd.Flags().Bool("no-cache", false, "Always extract the document again")
	parseCmd.Flags().IntP("jobs", "j", runtime.NumCPU(), "Number of documents parsed concurrently")
}
