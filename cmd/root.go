package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jaku",
	Short: "A CLI and TUI for reading KRS class schedules",
	Long: `jaku reads the KRS (Kartu Rencana Studi) document printed from the campus portal,
turns it into a structured class schedule and exports it as JSON or an .ics calendar.
It can also run as an HTTP upload service.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
