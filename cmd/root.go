// Package cmd wires the CLI commands for the workspace seeder.
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "asana-seed [command]",
	Short: "Generate a realistic synthetic Asana-style workspace in PostgreSQL",
	Long: `Seeds a PostgreSQL database with a synthetic work-management workspace:
organizations, users, teams, projects, tasks, comments, tags, and custom
fields, with statistically realistic timestamps and completion patterns.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetOutput(os.Stderr)
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
