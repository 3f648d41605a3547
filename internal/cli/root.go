// Package cli implements the daystack command surface. It is a pure
// rendering layer: commands issue store operations and read projections,
// and never hold task state of their own.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/daystack/internal/core"
	"github.com/valter-silva-au/daystack/pkg/models"
)

// Store is the task store used by all commands. Set during application
// wiring.
var Store core.Store

// Config is the loaded configuration. Set during application wiring.
var Config *models.Config

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "daystack",
	Short: "daystack - a personal task tracker with Today, This Week, and Someday buckets",
	Long: `daystack is a local-first personal task tracker. Tasks live in one of
three priority buckets (Today, This Week, Someday), completions keep a
rolling history with single-level undo, and unfinished Today tasks trigger
a once-per-day carryover decision.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("daystack %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
