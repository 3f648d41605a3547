package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/daystack/internal/tui"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Open the interactive board",
	Long: `Open the full-screen three-bucket board. Opening the board counts as an
activation event: if the calendar day rolled over with unfinished Today
tasks, the carryover prompt is shown first.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil {
			return fmt.Errorf("store not initialized")
		}

		accent := ""
		if Config != nil {
			accent = Config.AccentColor
		}
		if err := tui.Run(Store, accent); err != nil {
			return fmt.Errorf("running board: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(boardCmd)
}
