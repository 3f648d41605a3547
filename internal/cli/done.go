package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done <id-prefix>",
	Short: "Complete a task",
	Long: `Complete the active task whose ID starts with the given prefix.

The completed task moves to the rolling history and becomes the undo
candidate. Completing is idempotent: a stale or repeated invocation is a
no-op.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil {
			return fmt.Errorf("store not initialized")
		}

		id, found := resolveID(args[0])
		if !found {
			return nil
		}

		Store.CompleteTask(id)
		ok("completed " + shortID(id))
		return nil
	},
}

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Undo the most recent completion",
	Long: `Restore the most recently completed task to its bucket.

Only one level of undo is available: completing two tasks in a row makes
only the second undoable.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil {
			return fmt.Errorf("store not initialized")
		}

		if !Store.CanUndo() {
			note("nothing to undo")
			return nil
		}

		Store.UndoLastComplete()
		ok("restored")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(undoCmd)
}
