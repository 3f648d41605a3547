package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var moveCmd = &cobra.Command{
	Use:   "move <id-prefix> <bucket>",
	Short: "Move a task to another bucket",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil {
			return fmt.Errorf("store not initialized")
		}

		bucket, err := parseBucket(args[1])
		if err != nil {
			return err
		}

		id, found := resolveID(args[0])
		if !found {
			return nil
		}

		Store.MoveTask(id, bucket)
		ok(fmt.Sprintf("moved %s to %s", shortID(id), bucket.Label()))
		return nil
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <id-prefix> <title...>",
	Short: "Rewrite a task's title",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil {
			return fmt.Errorf("store not initialized")
		}

		title := strings.TrimSpace(strings.Join(args[1:], " "))
		if title == "" {
			note("nothing to change: empty title")
			return nil
		}

		id, found := resolveID(args[0])
		if !found {
			return nil
		}

		Store.UpdateTaskTitle(id, title)
		ok("renamed " + shortID(id))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(editCmd)
}
