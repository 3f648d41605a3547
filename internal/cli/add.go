package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAddCommand() *cobra.Command {
	var bucketFlag string

	cmd := &cobra.Command{
		Use:   "add <title...>",
		Short: "Add a new task",
		Long: `Add a new task to a bucket. The title may span multiple words.

Whitespace-only titles are silently ignored; duplicate titles are allowed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if Store == nil {
				return fmt.Errorf("store not initialized")
			}

			bucket, err := parseBucket(bucketFlag)
			if err != nil {
				return err
			}

			title := strings.TrimSpace(strings.Join(args, " "))
			if title == "" {
				note("nothing to add: empty title")
				return nil
			}

			Store.AddTask(title, bucket)
			ok(fmt.Sprintf("added to %s: %s", bucket.Label(), title))
			return nil
		},
	}

	cmd.Flags().StringVarP(&bucketFlag, "bucket", "b", "today", "Bucket: today, week, or someday")

	return cmd
}

func init() {
	rootCmd.AddCommand(newAddCommand())
}
