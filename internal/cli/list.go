package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/daystack/pkg/models"
)

func newListCommand() *cobra.Command {
	var bucketFlag string
	var showDone bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks by bucket",
		RunE: func(cmd *cobra.Command, args []string) error {
			if Store == nil {
				return fmt.Errorf("store not initialized")
			}

			if showDone {
				printCompleted()
				return nil
			}

			buckets := models.Buckets
			if bucketFlag != "" {
				b, err := parseBucket(bucketFlag)
				if err != nil {
					return err
				}
				buckets = []models.Bucket{b}
			}

			for _, b := range buckets {
				printBucket(b)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&bucketFlag, "bucket", "b", "", "Only show one bucket: today, week, or someday")
	cmd.Flags().BoolVar(&showDone, "done", false, "Show the completion history instead")

	return cmd
}

func printBucket(b models.Bucket) {
	tasks := Store.TasksInBucket(b)
	fmt.Println(accentStyle().Render(fmt.Sprintf("%s (%d)", b.Label(), len(tasks))))
	if len(tasks) == 0 {
		note("  nothing here")
		return
	}
	for _, t := range tasks {
		fmt.Printf("  %s %s  %s\n", mutedStyle.Render("☐"), mutedStyle.Render(shortID(t.ID)), t.Title)
	}
}

func printCompleted() {
	tasks := Store.CompletedSorted()
	fmt.Println(accentStyle().Render(fmt.Sprintf("Done (%d)", len(tasks))))
	if len(tasks) == 0 {
		note("  nothing completed yet")
		return
	}
	for _, t := range tasks {
		when := ""
		if t.CompletedAt != nil {
			when = t.CompletedAt.Local().Format("Jan 02 15:04")
		}
		fmt.Printf("  %s %s  %s  %s\n",
			successStyle.Render("☑"),
			mutedStyle.Render(shortID(t.ID)),
			doneStyle.Render(t.Title),
			mutedStyle.Render(when),
		)
	}
}

func init() {
	rootCmd.AddCommand(newListCommand())
}
