package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/daystack/pkg/models"
)

func newDayCommand() *cobra.Command {
	var carry, week, cancel bool

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Run the daily carryover check",
		Long: `Re-evaluate the day rollover. If the calendar day changed since the last
resolved day and unfinished Today tasks exist, a carryover decision is
required: keep them in Today, move them all to This Week, or cancel.

Cancelling still marks the day as resolved, so the prompt stays away until
the next day boundary.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if Store == nil {
				return fmt.Errorf("store not initialized")
			}

			if Store.RefreshDailyPrompt() == models.PromptSettled {
				note("day already settled, nothing to decide")
				return nil
			}

			today := Store.TasksInBucket(models.BucketToday)
			fmt.Println(accentStyle().Render(fmt.Sprintf("New day. %d unfinished Today task(s):", len(today))))
			for _, t := range today {
				fmt.Printf("  %s %s  %s\n", mutedStyle.Render("☐"), mutedStyle.Render(shortID(t.ID)), t.Title)
			}
			fmt.Println()

			decision, chosen := decisionFromFlags(carry, week, cancel)
			if !chosen {
				var err error
				decision, err = promptDecision()
				if err != nil {
					return err
				}
			}

			Store.ApplyDecision(decision)
			switch decision {
			case models.DecisionCarryOver:
				ok("carried over to Today")
			case models.DecisionClearToThisWeek:
				ok("moved to This Week")
			case models.DecisionCancel:
				note("cancelled, will ask again tomorrow")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&carry, "carry", false, "Keep unfinished tasks in Today")
	cmd.Flags().BoolVar(&week, "week", false, "Move unfinished Today tasks to This Week")
	cmd.Flags().BoolVar(&cancel, "cancel", false, "Decide nothing (still settles the day)")

	return cmd
}

// decisionFromFlags maps mutually exclusive flags to a decision. The first
// set flag wins in carry > week > cancel order.
func decisionFromFlags(carry, week, cancel bool) (models.Decision, bool) {
	switch {
	case carry:
		return models.DecisionCarryOver, true
	case week:
		return models.DecisionClearToThisWeek, true
	case cancel:
		return models.DecisionCancel, true
	}
	return "", false
}

// promptDecision reads the decision interactively from stdin.
func promptDecision() (models.Decision, error) {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("Carry over [c], move to this week [w], or cancel [q]? ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(input)) {
		case "c":
			return models.DecisionCarryOver, nil
		case "w":
			return models.DecisionClearToThisWeek, nil
		case "q":
			return models.DecisionCancel, nil
		}
	}
}

func init() {
	rootCmd.AddCommand(newDayCommand())
}
