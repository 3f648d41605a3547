package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/valter-silva-au/daystack/pkg/models"
)

// Styling helpers shared by the commands.
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	doneStyle    = lipgloss.NewStyle().Faint(true).Strikethrough(true)
)

// accentStyle derives the highlight style from configuration.
func accentStyle() lipgloss.Style {
	color := "62"
	if Config != nil && Config.AccentColor != "" {
		color = Config.AccentColor
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color))
}

func ok(msg string) {
	fmt.Println(successStyle.Render("✔ " + msg))
}

func note(msg string) {
	fmt.Println(mutedStyle.Render(msg))
}

// parseBucket maps a user-supplied bucket name to a Bucket. Short forms are
// accepted: "week" for thisWeek, "later" for someday.
func parseBucket(s string) (models.Bucket, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "today":
		return models.BucketToday, nil
	case "thisweek", "this-week", "week":
		return models.BucketThisWeek, nil
	case "someday", "later":
		return models.BucketSomeday, nil
	}
	return "", fmt.Errorf("unknown bucket %q, expected today, week, or someday", s)
}

// allActive gathers the active tasks across all buckets in display order.
func allActive() []models.Task {
	var out []models.Task
	for _, b := range models.Buckets {
		out = append(out, Store.TasksInBucket(b)...)
	}
	return out
}

// resolveID matches an ID prefix against the active tasks. No match and
// ambiguous matches print a styled note and report false; the command then
// exits cleanly, mirroring the store's no-op policy at the edge.
func resolveID(prefix string) (string, bool) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		note("no task id given")
		return "", false
	}

	var matches []models.Task
	for _, t := range allActive() {
		if strings.HasPrefix(t.ID, prefix) {
			matches = append(matches, t)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0].ID, true
	case 0:
		note(fmt.Sprintf("no active task matches %q", prefix))
		return "", false
	default:
		note(fmt.Sprintf("%q is ambiguous, it matches %d tasks:", prefix, len(matches)))
		for _, t := range matches {
			fmt.Printf("  %s  %s\n", shortID(t.ID), t.Title)
		}
		return "", false
	}
}

// shortID returns the display prefix of a task ID.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
