package models

// Config holds the optional user configuration read from config.yaml in the
// daystack base directory. Every field has a default; a missing file means
// defaults across the board.
type Config struct {
	// CompletedCap is the maximum number of completed tasks retained in the
	// rolling history. Older completions are evicted beyond this.
	CompletedCap int
	// LogEvents toggles the append-only event log.
	LogEvents bool
	// AccentColor is the lipgloss color used for highlights in the CLI and
	// the board.
	AccentColor string
}
