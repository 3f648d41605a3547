package models

// Decision is the user's answer to the daily carryover prompt for unfinished
// Today tasks.
type Decision string

const (
	// DecisionCarryOver keeps unfinished Today tasks in the Today bucket.
	DecisionCarryOver Decision = "carry_over"
	// DecisionClearToThisWeek moves every unfinished Today task to ThisWeek.
	DecisionClearToThisWeek Decision = "clear_to_this_week"
	// DecisionCancel defers the decision without touching any task. The day
	// is still stamped as resolved, so the prompt stays away until the next
	// day boundary.
	DecisionCancel Decision = "cancel"
)

// PromptState is the daily prompt controller's state.
type PromptState string

const (
	// PromptSettled means no carryover prompt is pending.
	PromptSettled PromptState = "settled"
	// PromptPendingDecision means the carryover prompt must be shown before
	// the day is considered resolved.
	PromptPendingDecision PromptState = "pending_decision"
)
