package core

import "github.com/valter-silva-au/daystack/pkg/models"

// The daily prompt controller is a two-state machine: Settled (no prompt
// pending) and PendingDecision (the carryover prompt must be shown). It is
// re-evaluated on activation events only; there is no background midnight
// timer, so a rollover while the app sits idle in the foreground is picked
// up on the next activation.

// PromptState returns the current prompt state without re-evaluating.
func (s *taskStore) PromptState() models.PromptState { return s.prompt }

// RefreshDailyPrompt re-runs the day-rollover check and returns the
// resulting state.
//
// If the stored last-opened day already matches today, the day was resolved
// and the state is Settled. On a rollover (or first run) with no active
// Today tasks there is nothing to decide, so the day is stamped immediately.
// With at least one active Today task the state becomes PendingDecision and
// the day is deliberately NOT stamped yet: stamping happens only when a
// decision is applied.
func (s *taskStore) RefreshDailyPrompt() models.PromptState {
	todayKey := DayKey(s.now())

	if s.meta.LastOpenedDay == todayKey {
		s.prompt = models.PromptSettled
		return s.prompt
	}

	if len(s.TasksInBucket(models.BucketToday)) == 0 {
		s.meta.LastOpenedDay = todayKey
		s.saveMetadata()
		s.prompt = models.PromptSettled
		s.info("day.stamped", "new day, nothing to carry over", map[string]any{"day": todayKey})
		return s.prompt
	}

	s.prompt = models.PromptPendingDecision
	return s.prompt
}

// ApplyDecision consumes exactly one carryover decision and settles the
// prompt. All three decisions stamp the day, including Cancel: the prompt
// will not reappear until the next day boundary even though Cancel changes
// no task data. Unknown decision values are swallowed like any other stale
// input.
func (s *taskStore) ApplyDecision(decision models.Decision) {
	switch decision {
	case models.DecisionCarryOver:
		// Today tasks stay where they are.
	case models.DecisionClearToThisWeek:
		moved := 0
		for i := range s.active {
			if s.active[i].Bucket == models.BucketToday {
				s.active[i].Bucket = models.BucketThisWeek
				moved++
			}
		}
		if moved > 0 {
			s.saveActive()
		}
	case models.DecisionCancel:
		// Defers the tasks, not the prompt.
	default:
		s.warn("day.decision_ignored", "unknown decision", map[string]any{"decision": string(decision)})
		return
	}

	todayKey := DayKey(s.now())
	s.meta.LastOpenedDay = todayKey
	s.saveMetadata()
	s.prompt = models.PromptSettled
	s.info("day.decision", "carryover decision applied", map[string]any{
		"day":      todayKey,
		"decision": string(decision),
	})
}
