package core

import "time"

// dayKeyLayout is the calendar-day identifier format.
const dayKeyLayout = "2006-01-02"

// DayKey derives a YYYY-MM-DD day identifier from a timestamp using local
// calendar fields. Day boundaries follow local wall-clock midnight, not UTC
// midnight, so the key changes exactly when the user's calendar day does.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}
