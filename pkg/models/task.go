package models

import "time"

// Bucket is the priority category a task belongs to.
type Bucket string

const (
	BucketToday    Bucket = "today"
	BucketThisWeek Bucket = "thisWeek"
	BucketSomeday  Bucket = "someday"
)

// Buckets lists all buckets in display order.
var Buckets = []Bucket{BucketToday, BucketThisWeek, BucketSomeday}

// Valid reports whether b is one of the three known buckets.
func (b Bucket) Valid() bool {
	switch b {
	case BucketToday, BucketThisWeek, BucketSomeday:
		return true
	}
	return false
}

// Label returns the human-readable name of the bucket.
func (b Bucket) Label() string {
	switch b {
	case BucketToday:
		return "Today"
	case BucketThisWeek:
		return "This Week"
	case BucketSomeday:
		return "Someday"
	}
	return string(b)
}

// Task is a single tracked item. The ID is a UUID assigned at creation and
// never changes. CompletedAt is nil while the task is open; completing sets
// it and undoing clears it again. It is never rewritten to a different
// non-nil value.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Bucket      Bucket     `json:"bucket"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt"`
}

// IsCompleted reports whether the task has been completed.
func (t Task) IsCompleted() bool { return t.CompletedAt != nil }

// Metadata is the single persisted record tracking the last calendar day on
// which the carryover decision was resolved. Empty on first run.
type Metadata struct {
	LastOpenedDay string `json:"lastOpenedDayISO"`
}
