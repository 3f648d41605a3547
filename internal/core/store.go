// Package core contains the business logic for daystack: the task store
// state machine, the daily carryover prompt controller, and the day-key
// derivation used to detect day rollover.
package core

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/valter-silva-au/daystack/pkg/models"
)

// DefaultCompletedCap is the number of completed tasks retained in the
// rolling history when no configuration overrides it.
const DefaultCompletedCap = 200

// RecordStore is the subset of the persistence adapter the store needs.
// Defining it here keeps core independent of the storage package.
type RecordStore interface {
	LoadActive() ([]models.Task, error)
	LoadCompleted() ([]models.Task, error)
	LoadMetadata() (models.Metadata, error)
	SaveActive(tasks []models.Task) error
	SaveCompleted(tasks []models.Task) error
	SaveMetadata(meta models.Metadata) error
}

// EventSink receives structured events emitted by the store. Implementations
// must tolerate being called on every mutation; the store ignores sink
// failures entirely.
type EventSink interface {
	Emit(level, eventType, msg string, data map[string]any)
}

// Store owns the in-memory task collections and is the only component
// allowed to mutate them. Every mutation persists synchronously before the
// method returns.
//
// Mutation methods never return errors and never panic on stale input:
// unknown IDs and empty titles degrade to no-ops. UI layers race against
// their own stale state (an edit submitted for a task deleted elsewhere),
// and those races must not abort the process. Swallowed paths emit a WARN
// event when an EventSink is attached.
type Store interface {
	TasksInBucket(bucket models.Bucket) []models.Task
	CompletedSorted() []models.Task
	AddTask(title string, bucket models.Bucket)
	UpdateTaskTitle(id, title string)
	MoveTask(id string, bucket models.Bucket)
	CompleteTask(id string)
	CanUndo() bool
	UndoLastComplete()

	PromptState() models.PromptState
	RefreshDailyPrompt() models.PromptState
	ApplyDecision(decision models.Decision)
}

// StoreOptions tune the store for tests and configuration. Zero values mean
// defaults: time.Now, uuid.NewString, and DefaultCompletedCap.
type StoreOptions struct {
	Clock        func() time.Time
	NewID        func() string
	CompletedCap int
}

type taskStore struct {
	records RecordStore
	events  EventSink
	now     func() time.Time
	newID   func() string
	cap     int

	active        []models.Task
	completed     []models.Task
	lastCompleted *models.Task
	meta          models.Metadata
	prompt        models.PromptState
}

// NewStore loads the three persisted records and returns a ready Store.
// Loading is tolerant: a record that cannot be read falls back to its empty
// default, so a corrupted or missing file never prevents startup. Store
// initialization counts as an activation event, so the daily prompt is
// evaluated once before returning.
func NewStore(records RecordStore, events EventSink, opts StoreOptions) Store {
	s := &taskStore{
		records: records,
		events:  events,
		now:     opts.Clock,
		newID:   opts.NewID,
		cap:     opts.CompletedCap,
		prompt:  models.PromptSettled,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	if s.cap <= 0 {
		s.cap = DefaultCompletedCap
	}

	var err error
	if s.active, err = records.LoadActive(); err != nil {
		s.active = nil
		s.warn("store.load_failed", "active record unreadable, starting empty", map[string]any{"error": err.Error()})
	}
	if s.completed, err = records.LoadCompleted(); err != nil {
		s.completed = nil
		s.warn("store.load_failed", "completed record unreadable, starting empty", map[string]any{"error": err.Error()})
	}
	if s.meta, err = records.LoadMetadata(); err != nil {
		s.meta = models.Metadata{}
		s.warn("store.load_failed", "metadata record unreadable, starting empty", map[string]any{"error": err.Error()})
	}

	s.RefreshDailyPrompt()
	return s
}

// TasksInBucket returns the active tasks in the given bucket, oldest first.
func (s *taskStore) TasksInBucket(bucket models.Bucket) []models.Task {
	var out []models.Task
	for _, t := range s.active {
		if t.Bucket == bucket {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// CompletedSorted returns the completion history, most recent first. A nil
// CompletedAt sorts last via the zero-time sentinel.
func (s *taskStore) CompletedSorted() []models.Task {
	out := make([]models.Task, len(s.completed))
	copy(out, s.completed)
	sort.SliceStable(out, func(i, j int) bool {
		return completedAtOrZero(out[i]).After(completedAtOrZero(out[j]))
	})
	return out
}

func completedAtOrZero(t models.Task) time.Time {
	if t.CompletedAt == nil {
		return time.Time{}
	}
	return *t.CompletedAt
}

// AddTask creates a task in the given bucket. Whitespace-only titles are a
// no-op. Titles may repeat; there is no duplicate detection.
func (s *taskStore) AddTask(title string, bucket models.Bucket) {
	title = strings.TrimSpace(title)
	if title == "" {
		s.warn("task.add_ignored", "empty title", nil)
		return
	}
	task := models.Task{
		ID:        s.newID(),
		Title:     title,
		Bucket:    bucket,
		CreatedAt: s.now(),
	}
	s.active = append(s.active, task)
	s.saveActive()
	s.info("task.added", task.Title, map[string]any{"id": task.ID, "bucket": string(task.Bucket)})
}

// UpdateTaskTitle rewrites the title of an active task in place. Empty
// titles and unknown IDs are no-ops.
func (s *taskStore) UpdateTaskTitle(id, title string) {
	title = strings.TrimSpace(title)
	if title == "" {
		s.warn("task.rename_ignored", "empty title", map[string]any{"id": id})
		return
	}
	i := s.activeIndex(id)
	if i < 0 {
		s.warn("task.rename_ignored", "task not found", map[string]any{"id": id})
		return
	}
	s.active[i].Title = title
	s.saveActive()
	s.info("task.renamed", title, map[string]any{"id": id})
}

// MoveTask reassigns an active task to another bucket. Unknown IDs are
// no-ops.
func (s *taskStore) MoveTask(id string, bucket models.Bucket) {
	i := s.activeIndex(id)
	if i < 0 {
		s.warn("task.move_ignored", "task not found", map[string]any{"id": id})
		return
	}
	s.active[i].Bucket = bucket
	s.saveActive()
	s.info("task.moved", s.active[i].Title, map[string]any{"id": id, "bucket": string(bucket)})
}

// CompleteTask marks an active task completed, records it as the undo
// candidate, and pushes it onto the front of the completion history,
// evicting the oldest entry beyond the retention cap. Completing an unknown
// or already-completed ID is a no-op, which makes double-invocation
// idempotent.
func (s *taskStore) CompleteTask(id string) {
	i := s.activeIndex(id)
	if i < 0 {
		s.warn("task.complete_ignored", "task not found or already completed", map[string]any{"id": id})
		return
	}
	task := s.active[i]
	done := s.now()
	task.CompletedAt = &done

	s.active = append(s.active[:i], s.active[i+1:]...)
	undo := task
	s.lastCompleted = &undo

	s.completed = append([]models.Task{task}, s.completed...)
	if len(s.completed) > s.cap {
		s.completed = s.completed[:s.cap]
	}

	s.saveActive()
	s.saveCompleted()
	s.info("task.completed", task.Title, map[string]any{"id": id})
}

// CanUndo reports whether a single-level undo is available.
func (s *taskStore) CanUndo() bool { return s.lastCompleted != nil }

// UndoLastComplete reverses the most recent completion. Only one level is
// ever available: completing two tasks in a row makes only the second
// undoable. The task is restored even if the retention cap already evicted
// it from the history.
func (s *taskStore) UndoLastComplete() {
	if s.lastCompleted == nil {
		s.warn("task.undo_ignored", "nothing to undo", nil)
		return
	}
	task := *s.lastCompleted
	s.lastCompleted = nil

	for i, t := range s.completed {
		if t.ID == task.ID {
			s.completed = append(s.completed[:i], s.completed[i+1:]...)
			break
		}
	}

	task.CompletedAt = nil
	s.active = append(s.active, task)

	s.saveActive()
	s.saveCompleted()
	s.info("task.undone", task.Title, map[string]any{"id": task.ID})
}

func (s *taskStore) activeIndex(id string) int {
	for i, t := range s.active {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// saveActive persists the active record, swallowing failures. A failed save
// means the on-disk state lags the in-memory state until the next successful
// flush; acceptable for a single-user local tool.
func (s *taskStore) saveActive() {
	if err := s.records.SaveActive(s.active); err != nil {
		s.warn("store.save_failed", "active record not persisted", map[string]any{"error": err.Error()})
	}
}

func (s *taskStore) saveCompleted() {
	if err := s.records.SaveCompleted(s.completed); err != nil {
		s.warn("store.save_failed", "completed record not persisted", map[string]any{"error": err.Error()})
	}
}

func (s *taskStore) saveMetadata() {
	if err := s.records.SaveMetadata(s.meta); err != nil {
		s.warn("store.save_failed", "metadata record not persisted", map[string]any{"error": err.Error()})
	}
}

func (s *taskStore) info(eventType, msg string, data map[string]any) {
	if s.events != nil {
		s.events.Emit("INFO", eventType, msg, data)
	}
}

func (s *taskStore) warn(eventType, msg string, data map[string]any) {
	if s.events != nil {
		s.events.Emit("WARN", eventType, msg, data)
	}
}
