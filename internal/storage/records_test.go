package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/valter-silva-au/daystack/pkg/models"
)

func sampleTasks() []models.Task {
	created := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	done := created.Add(2 * time.Hour)
	return []models.Task{
		{ID: "11111111-1111-1111-1111-111111111111", Title: "open task", Bucket: models.BucketToday, CreatedAt: created},
		{ID: "22222222-2222-2222-2222-222222222222", Title: "done task", Bucket: models.BucketThisWeek, CreatedAt: created, CompletedAt: &done},
	}
}

func TestSaveLoadActiveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	mgr := NewRecordManager(dir)

	want := sampleTasks()
	if err := mgr.SaveActive(want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := NewRecordManager(dir).LoadActive()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d tasks, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ID != want[i].ID || got[i].Title != want[i].Title || got[i].Bucket != want[i].Bucket {
			t.Errorf("task %d differs: want %+v, got %+v", i, want[i], got[i])
		}
		if !got[i].CreatedAt.Equal(want[i].CreatedAt) {
			t.Errorf("task %d createdAt differs", i)
		}
		if (got[i].CompletedAt == nil) != (want[i].CompletedAt == nil) {
			t.Errorf("task %d completedAt presence differs", i)
		}
	}
}

func TestLoadMissingRecordsYieldDefaults(t *testing.T) {
	mgr := NewRecordManager(t.TempDir())

	active, err := mgr.LoadActive()
	if err != nil || len(active) != 0 {
		t.Errorf("missing active record should be empty, got %v, %v", active, err)
	}
	completed, err := mgr.LoadCompleted()
	if err != nil || len(completed) != 0 {
		t.Errorf("missing completed record should be empty, got %v, %v", completed, err)
	}
	meta, err := mgr.LoadMetadata()
	if err != nil || meta.LastOpenedDay != "" {
		t.Errorf("missing metadata should be first-run default, got %+v, %v", meta, err)
	}
}

func TestLoadCorruptedRecordsYieldDefaults(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"tasks.json", "completed.json", "meta.json"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{not json"), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	mgr := NewRecordManager(dir)

	if active, err := mgr.LoadActive(); err != nil || len(active) != 0 {
		t.Errorf("corrupt active record should degrade to empty, got %v, %v", active, err)
	}
	if completed, err := mgr.LoadCompleted(); err != nil || len(completed) != 0 {
		t.Errorf("corrupt completed record should degrade to empty, got %v, %v", completed, err)
	}
	if meta, err := mgr.LoadMetadata(); err != nil || meta.LastOpenedDay != "" {
		t.Errorf("corrupt metadata should degrade to default, got %+v, %v", meta, err)
	}
}

func TestMetadataRoundTrip(t *testing.T) {
	dir := t.TempDir()
	mgr := NewRecordManager(dir)

	if err := mgr.SaveMetadata(models.Metadata{LastOpenedDay: "2024-01-02"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	meta, err := NewRecordManager(dir).LoadMetadata()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta.LastOpenedDay != "2024-01-02" {
		t.Errorf("expected 2024-01-02, got %q", meta.LastOpenedDay)
	}
}

func TestSaveCreatesDirectoryAndLeavesNoTempFile(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "daystack")
	mgr := NewRecordManager(base)

	if err := mgr.SaveActive(sampleTasks()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, err := os.ReadDir(base)
	if err != nil {
		t.Fatalf("record directory should exist: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestRecordsAreIndependent(t *testing.T) {
	dir := t.TempDir()
	mgr := NewRecordManager(dir)

	if err := mgr.SaveActive(sampleTasks()); err != nil {
		t.Fatal(err)
	}

	// Corrupting one record leaves the others readable.
	if err := os.WriteFile(filepath.Join(dir, "completed.json"), []byte("garbage"), 0o600); err != nil {
		t.Fatal(err)
	}

	if active, err := mgr.LoadActive(); err != nil || len(active) != 2 {
		t.Errorf("active record should be unaffected, got %d, %v", len(active), err)
	}
	if completed, err := mgr.LoadCompleted(); err != nil || len(completed) != 0 {
		t.Errorf("corrupt completed record should degrade alone, got %v, %v", completed, err)
	}
}

func TestSaveNilSlicePersistsEmptyList(t *testing.T) {
	dir := t.TempDir()
	mgr := NewRecordManager(dir)

	if err := mgr.SaveActive(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "tasks.json"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("nil slice should serialize as an empty list, got %s", data)
	}
}
