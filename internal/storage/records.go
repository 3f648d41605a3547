// Package storage persists the daystack records to an application-private
// directory as independent JSON documents. Each record is written atomically
// so a crash mid-write never leaves a half-written file behind.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/valter-silva-au/daystack/pkg/models"
)

const (
	activeFileName    = "tasks.json"
	completedFileName = "completed.json"
	metaFileName      = "meta.json"
)

// RecordManager defines the interface for durable load/save of the three
// daystack records: active tasks, completed tasks, and metadata.
//
// Loads are tolerant by contract: a missing record yields its empty default,
// and so does a record that fails to parse. Corrupted persisted state must
// never prevent startup; losing the corrupt record is the accepted tradeoff.
type RecordManager interface {
	LoadActive() ([]models.Task, error)
	LoadCompleted() ([]models.Task, error)
	LoadMetadata() (models.Metadata, error)
	SaveActive(tasks []models.Task) error
	SaveCompleted(tasks []models.Task) error
	SaveMetadata(meta models.Metadata) error
}

type fileRecordManager struct {
	basePath string
}

// NewRecordManager creates a RecordManager that stores its records in the
// given base directory. The directory is created on the first save.
func NewRecordManager(basePath string) RecordManager {
	return &fileRecordManager{basePath: basePath}
}

func (m *fileRecordManager) LoadActive() ([]models.Task, error) {
	return m.loadTasks(activeFileName)
}

func (m *fileRecordManager) LoadCompleted() ([]models.Task, error) {
	return m.loadTasks(completedFileName)
}

func (m *fileRecordManager) LoadMetadata() (models.Metadata, error) {
	var meta models.Metadata
	data, err := os.ReadFile(filepath.Join(m.basePath, metaFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return meta, nil
		}
		return meta, fmt.Errorf("loading metadata: %w", err)
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		// Corrupt metadata resets to first-run state.
		return models.Metadata{}, nil
	}
	return meta, nil
}

func (m *fileRecordManager) loadTasks(name string) ([]models.Task, error) {
	data, err := os.ReadFile(filepath.Join(m.basePath, name))
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Task{}, nil
		}
		return nil, fmt.Errorf("loading %s: %w", name, err)
	}
	var tasks []models.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		// Corrupt record degrades to empty rather than failing startup.
		return []models.Task{}, nil
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, nil
}

func (m *fileRecordManager) SaveActive(tasks []models.Task) error {
	return m.saveTasks(activeFileName, tasks)
}

func (m *fileRecordManager) SaveCompleted(tasks []models.Task) error {
	return m.saveTasks(completedFileName, tasks)
}

func (m *fileRecordManager) SaveMetadata(meta models.Metadata) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("saving metadata: marshaling JSON: %w", err)
	}
	return m.writeAtomic(metaFileName, data)
}

func (m *fileRecordManager) saveTasks(name string, tasks []models.Task) error {
	if tasks == nil {
		tasks = []models.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("saving %s: marshaling JSON: %w", name, err)
	}
	return m.writeAtomic(name, data)
}

// writeAtomic writes data to a temp file in the record directory and renames
// it over the target. Rename within one directory is atomic on POSIX
// filesystems, so readers observe either the old record or the new one.
func (m *fileRecordManager) writeAtomic(name string, data []byte) error {
	if err := os.MkdirAll(m.basePath, 0o750); err != nil {
		return fmt.Errorf("saving %s: creating directory: %w", name, err)
	}
	target := filepath.Join(m.basePath, name)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("saving %s: writing temp file: %w", name, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("saving %s: replacing record: %w", name, err)
	}
	return nil
}
