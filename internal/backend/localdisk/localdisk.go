// Package localdisk implements the store.Persister interface over a single
// JSON file in the data directory.
package localdisk

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"retrodo/internal/config"
	"retrodo/internal/task"
)

// Key is the fixed name of the persisted slot. The on-disk file is
// Key + ".json".
const Key = "retro_todos_v1"

// Store reads and writes the task collection as a JSON array of
// {id, title, completed, createdAt} objects.
type Store struct {
	path string
	log  *logrus.Logger
}

// New creates a localdisk store rooted at the config's data directory.
func New(cfg *config.Config, log *logrus.Logger) *Store {
	if log == nil {
		log = logrus.New()
	}
	return &Store{path: filepath.Join(cfg.DataDir, Key+".json"), log: log}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// record mirrors the persisted object shape. Pointer fields distinguish
// missing from zero; CreatedAt stays raw so a wrong type degrades to a
// substituted timestamp instead of dropping the element.
type record struct {
	ID        *string         `json:"id"`
	Title     *string         `json:"title"`
	Completed *bool           `json:"completed"`
	CreatedAt json.RawMessage `json:"createdAt"`
}

// Load reads the persisted slot. A missing file, a non-array value, and
// non-conforming elements all degrade: elements that lack a string id,
// string title, or boolean completed are dropped one by one, and a
// missing or non-numeric createdAt is replaced with the current time.
// Only an unreadable file is reported, and callers treat that as empty
// too.
func (s *Store) Load() ([]task.Task, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		s.log.WithError(err).Warn("persisted data is not an array, starting empty")
		return nil, nil
	}

	now := time.Now().UnixMilli()
	var tasks []task.Task
	for i, elem := range raw {
		var r record
		if err := json.Unmarshal(elem, &r); err != nil {
			s.log.WithField("index", i).Debug("dropping malformed element")
			continue
		}
		if r.ID == nil || r.Title == nil || r.Completed == nil {
			s.log.WithField("index", i).Debug("dropping element with missing fields")
			continue
		}
		tasks = append(tasks, task.Task{
			ID:        *r.ID,
			Title:     *r.Title,
			Completed: *r.Completed,
			CreatedAt: createdAtOr(r.CreatedAt, now),
		})
	}
	return tasks, nil
}

// Save writes the full collection through a temp file and rename.
func (s *Store) Save(tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}

// createdAtOr parses an epoch-millisecond number, substituting now for a
// missing or non-numeric value. A pointer target distinguishes a JSON
// null, which unmarshals without error, from a real number.
func createdAtOr(raw json.RawMessage, now int64) int64 {
	if len(raw) == 0 {
		return now
	}
	var ms *float64
	if err := json.Unmarshal(raw, &ms); err != nil || ms == nil {
		return now
	}
	return int64(*ms)
}
