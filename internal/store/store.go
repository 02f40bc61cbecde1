// Package store implements the in-memory task store. It owns the ordered
// task collection plus transient edit and filter state, and writes a full
// snapshot to its Persister after every successful mutation.
package store

import (
	"time"

	"github.com/sirupsen/logrus"

	"retrodo/internal/task"
)

// Persister is the durable slot the store loads from and saves to.
// Save receives the full collection in display order.
type Persister interface {
	Load() ([]task.Task, error)
	Save(tasks []task.Task) error
}

// Store owns all tasks for a session. It is not safe for concurrent use;
// callers invoke one operation at a time.
type Store struct {
	tasks  []task.Task // ascending by CreatedAt, stable
	filter task.View

	// Edit state lives outside the persisted data. At most one task
	// is being edited at a time.
	editID  string
	editBuf string

	persister Persister
	log       *logrus.Logger
}

// Load creates a Store from previously persisted data. A failed or
// malformed load degrades to an empty collection and is never fatal.
func Load(p Persister, log *logrus.Logger) *Store {
	if log == nil {
		log = logrus.New()
	}
	s := &Store{filter: task.ViewAll, persister: p, log: log}

	tasks, err := p.Load()
	if err != nil {
		log.WithError(err).Warn("load failed, starting empty")
		return s
	}
	task.SortByCreated(tasks)
	s.tasks = tasks
	return s
}

// Create validates the raw title and appends a new task. The new task
// receives the most recent CreatedAt in the collection, so it sorts last.
func (s *Store) Create(rawTitle string) (task.Task, error) {
	title, err := task.Validate(rawTitle)
	if err != nil {
		return task.Task{}, err
	}

	now := time.Now().UnixMilli()
	if n := len(s.tasks); n > 0 && now < s.tasks[n-1].CreatedAt {
		// Clock went backwards; keep the ordering guarantee.
		now = s.tasks[n-1].CreatedAt
	}

	t := task.Task{
		ID:        task.NewID(now),
		Title:     title,
		Completed: false,
		CreatedAt: now,
	}
	s.tasks = append(s.tasks, t)
	s.persist()
	return t, nil
}

// StartEdit marks the task as the edit target and seeds the edit buffer
// with its current title. Unknown IDs are a no-op; returns whether an
// edit was started.
func (s *Store) StartEdit(id string) bool {
	t, ok := s.find(id)
	if !ok {
		return false
	}
	s.editID = id
	s.editBuf = t.Title
	return true
}

// EditTarget returns the ID and seeded buffer of the task being edited,
// if any.
func (s *Store) EditTarget() (id, buffer string, ok bool) {
	return s.editID, s.editBuf, s.editID != ""
}

// CancelEdit clears edit state. Nothing was mutated, so nothing persists.
func (s *Store) CancelEdit() {
	s.editID = ""
	s.editBuf = ""
}

// CommitEdit validates the new title and applies it to the edit target.
// On a validation error the edit state is preserved so the caller can
// correct the input. A missing edit target is a silent no-op.
func (s *Store) CommitEdit(rawTitle string) error {
	if s.editID == "" {
		return nil
	}
	title, err := task.Validate(rawTitle)
	if err != nil {
		return err
	}

	for i := range s.tasks {
		if s.tasks[i].ID == s.editID {
			s.tasks[i].Title = title
			s.CancelEdit()
			s.persist()
			return nil
		}
	}
	// Target vanished since StartEdit; treat as stale and drop the edit.
	s.CancelEdit()
	return nil
}

// Toggle flips the completed flag of the matching task. Unknown IDs are
// a no-op.
func (s *Store) Toggle(id string) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			s.persist()
			return
		}
	}
}

// Delete removes the matching task. Deleting the edit target cancels the
// edit. Unknown IDs are a no-op.
func (s *Store) Delete(id string) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			if s.editID == id {
				s.CancelEdit()
			}
			s.persist()
			return
		}
	}
}

// ClearCompleted removes every completed task and returns how many were
// removed. If the edit target was among them the edit is cancelled.
func (s *Store) ClearCompleted() int {
	kept := s.tasks[:0]
	removed := 0
	editKept := s.editID == ""
	for _, t := range s.tasks {
		if t.Completed {
			removed++
			continue
		}
		if t.ID == s.editID {
			editKept = true
		}
		kept = append(kept, t)
	}
	if removed == 0 {
		return 0
	}
	s.tasks = kept
	if !editKept {
		s.CancelEdit()
	}
	s.persist()
	return removed
}

// SetFilter selects the current view. The filter is session state only.
func (s *Store) SetFilter(v task.View) {
	s.filter = v
}

// CurrentFilter returns the active view.
func (s *Store) CurrentFilter() task.View {
	return s.filter
}

// Filter returns a copy of the tasks matching the view, ascending by
// CreatedAt. It never mutates the collection.
func (s *Store) Filter(v task.View) []task.Task {
	var out []task.Task
	for _, t := range s.tasks {
		if v.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// All returns every task in display order.
func (s *Store) All() []task.Task {
	return s.Filter(task.ViewAll)
}

// Counts returns derived totals for the whole collection.
func (s *Store) Counts() task.Counts {
	c := task.Counts{Total: len(s.tasks)}
	for _, t := range s.tasks {
		if t.Completed {
			c.Completed++
		}
	}
	c.Active = c.Total - c.Completed
	return c
}

// persist writes the full collection. Failures are swallowed: in-memory
// state stays authoritative for the rest of the session.
func (s *Store) persist() {
	snapshot := make([]task.Task, len(s.tasks))
	copy(snapshot, s.tasks)
	if err := s.persister.Save(snapshot); err != nil {
		s.log.WithError(err).Warn("persist failed, continuing in memory")
	}
}

func (s *Store) find(id string) (task.Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return task.Task{}, false
}
