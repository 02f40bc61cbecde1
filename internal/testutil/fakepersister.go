// Package testutil provides testing utilities.
package testutil

import (
	"sync"

	"retrodo/internal/task"
)

// FakePersister is an in-memory implementation of store.Persister for
// testing. It records every save and supports error injection.
type FakePersister struct {
	mu    sync.Mutex
	tasks []task.Task
	saves int

	// Error injection for testing
	LoadErr error
	SaveErr error
}

// NewFakePersister creates an empty FakePersister.
func NewFakePersister() *FakePersister {
	return &FakePersister{}
}

// Seed replaces the persisted collection.
func (f *FakePersister) Seed(tasks ...task.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append([]task.Task(nil), tasks...)
}

// Load implements store.Persister.
func (f *FakePersister) Load() ([]task.Task, error) {
	if f.LoadErr != nil {
		return nil, f.LoadErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]task.Task(nil), f.tasks...), nil
}

// Save implements store.Persister.
func (f *FakePersister) Save(tasks []task.Task) error {
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append([]task.Task(nil), tasks...)
	f.saves++
	return nil
}

// Saved returns the last saved collection.
func (f *FakePersister) Saved() []task.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]task.Task(nil), f.tasks...)
}

// SaveCount returns how many times Save succeeded.
func (f *FakePersister) SaveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saves
}
