package localdisk_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"retrodo/internal/backend/localdisk"
	"retrodo/internal/config"
	"retrodo/internal/logging"
	"retrodo/internal/task"
)

func newDiskStore(t *testing.T) *localdisk.Store {
	t.Helper()
	cfg := &config.Config{DataDir: t.TempDir()}
	return localdisk.New(cfg, logging.Discard())
}

func writeSlot(t *testing.T, s *localdisk.Store, data string) {
	t.Helper()
	if err := os.WriteFile(s.Path(), []byte(data), 0600); err != nil {
		t.Fatalf("write slot: %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	s := newDiskStore(t)

	tasks, err := s.Load()
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected empty, got %d tasks", len(tasks))
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := newDiskStore(t)

	want := []task.Task{
		{ID: "a", Title: "Buy milk", Completed: true, CreatedAt: 1700000000000},
		{ID: "b", Title: "Write report", Completed: false, CreatedAt: 1700000000001},
	}
	if err := s.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d tasks, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("task %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestSave_CreatesDataDir(t *testing.T) {
	cfg := &config.Config{DataDir: filepath.Join(t.TempDir(), "nested", "dir")}
	s := localdisk.New(cfg, logging.Discard())

	if err := s.Save([]task.Task{{ID: "a", Title: "x"}}); err != nil {
		t.Fatalf("save into missing dir: %v", err)
	}
	if _, err := os.Stat(s.Path()); err != nil {
		t.Errorf("slot file missing: %v", err)
	}
}

func TestSave_EmptyCollectionWritesArray(t *testing.T) {
	s := newDiskStore(t)

	if err := s.Save(nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("expected empty array, got %q", data)
	}
}

func TestLoad_NonArrayValue(t *testing.T) {
	for name, data := range map[string]string{
		"object":  `{"id":"a","title":"x","completed":false}`,
		"garbage": `not json at all`,
		"number":  `42`,
	} {
		t.Run(name, func(t *testing.T) {
			s := newDiskStore(t)
			writeSlot(t, s, data)

			tasks, err := s.Load()
			if err != nil {
				t.Fatalf("malformed data should not error: %v", err)
			}
			if len(tasks) != 0 {
				t.Errorf("expected empty, got %d tasks", len(tasks))
			}
		})
	}
}

func TestLoad_DropsNonConformingElements(t *testing.T) {
	s := newDiskStore(t)
	// Numeric id, missing completed, and a bare string are dropped;
	// the valid element survives.
	writeSlot(t, s, `[
		{"id": 1, "title": "x", "completed": false},
		{"id": "b", "title": "no completed"},
		"junk",
		{"id": "c", "title": "keep me", "completed": true, "createdAt": 123}
	]`)

	tasks, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 surviving task, got %d", len(tasks))
	}
	if tasks[0].ID != "c" || tasks[0].Title != "keep me" || !tasks[0].Completed || tasks[0].CreatedAt != 123 {
		t.Errorf("unexpected survivor: %+v", tasks[0])
	}
}

func TestLoad_SubstitutesCreatedAt(t *testing.T) {
	s := newDiskStore(t)
	writeSlot(t, s, `[
		{"id": "a", "title": "missing", "completed": false},
		{"id": "b", "title": "wrong type", "completed": false, "createdAt": "yesterday"},
		{"id": "c", "title": "null", "completed": false, "createdAt": null}
	]`)

	before := time.Now().UnixMilli()
	tasks, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	after := time.Now().UnixMilli()

	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	for _, tk := range tasks {
		if tk.CreatedAt < before || tk.CreatedAt > after {
			t.Errorf("task %s: createdAt %d not substituted with current time", tk.ID, tk.CreatedAt)
		}
	}
}

func TestSave_LeavesNoTempFile(t *testing.T) {
	s := newDiskStore(t)
	if err := s.Save([]task.Task{{ID: "a", Title: "x"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(s.Path() + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file should be renamed away")
	}
}
