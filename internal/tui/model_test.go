package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"retrodo/internal/logging"
	"retrodo/internal/store"
	"retrodo/internal/task"
	"retrodo/internal/testutil"
)

func newTestModel(t *testing.T, seed ...task.Task) Model {
	t.Helper()
	p := testutil.NewFakePersister()
	p.Seed(seed...)
	return New(store.Load(p, logging.Discard()))
}

func press(m Model, keys ...tea.KeyMsg) Model {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestAddFlow(t *testing.T) {
	m := newTestModel(t)

	m = press(m, key("a"))
	if m.mode != modeAdd {
		t.Fatal("expected add mode")
	}

	m = typeText(m, "Buy milk")
	m = press(m, key("enter"))

	if m.mode != modeAdd {
		t.Error("should stay in add mode after a successful create")
	}
	all := m.st.All()
	if len(all) != 1 || all[0].Title != "Buy milk" {
		t.Errorf("expected created task, got %v", all)
	}
	if m.input.Value() != "" {
		t.Error("input should reset after create")
	}
}

func TestAddFlow_CursorFollowsNewTask(t *testing.T) {
	m := newTestModel(t,
		task.Task{ID: "t1", Title: "open", CreatedAt: 1},
		task.Task{ID: "t2", Title: "done", Completed: true, CreatedAt: 2},
	)

	m = press(m, key("a"))
	m = typeText(m, "newest")
	m = press(m, key("enter"))
	if m.cursor != 2 {
		t.Errorf("cursor should land on the new task, got %d", m.cursor)
	}

	// Under the completed filter the new active task is invisible; the
	// cursor must stay on a visible item.
	m.st.SetFilter(task.ViewCompleted)
	m = typeText(m, "another")
	m = press(m, key("enter"))
	if m.cursor != 0 {
		t.Errorf("cursor should reset when the new task is not visible, got %d", m.cursor)
	}
	if n := len(m.visible()); m.cursor >= n {
		t.Errorf("cursor %d out of range for %d visible tasks", m.cursor, n)
	}
}

func TestAddFlow_ValidationNotice(t *testing.T) {
	m := newTestModel(t)

	m = press(m, key("a"), key("enter"))

	if m.notice == "" {
		t.Fatal("expected a validation notice")
	}
	if m.st.Counts().Total != 0 {
		t.Error("nothing should be created")
	}

	// A stale expiry must not clear a newer notice.
	next, _ := m.Update(noticeExpiredMsg{gen: m.noticeGen - 1})
	m = next.(Model)
	if m.notice == "" {
		t.Error("stale timer cleared the notice")
	}

	// The matching expiry clears it.
	next, _ = m.Update(noticeExpiredMsg{gen: m.noticeGen})
	m = next.(Model)
	if m.notice != "" {
		t.Error("notice should be cleared by its own timer")
	}
}

func TestNotice_ClearedBySuccessfulOperation(t *testing.T) {
	m := newTestModel(t, task.Task{ID: "t1", Title: "x", CreatedAt: 1})

	m = press(m, key("a"), key("enter"))
	if m.notice == "" {
		t.Fatal("expected a validation notice")
	}

	m = press(m, key("esc"), key(" "))
	if m.notice != "" {
		t.Error("successful toggle should clear the notice")
	}
}

func TestToggleAndDelete(t *testing.T) {
	m := newTestModel(t,
		task.Task{ID: "t1", Title: "a", CreatedAt: 1},
		task.Task{ID: "t2", Title: "b", CreatedAt: 2},
	)

	m = press(m, key(" "))
	if !m.st.All()[0].Completed {
		t.Error("space should toggle the task under the cursor")
	}

	m = press(m, key("d"))
	if m.st.Counts().Total != 1 {
		t.Errorf("expected 1 task after delete, got %d", m.st.Counts().Total)
	}
	if m.cursor != 0 {
		t.Errorf("cursor should clamp, got %d", m.cursor)
	}
}

func TestEditFlow(t *testing.T) {
	m := newTestModel(t, task.Task{ID: "t1", Title: "old", CreatedAt: 1})

	m = press(m, key("enter"))
	if m.mode != modeEdit {
		t.Fatal("expected edit mode")
	}
	if m.editInput.Value() != "old" {
		t.Errorf("edit input should seed with the title, got %q", m.editInput.Value())
	}

	m = typeText(m, "er")
	m = press(m, key("enter"))

	if m.mode != modeBrowse {
		t.Error("commit should return to browse mode")
	}
	if got := m.st.All()[0].Title; got != "older" {
		t.Errorf("expected %q, got %q", "older", got)
	}
}

func TestEditFlow_CancelKeepsTitle(t *testing.T) {
	m := newTestModel(t, task.Task{ID: "t1", Title: "old", CreatedAt: 1})

	m = press(m, key("enter"))
	m = typeText(m, "garbage")
	m = press(m, key("esc"))

	if m.mode != modeBrowse {
		t.Error("esc should return to browse mode")
	}
	if m.st.All()[0].Title != "old" {
		t.Error("cancel must not change the title")
	}
	if _, _, ok := m.st.EditTarget(); ok {
		t.Error("cancel should clear the store's edit state")
	}
}

func TestFilterCycling(t *testing.T) {
	m := newTestModel(t,
		task.Task{ID: "t1", Title: "open", CreatedAt: 1},
		task.Task{ID: "t2", Title: "done", Completed: true, CreatedAt: 2},
	)

	m = press(m, key("tab"))
	if m.st.CurrentFilter() != task.ViewActive {
		t.Errorf("expected active view, got %s", m.st.CurrentFilter())
	}
	if len(m.visible()) != 1 || m.visible()[0].ID != "t1" {
		t.Error("active view should show only the open task")
	}

	m = press(m, key("tab"))
	if m.st.CurrentFilter() != task.ViewCompleted {
		t.Errorf("expected completed view, got %s", m.st.CurrentFilter())
	}

	m = press(m, key("tab"))
	if m.st.CurrentFilter() != task.ViewAll {
		t.Errorf("expected all view, got %s", m.st.CurrentFilter())
	}

	m = press(m, key("2"))
	if m.st.CurrentFilter() != task.ViewActive {
		t.Error("number keys should select filters directly")
	}
}
