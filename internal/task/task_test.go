package task_test

import (
	"errors"
	"strings"
	"testing"

	"retrodo/internal/task"
)

func TestValidate_TrimsWhitespace(t *testing.T) {
	got, err := task.Validate("  Buy milk  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Buy milk" {
		t.Errorf("expected %q, got %q", "Buy milk", got)
	}
}

func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace only", "   \t  "},
		{"newlines only", "\n\n"},
		{"too long", strings.Repeat("x", task.MaxTitleLen+1)},
		{"too long after trim", "  " + strings.Repeat("x", task.MaxTitleLen+1) + "  "},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := task.Validate(tc.raw)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			var ve *task.ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("expected *ValidationError, got %T", err)
			}
			if ve.Message == "" {
				t.Error("expected a user-facing message")
			}
		})
	}
}

func TestValidate_MaxLenBoundary(t *testing.T) {
	// Exactly MaxTitleLen runes is accepted; multi-byte runes count as one.
	title := strings.Repeat("å", task.MaxTitleLen)
	got, err := task.Validate(title)
	if err != nil {
		t.Fatalf("unexpected error at boundary: %v", err)
	}
	if got != title {
		t.Errorf("title changed: %q", got)
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := task.NewID(1700000000000)
		if seen[id] {
			t.Fatalf("duplicate id: %s", id)
		}
		seen[id] = true
	}
}

func TestParseView(t *testing.T) {
	for _, s := range []string{"all", "Active", " completed "} {
		if _, err := task.ParseView(s); err != nil {
			t.Errorf("ParseView(%q): unexpected error: %v", s, err)
		}
	}
	if _, err := task.ParseView("bogus"); err == nil {
		t.Error("expected error for unknown view")
	}
}

func TestViewMatches(t *testing.T) {
	open := task.Task{ID: "a", Title: "open"}
	done := task.Task{ID: "b", Title: "done", Completed: true}

	if !task.ViewAll.Matches(open) || !task.ViewAll.Matches(done) {
		t.Error("all should match everything")
	}
	if !task.ViewActive.Matches(open) || task.ViewActive.Matches(done) {
		t.Error("active should match only open tasks")
	}
	if task.ViewCompleted.Matches(open) || !task.ViewCompleted.Matches(done) {
		t.Error("completed should match only done tasks")
	}
}

func TestSortByCreated_StableTies(t *testing.T) {
	ts := []task.Task{
		{ID: "c", CreatedAt: 30},
		{ID: "a1", CreatedAt: 10},
		{ID: "a2", CreatedAt: 10},
		{ID: "b", CreatedAt: 20},
	}
	task.SortByCreated(ts)

	want := []string{"a1", "a2", "b", "c"}
	for i, id := range want {
		if ts[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, ts[i].ID)
		}
	}
}
