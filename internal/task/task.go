// Package task defines the domain model for task items and title validation.
package task

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	// MaxTitleLen is the maximum title length after trimming, in runes.
	MaxTitleLen = 120

	// RawTitleLimit is the maximum raw input length before trimming.
	// Enforced by input surfaces, not by validation.
	RawTitleLimit = 140
)

// Task represents a single task item.
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	CreatedAt int64  `json:"createdAt"` // epoch milliseconds
}

// ValidationError reports a rejected title. The message is user-facing.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate trims a raw title and checks it against the title rules.
// Returns the trimmed title, or a *ValidationError if it is empty or
// longer than MaxTitleLen runes.
func Validate(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", &ValidationError{Message: "title required"}
	}
	if len([]rune(title)) > MaxTitleLen {
		return "", &ValidationError{Message: fmt.Sprintf("title too long (max %d characters)", MaxTitleLen)}
	}
	return title, nil
}

// NewID generates a task ID unique within and across sessions.
// A base-36 timestamp prefix keeps IDs roughly sortable; the UUID
// suffix makes collisions negligible even within one millisecond.
func NewID(nowMillis int64) string {
	return strconv.FormatInt(nowMillis, 36) + "-" + uuid.NewString()
}

// View selects which tasks a projection includes.
type View string

const (
	ViewAll       View = "all"
	ViewActive    View = "active"
	ViewCompleted View = "completed"
)

// ParseView parses a view name. Unknown names are an error.
func ParseView(s string) (View, error) {
	switch View(strings.ToLower(strings.TrimSpace(s))) {
	case ViewAll:
		return ViewAll, nil
	case ViewActive:
		return ViewActive, nil
	case ViewCompleted:
		return ViewCompleted, nil
	}
	return "", fmt.Errorf("unknown filter: %s", s)
}

// Matches reports whether a task belongs to the view.
func (v View) Matches(t Task) bool {
	switch v {
	case ViewActive:
		return !t.Completed
	case ViewCompleted:
		return t.Completed
	}
	return true
}

// Counts holds derived collection totals. Active+Completed always equals Total.
type Counts struct {
	Total     int
	Active    int
	Completed int
}

// SortByCreated orders tasks ascending by creation time, in place.
// Ties keep their input order.
func SortByCreated(ts []Task) {
	sort.SliceStable(ts, func(i, j int) bool {
		return ts[i].CreatedAt < ts[j].CreatedAt
	})
}
