package commands

import (
	"errors"
	"fmt"
	"strconv"

	"retrodo/internal/store"
	"retrodo/internal/task"
)

// ErrTaskNumRequired is returned when no task number was given.
var ErrTaskNumRequired = errors.New("task number required")

// ParseTaskNum parses a 1-based task number argument.
func ParseTaskNum(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskNumRequired
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid task number: %s", args[0])
	}
	if n < 1 {
		return 0, fmt.Errorf("task number out of range: %d", n)
	}
	return n, nil
}

// ResolveTaskNum maps a 1-based number in display order to a task.
// Numbering always follows the full collection, not the current filter,
// so numbers printed by `list` stay valid regardless of view.
func ResolveTaskNum(st *store.Store, num int) (task.Task, bool) {
	all := st.All()
	if num < 1 || num > len(all) {
		return task.Task{}, false
	}
	return all[num-1], true
}
