// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"retrodo/internal/task"
)

// FormatTask formats a task line.
// Format: "{N:>4}  [x]  {TITLE}\n" with "[ ]" for active tasks.
func FormatTask(w io.Writer, num int, t task.Task) {
	mark := " "
	if t.Completed {
		mark = "x"
	}
	fmt.Fprintf(w, "%4d  [%s]  %s\n", num, mark, normalizeTitle(t.Title))
}

// FormatCounts formats the counts footer line.
func FormatCounts(w io.Writer, c task.Counts) {
	fmt.Fprintf(w, "%d total, %d active, %d completed\n", c.Total, c.Active, c.Completed)
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
