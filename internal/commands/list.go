package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"retrodo/internal/config"
	"retrodo/internal/exitcode"
	"retrodo/internal/output"
	"retrodo/internal/store"
	"retrodo/internal/task"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command. Also runs for bare `retrodo`.
type ListCmd struct {
	filter string
}

// SetFilter sets the filter name (for testing).
func (c *ListCmd) SetFilter(name string) {
	c.filter = name
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "retrodo list [--filter all|active|completed]" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.filter, "filter", "all", "")
	fs.StringVar(&c.filter, "f", "all", "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	view, err := task.ParseView(c.filter)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}

	tasks := st.Filter(view)

	if len(tasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}

	// Numbers follow the full collection so they match done/rm/edit
	// arguments under any filter.
	numbers := make(map[string]int, len(tasks))
	for i, t := range st.All() {
		numbers[t.ID] = i + 1
	}

	for _, t := range tasks {
		output.FormatTask(out, numbers[t.ID], t)
	}

	if !cfg.Quiet {
		output.FormatCounts(out, st.Counts())
	}
	return exitcode.Success
}
