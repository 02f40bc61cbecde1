package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"retrodo/internal/config"
	"retrodo/internal/exitcode"
	"retrodo/internal/store"
)

func init() {
	Register(&ClearCmd{})
}

// ClearCmd implements the clear command.
type ClearCmd struct{}

func (c *ClearCmd) Name() string      { return "clear" }
func (c *ClearCmd) Aliases() []string { return nil }
func (c *ClearCmd) Synopsis() string  { return "Remove all completed tasks" }
func (c *ClearCmd) Usage() string     { return "retrodo clear" }
func (c *ClearCmd) NeedsStore() bool  { return true }

func (c *ClearCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ClearCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	removed := st.ClearCompleted()

	if !cfg.Quiet {
		if removed == 1 {
			fmt.Fprintln(out, "removed 1 completed task")
		} else {
			fmt.Fprintf(out, "removed %d completed tasks\n", removed)
		}
	}
	return exitcode.Success
}
