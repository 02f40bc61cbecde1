package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"retrodo/internal/config"
	"retrodo/internal/exitcode"
	"retrodo/internal/store"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command. The CLI has no interactive edit
// buffer, so it starts and commits the edit in one step.
type EditCmd struct{}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Replace a task's title" }
func (c *EditCmd) Usage() string     { return "retrodo edit <n> <title...>" }
func (c *EditCmd) NeedsStore() bool  { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	num, err := ParseTaskNum(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}

	t, ok := ResolveTaskNum(st, num)
	if !ok {
		fmt.Fprintf(errOut, "error: task number out of range: %d\n", num)
		return exitcode.UserError
	}

	title := strings.Join(args[1:], " ")

	st.StartEdit(t.ID)
	if err := st.CommitEdit(title); err != nil {
		st.CancelEdit()
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
