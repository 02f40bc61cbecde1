package commands

import (
	"context"
	"flag"
	"io"

	"retrodo/internal/config"
	"retrodo/internal/exitcode"
	"retrodo/internal/output"
	"retrodo/internal/store"
)

func init() {
	Register(&StatusCmd{})
}

// StatusCmd prints the counts line only.
type StatusCmd struct{}

func (c *StatusCmd) Name() string      { return "status" }
func (c *StatusCmd) Aliases() []string { return []string{"counts"} }
func (c *StatusCmd) Synopsis() string  { return "Print task counts" }
func (c *StatusCmd) Usage() string     { return "retrodo status" }
func (c *StatusCmd) NeedsStore() bool  { return true }

func (c *StatusCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *StatusCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	output.FormatCounts(out, st.Counts())
	return exitcode.Success
}
