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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "retrodo help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  retrodo                                         List all tasks
  retrodo list [common flags] [--filter all|active|completed]
  retrodo add [common flags] <title...>
  retrodo done [common flags] <n>
  retrodo rm [common flags] <n>
  retrodo edit [common flags] <n> <title...>
  retrodo clear [common flags]
  retrodo status [common flags]
  retrodo ui [common flags]
  retrodo help
  retrodo version

Common flags:
  --data <dir>     Override data directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr

Task numbers refer to positions in the full list, ascending by creation
time, as printed by 'retrodo list'.
`
