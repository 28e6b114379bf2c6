package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nkamat/throng/internal/runner"
	"github.com/nkamat/throng/internal/util"
)

// newFindCmd creates the find command
func newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find [flags] -- COMMAND",
		Short: "Print the first item whose command succeeds",
		Long: `Run a shell command per input item concurrently and print a single
item for which the command exited successfully, cancelling the remaining
commands as soon as one succeeds.

The printed item is whichever successful test completed fastest, which is
not necessarily the earliest item in the input.`,
		Example: `  # Find any mirror that is currently reachable
  throng find -f mirrors.txt -l 16 -- curl -fsS --max-time 2 {}`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, strings.Join(args, " "))
		},
	}

	return cmd
}

func runFind(cmd *cobra.Command, command string) error {
	opts, _, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	items, err := readItems(cmd)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return util.ErrNoInput
	}

	item, found, err := runner.Find(cmd.Context(), items, command, opts, slog.Default())
	if err != nil {
		return fmt.Errorf("find failed: %w", err)
	}
	if !found {
		return fmt.Errorf("no item matched")
	}

	fmt.Fprintln(cmd.OutOrStdout(), item)
	return nil
}
