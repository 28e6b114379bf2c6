package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nkamat/throng/internal/runner"
	"github.com/nkamat/throng/internal/util"
)

// newFilterCmd creates the filter command
func newFilterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter [flags] -- COMMAND",
		Short: "Keep the items whose command succeeds",
		Long: `Run a shell command once per input item and print, in input order,
the items for which the command exited successfully. The tests run
concurrently under the configured limit.`,
		Example: `  # Which hosts answer ping?
  throng filter -f hosts.txt -l 16 -- ping -c1 -W1 {}`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(cmd, strings.Join(args, " "))
		},
	}

	return cmd
}

func runFilter(cmd *cobra.Command, command string) error {
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

	kept, err := runner.Filter(cmd.Context(), items, command, opts, slog.Default())
	if err != nil {
		return fmt.Errorf("filter failed: %w", err)
	}

	for _, item := range kept {
		fmt.Fprintln(cmd.OutOrStdout(), item)
	}
	return nil
}
