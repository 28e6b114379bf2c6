package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nkamat/throng/internal/runner"
	"github.com/nkamat/throng/internal/util"
)

// newRunCmd creates the run command
func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [flags] -- COMMAND",
		Short: "Run a command once per input item",
		Long: `Run a shell command once per input item with bounded concurrency.

The placeholder {} in the command is replaced with the current item; a
command without the placeholder gets the item appended as its final
argument. Every item runs regardless of other items' failures; failures
are reported per item and reflected in the exit code.`,
		Example: `  # Ping every host in hosts.txt, at most 8 at a time
  throng run -f hosts.txt -l 8 -- ping -c1 {}

  # Fetch a URL per line from stdin, JSON results
  cat urls.txt | throng run -o json -- curl -fsS {}`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, strings.Join(args, " "))
		},
	}

	cmd.Flags().BoolP("wide", "w", false, "include command output column in table output")

	return cmd
}

func runRun(cmd *cobra.Command, command string) error {
	opts, mgr, err := loadOptions(cmd)
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

	results, err := runner.Run(cmd.Context(), items, command, opts, slog.Default())
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	formatter := newFormatter(cmd, mgr)
	if err := formatter.FormatResults(os.Stdout, results); err != nil {
		return fmt.Errorf("failed to format results: %w", err)
	}

	if runner.HasErrors(results) {
		return util.NewMultiError(runner.Errors(results)).ErrorOrNil()
	}
	return nil
}
