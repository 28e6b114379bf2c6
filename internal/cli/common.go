package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nkamat/throng"
	"github.com/nkamat/throng/internal/config"
	"github.com/nkamat/throng/internal/output"
	"github.com/nkamat/throng/internal/runner"
	"github.com/nkamat/throng/internal/util"
)

// loadOptions merges the config file tier and the flag tier into runner
// options, and installs the file's defaults as the engine's process-wide
// tier so that library-level resolution sees them too.
func loadOptions(cmd *cobra.Command) (runner.Options, *config.Manager, error) {
	mgr := config.NewManager(cfgFile)
	if _, err := mgr.Load(); err != nil {
		return runner.Options{}, nil, err
	}

	profileName, _ := cmd.Flags().GetString("profile")
	merged := mgr.GetProfile(profileName)

	// The config file's limit becomes the process-wide default tier;
	// flags act as the call-site tier below.
	throng.SetDefault(throng.Settings{Limit: merged.Limit})

	opts := runner.Options{
		Limit:   merged.Limit,
		Timeout: merged.Timeout,
		Shell:   merged.Shell,
	}

	if limit, _ := cmd.Flags().GetInt("limit"); limit != 0 {
		if limit < 0 {
			return runner.Options{}, nil, fmt.Errorf("%w: %d", util.ErrInvalidLimit, limit)
		}
		opts.Limit = limit
	}
	if cmd.Flags().Changed("timeout") {
		timeout, _ := cmd.Flags().GetDuration("timeout")
		opts.Timeout = timeout
	}

	return opts, mgr, nil
}

// readItems reads the input items from --file, or stdin when no file is
// given
func readItems(cmd *cobra.Command) ([]string, error) {
	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		return runner.ReadItems(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	return runner.ReadItems(f)
}

// newFormatter builds the output formatter from the flag and config tiers
func newFormatter(cmd *cobra.Command, mgr *config.Manager) output.Formatter {
	format, _ := cmd.Flags().GetString("output")
	if format == "" {
		format = mgr.GetConfig().Defaults.OutputFormat
	}

	noColor, _ := cmd.Flags().GetBool("no-color")
	if mgr.GetConfig().Defaults.NoColor {
		noColor = true
	}

	wide, _ := cmd.Flags().GetBool("wide")

	return output.NewFormatter(output.Format(format),
		output.WithNoColor(noColor),
		output.WithWide(wide))
}
