package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// newConfigCmd creates the config command
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the effective settings after merging the config file, the selected
profile and the command-line flags.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(cmd)
		},
	}

	return cmd
}

func runConfig(cmd *cobra.Command) error {
	opts, mgr, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	profile, _ := cmd.Flags().GetString("profile")

	data := map[string]interface{}{
		"limit":        opts.Limit,
		"timeout":      opts.Timeout.String(),
		"shell":        opts.Shell,
		"outputFormat": mgr.GetConfig().Defaults.OutputFormat,
		"profile":      profile,
	}

	formatter := newFormatter(cmd, mgr)
	if err := formatter.Format(os.Stdout, data); err != nil {
		return fmt.Errorf("failed to format config: %w", err)
	}
	return nil
}
