package cli

import (
	"io"

	"github.com/spf13/cobra"
)

// completionGenerators maps a shell name to the cobra generator for it.
var completionGenerators = map[string]func(*cobra.Command, io.Writer) error{
	"bash": func(cmd *cobra.Command, w io.Writer) error {
		return cmd.Root().GenBashCompletion(w)
	},
	"zsh": func(cmd *cobra.Command, w io.Writer) error {
		return cmd.Root().GenZshCompletion(w)
	},
	"fish": func(cmd *cobra.Command, w io.Writer) error {
		return cmd.Root().GenFishCompletion(w, true)
	},
	"powershell": func(cmd *cobra.Command, w io.Writer) error {
		return cmd.Root().GenPowerShellCompletionWithDesc(w)
	},
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate a shell completion script",
		Long: `Generate a completion script for the named shell and print it to
standard output. Source it directly, for example:

  source <(throng completion bash)
  throng completion fish | source

or install it where your shell loads completions from, for example:

  throng completion zsh > "${fpath[1]}/_throng"
  throng completion fish > ~/.config/fish/completions/throng.fish
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		// Generating a script needs no config file.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return completionGenerators[args[0]](cmd, cmd.OutOrStdout())
		},
	}
}
