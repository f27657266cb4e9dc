package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
// Scripts are written to the command's output stream.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for funnelchart.

To load completions:

Bash:
  $ source <(funnelchart completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ funnelchart completion bash > /etc/bash_completion.d/funnelchart
  # macOS:
  $ funnelchart completion bash > $(brew --prefix)/etc/bash_completion.d/funnelchart

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ funnelchart completion zsh > "${fpath[1]}/_funnelchart"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ funnelchart completion fish | source

  # To load completions for each session, execute once:
  $ funnelchart completion fish > ~/.config/fish/completions/funnelchart.fish

PowerShell:
  PS> funnelchart completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> funnelchart completion powershell > funnelchart.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return genCompletion(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}

	return cmd
}

func genCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	}
	return fmt.Errorf("unsupported shell %q", shell)
}
