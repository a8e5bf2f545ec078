package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/toolpin/internal/core/domain"
)

func (c *CLI) newRustCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rust",
		Short: "Run cargo with the pinned toolchain",
	}
	cmd.AddCommand(c.newHackCmd())
	return cmd
}

func (c *CLI) newHackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hack [--dry-run] [args...]",
		Short: "Check every feature combination with cargo hack",
		RunE: func(cmd *cobra.Command, args []string) error {
			lead, err := c.splitLeadingFlags(args)
			if err != nil {
				return err
			}
			if lead.help {
				return cmd.Help()
			}
			c.applyLogFormat()
			return c.app.Hack(cmd.Context(), c.options(lead.dryRun), domain.NewArguments(lead.rest))
		},
	}

	// Every argument after the leading toolpin flags belongs to cargo hack.
	cmd.DisableFlagParsing = true
	cmd.Flags().Bool("dry-run", false, "Print the commands instead of running them")

	return cmd
}

// addPassthroughFlags stops flag parsing at the first positional argument
// so the rest reaches the wrapped tool untouched.
func addPassthroughFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("dry-run", false, "Print the commands instead of running them")
	cmd.Flags().SetInterspersed(false)
}
