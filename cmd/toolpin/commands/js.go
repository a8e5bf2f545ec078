package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/toolpin/internal/core/domain"
)

func (c *CLI) newJSCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "js",
		Short: "Run JS client scripts with the configured package manager",
	}
	cmd.AddCommand(c.newJSTestCmd())
	cmd.AddCommand(c.newJSFormatCmd())
	return cmd
}

func (c *CLI) newJSTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test <folder> [args...]",
		Short: "Install, build and test the JS client of a folder",
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			return c.app.JSTest(cmd.Context(), c.options(dryRun), domain.NewArguments(args))
		},
	}

	addPassthroughFlags(cmd)

	return cmd
}

func (c *CLI) newJSFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format <folder> [args...]",
		Short: "Install dependencies and format the JS client of a folder",
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			return c.app.JSFormat(cmd.Context(), c.options(dryRun), domain.NewArguments(args))
		},
	}

	addPassthroughFlags(cmd)

	return cmd
}
