package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newSolanaVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solana-version",
		Short: "Print the pinned Solana version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			version, err := c.app.SolanaVersion(cmd.Context(), c.options(false))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	}
}

func (c *CLI) newToolchainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toolchain <channel>",
		Short: "Print the toolchain pinned for a channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toolchain, err := c.app.Toolchain(cmd.Context(), c.options(false), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), toolchain)
			return nil
		},
	}
}

func (c *CLI) newToolchainArgCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toolchain-arg <channel>",
		Short: "Print the cargo toolchain flag for a channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg, err := c.app.ToolchainArgument(cmd.Context(), c.options(false), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), arg)
			return nil
		},
	}
}

func (c *CLI) newToolchainsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toolchains",
		Short: "List every pinned toolchain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			specs, err := c.app.Toolchains(cmd.Context(), c.options(false))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, spec := range specs {
				_, _ = fmt.Fprintf(out, "%s=%s\n", spec.Channel, spec.Version)
			}
			return nil
		},
	}
}

func (c *CLI) newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "root",
		Short: "Print the repository root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := c.app.WorkingDirectory(cmd.Context(), c.options(false))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), root)
			return nil
		},
	}
}
