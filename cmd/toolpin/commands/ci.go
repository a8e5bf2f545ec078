package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/toolpin/internal/app"
)

func (c *CLI) newCICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ci",
		Short: "Continuous integration helpers",
	}
	cmd.AddCommand(c.newSetEnvCmd())
	return cmd
}

func (c *CLI) newSetEnvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-env",
		Short: "Append the pinned versions to the CI environment file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			envFile, _ := cmd.Flags().GetString("env-file")
			return c.app.SetEnv(cmd.Context(), c.options(false), app.SetEnvOptions{EnvFile: envFile})
		},
	}

	cmd.Flags().String("env-file", "", "File to append to (defaults to the file named by $GITHUB_ENV)")

	return cmd
}
