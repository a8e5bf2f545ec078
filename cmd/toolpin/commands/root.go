// Package commands implements the CLI commands for the toolpin version resolver.
package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/toolpin/internal/app"
	"go.trai.ch/toolpin/internal/build"
	"go.trai.ch/toolpin/internal/core/domain"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for toolpin.
type CLI struct {
	app       Application
	formatter LogFormatter
	rootCmd   *cobra.Command

	root     string
	manifest string
	jsonLogs bool
}

// Application represents the application logic interface.
type Application interface {
	SolanaVersion(ctx context.Context, opts app.Options) (string, error)
	Toolchain(ctx context.Context, opts app.Options, channel string) (string, error)
	ToolchainArgument(ctx context.Context, opts app.Options, channel string) (string, error)
	Toolchains(ctx context.Context, opts app.Options) ([]domain.ToolchainSpec, error)
	WorkingDirectory(ctx context.Context, opts app.Options) (string, error)
	SetEnv(ctx context.Context, opts app.Options, envOpts app.SetEnvOptions) error
	Hack(ctx context.Context, opts app.Options, args domain.Arguments) error
	JSTest(ctx context.Context, opts app.Options, args domain.Arguments) error
	JSFormat(ctx context.Context, opts app.Options, args domain.Arguments) error
}

// LogFormatter switches the logger between human and JSON output.
type LogFormatter interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "toolpin",
		Short:         "Resolve pinned Solana and Rust toolchain versions",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.root, "root", "", "Repository root (discovered from the working directory by default)")
	flags.StringVar(&c.manifest, "manifest", "",
		"Manifest path relative to the root (default from toolpin.yaml, else "+domain.ManifestFileName+")")
	flags.BoolVar(&c.jsonLogs, "json-logs", false, "Emit logs as JSON")

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		c.applyLogFormat()
	}

	rootCmd.AddCommand(c.newSolanaVersionCmd())
	rootCmd.AddCommand(c.newToolchainCmd())
	rootCmd.AddCommand(c.newToolchainArgCmd())
	rootCmd.AddCommand(c.newToolchainsCmd())
	rootCmd.AddCommand(c.newRootCmd())
	rootCmd.AddCommand(c.newCICmd())
	rootCmd.AddCommand(c.newRustCmd())
	rootCmd.AddCommand(c.newJSCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// WithLogFormatter lets --json-logs reconfigure the logger.
func (c *CLI) WithLogFormatter(f LogFormatter) *CLI {
	c.formatter = f
	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) options(dryRun bool) app.Options {
	return app.Options{
		Root:     c.root,
		Manifest: c.manifest,
		DryRun:   dryRun,
	}
}

func (c *CLI) applyLogFormat() {
	if c.jsonLogs && c.formatter != nil {
		c.formatter.SetJSON(true)
	}
}

// leadingFlags is what splitLeadingFlags consumed in front of the forwarded arguments.
type leadingFlags struct {
	rest   []string
	dryRun bool
	help   bool
}

// splitLeadingFlags reads the global flags and --dry-run for a command that
// parses its own arguments. It stops at the first other argument and drops
// a "--" separator.
func (c *CLI) splitLeadingFlags(args []string) (leadingFlags, error) {
	var lead leadingFlags

	for i := 0; i < len(args); i++ {
		name, value, hasValue := strings.Cut(args[i], "=")

		var err error
		switch name {
		case "--":
			lead.rest = args[i+1:]
			return lead, nil
		case "-h", "--help":
			lead.help = true
			return lead, nil
		case "--dry-run":
			lead.dryRun, err = parseBoolFlag(name, value, hasValue)
		case "--json-logs":
			c.jsonLogs, err = parseBoolFlag(name, value, hasValue)
		case "--root", "--manifest":
			if !hasValue {
				if i+1 == len(args) {
					return lead, zerr.With(zerr.New("flag needs an argument"), "flag", name)
				}
				i++
				value = args[i]
			}
			if name == "--root" {
				c.root = value
			} else {
				c.manifest = value
			}
		default:
			lead.rest = args[i:]
			return lead, nil
		}
		if err != nil {
			return lead, err
		}
	}

	return lead, nil
}

func parseBoolFlag(name, value string, hasValue bool) (bool, error) {
	if !hasValue {
		return true, nil
	}
	enabled, err := strconv.ParseBool(value)
	if err != nil {
		return false, zerr.With(zerr.With(zerr.New("invalid boolean flag value"), "flag", name), "value", value)
	}
	return enabled, nil
}
