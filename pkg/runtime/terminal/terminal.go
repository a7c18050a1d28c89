package terminal

import (
	"io"
	"os"

	"github.com/de-tools/rental-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/rental-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/rental-atlas/pkg/services/dataset"
	"github.com/spf13/cobra"
)

const (
	FormatTable    = "table"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// CLI represents the command-line interface
type CLI struct {
	registry   dataset.Registry
	reporters  map[string]export.Reporter
	configPath string
	rootCmd    *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry dataset.Registry
	Output   io.Writer
	Errors   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Errors == nil {
		opts.Errors = os.Stderr
	}
	if opts.Registry == nil {
		opts.Registry = dataset.DefaultRegistry()
	}

	cli := &CLI{
		registry: opts.Registry,
		reporters: map[string]export.Reporter{
			FormatTable:    export.NewTableReporter(opts.Output),
			FormatMarkdown: NewReporter(opts.Output),
			FormatJSON:     export.NewJSONReporter(opts.Output),
		},
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	cli.rootCmd.SetErr(opts.Errors)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "rental-atlas",
		Short:         "Bike rental dashboard in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&cli.configPath, "config", "c", "", "Path to a config file (yaml, json or toml)")

	cmd.AddCommand(commands.NewReportCmd(&cli.configPath, cli.registry, cli.reporters))
	cmd.AddCommand(commands.NewLabelsCmd())

	return cmd
}
