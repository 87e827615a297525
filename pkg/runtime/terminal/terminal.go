package terminal

import (
	"io"
	"os"

	"github.com/payplan-tools/payplan/pkg/runtime/terminal/commands"
	"github.com/payplan-tools/payplan/pkg/runtime/terminal/export"
	"github.com/payplan-tools/payplan/pkg/services/plan"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	controller *plan.Controller
	reporter   *export.Reporter
	rootCmd    *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Controller *plan.Controller
	Output     io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Controller == nil {
		opts.Controller = plan.NewController()
	}

	cli := &CLI{
		controller: opts.Controller,
		reporter:   export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payplan",
		Short: "BNPL payment plan tool",
	}

	cmd.AddCommand(commands.NewPlanCmd(cli.controller, cli.reporter))

	return cmd
}
