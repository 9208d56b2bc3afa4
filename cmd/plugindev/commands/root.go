// Package commands implements the CLI commands for plugindev.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/plugindev/internal/app"
	"go.trai.ch/plugindev/internal/build"
)

// CLI represents the command line interface for plugindev.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	dir   string
	force bool
}

// Application represents the application logic interface.
type Application interface {
	Generate(ctx context.Context, opts app.GenerateOptions) (*app.GenerateResult, error)
	GenerateHelpMojo(ctx context.Context, opts app.ProjectOptions) (bool, error)
	Upstream(ctx context.Context, opts app.ProjectOptions) (*app.UpstreamReport, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "plugindev",
		Short:         "Generate Maven plugin descriptors for workspace projects",
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

	rootCmd.PersistentFlags().StringVarP(&c.dir, "dir", "C", ".", "Directory to start the workfile lookup from")
	rootCmd.PersistentFlags().BoolVarP(&c.force, "force", "f", false, "Regenerate even when outputs are up to date")

	rootCmd.AddCommand(c.newGenerateCmd())
	rootCmd.AddCommand(c.newHelpMojoCmd())
	rootCmd.AddCommand(c.newUpstreamCmd())
	rootCmd.AddCommand(c.newVersionCmd())

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

func (c *CLI) projectOptions(args []string) app.ProjectOptions {
	opts := app.ProjectOptions{Dir: c.dir}
	if len(args) > 0 {
		opts.Project = args[0]
	}
	return opts
}
