package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newHelpMojoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "help-mojo [project]",
		Short: "Generate the help mojo sources of a project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			written, err := c.app.GenerateHelpMojo(cmd.Context(), c.projectOptions(args))
			if err != nil {
				return err
			}
			if !written {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no help mojo package configured, skipped")
			}
			return nil
		},
	}
}
