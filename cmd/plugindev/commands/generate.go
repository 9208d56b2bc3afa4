package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/plugindev/internal/app"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate [project]",
		Short: "Generate the plugin descriptor of a project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.app.Generate(cmd.Context(), app.GenerateOptions{
				ProjectOptions: c.projectOptions(args),
				Force:          c.force,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", result.Project, result.Descriptor, result.Status)
			return nil
		},
	}
}
