package commands

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/plugindev/internal/app"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

var errUnknownFormat = zerr.New("unknown output format, expected yaml or json")

func (c *CLI) newUpstreamCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "upstream [project]",
		Short: "List the upstream projects and runtime dependencies of a project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatYAML && format != formatJSON {
				return zerr.With(errUnknownFormat, "format", format)
			}

			report, err := c.app.Upstream(cmd.Context(), c.projectOptions(args))
			if err != nil {
				return err
			}
			return encodeReport(cmd.OutOrStdout(), format, report)
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", formatYAML, "Output format: yaml or json")
	return cmd
}

func encodeReport(w io.Writer, format string, report *app.UpstreamReport) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return err
	}
	return enc.Close()
}
