package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"gitguide/internal/catalog"
)

func newStepsCommand(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "steps",
		Short: "List the steps of the tour",
		Long: `List every step of the active catalog with the zone it highlights
and the command it teaches.

Formats: table (default), markdown, csv, toml. The toml output is a
valid catalog file and a starting point for your own tour.`,
		Args: cobra.NoArgs,
		RunE: a.runE(func(cmd *cobra.Command, _ []string) error {
			c, err := a.loadCatalog()
			if err != nil {
				return err
			}
			return renderSteps(cmd.OutOrStdout(), c, format)
		}),
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table|markdown|csv|toml)")
	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"table", "markdown", "csv", "toml"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func renderSteps(w io.Writer, c *catalog.Catalog, format string) error {
	if format == "toml" {
		return catalog.Encode(w, c)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Zone", "Title", "Command"})
	for i, step := range c.Steps() {
		t.AppendRow(table.Row{i + 1, step.Highlight.String(), step.Title, step.Command})
	}

	switch format {
	case "table", "":
		t.Render()
		_, _ = fmt.Fprintf(w, "(%d steps)\n", c.Len())
	case "md", "markdown":
		t.RenderMarkdown()
	case "csv":
		t.RenderCSV()
	default:
		return fmt.Errorf("unknown format %q (want table, markdown, csv or toml)", format)
	}
	return nil
}
