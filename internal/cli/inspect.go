package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartgeom/pkg/chart"
	"github.com/matzehuels/chartgeom/pkg/dataset"
	"github.com/matzehuels/chartgeom/pkg/pipeline"
)

// inspectCommand prints the computed geometry of a dataset as a table.
func (c *CLI) inspectCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Print the slices, bars or points of a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			po, ds, err := c.chartOptions(cmd, args[0], &opts)
			if err != nil {
				return err
			}
			return c.runInspect(cmd.Context(), ds, po, opts.noCache)
		},
	}

	addChartFlags(cmd, &opts)
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	registerChartCompletions(cmd)

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, ds dataset.Dataset, po pipeline.Options, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache, nil)
	if err != nil {
		return err
	}
	defer runner.Close()

	g, err := runner.Compute(ctx, ds.Data, po)
	if err != nil {
		return err
	}

	fmt.Println(StyleTitle.Render(ds.Name))
	printKeyValue("Kind", string(g.Kind))
	printKeyValue("Canvas", chart.FormatNumber(g.Width)+" x "+chart.FormatNumber(g.Height))
	printKeyValue("Records", strconv.Itoa(ds.Records))

	if g.Empty() {
		printWarning("%s", g.NoData())
		return nil
	}
	printNewline()
	fmt.Println(geometryTable(g).Render())
	return nil
}

// geometryRows returns the table headers and one row per drawn element.
func geometryRows(g chart.Geometry) ([]string, [][]string) {
	var rows [][]string
	switch {
	case g.Pie != nil:
		for i, s := range g.Pie.Slices {
			rows = append(rows, []string{strconv.Itoa(i), s.Datum.Label, chart.FormatNumber(s.Datum.Value),
				chart.FormatNumber(s.Percentage) + "%", chart.FormatNumber(s.StartAngle), chart.FormatNumber(s.SweepAngle), s.Color})
		}
		return []string{"#", "Label", "Value", "Share", "Start", "Sweep", "Color"}, rows
	case g.Bar != nil:
		for i, b := range g.Bar.Bars {
			rows = append(rows, []string{strconv.Itoa(i), b.Datum.Label, chart.FormatNumber(b.Datum.Value),
				chart.FormatNumber(b.X), chart.FormatNumber(b.Y), chart.FormatNumber(b.Width), chart.FormatNumber(b.Height), b.Color})
		}
		return []string{"#", "Label", "Value", "X", "Y", "Width", "Height", "Color"}, rows
	case g.Line != nil:
		for i, p := range g.Line.Points {
			rows = append(rows, []string{strconv.Itoa(i), p.Datum.Label, chart.FormatNumber(p.Datum.Value), chart.FormatNumber(p.X), chart.FormatNumber(p.Y)})
		}
		return []string{"#", "Label", "Value", "X", "Y"}, rows
	}
	return nil, nil
}

func geometryTable(g chart.Geometry) *table.Table {
	headers, rows := geometryRows(g)
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return cellStyle.Foreground(colorDim)
			case col == 2:
				return cellStyle.Foreground(colorCyan)
			}
			return cellStyle
		})
}
