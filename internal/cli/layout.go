package cli

import (
	"context"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/funnelchart/pkg/errors"
	"github.com/matzehuels/funnelchart/pkg/pipeline"
	"github.com/matzehuels/funnelchart/pkg/render/funnel/config"
	"github.com/matzehuels/funnelchart/pkg/render/funnel/layout"
	"github.com/matzehuels/funnelchart/pkg/render/funnel/sink"
	"github.com/matzehuels/funnelchart/pkg/render/funnel/styles"
)

// layoutCommand creates the layout command, which prints the geometry the
// renderer would use without drawing anything.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		width, height float64
		asJSON        bool
	)

	cmd := &cobra.Command{
		Use:   "layout [chart.toml|chart.json]",
		Short: "Print the computed geometry of a funnel chart",
		Long: `Print the computed geometry of a funnel chart.

The dimensions table lists the derived label column, funnel widths, section
heights and font size; the rows table lists the vertical position of every
section and percentage band. With --json the full layout (including the
recorded draw operations) is printed instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], width, height, asJSON)
		},
	}

	cmd.Flags().Float64Var(&width, "width", pipeline.DefaultWidth, "canvas width in pixels")
	cmd.Flags().Float64Var(&height, "height", pipeline.DefaultHeight, "canvas height in pixels")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the layout as JSON")

	return cmd
}

func (c *CLI) runLayout(ctx context.Context, path string, width, height float64, asJSON bool) error {
	logger := loggerFromContext(ctx)

	if err := errors.ValidateDimension("width", width); err != nil {
		return err
	}
	if err := errors.ValidateDimension("height", height); err != nil {
		return err
	}

	settings, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg, err := config.Resolve(settings)
	if err != nil {
		return err
	}

	if asJSON {
		data, err := sink.RenderJSON(cfg, sink.WithSize(width, height))
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	d := layout.Compute(width, height, cfg)
	logger.Debug("computed layout", "sections", d.Count, "font_size", d.FontSize)

	fmt.Println(StyleTitle.Render(fmt.Sprintf("%s (%gx%g)", path, width, height)))
	fmt.Println(dimensionsTable(d))
	fmt.Println(rowsTable(d, cfg))
	if d.Count > 0 && d.TotalHeight() > height+0.5 {
		printWarning("chart needs %s px but the canvas is %s px high", num(d.TotalHeight()), num(height))
	}
	return nil
}

// dimensionsTable renders the derived dimensions as a two-column table.
func dimensionsTable(d layout.Dimensions) string {
	rows := [][]string{
		{"label width", num(d.LabelWidth)},
		{"label max width", num(d.LabelMaxWidth)},
		{"start width", num(d.StartWidth)},
		{"end width", num(d.EndWidth)},
		{"row height", num(d.RowHeight)},
		{"section height", num(d.SectionHeight)},
		{"percent height", num(d.PSectionHeight)},
		{"font size", num(d.FontSize)},
		{"total height", num(d.TotalHeight())},
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Dimension", "Pixels").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			case col == 1:
				return StyleNumber
			default:
				return StyleValue
			}
		}).
		Render()
}

// rowsTable renders one line per stage with its value, label, section band
// and percentage band.
func rowsTable(d layout.Dimensions, cfg config.Config) string {
	var rows [][]string
	for _, r := range layout.Rows(d, cfg) {
		percent, band := "—", "—"
		if r.Percent != nil {
			percent = styles.FormatPercent(r.Ratio, cfg.PPrecision)
			band = span(r.Percent.Top, r.Percent.Bottom)
		}
		label := r.Label
		if label == "" {
			label = "—"
		}
		rows = append(rows, []string{
			strconv.Itoa(r.Index),
			label,
			styles.FormatNumber(r.Value),
			span(r.Section.Top, r.Section.Bottom),
			percent,
			band,
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Label", "Value", "Section", "Change", "Band").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			}
			if col == 2 || col == 4 {
				return StyleNumber
			}
			return StyleValue
		}).
		Render()
}

func span(top, bottom float64) string {
	return num(top) + "–" + num(bottom)
}

// num formats a pixel measure with at most two decimals.
func num(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0 // drop the sign of negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
