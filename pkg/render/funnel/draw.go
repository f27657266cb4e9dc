package funnel

import (
	"github.com/matzehuels/funnelchart/pkg/render/funnel/layout"
	"github.com/matzehuels/funnelchart/pkg/render/funnel/styles"
	"github.com/matzehuels/funnelchart/pkg/render/funnel/surface"
)

const (
	backgroundColor  = "#fff"
	labelLineWidth   = 1.0
	outlineLineWidth = 2.0
)

// Draw issues the full drawing sequence onto the chart's surface. Later
// calls layer over earlier ones, so the order matters.
func (c *Chart) Draw() {
	ctx := c.surface
	ctx.SetFont(surface.Font{
		Family: c.cfg.Font,
		Weight: c.cfg.FontWeight,
		Size:   c.dims.FontSize,
	})

	if c.dims.HasLabels {
		c.drawLabels(ctx)
	}

	c.traceOutline(ctx)
	ctx.SetFillColor(backgroundColor)
	ctx.Fill()
	ctx.Clip()

	c.drawSections(ctx)

	c.traceOutline(ctx)
	ctx.SetLineWidth(outlineLineWidth)
	ctx.SetStrokeColor(backgroundColor)
	ctx.Stroke()
}

func (c *Chart) drawLabels(ctx surface.Context) {
	d := c.dims
	ctx.SetLineWidth(labelLineWidth)
	ctx.SetTextAlign(surface.AlignStart)

	for i := 0; i < d.Count; i++ {
		y := d.RowY(i)

		ctx.SetFillColor(string(c.cfg.LabelFontColor.At(i)))
		ctx.FillTextMax(c.cfg.Label(i), d.LabelX(), d.ValueBaseline(i), d.LabelMaxWidth)

		ctx.SetStrokeColor(string(c.cfg.LabelLineColor.At(i)))
		if i > 0 {
			hline(ctx, float64(i), y, d.Width)
		}
		if d.HasPercentRow(i) {
			hline(ctx, float64(i), y+d.SectionHeight, d.Width)
		}
	}
}

func hline(ctx surface.Context, x0, y, x1 float64) {
	ctx.BeginPath()
	ctx.MoveTo(x0, y)
	ctx.LineTo(x1, y)
	ctx.Stroke()
}

func (c *Chart) traceOutline(ctx surface.Context) {
	o := c.dims.Outline()
	ctx.BeginPath()
	ctx.MoveTo(o.TopLeft.X, o.TopLeft.Y)
	ctx.LineTo(o.TopRight.X, o.TopRight.Y)
	ctx.QuadraticCurveTo(o.RightCtrl.X, o.RightCtrl.Y, o.BottomRight.X, o.BottomRight.Y)
	ctx.LineTo(o.BottomLeft.X, o.BottomLeft.Y)
	ctx.QuadraticCurveTo(o.LeftCtrl.X, o.LeftCtrl.Y, o.TopLeft.X, o.TopLeft.Y)
	ctx.ClosePath()
}

func (c *Chart) drawSections(ctx surface.Context) {
	ctx.SetTextAlign(surface.AlignCenter)

	for _, row := range layout.Rows(c.dims, c.cfg) {
		c.drawRow(ctx, row)
	}
}

func (c *Chart) drawRow(ctx surface.Context, row layout.Row) {
	d, i := c.dims, row.Index

	s := row.Section
	ctx.SetFillColor(string(c.cfg.SectionColor.At(i)))
	ctx.FillRect(s.Left, s.Top, s.Width(), s.Height())
	ctx.SetFillColor(string(c.cfg.SectionFontColor.At(i)))
	ctx.FillText(styles.FormatNumber(row.Value), d.CenterX(), d.ValueBaseline(i))

	if row.Percent == nil {
		return
	}
	p := row.Percent
	ctx.SetFillColor(string(c.cfg.PSectionColor.At(i)))
	ctx.FillRect(p.Left, p.Top, p.Width(), p.Height())
	ctx.SetFillColor(string(c.cfg.PSectionFontColor.At(i)))
	ctx.FillText(styles.FormatPercent(row.Ratio, c.cfg.PPrecision), d.CenterX(), d.PercentBaseline(i))
}
