package sink

import (
	"encoding/json"

	"github.com/matzehuels/funnelchart/pkg/render/funnel"
	"github.com/matzehuels/funnelchart/pkg/render/funnel/config"
	"github.com/matzehuels/funnelchart/pkg/render/funnel/layout"
	"github.com/matzehuels/funnelchart/pkg/render/funnel/styles"
	"github.com/matzehuels/funnelchart/pkg/render/funnel/surface"
)

type jsonOutput struct {
	Config     config.Config     `json:"config"`
	Dimensions layout.Dimensions `json:"dimensions"`
	Outline    layout.Silhouette `json:"outline"`
	Rows       []jsonRow         `json:"rows"`
	Ops        []surface.Op      `json:"ops"`
}

type jsonRow struct {
	Index       int          `json:"index"`
	Label       string       `json:"label,omitempty"`
	Value       float64      `json:"value"`
	ValueText   string       `json:"value_text"`
	Section     layout.Rect  `json:"section"`
	Percent     *layout.Rect `json:"percent,omitempty"`
	PercentText string       `json:"percent_text,omitempty"`
}

// RenderJSON exports the resolved configuration, the computed layout and the
// ordered list of drawing calls the renderer issues.
func RenderJSON(cfg config.Config, opts ...Option) ([]byte, error) {
	o := newOptions(opts)
	rec := surface.NewRecorder(o.width, o.height)
	chart := funnel.Render(rec, cfg)

	d := chart.Dimensions()
	out := jsonOutput{
		Config:     cfg,
		Dimensions: d,
		Outline:    d.Outline(),
		Ops:        rec.Ops(),
	}
	for _, r := range chart.Rows() {
		row := jsonRow{
			Index:     r.Index,
			Label:     r.Label,
			Value:     r.Value,
			ValueText: styles.FormatNumber(r.Value),
			Section:   r.Section,
			Percent:   r.Percent,
		}
		if r.Percent != nil {
			row.PercentText = styles.FormatPercent(r.Ratio, cfg.PPrecision)
		}
		out.Rows = append(out.Rows, row)
	}

	return json.MarshalIndent(out, "", "  ")
}
