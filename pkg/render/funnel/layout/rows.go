package layout

import "github.com/matzehuels/funnelchart/pkg/render/funnel/config"

// Row is the geometry of one funnel stage: its value band and, when shown,
// the percentage band beneath it.
type Row struct {
	Index   int     `json:"index"`
	Value   float64 `json:"value"`
	Label   string  `json:"label,omitempty"`
	Y       float64 `json:"y"`
	Section Rect    `json:"section"`
	Percent *Rect   `json:"percent,omitempty"`
	Ratio   float64 `json:"-"`
}

// Rows lists the geometry of every stage in top-to-bottom order.
func Rows(d Dimensions, cfg config.Config) []Row {
	rows := make([]Row, d.Count)
	for i := range rows {
		y := d.RowY(i)
		r := Row{
			Index: i,
			Value: cfg.Values[i],
			Label: cfg.Label(i),
			Y:     y,
			Section: Rect{
				Left: 0, Right: d.StartWidth,
				Top: y, Bottom: y + d.SectionHeight,
			},
		}
		if d.HasPercentRow(i) {
			top := y + d.SectionHeight + Gutter
			r.Percent = &Rect{
				Left: 0, Right: d.StartWidth,
				Top: top, Bottom: top + d.PSectionHeight,
			}
			r.Ratio = cfg.Values[i+1] / cfg.Values[i]
		}
		rows[i] = r
	}
	return rows
}
