// Package layout computes funnel chart geometry.
//
// [Compute] is a pure function of the canvas extents and a resolved
// [config.Config]. It produces [Dimensions], from which every coordinate the
// renderer needs (row offsets, section rectangles, text baselines and the
// silhouette outline) is derived without further input.
//
// With percentage rows shown, a chart with n values has n value rows and n-1
// percentage rows, so the canvas height is split into n-0.5 row units:
//
//	rowHeight      = H / (n - 0.5)
//	pSectionHeight = rowHeight * p / (p + 100) - 1
//	sectionHeight  = rowHeight - (pSectionHeight + 1) - 1
//
// Without percentage rows each value row gets H/n minus a 1px gutter.
package layout

import (
	"math"

	"github.com/matzehuels/funnelchart/pkg/render/funnel/config"
)

// Gutter is the fixed spacing between adjacent rows.
const Gutter = 1.0

// Dimensions is the derived, read-only layout state of one render.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	LabelWidth    float64 `json:"label_width"`
	LabelMaxWidth float64 `json:"label_max_width"`
	LabelOffset   float64 `json:"label_offset"`

	StartWidth float64 `json:"start_width"`
	EndWidth   float64 `json:"end_width"`

	RowHeight      float64 `json:"row_height"`
	SectionHeight  float64 `json:"section_height"`
	PSectionHeight float64 `json:"p_section_height"`
	FontSize       float64 `json:"font_size"`

	Count       int  `json:"count"`
	ShowPercent bool `json:"show_percent"`
	HasLabels   bool `json:"has_labels"`
}

// Compute derives the layout for a width x height canvas.
//
// The label max width may be negative when the offset exceeds the label
// column; it is passed through unchanged. Section heights and the font size
// are clamped at zero so that degenerate canvases never yield negative
// geometry.
func Compute(width, height float64, cfg config.Config) Dimensions {
	d := Dimensions{
		Width:       width,
		Height:      height,
		LabelOffset: cfg.LabelOffset,
		Count:       cfg.Count(),
		ShowPercent: cfg.DisplayPercentageChange,
		HasLabels:   cfg.HasLabels(),
	}

	if d.HasLabels {
		d.LabelWidth = width * cfg.LabelWidthPercent / 100
	}
	d.LabelMaxWidth = d.LabelWidth - cfg.LabelOffset

	d.StartWidth = width - d.LabelWidth
	d.EndWidth = d.StartWidth * cfg.FunnelReductionPercent / 100

	n := float64(d.Count)
	if d.ShowPercent {
		d.RowHeight = height / (n - 0.5)
		var p float64
		if denom := cfg.PSectionHeightPercent + 100; denom > 0 {
			p = d.RowHeight / denom * cfg.PSectionHeightPercent
		}
		d.SectionHeight = d.RowHeight - p - Gutter
		d.PSectionHeight = p - Gutter
	} else {
		d.RowHeight = height / n
		d.SectionHeight = d.RowHeight - Gutter
	}
	d.SectionHeight = nonNegative(d.SectionHeight)
	d.PSectionHeight = nonNegative(d.PSectionHeight)

	avail := d.SectionHeight
	if d.ShowPercent {
		avail = d.PSectionHeight
	}
	d.FontSize = nonNegative(math.Min(cfg.MaxFontSize, avail-2))

	return d
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}

// Stride is the vertical distance between the tops of consecutive value rows.
func (d Dimensions) Stride() float64 {
	s := d.SectionHeight + Gutter
	if d.ShowPercent {
		s += d.PSectionHeight + Gutter
	}
	return s
}

// RowY returns the top of value row i. Row 0 always starts at zero.
func (d Dimensions) RowY(i int) float64 {
	if i <= 0 {
		return 0
	}
	return float64(i) * d.Stride()
}

// HasPercentRow reports whether a percentage row follows value row i.
func (d Dimensions) HasPercentRow(i int) bool {
	return d.ShowPercent && i < d.Count-1
}

// TotalHeight is the height of the funnel silhouette, including the gutters
// above, between and below every row.
func (d Dimensions) TotalHeight() float64 {
	n := float64(d.Count)
	return n*d.SectionHeight + (n-1)*d.PSectionHeight + (n + 1)
}

// Inset is the horizontal distance the funnel narrows by on each side.
func (d Dimensions) Inset() float64 {
	return (d.StartWidth - d.EndWidth) / 2
}

// LabelX is the left edge of label text.
func (d Dimensions) LabelX() float64 {
	return d.StartWidth + d.LabelOffset
}

// CenterX is the horizontal center of the funnel, where section text is
// anchored.
func (d Dimensions) CenterX() float64 {
	return d.StartWidth / 2
}

// ValueBaseline returns the text baseline for value row i.
func (d Dimensions) ValueBaseline(i int) float64 {
	return d.RowY(i) + d.SectionHeight/2 + d.FontSize/2 - 2
}

// PercentBaseline returns the text baseline for the percentage row below
// value row i.
func (d Dimensions) PercentBaseline(i int) float64 {
	return d.RowY(i) + d.SectionHeight + d.PSectionHeight/2 + d.FontSize/2 - 1
}
