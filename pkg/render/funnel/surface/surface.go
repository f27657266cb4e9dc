// Package surface defines the 2D drawing contract the funnel renderer draws
// onto.
//
// The contract is split in two: a [Sizer] reports the canvas extents used for
// layout and a [Context] receives immediate-mode drawing calls. A [Surface]
// is both. Implementations live in the sink package (SVG, raster and PDF);
// [Recorder] is an in-memory surface that records every call.
//
// Coordinates are in pixels with the origin at the top-left corner and Y
// growing downwards. Text is positioned by its alphabetic baseline.
package surface

import (
	"fmt"

	"github.com/matzehuels/funnelchart/pkg/render/funnel/styles"
)

// TextAlign is the horizontal anchoring of text relative to its x position.
type TextAlign string

const (
	AlignStart  TextAlign = "start"
	AlignCenter TextAlign = "center"
	AlignEnd    TextAlign = "end"
)

// Font describes the text style in effect.
type Font struct {
	Family string  `json:"family"`
	Weight string  `json:"weight"`
	Size   float64 `json:"size"`
}

// String returns the font in CSS shorthand, e.g. "300 13px Helvetica Neue".
func (f Font) String() string {
	return fmt.Sprintf("%s %spx %s", f.Weight, styles.FormatNumber(f.Size), f.Family)
}

// Sizer reports the drawable extents of a surface.
type Sizer interface {
	Size() (width, height float64)
}

// Context receives drawing calls. Fill and stroke colours are CSS colour
// strings; an empty colour paints nothing.
type Context interface {
	SetFont(f Font)
	SetFillColor(color string)
	SetStrokeColor(color string)
	SetLineWidth(w float64)
	SetTextAlign(a TextAlign)

	// BeginPath discards the current path.
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticCurveTo(cpx, cpy, x, y float64)
	ClosePath()

	// Fill and Stroke paint the current path with the current colours.
	Fill()
	Stroke()
	// Clip intersects the clip region with the current path. The region
	// applies to every later fill and stroke.
	Clip()

	FillRect(x, y, w, h float64)
	FillText(text string, x, y float64)
	// FillTextMax draws text no wider than maxWidth. A non-positive
	// maxWidth draws nothing.
	FillTextMax(text string, x, y, maxWidth float64)
}

// Surface is a sized drawing target.
type Surface interface {
	Sizer
	Context
}
