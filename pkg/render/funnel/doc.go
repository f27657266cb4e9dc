// Package funnel renders funnel charts onto a 2D drawing surface.
//
// # Overview
//
// A funnel chart shows a sequence of decreasing values, such as the stages of
// a conversion flow, as stacked bands inside a tapered outline. Between two
// value bands an optional percentage band shows how much of the previous
// stage carried over to the next.
//
// Rendering is a single synchronous pass in two stages:
//
//  1. Layout ([layout]): compute the label column, funnel widths, band
//     heights and the usable font size from the canvas extents.
//  2. Draw: issue drawing calls onto a [surface.Surface] in a fixed order:
//     labels and separator lines, the white silhouette used as a clip region,
//     the value and percentage bands with their text, and finally a white
//     outline stroke that hides seams along the curved edge.
//
// # Usage
//
//	rec := surface.NewRecorder(600, 400)
//	chart, err := funnel.New(rec, config.Settings{
//	    Values: []float64{1000, 600, 250},
//	    Labels: []string{"Visits", "Sign-ups", "Purchases"},
//	})
//
// The sink subpackage wraps this for concrete outputs (SVG, PNG, PDF and a
// JSON draw log).
//
// # Subpackages
//
//   - [config]: settings, defaults and palettes.
//   - [layout]: dimension calculation and row geometry.
//   - [surface]: the drawing contract and an in-memory recorder.
//   - [styles]: number formatting and text fitting.
//   - [sink]: output formats.
//
// [config]: github.com/matzehuels/funnelchart/pkg/render/funnel/config
// [layout]: github.com/matzehuels/funnelchart/pkg/render/funnel/layout
// [surface]: github.com/matzehuels/funnelchart/pkg/render/funnel/surface
// [styles]: github.com/matzehuels/funnelchart/pkg/render/funnel/styles
// [sink]: github.com/matzehuels/funnelchart/pkg/render/funnel/sink
package funnel
