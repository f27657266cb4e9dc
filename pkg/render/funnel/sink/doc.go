// Package sink renders funnel charts into concrete output formats.
//
// # Overview
//
// Each sink provides a [surface.Surface] implementation and runs the funnel
// renderer against it:
//
//   - SVG: a vector document built from path, rect and text elements
//   - PNG: a raster image drawn with github.com/tdewolff/canvas
//   - PDF: a single-page vector document drawn with the same surface
//   - JSON: the resolved configuration, layout and the ordered draw log
//
// All sinks take an already resolved [config.Config]:
//
//	cfg, err := config.Resolve(settings)
//	svg, err := sink.RenderSVG(cfg, sink.WithSize(600, 400))
//	png, err := sink.RenderPNG(cfg, sink.WithSize(600, 400), sink.WithScale(2))
//
// # Clipping
//
// The renderer clips section fills to the funnel silhouette. The SVG sink
// emits a clipPath element and wraps later drawing in a clipped group. The
// canvas sink intersects each filled or stroked path with the clip region;
// text is not clipped there.
//
// # Text
//
// Label text is limited to the label column width. The SVG sink estimates
// glyph widths; the canvas sink measures text with the embedded Go fonts
// (see [fonts]) and shortens labels with a ".." suffix.
//
// [fonts]: github.com/matzehuels/funnelchart/pkg/fonts
package sink
