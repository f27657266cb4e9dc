// Package render groups the chart renderers.
//
// [funnel] draws funnel charts. Drawing is expressed against the small
// canvas-like [funnel/surface.Surface] interface, so the same drawing code
// produces SVG, raster and PDF output (see [funnel/sink]) as well as a
// recorded list of operations for tests and JSON export.
package render
