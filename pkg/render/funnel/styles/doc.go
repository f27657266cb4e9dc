// Package styles formats and measures funnel chart text.
//
// Numbers are printed the way a browser prints them: section values use the
// shortest round-tripping decimal form ([FormatNumber]) and percentage
// changes use fixed precision with ties rounded away from zero
// ([FormatPercent]). A ratio computed from a zero-valued stage is not
// special-cased and prints as "Infinity%" or "NaN%".
//
// Surfaces without real font metrics estimate text width from an average
// glyph width ([EstimateTextWidth]) and shorten over-long labels with
// [FitText].
package styles
