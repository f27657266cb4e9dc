package styles

import (
	"bytes"
	"encoding/xml"
	"unicode/utf8"
)

const fontCharWidth = 0.55

// EstimateTextWidth approximates the rendered width of s at the given font
// size from an average glyph width.
func EstimateTextWidth(s string, size float64) float64 {
	return float64(utf8.RuneCountInString(s)) * size * fontCharWidth
}

// FitText shortens s so that its estimated width does not exceed maxWidth,
// marking the cut with "..". A non-positive maxWidth leaves no room at all.
func FitText(s string, size, maxWidth float64) string {
	if maxWidth <= 0 {
		return ""
	}
	if size <= 0 || EstimateTextWidth(s, size) <= maxWidth {
		return s
	}

	maxChars := int(maxWidth / (size * fontCharWidth))
	runes := []rune(s)
	if maxChars < 3 {
		return string(runes[:maxChars])
	}
	return string(runes[:maxChars-2]) + ".."
}

// EscapeXML escapes s for use in SVG text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
