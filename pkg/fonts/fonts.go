// Package fonts provides the font files used by raster and PDF output.
//
// The Go font family (golang.org/x/image/font/gofont) is compiled into the
// binary, so rendering never depends on fonts installed on the host. CSS
// weights are mapped onto the three shipped faces by [ForWeight].
package fonts

import (
	"encoding/base64"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
)

// Weight is one of the embedded faces.
type Weight int

const (
	Regular Weight = iota
	Medium
	Bold
)

func (w Weight) String() string {
	switch w {
	case Medium:
		return "medium"
	case Bold:
		return "bold"
	default:
		return "regular"
	}
}

// FontFamily is the family name the embedded faces are registered under.
const FontFamily = "Go"

// FallbackFontFamily is appended to the configured family in SVG output.
const FallbackFontFamily = `'Helvetica Neue', Helvetica, Arial, sans-serif`

// ForWeight maps a CSS font-weight ("300", "bold", ...) onto an embedded face.
// Unknown values fall back to Regular.
func ForWeight(css string) Weight {
	css = strings.ToLower(strings.TrimSpace(css))
	switch css {
	case "bold", "bolder":
		return Bold
	case "", "normal", "lighter":
		return Regular
	}
	n, err := strconv.Atoi(css)
	if err != nil {
		return Regular
	}
	switch {
	case n >= 600:
		return Bold
	case n >= 500:
		return Medium
	default:
		return Regular
	}
}

// TTF returns the TrueType data for w.
func TTF(w Weight) []byte {
	switch w {
	case Medium:
		return gomedium.TTF
	case Bold:
		return gobold.TTF
	default:
		return goregular.TTF
	}
}

var (
	base64Once [3]sync.Once
	base64Data [3]string
)

// TTFBase64 returns the TrueType data for w as a base64 string, suitable for
// an @font-face data URI. The result is cached after first computation.
func TTFBase64(w Weight) string {
	if w < Regular || w > Bold {
		w = Regular
	}
	base64Once[w].Do(func() {
		base64Data[w] = base64.StdEncoding.EncodeToString(TTF(w))
	})
	return base64Data[w]
}
