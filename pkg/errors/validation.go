package errors

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"
)

// maxDimension caps canvas extents accepted from untrusted input.
const maxDimension = 16384

// chartExtensions lists the file extensions a chart definition may use.
var chartExtensions = map[string]bool{
	".toml": true,
	".json": true,
}

// ValidateDimension checks a canvas width or height received from a caller.
// Zero is allowed (it yields a degenerate but defined chart); negative,
// non-finite and oversized values are rejected.
func ValidateDimension(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidDimension, "%s must be a finite number", name)
	}
	if v < 0 {
		return New(ErrCodeInvalidDimension, "%s cannot be negative", name)
	}
	if v > maxDimension {
		return New(ErrCodeInvalidDimension, "%s too large (max %d)", name, maxDimension)
	}
	return nil
}

// ValidateChartFilename validates the name of a chart definition file.
// It must carry a supported extension and contain no control characters.
func ValidateChartFilename(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "chart path cannot be empty")
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "chart path contains invalid control characters")
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !chartExtensions[ext] {
		return New(ErrCodeInvalidPath, "unsupported chart file extension %q (must be .toml or .json)", ext)
	}

	return nil
}
