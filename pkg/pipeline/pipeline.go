// Package pipeline provides the resolve → render pipeline shared by the CLI
// and the HTTP API.
//
// Both entry points accept a [config.Settings] record and want rendered
// artifacts back. Centralising the defaults, the validation and the cache
// lookups here keeps their behaviour identical.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Settings: settings,
//	    Formats:  []string{"svg", "png"},
//	})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
//
// [Render] runs the same dispatch without any caching.
package pipeline

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/funnelchart/pkg/cache"
	"github.com/matzehuels/funnelchart/pkg/errors"
	"github.com/matzehuels/funnelchart/pkg/render/funnel/config"
	"github.com/matzehuels/funnelchart/pkg/render/funnel/sink"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = sink.DefaultWidth

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = sink.DefaultHeight

	// DefaultScale is the default PNG scale factor.
	DefaultScale = sink.DefaultScale
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ContentTypes maps each output format to its MIME type.
var ContentTypes = map[string]string{
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatPDF:  "application/pdf",
	FormatJSON: "application/json",
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	Settings config.Settings `json:"settings"`

	Width      float64  `json:"width,omitempty"`
	Height     float64  `json:"height,omitempty"`
	Formats    []string `json:"formats,omitempty"`
	Scale      float64  `json:"scale,omitempty"`
	Background string   `json:"background,omitempty"`

	// EmbedFont embeds the Go font into SVG output.
	EmbedFont bool `json:"embed_font,omitempty"`

	// Refresh bypasses cache reads; fresh artifacts are still stored.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Config is the resolved chart configuration.
	Config config.Config

	// ConfigHash is the content hash of Config. Empty when the configuration
	// cannot be encoded (for example when it holds NaN values).
	ConfigHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Sections   int
	Bytes      int
	RenderTime time.Duration
}

// CacheInfo tracks which artifacts came from the cache.
type CacheInfo struct {
	Hits   []string // Formats served from cache
	Misses []string // Formats rendered in this run
}

// AllHit reports whether every artifact came from the cache.
func (c CacheInfo) AllHit() bool {
	return len(c.Misses) == 0 && len(c.Hits) > 0
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma separated format list, dropping blanks and
// duplicates. It does not validate the names.
func ParseFormats(s string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills zero-valued fields. It is idempotent.
func (o *Options) SetDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks the canvas extents, the scale and the format list. It does
// not look at the chart settings; those are checked by [config.Resolve].
func (o *Options) Validate() error {
	if err := errors.ValidateDimension("width", o.Width); err != nil {
		return err
	}
	if err := errors.ValidateDimension("height", o.Height); err != nil {
		return err
	}
	if o.Scale < 0 || o.Scale > 16 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be between 0 and 16, got %g", o.Scale)
	}
	return ValidateFormats(o.Formats)
}

// SinkOptions translates the options into sink options.
func (o *Options) SinkOptions() []sink.Option {
	opts := []sink.Option{
		sink.WithSize(o.Width, o.Height),
		sink.WithScale(o.Scale),
	}
	if o.Background != "" {
		opts = append(opts, sink.WithBackground(o.Background))
	}
	if o.EmbedFont {
		opts = append(opts, sink.WithEmbeddedFont())
	}
	return opts
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{
		Format:     format,
		Width:      o.Width,
		Height:     o.Height,
		Background: o.Background,
	}
	if format == FormatPNG {
		opts.Scale = o.Scale
	}
	if format == FormatSVG {
		opts.EmbedFont = o.EmbedFont
	}
	return opts
}

// String summarises the options for log lines.
func (o *Options) String() string {
	return fmt.Sprintf("%gx%g %s", o.Width, o.Height, strings.Join(o.Formats, ","))
}
