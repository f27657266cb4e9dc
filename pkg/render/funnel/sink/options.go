package sink

const (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
	DefaultScale  = 2.0
)

// Option configures a sink.
type Option func(*options)

type options struct {
	width, height float64
	scale         float64
	background    string
	embedFont     bool
}

// WithSize sets the canvas extents in pixels.
func WithSize(width, height float64) Option {
	return func(o *options) { o.width, o.height = width, height }
}

// WithScale sets the raster scale factor (PNG only).
func WithScale(s float64) Option {
	return func(o *options) {
		if s > 0 {
			o.scale = s
		}
	}
}

// WithBackground paints the whole canvas before drawing. By default the
// background is left transparent.
func WithBackground(color string) Option {
	return func(o *options) { o.background = color }
}

// WithEmbeddedFont embeds the Go font matching the configured weight in SVG
// output, so that text renders identically to PNG and PDF output.
func WithEmbeddedFont() Option {
	return func(o *options) { o.embedFont = true }
}

func newOptions(opts []Option) options {
	o := options{width: DefaultWidth, height: DefaultHeight, scale: DefaultScale}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
