package pipeline

import (
	"fmt"

	"github.com/matzehuels/funnelchart/pkg/render/funnel/config"
	"github.com/matzehuels/funnelchart/pkg/render/funnel/sink"
)

// Render resolves opts.Settings and renders every requested format. No cache
// is consulted.
func Render(opts Options) (map[string][]byte, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	cfg, err := config.Resolve(opts.Settings)
	if err != nil {
		return nil, err
	}
	return RenderConfig(cfg, opts, opts.Formats)
}

// RenderConfig renders an already resolved configuration into the given
// formats. opts supplies the canvas size and sink options.
func RenderConfig(cfg config.Config, opts Options, formats []string) (map[string][]byte, error) {
	sinkOpts := opts.SinkOptions()
	artifacts := make(map[string][]byte, len(formats))

	for _, format := range formats {
		data, err := renderFormat(cfg, format, sinkOpts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func renderFormat(cfg config.Config, format string, opts []sink.Option) ([]byte, error) {
	switch format {
	case FormatSVG:
		return sink.RenderSVG(cfg, opts...)
	case FormatPNG:
		return sink.RenderPNG(cfg, opts...)
	case FormatPDF:
		return sink.RenderPDF(cfg, opts...)
	case FormatJSON:
		return sink.RenderJSON(cfg, opts...)
	default:
		return nil, ValidateFormat(format)
	}
}
