package funnel

import (
	"github.com/matzehuels/funnelchart/pkg/render/funnel/config"
	"github.com/matzehuels/funnelchart/pkg/render/funnel/layout"
	"github.com/matzehuels/funnelchart/pkg/render/funnel/surface"
)

// Chart is one funnel chart bound to its surface. Its configuration and
// dimensions are fixed at construction.
type Chart struct {
	surface surface.Surface
	cfg     config.Config
	dims    layout.Dimensions
}

// New resolves settings, measures s and draws the chart immediately.
// It fails only when settings carry no values; in that case nothing is drawn.
func New(s surface.Surface, settings config.Settings) (*Chart, error) {
	cfg, err := config.Resolve(settings)
	if err != nil {
		return nil, err
	}
	return Render(s, cfg), nil
}

// Render draws an already resolved configuration onto s.
func Render(s surface.Surface, cfg config.Config) *Chart {
	w, h := s.Size()
	c := &Chart{
		surface: s,
		cfg:     cfg,
		dims:    layout.Compute(w, h, cfg),
	}
	c.Draw()
	return c
}

// Dimensions returns the computed layout.
func (c *Chart) Dimensions() layout.Dimensions { return c.dims }

// Config returns the resolved configuration.
func (c *Chart) Config() config.Config { return c.cfg }

// Rows returns the geometry of every stage.
func (c *Chart) Rows() []layout.Row { return layout.Rows(c.dims, c.cfg) }
