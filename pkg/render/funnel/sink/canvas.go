package sink

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	"golang.org/x/image/colornames"

	"github.com/matzehuels/funnelchart/pkg/errors"
	"github.com/matzehuels/funnelchart/pkg/fonts"
	"github.com/matzehuels/funnelchart/pkg/render/funnel"
	"github.com/matzehuels/funnelchart/pkg/render/funnel/config"
	"github.com/matzehuels/funnelchart/pkg/render/funnel/surface"
)

// ptPerPx converts a pixel font size into points. One canvas unit is one
// millimetre, and the sinks map one chart pixel onto one unit.
const ptPerPx = 72 / 25.4

// RenderPNG rasterises cfg. The image is width*scale by height*scale pixels.
func RenderPNG(cfg config.Config, opts ...Option) ([]byte, error) {
	o := newOptions(opts)
	c, err := drawCanvas(cfg, o)
	if err != nil {
		return nil, err
	}

	img := rasterizer.Draw(c, canvas.DPMM(o.scale), canvas.DefaultColorSpace)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPDF renders cfg as a single-page PDF whose page matches the canvas
// extents.
func RenderPDF(cfg config.Config, opts ...Option) ([]byte, error) {
	o := newOptions(opts)
	c, err := drawCanvas(cfg, o)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := pdf.New(&buf, o.width, o.height, nil)
	writer.SetInfo("Funnel chart", "", "", "", "funnelchart")
	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func drawCanvas(cfg config.Config, o options) (*canvas.Canvas, error) {
	if o.width < 1 || o.height < 1 {
		return nil, errors.New(errors.ErrCodeInvalidDimension,
			"raster and pdf output need a canvas of at least 1x1, got %gx%g", o.width, o.height)
	}

	s, err := newCanvasSurface(o.width, o.height)
	if err != nil {
		return nil, err
	}
	if o.background != "" {
		s.SetFillColor(o.background)
		s.FillRect(0, 0, o.width, o.height)
	}

	funnel.Render(s, cfg)
	if s.err != nil {
		return nil, s.err
	}
	return s.c, nil
}

type canvasSurface struct {
	width, height float64
	c             *canvas.Canvas
	ctx           *canvas.Context
	family        *canvas.FontFamily

	fill, stroke color.Color
	lineWidth    float64
	align        surface.TextAlign
	font         surface.Font

	path *canvas.Path
	clip *canvas.Path

	err error
}

var _ surface.Surface = (*canvasSurface)(nil)

func newCanvasSurface(width, height float64) (*canvasSurface, error) {
	family := canvas.NewFontFamily(fonts.FontFamily)
	for _, f := range []struct {
		weight fonts.Weight
		style  canvas.FontStyle
	}{
		{fonts.Regular, canvas.FontRegular},
		{fonts.Medium, canvas.FontMedium},
		{fonts.Bold, canvas.FontBold},
	} {
		if err := family.LoadFont(fonts.TTF(f.weight), 0, f.style); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "load %s font", f.weight)
		}
	}

	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)

	return &canvasSurface{
		width:     width,
		height:    height,
		c:         c,
		ctx:       ctx,
		family:    family,
		fill:      color.Black,
		stroke:    color.Black,
		lineWidth: 1,
		align:     surface.AlignStart,
		path:      &canvas.Path{},
	}, nil
}

func (s *canvasSurface) Size() (float64, float64) { return s.width, s.height }

func (s *canvasSurface) SetFont(f surface.Font)           { s.font = f }
func (s *canvasSurface) SetLineWidth(w float64)           { s.lineWidth = w }
func (s *canvasSurface) SetTextAlign(a surface.TextAlign) { s.align = a }
func (s *canvasSurface) SetFillColor(c string)            { s.fill = s.parseColor(c) }
func (s *canvasSurface) SetStrokeColor(c string)          { s.stroke = s.parseColor(c) }

func (s *canvasSurface) BeginPath()          { s.path = &canvas.Path{} }
func (s *canvasSurface) MoveTo(x, y float64) { s.path.MoveTo(x, y) }
func (s *canvasSurface) LineTo(x, y float64) { s.path.LineTo(x, y) }
func (s *canvasSurface) ClosePath()          { s.path.Close() }

func (s *canvasSurface) QuadraticCurveTo(cpx, cpy, x, y float64) {
	s.path.QuadTo(cpx, cpy, x, y)
}

func (s *canvasSurface) Fill() {
	s.fillPath(s.path, s.fill)
}

// Stroke outlines the current path and fills the outline, so that strokes
// honour the clip region like fills do.
func (s *canvasSurface) Stroke() {
	if s.path.Empty() || s.lineWidth <= 0 {
		return
	}
	outline := s.path.Stroke(s.lineWidth, canvas.ButtCap, canvas.MiterJoin, canvas.Tolerance)
	s.fillPath(outline, s.stroke)
}

func (s *canvasSurface) Clip() {
	if s.clip == nil {
		s.clip = s.path.Copy()
		return
	}
	s.clip = s.clip.And(s.path)
}

func (s *canvasSurface) FillRect(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	p := &canvas.Path{}
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
	s.fillPath(p, s.fill)
}

func (s *canvasSurface) fillPath(p *canvas.Path, col color.Color) {
	if col == nil || p.Empty() {
		return
	}
	if s.clip != nil {
		p = p.And(s.clip)
	}
	s.ctx.SetFillColor(col)
	s.ctx.SetStrokeColor(canvas.Transparent)
	s.ctx.DrawPath(0, 0, p)
}

func (s *canvasSurface) FillText(text string, x, y float64) {
	face := s.face()
	if face == nil || text == "" {
		return
	}
	s.ctx.DrawText(x, y, canvas.NewTextLine(face, text, textAlign(s.align)))
}

func (s *canvasSurface) FillTextMax(text string, x, y, maxWidth float64) {
	face := s.face()
	if face == nil || maxWidth <= 0 {
		return
	}
	text = fitMeasured(text, maxWidth, face.TextWidth)
	if text == "" {
		return
	}
	s.ctx.DrawText(x, y, canvas.NewTextLine(face, text, textAlign(s.align)))
}

func (s *canvasSurface) face() *canvas.FontFace {
	if s.fill == nil || s.font.Size <= 0 {
		return nil
	}
	style := canvas.FontRegular
	switch fonts.ForWeight(s.font.Weight) {
	case fonts.Medium:
		style = canvas.FontMedium
	case fonts.Bold:
		style = canvas.FontBold
	}
	return s.family.Face(s.font.Size*ptPerPx, s.fill, style, canvas.FontNormal)
}

// parseColor accepts hex colours, CSS colour names and the keywords none and
// transparent. The first parse failure is kept and reported after drawing.
func (s *canvasSurface) parseColor(c string) color.Color {
	name := strings.ToLower(strings.TrimSpace(c))
	switch name {
	case "", "none", "transparent":
		return nil
	}
	if named, ok := colornames.Map[name]; ok {
		return named
	}
	col, err := colorful.Hex(strings.TrimSpace(c))
	if err != nil {
		if s.err == nil {
			s.err = errors.Wrap(errors.ErrCodeInvalidConfig, err, "unsupported colour %q", c)
		}
		return nil
	}
	return col
}

func textAlign(a surface.TextAlign) canvas.TextAlign {
	switch a {
	case surface.AlignCenter:
		return canvas.Center
	case surface.AlignEnd:
		return canvas.Right
	default:
		return canvas.Left
	}
}

// fitMeasured shortens text with a ".." suffix until measure reports it fits
// in maxWidth.
func fitMeasured(text string, maxWidth float64, measure func(string) float64) string {
	if measure(text) <= maxWidth {
		return text
	}
	runes := []rune(text)
	for n := len(runes) - 1; n > 0; n-- {
		cut := string(runes[:n]) + ".."
		if measure(cut) <= maxWidth {
			return cut
		}
	}
	return ""
}
