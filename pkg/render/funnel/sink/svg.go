package sink

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/funnelchart/pkg/fonts"
	"github.com/matzehuels/funnelchart/pkg/render/funnel"
	"github.com/matzehuels/funnelchart/pkg/render/funnel/config"
	"github.com/matzehuels/funnelchart/pkg/render/funnel/styles"
	"github.com/matzehuels/funnelchart/pkg/render/funnel/surface"
)

// RenderSVG renders cfg as a standalone SVG document.
func RenderSVG(cfg config.Config, opts ...Option) ([]byte, error) {
	o := newOptions(opts)
	s := newSVGSurface(o.width, o.height)

	s.header(o, cfg)
	funnel.Render(s, cfg)
	s.footer()

	return s.buf.Bytes(), nil
}

type svgSurface struct {
	buf           bytes.Buffer
	width, height float64

	fill, stroke string
	lineWidth    float64
	align        surface.TextAlign
	font         surface.Font

	path   surface.Path
	clips  int
	groups int
}

var _ surface.Surface = (*svgSurface)(nil)

func newSVGSurface(width, height float64) *svgSurface {
	return &svgSurface{
		width:     width,
		height:    height,
		fill:      "#000",
		stroke:    "#000",
		lineWidth: 1,
		align:     surface.AlignStart,
	}
}

func (s *svgSurface) header(o options, cfg config.Config) {
	fmt.Fprintf(&s.buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n",
		num(s.width), num(s.height), num(s.width), num(s.height))

	if o.embedFont {
		w := fonts.ForWeight(cfg.FontWeight)
		fmt.Fprintf(&s.buf, "  <defs><style>@font-face { font-family: '%s'; src: url(data:font/ttf;base64,%s) format('truetype'); }</style></defs>\n",
			styles.EscapeXML(cfg.Font), fonts.TTFBase64(w))
	}
	if o.background != "" {
		fmt.Fprintf(&s.buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", styles.EscapeXML(o.background))
	}
}

func (s *svgSurface) footer() {
	for ; s.groups > 0; s.groups-- {
		s.buf.WriteString("  </g>\n")
	}
	s.buf.WriteString("</svg>\n")
}

func (s *svgSurface) Size() (float64, float64) { return s.width, s.height }

func (s *svgSurface) SetFont(f surface.Font)           { s.font = f }
func (s *svgSurface) SetFillColor(c string)            { s.fill = c }
func (s *svgSurface) SetStrokeColor(c string)          { s.stroke = c }
func (s *svgSurface) SetLineWidth(w float64)           { s.lineWidth = w }
func (s *svgSurface) SetTextAlign(a surface.TextAlign) { s.align = a }

func (s *svgSurface) BeginPath()          { s.path.Reset() }
func (s *svgSurface) MoveTo(x, y float64) { s.path.MoveTo(x, y) }
func (s *svgSurface) LineTo(x, y float64) { s.path.LineTo(x, y) }
func (s *svgSurface) ClosePath()          { s.path.Close() }

func (s *svgSurface) QuadraticCurveTo(cpx, cpy, x, y float64) {
	s.path.QuadTo(cpx, cpy, x, y)
}

func (s *svgSurface) Fill() {
	if s.path.Empty() || s.fill == "" {
		return
	}
	fmt.Fprintf(&s.buf, `  <path d="%s" fill="%s"/>`+"\n", pathData(&s.path), styles.EscapeXML(s.fill))
}

func (s *svgSurface) Stroke() {
	if s.path.Empty() || s.stroke == "" || s.lineWidth <= 0 {
		return
	}
	fmt.Fprintf(&s.buf, `  <path d="%s" fill="none" stroke="%s" stroke-width="%s"/>`+"\n",
		pathData(&s.path), styles.EscapeXML(s.stroke), num(s.lineWidth))
}

// Clip opens a group clipped to the current path. Groups nest, so clip
// regions intersect like they do on an HTML canvas.
func (s *svgSurface) Clip() {
	if s.path.Empty() {
		return
	}
	s.clips++
	id := "funnel-clip-" + strconv.Itoa(s.clips)
	fmt.Fprintf(&s.buf, `  <clipPath id="%s"><path d="%s"/></clipPath>`+"\n", id, pathData(&s.path))
	fmt.Fprintf(&s.buf, `  <g clip-path="url(#%s)">`+"\n", id)
	s.groups++
}

func (s *svgSurface) FillRect(x, y, w, h float64) {
	if w <= 0 || h <= 0 || s.fill == "" {
		return
	}
	fmt.Fprintf(&s.buf, `  <rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
		num(x), num(y), num(w), num(h), styles.EscapeXML(s.fill))
}

func (s *svgSurface) FillText(text string, x, y float64) {
	if text == "" || s.fill == "" {
		return
	}
	fmt.Fprintf(&s.buf, `  <text x="%s" y="%s" text-anchor="%s" font-family="%s" font-weight="%s" font-size="%s" fill="%s">%s</text>`+"\n",
		num(x), num(y), textAnchor(s.align),
		styles.EscapeXML(fontFamily(s.font.Family)),
		styles.EscapeXML(s.font.Weight),
		num(s.font.Size),
		styles.EscapeXML(s.fill),
		styles.EscapeXML(text))
}

func (s *svgSurface) FillTextMax(text string, x, y, maxWidth float64) {
	if maxWidth <= 0 {
		return
	}
	s.FillText(styles.FitText(text, s.font.Size, maxWidth), x, y)
}

func textAnchor(a surface.TextAlign) string {
	switch a {
	case surface.AlignCenter:
		return "middle"
	case surface.AlignEnd:
		return "end"
	default:
		return "start"
	}
}

func fontFamily(family string) string {
	if family == "" {
		return fonts.FallbackFontFamily
	}
	return "'" + family + "', " + fonts.FallbackFontFamily
}

func pathData(p *surface.Path) string {
	var b strings.Builder
	for i, seg := range p.Segments() {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch seg.Kind {
		case surface.SegMove:
			fmt.Fprintf(&b, "M%s %s", num(seg.X), num(seg.Y))
		case surface.SegLine:
			fmt.Fprintf(&b, "L%s %s", num(seg.X), num(seg.Y))
		case surface.SegQuad:
			fmt.Fprintf(&b, "Q%s %s %s %s", num(seg.X), num(seg.Y), num(seg.X2), num(seg.Y2))
		case surface.SegClose:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

// num formats a coordinate with at most two decimals.
func num(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
