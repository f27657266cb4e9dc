package surface

// Kind names a recorded drawing call.
type Kind string

const (
	OpSetFont        Kind = "setFont"
	OpSetFillColor   Kind = "setFillColor"
	OpSetStrokeColor Kind = "setStrokeColor"
	OpSetLineWidth   Kind = "setLineWidth"
	OpSetTextAlign   Kind = "setTextAlign"
	OpBeginPath      Kind = "beginPath"
	OpMoveTo         Kind = "moveTo"
	OpLineTo         Kind = "lineTo"
	OpQuadTo         Kind = "quadraticCurveTo"
	OpClosePath      Kind = "closePath"
	OpFill           Kind = "fill"
	OpStroke         Kind = "stroke"
	OpClip           Kind = "clip"
	OpFillRect       Kind = "fillRect"
	OpFillText       Kind = "fillText"
)

// Op is one recorded call. Painting operations carry a snapshot of the state
// they were issued under.
type Op struct {
	Kind Kind      `json:"op"`
	Args []float64 `json:"args,omitempty"`
	Text string    `json:"text,omitempty"`

	Fill      string    `json:"fill,omitempty"`
	Stroke    string    `json:"stroke,omitempty"`
	LineWidth float64   `json:"line_width,omitempty"`
	Align     TextAlign `json:"align,omitempty"`
	Font      string    `json:"font,omitempty"`
	Clipped   bool      `json:"clipped,omitempty"`
}

type state struct {
	font      Font
	fill      string
	stroke    string
	lineWidth float64
	align     TextAlign
	clipped   bool
}

// Recorder is a Surface that stores every call in order.
type Recorder struct {
	width, height float64
	ops           []Op
	st            state
}

// NewRecorder returns a recorder reporting the given extents. Its initial
// state mirrors a fresh HTML canvas: black fill and stroke, 1px lines and
// start-aligned text.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{
		width:  width,
		height: height,
		st:     state{fill: "#000", stroke: "#000", lineWidth: 1, align: AlignStart},
	}
}

func (r *Recorder) Size() (float64, float64) { return r.width, r.height }

// Ops returns the recorded calls.
func (r *Recorder) Ops() []Op { return r.ops }

// Filter returns the recorded calls of the given kinds, in order.
func (r *Recorder) Filter(kinds ...Kind) []Op {
	var out []Op
	for _, op := range r.ops {
		for _, k := range kinds {
			if op.Kind == k {
				out = append(out, op)
				break
			}
		}
	}
	return out
}

// Texts returns the strings passed to FillText and FillTextMax, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Filter(OpFillText) {
		out = append(out, op.Text)
	}
	return out
}

// Reset discards recorded calls and restores the initial state.
func (r *Recorder) Reset() {
	*r = *NewRecorder(r.width, r.height)
}

func (r *Recorder) add(op Op) { r.ops = append(r.ops, op) }

func (r *Recorder) paint(kind Kind, args []float64, text string) {
	r.add(Op{
		Kind:      kind,
		Args:      args,
		Text:      text,
		Fill:      r.st.fill,
		Stroke:    r.st.stroke,
		LineWidth: r.st.lineWidth,
		Align:     r.st.align,
		Font:      r.st.font.String(),
		Clipped:   r.st.clipped,
	})
}

func (r *Recorder) SetFont(f Font) {
	r.st.font = f
	r.add(Op{Kind: OpSetFont, Text: f.String()})
}

func (r *Recorder) SetFillColor(c string) {
	r.st.fill = c
	r.add(Op{Kind: OpSetFillColor, Text: c})
}

func (r *Recorder) SetStrokeColor(c string) {
	r.st.stroke = c
	r.add(Op{Kind: OpSetStrokeColor, Text: c})
}

func (r *Recorder) SetLineWidth(w float64) {
	r.st.lineWidth = w
	r.add(Op{Kind: OpSetLineWidth, Args: []float64{w}})
}

func (r *Recorder) SetTextAlign(a TextAlign) {
	r.st.align = a
	r.add(Op{Kind: OpSetTextAlign, Text: string(a)})
}

func (r *Recorder) BeginPath()          { r.add(Op{Kind: OpBeginPath}) }
func (r *Recorder) MoveTo(x, y float64) { r.add(Op{Kind: OpMoveTo, Args: []float64{x, y}}) }
func (r *Recorder) LineTo(x, y float64) { r.add(Op{Kind: OpLineTo, Args: []float64{x, y}}) }
func (r *Recorder) ClosePath()          { r.add(Op{Kind: OpClosePath}) }

func (r *Recorder) QuadraticCurveTo(cpx, cpy, x, y float64) {
	r.add(Op{Kind: OpQuadTo, Args: []float64{cpx, cpy, x, y}})
}

func (r *Recorder) Fill()   { r.paint(OpFill, nil, "") }
func (r *Recorder) Stroke() { r.paint(OpStroke, nil, "") }

func (r *Recorder) Clip() {
	r.st.clipped = true
	r.add(Op{Kind: OpClip})
}

func (r *Recorder) FillRect(x, y, w, h float64) {
	r.paint(OpFillRect, []float64{x, y, w, h}, "")
}

func (r *Recorder) FillText(text string, x, y float64) {
	r.paint(OpFillText, []float64{x, y}, text)
}

func (r *Recorder) FillTextMax(text string, x, y, maxWidth float64) {
	if maxWidth <= 0 {
		return
	}
	r.paint(OpFillText, []float64{x, y, maxWidth}, text)
}
