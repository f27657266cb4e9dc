package surface

// SegmentKind identifies a path segment.
type SegmentKind uint8

const (
	SegMove SegmentKind = iota
	SegLine
	SegQuad
	SegClose
)

// Segment is one path command. Quadratic segments use all four coordinates
// (control point, then end point); move and line segments use the first two.
type Segment struct {
	Kind SegmentKind
	X, Y float64
	// End point of a quadratic segment.
	X2, Y2 float64
}

// Path accumulates the segments of the current path for surfaces that
// serialise whole paths rather than drawing incrementally.
type Path struct {
	segs []Segment
}

func (p *Path) Reset()              { p.segs = p.segs[:0] }
func (p *Path) MoveTo(x, y float64) { p.segs = append(p.segs, Segment{Kind: SegMove, X: x, Y: y}) }
func (p *Path) LineTo(x, y float64) { p.segs = append(p.segs, Segment{Kind: SegLine, X: x, Y: y}) }
func (p *Path) Close()              { p.segs = append(p.segs, Segment{Kind: SegClose}) }

func (p *Path) QuadTo(cpx, cpy, x, y float64) {
	p.segs = append(p.segs, Segment{Kind: SegQuad, X: cpx, Y: cpy, X2: x, Y2: y})
}

// Segments returns the recorded segments. The slice is only valid until the
// next Reset.
func (p *Path) Segments() []Segment { return p.segs }

// Empty reports whether no segment has been added since the last Reset.
func (p *Path) Empty() bool { return len(p.segs) == 0 }

// Clone returns an independent copy of p.
func (p *Path) Clone() *Path {
	return &Path{segs: append([]Segment(nil), p.segs...)}
}
