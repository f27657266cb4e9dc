package layout

// Point is a coordinate on the canvas.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Silhouette is the tapered funnel outline: a straight top edge and two
// quadratic sides whose control points sit at one third of the height.
type Silhouette struct {
	TopLeft     Point `json:"top_left"`
	TopRight    Point `json:"top_right"`
	RightCtrl   Point `json:"right_ctrl"`
	BottomRight Point `json:"bottom_right"`
	BottomLeft  Point `json:"bottom_left"`
	LeftCtrl    Point `json:"left_ctrl"`
}

// Outline returns the funnel silhouette for d.
func (d Dimensions) Outline() Silhouette {
	h := d.TotalHeight()
	inset := d.Inset()
	right := d.StartWidth - inset
	return Silhouette{
		TopLeft:     Point{0, 0},
		TopRight:    Point{d.StartWidth, 0},
		RightCtrl:   Point{right, h / 3},
		BottomRight: Point{right, h},
		BottomLeft:  Point{inset, h},
		LeftCtrl:    Point{inset, h / 3},
	}
}
