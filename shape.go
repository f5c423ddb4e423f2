package msdfgen

import (
	"errors"
	"math"
)

// ErrDiscontinuousContour is returned by Validate when a contour's edges
// do not form a closed loop (an edge's end point does not coincide with
// the next edge's start point, within tolerance).
var ErrDiscontinuousContour = errors.New("msdfgen: contour is not a closed loop")

// Shape is a set of contours, each a closed loop of edges, together with
// the axis convention used when rasterizing it to a bitmap.
type Shape struct {
	Contours []*Contour
	// InverseYAxis records the shape's Y-axis convention. No function in
	// this package reads it: the Generate* functions write rows in pixel-y
	// order, and only Bitmap.InverseYAxis changes how rows are stored.
	InverseYAxis bool
}

// NewShape returns an empty shape.
func NewShape() *Shape {
	return &Shape{}
}

// AddContour appends a contour to the shape.
func (s *Shape) AddContour(c *Contour) {
	s.Contours = append(s.Contours, c)
}

// Bounds returns the axis-aligned bounding box of every contour. Returns
// an empty, degenerate box if the shape has no edges.
func (s *Shape) Bounds() (l, b, r, t float64) {
	l, b = math.Inf(1), math.Inf(1)
	r, t = math.Inf(-1), math.Inf(-1)
	for _, c := range s.Contours {
		c.Bounds(&l, &b, &r, &t)
	}
	if l > r {
		return 0, 0, 0, 0
	}
	return l, b, r, t
}

// Validate reports whether every contour forms a closed loop: each edge's
// end point must coincide (within tolerance) with the next edge's start
// point, and the last edge's end point with the first edge's start point.
func (s *Shape) Validate() error {
	for _, c := range s.Contours {
		n := len(c.Edges)
		if n == 0 {
			continue
		}
		for i := 0; i < n; i++ {
			cur := c.Edges[i]
			next := c.Edges[(i+1)%n]
			if !approxEqual(cur.endpoint(), next.P0) {
				return ErrDiscontinuousContour
			}
		}
	}
	return nil
}

// Normalize normalizes every contour (dropping degenerate edges, splitting
// lone-edge contours), matching the per-contour invariant required before
// generation. Empty contours left after normalization are removed.
func (s *Shape) Normalize() {
	contours := s.Contours[:0]
	for _, c := range s.Contours {
		c.Normalize()
		if len(c.Edges) > 0 {
			contours = append(contours, c)
		}
	}
	s.Contours = contours
}

// EdgeCount returns the total number of edges across all contours.
func (s *Shape) EdgeCount() int {
	n := 0
	for _, c := range s.Contours {
		n += len(c.Edges)
	}
	return n
}

// Windings returns the winding direction of each contour, in order. Used
// by the overlapping-contour combiner to decide which contours count as
// "inner" (positive) or "outer" (negative) for a given query.
func (s *Shape) Windings() []int {
	w := make([]int, len(s.Contours))
	for i, c := range s.Contours {
		w[i] = c.Winding()
	}
	return w
}
