package msdfgen

import "math"

// Contour is a closed sequence of edges. The end point of each edge must
// coincide with the start point of the next (and the last with the
// first) — Normalize snaps start points within approxEqual's tolerance
// of the previous edge's end point and removes edges that have collapsed
// to zero length.
type Contour struct {
	Edges []*EdgeSegment
}

// NewContour returns an empty contour ready for edges to be appended.
func NewContour() *Contour {
	return &Contour{}
}

// AddEdge appends an edge to the contour.
func (c *Contour) AddEdge(e *EdgeSegment) {
	c.Edges = append(c.Edges, e)
}

// Bounds extends the box [l,b,r,t] to enclose every edge in the contour.
func (c *Contour) Bounds(l, b, r, t *float64) {
	for _, e := range c.Edges {
		e.Bounds(l, b, r, t)
	}
}

// Winding returns the contour's winding direction: +1 for counter-clockwise,
// -1 for clockwise, 0 for a degenerate (zero-area) contour. Computed via
// the shoelace formula over edge endpoints, matching the original
// implementation's Contour::winding.
func (c *Contour) Winding() int {
	if len(c.Edges) == 0 {
		return 0
	}
	if len(c.Edges) == 1 {
		a := c.Edges[0].Point(0)
		b := c.Edges[0].Point(1.0 / 3.0)
		d := c.Edges[0].Point(2.0 / 3.0)
		return signOfArea(a, b, d)
	}
	if len(c.Edges) == 2 {
		a := c.Edges[0].Point(0)
		b := c.Edges[0].Point(0.5)
		d := c.Edges[1].Point(0)
		e := c.Edges[1].Point(0.5)
		return signOfArea(a, b, d) + signOfArea(b, d, e)
	}
	total := 0.0
	prev := c.Edges[len(c.Edges)-1].Point(0)
	for _, e := range c.Edges {
		cur := e.Point(0)
		total += prev.ToVector().Cross(cur.ToVector())
		prev = cur
	}
	switch {
	case total > 0:
		return 1
	case total < 0:
		return -1
	default:
		return 0
	}
}

func signOfArea(a, b, d Point2) int {
	area := a.ToVector().Cross(b.ToVector()) + b.ToVector().Cross(d.ToVector()) + d.ToVector().Cross(a.ToVector())
	switch {
	case area > 0:
		return 1
	case area < 0:
		return -1
	default:
		return 0
	}
}

// Normalize repairs degenerate edges in place: edges collapsed to zero
// length are dropped, and a contour left with exactly one edge is split
// into thirds so edge coloring always has at least two corners to work
// with (a single edge cannot carry more than one channel transition).
func (c *Contour) Normalize() {
	edges := c.Edges[:0]
	for _, e := range c.Edges {
		if !e.IsDegenerate() {
			edges = append(edges, e)
		}
	}
	c.Edges = edges
	for i, e := range c.Edges {
		prevEnd := c.Edges[(i-1+len(c.Edges))%len(c.Edges)].endpoint()
		if approxEqual(prevEnd, e.P0) {
			e.P0 = prevEnd
		}
	}
	if len(c.Edges) == 1 {
		parts := c.Edges[0].SplitInThirds()
		c.Edges = []*EdgeSegment{parts[0], parts[1], parts[2]}
	}
}

// ReverseInPlace reverses the contour's direction, for use when a shape
// needs a consistent orientation (e.g. after overlap-support detects a
// hole with the wrong winding).
func (c *Contour) ReverseInPlace() {
	n := len(c.Edges)
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		c.Edges[i], c.Edges[j] = c.Edges[j], c.Edges[i]
	}
	for _, e := range c.Edges {
		reverseEdge(e)
	}
}

func reverseEdge(e *EdgeSegment) {
	switch e.kind {
	case kindLinear:
		e.P0, e.P1 = e.P1, e.P0
	case kindQuadratic:
		e.P0, e.P2 = e.P2, e.P0
	default:
		e.P0, e.P3 = e.P3, e.P0
		e.P1, e.P2 = e.P2, e.P1
	}
}

// approxEqual reports whether two points coincide within the tolerance
// used to validate contour continuity.
func approxEqual(a, b Point2) bool {
	return math.Abs(a.X-b.X) < 1e-6 && math.Abs(a.Y-b.Y) < 1e-6
}
