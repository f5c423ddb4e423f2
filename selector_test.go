package msdfgen

import (
	"math"
	"testing"
)

func TestTrueDistanceSelectorPicksClosestEdge(t *testing.T) {
	shape := unitSquareShape()
	contour := shape.Contours[0]
	sel := NewTrueDistanceSelector()
	sel.Reset(Pt(5, 1))
	feedContour(sel, contour)
	d := sel.Distance()
	if math.Abs(math.Abs(d[0])-1) > 1e-9 {
		t.Errorf("Distance() = %v, want magnitude 1", d[0])
	}
}

func TestPseudoDistanceSelectorExtendsBeyondCorner(t *testing.T) {
	// A right-angle corner at the origin, opening into the first
	// quadrant: edges (0,0)-(10,0) and (0,0)-(0,10) in reverse winding
	// sense for this isolated test (selector doesn't care about winding).
	c := NewContour()
	c.AddEdge(NewLinearEdge(Pt(0, 10), Pt(0, 0)))
	c.AddEdge(NewLinearEdge(Pt(0, 0), Pt(10, 0)))

	sel := NewPseudoDistanceSelector()
	origin := Pt(-1, -1) // diagonally outside the corner
	sel.Reset(origin)
	feedContour(sel, c)
	d := sel.Distance()
	// The true closest point is the corner itself at distance sqrt(2),
	// but the point faces the first edge's extension past the corner, so
	// the selector reports the perpendicular distance to that extended
	// line x=0: 1, negative because the point lies outside the corner.
	if math.Abs(d[0]-(-1)) > 1e-6 {
		t.Errorf("pseudo-distance = %v, want -1 (distance to the extended edge line)", d[0])
	}
}

func TestMultiDistanceSelectorRespectsColorMask(t *testing.T) {
	c := NewContour()
	e1 := NewLinearEdge(Pt(0, 0), Pt(10, 0))
	e2 := NewLinearEdge(Pt(10, 0), Pt(10, 10))
	e1.Color = Red
	e2.Color = Green
	c.AddEdge(e1)
	c.AddEdge(e2)

	sel := NewMultiDistanceSelector()
	sel.Reset(Pt(5, 1))
	feedContour(sel, c)
	d := sel.Distance()
	if len(d) != 3 {
		t.Fatalf("Distance() returned %d channels, want 3", len(d))
	}
	// Channel 0 (red) only sees e1, so it should report the exact
	// distance to the horizontal edge (magnitude 1).
	if math.Abs(math.Abs(d[0])-1) > 1e-6 {
		t.Errorf("red channel = %v, want magnitude 1", d[0])
	}
}
