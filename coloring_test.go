package msdfgen

import "testing"

func TestEdgeColoringSimpleSquareGetsThreeDistinctColors(t *testing.T) {
	shape := NewShape()
	shape.AddContour(squareContour())
	EdgeColoringSimple(shape, 3.0, 0)

	seen := map[EdgeColor]bool{}
	for _, e := range shape.Contours[0].Edges {
		if e.Color == Black {
			t.Fatalf("edge left uncolored: %+v", e)
		}
		seen[e.Color] = true
	}
	if len(seen) != 3 {
		t.Errorf("square got %d distinct colors, want 3", len(seen))
	}
	// No two adjacent edges of a 4-corner square should share a color,
	// since every vertex is a sharp corner.
	edges := shape.Contours[0].Edges
	for i := range edges {
		next := edges[(i+1)%len(edges)]
		if edges[i].Color == next.Color {
			t.Errorf("adjacent edges %d,%d share color %v across a corner", i, (i+1)%len(edges), edges[i].Color)
		}
	}
}

func TestEdgeColoringSimpleThreeEdgeTriangleFullyColored(t *testing.T) {
	c := NewContour()
	c.AddEdge(NewLinearEdge(Pt(0, 0), Pt(5, 0.01)))
	c.AddEdge(NewLinearEdge(Pt(5, 0.01), Pt(10, 0)))
	c.AddEdge(NewLinearEdge(Pt(10, 0), Pt(0, 0)))
	shape := NewShape()
	shape.AddContour(c)
	EdgeColoringSimple(shape, 3.0, 0)
	// The straight-back edge is a sharp corner at both ends regardless,
	// so just check no edge remains Black (uncolored).
	for _, e := range c.Edges {
		if e.Color == Black {
			t.Errorf("edge left uncolored: %+v", e)
		}
	}
}

func TestEdgeColoringSimpleSingleEdgeContour(t *testing.T) {
	c := NewContour()
	c.AddEdge(NewLinearEdge(Pt(0, 0), Pt(10, 0)))
	shape := NewShape()
	shape.AddContour(c)
	EdgeColoringSimple(shape, 3.0, 0)
	if c.Edges[0].Color != White {
		t.Errorf("single-edge contour color = %v, want White", c.Edges[0].Color)
	}
}
