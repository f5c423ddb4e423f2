package msdfgen

import "testing"

func squareContour() *Contour {
	c := NewContour()
	c.AddEdge(NewLinearEdge(Pt(0, 0), Pt(10, 0)))
	c.AddEdge(NewLinearEdge(Pt(10, 0), Pt(10, 10)))
	c.AddEdge(NewLinearEdge(Pt(10, 10), Pt(0, 10)))
	c.AddEdge(NewLinearEdge(Pt(0, 10), Pt(0, 0)))
	return c
}

func TestContourWindingCounterClockwiseSquare(t *testing.T) {
	c := squareContour()
	if got := c.Winding(); got != 1 {
		t.Errorf("Winding() = %d, want 1 for a CCW square", got)
	}
}

func TestContourWindingReversed(t *testing.T) {
	c := squareContour()
	c.ReverseInPlace()
	if got := c.Winding(); got != -1 {
		t.Errorf("Winding() after reverse = %d, want -1", got)
	}
}

func TestContourNormalizeDropsDegenerateEdges(t *testing.T) {
	c := NewContour()
	c.AddEdge(NewLinearEdge(Pt(0, 0), Pt(10, 0)))
	c.AddEdge(NewLinearEdge(Pt(10, 0), Pt(10, 0))) // degenerate
	c.AddEdge(NewLinearEdge(Pt(10, 0), Pt(0, 0)))
	c.Normalize()
	if len(c.Edges) != 2 {
		t.Fatalf("Normalize() left %d edges, want 2", len(c.Edges))
	}
}

func TestContourNormalizeSplitsLoneEdge(t *testing.T) {
	c := NewContour()
	c.AddEdge(NewLinearEdge(Pt(0, 0), Pt(9, 0)))
	c.Normalize()
	if len(c.Edges) != 3 {
		t.Fatalf("Normalize() on single edge left %d edges, want 3", len(c.Edges))
	}
}

func TestShapeValidateDetectsGap(t *testing.T) {
	s := NewShape()
	c := NewContour()
	c.AddEdge(NewLinearEdge(Pt(0, 0), Pt(10, 0)))
	c.AddEdge(NewLinearEdge(Pt(10, 1), Pt(0, 0))) // does not start where previous ends
	s.AddContour(c)
	if err := s.Validate(); err == nil {
		t.Error("Validate() = nil, want ErrDiscontinuousContour")
	}
}

func TestShapeValidateAcceptsClosedSquare(t *testing.T) {
	s := NewShape()
	s.AddContour(squareContour())
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestShapeBoundsOfSquare(t *testing.T) {
	s := NewShape()
	s.AddContour(squareContour())
	l, b, r, top := s.Bounds()
	if l != 0 || b != 0 || r != 10 || top != 10 {
		t.Errorf("Bounds() = (%v,%v,%v,%v), want (0,0,10,10)", l, b, r, top)
	}
}
