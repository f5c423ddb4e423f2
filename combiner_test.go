package msdfgen

import (
	"math"
	"testing"
)

func TestSimpleContourCombinerMergesAcrossContours(t *testing.T) {
	shape := NewShape()
	shape.AddContour(squareContour())
	// A second, distant square.
	c2 := NewContour()
	c2.AddEdge(NewLinearEdge(Pt(100, 100), Pt(110, 100)))
	c2.AddEdge(NewLinearEdge(Pt(110, 100), Pt(110, 110)))
	c2.AddEdge(NewLinearEdge(Pt(110, 110), Pt(100, 110)))
	c2.AddEdge(NewLinearEdge(Pt(100, 110), Pt(100, 100)))
	shape.AddContour(c2)

	combiner := NewSimpleContourCombiner(NewTrueDistanceSelector())
	windings := shape.Windings()
	point := Pt(5, 1) // near the first square, far from the second
	combiner.Reset(point, windings)
	for i, c := range shape.Contours {
		feedContour(combiner.EdgeSelector(i), c)
	}
	d := combiner.Distance()
	if math.Abs(math.Abs(d[0])-1) > 1e-6 {
		t.Errorf("Distance() = %v, want magnitude 1 (nearest square edge)", d[0])
	}
}

func TestOverlappingContourCombinerResolvesHole(t *testing.T) {
	// An outer square [0,10] wound CCW (+1) and an inner hole [3,7] wound
	// CW (-1), like a donut. A point inside the hole should read as
	// outside the shape (negative distance), since the hole punches
	// through the outer fill.
	shape := NewShape()
	shape.AddContour(squareContour()) // CCW, winding +1

	hole := NewContour()
	hole.AddEdge(NewLinearEdge(Pt(3, 3), Pt(3, 7)))
	hole.AddEdge(NewLinearEdge(Pt(3, 7), Pt(7, 7)))
	hole.AddEdge(NewLinearEdge(Pt(7, 7), Pt(7, 3)))
	hole.AddEdge(NewLinearEdge(Pt(7, 3), Pt(3, 3)))
	if hole.Winding() != -1 {
		hole.ReverseInPlace()
	}
	shape.AddContour(hole)

	combiner := NewOverlappingContourCombiner(NewTrueDistanceSelector())
	windings := shape.Windings()
	point := Pt(5, 5) // center of the hole
	combiner.Reset(point, windings)
	for i, c := range shape.Contours {
		feedContour(combiner.EdgeSelector(i), c)
	}
	d := combiner.Distance()
	if d[0] >= 0 {
		t.Errorf("Distance() at hole center = %v, want negative (outside the filled region)", d[0])
	}
}
