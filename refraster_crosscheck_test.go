package msdfgen

import (
	"testing"

	"github.com/gogpu/msdfgen/internal/refraster"
)

// toRefrasterEdges projects a contour's edges into pixel space so they can
// be rasterized by the independent golang.org/x/image/vector-backed
// reference rasterizer, giving a ground truth to check median
// reconstruction against.
func toRefrasterEdges(contour *Contour, projection Projection) []refraster.Edge {
	edges := make([]refraster.Edge, len(contour.Edges))
	for i, e := range contour.Edges {
		p0 := projection.Project(e.P0)
		p1 := projection.Project(e.P1)
		re := refraster.Edge{P0: [2]float64{p0.X, p0.Y}, P1: [2]float64{p1.X, p1.Y}}
		switch e.kind {
		case kindLinear:
			re.Kind = 1
		case kindQuadratic:
			p2 := projection.Project(e.P2)
			re.Kind = 2
			re.P2 = [2]float64{p2.X, p2.Y}
		default:
			p2 := projection.Project(e.P2)
			p3 := projection.Project(e.P3)
			re.Kind = 3
			re.P2 = [2]float64{p2.X, p2.Y}
			re.P3 = [2]float64{p3.X, p3.Y}
		}
		edges[i] = re
	}
	return edges
}

// TestGenerateMSDFMedianMatchesGroundTruthCoverage checks the median
// reconstruction invariant: after generateMSDF and distanceSignCorrection,
// a pixel's median channel reads as inside the shape iff an independent
// antialiased rasterizer also reports that pixel as covered.
func TestGenerateMSDFMedianMatchesGroundTruthCoverage(t *testing.T) {
	shape := unitSquareShape()
	EdgeColoringSimple(shape, 3.0, 0)
	bitmap := NewBitmap(20, 20, 3)
	projection := FitProjection(0, 0, 10, 10, 20, 20, 2)
	GenerateMSDF(bitmap, shape, projection, 4, DefaultGeneratorConfig())
	DistanceSignCorrection(bitmap, shape, projection, FillNonZero)

	contours := make([][]refraster.Edge, len(shape.Contours))
	for i, c := range shape.Contours {
		contours[i] = toRefrasterEdges(c, projection)
	}
	mask := refraster.Rasterize(bitmap.Width, bitmap.Height, contours)

	check := func(x, y int) {
		px := bitmap.At(x, y)
		m := median3(px[0], px[1], px[2])
		inside := m > 0.5
		truth := refraster.Coverage(mask, x, y) > 0.5
		if inside != truth {
			t.Errorf("pixel (%d,%d): median=%v (inside=%v) vs ground-truth coverage (inside=%v)", x, y, m, inside, truth)
		}
	}

	center := projection.Project(Pt(5, 5))
	check(int(center.X), int(center.Y))

	far := projection.Project(Pt(-5, -5))
	if fx, fy := int(far.X), int(far.Y); fx >= 0 && fx < bitmap.Width && fy >= 0 && fy < bitmap.Height {
		check(fx, fy)
	}
}
