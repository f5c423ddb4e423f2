// Package refraster rasterizes a shape to a ground-truth antialiased
// coverage mask for use in tests only — it exists to give test code an
// independent reference to compare a generated distance field against
// (median reconstruction, sign correctness), not to be part of the
// generation pipeline itself.
package refraster

import (
	"image"

	"golang.org/x/image/vector"
)

// Edge is the minimal shape of a curve segment this package needs from a
// caller — it intentionally does not import the root msdfgen package, so
// msdfgen's tests can adapt their own Shape/Contour/EdgeSegment types into
// this shape without creating an import cycle.
type Edge struct {
	// Kind is 1 for a line, 2 for a quadratic, 3 for a cubic.
	Kind           int
	P0, P1, P2, P3 [2]float64
}

// Rasterize draws the closed path described by contours (each a slice of
// Edges whose end points chain together) into a width x height coverage
// mask, using golang.org/x/image/vector's antialiased scan converter as
// ground truth.
func Rasterize(width, height int, contours [][]Edge) *image.Alpha {
	r := vector.NewRasterizer(width, height)
	for _, edges := range contours {
		if len(edges) == 0 {
			continue
		}
		start := edges[0].P0
		r.MoveTo(float32(start[0]), float32(start[1]))
		for _, e := range edges {
			switch e.Kind {
			case 1:
				r.LineTo(float32(e.P1[0]), float32(e.P1[1]))
			case 2:
				r.QuadTo(float32(e.P1[0]), float32(e.P1[1]), float32(e.P2[0]), float32(e.P2[1]))
			case 3:
				r.CubeTo(float32(e.P1[0]), float32(e.P1[1]), float32(e.P2[0]), float32(e.P2[1]), float32(e.P3[0]), float32(e.P3[1]))
			}
		}
		r.ClosePath()
	}
	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// Coverage returns the fractional coverage (0..1) of pixel (x,y) in mask.
func Coverage(mask *image.Alpha, x, y int) float64 {
	return float64(mask.AlphaAt(x, y).A) / 255.0
}
