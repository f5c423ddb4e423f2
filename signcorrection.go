package msdfgen

import "math"

// DistanceSignCorrection flips the sign of every texel in a single- or
// multi-channel distance bitmap whose sign disagrees with the shape's own
// scanline fill test — the final pass that turns an orientation-agnostic
// distance field into a correctly-signed one, needed whenever the input
// shape's winding does not reliably indicate inside/outside (e.g. an
// externally authored path with inconsistent winding).
func DistanceSignCorrection(bitmap *Bitmap, shape *Shape, projection Projection, fillRule FillRule) {
	for y := 0; y < bitmap.Height; y++ {
		scanline := buildScanline(shape, projection, bitmap, y)
		for x := 0; x < bitmap.Width; x++ {
			point := projection.Unproject(Pt(float64(x)+0.5, float64(y)+0.5)).X
			filled := scanline.Filled(point, fillRule)
			px := bitmap.At(x, y)
			m := medianOf(px)
			if filled != (m > 0.5) {
				for i := range px {
					px[i] = 1 - px[i]
				}
			}
		}
	}
}

func buildScanline(shape *Shape, projection Projection, bitmap *Bitmap, y int) *Scanline {
	shapeY := projection.Unproject(Pt(0, float64(y)+0.5)).Y
	var xs []float64
	var dirs []int
	for _, contour := range shape.Contours {
		for _, edge := range contour.Edges {
			xs, dirs = edge.ScanlineIntersections(xs, dirs, shapeY)
		}
	}
	return NewScanline(xs, dirs)
}

func medianOf(px []float64) float64 {
	switch len(px) {
	case 1:
		return px[0]
	default:
		return median3(px[0], px[1], px[2])
	}
}

// ResolveSignAmbiguity corrects texels whose sign remains ambiguous after
// DistanceSignCorrection — typically isolated texels where the scanline
// test and the nearest-edge distance disagree right at the boundary — by
// adopting the majority sign of their 4-connected neighborhood. Texels
// with no clear majority are left unchanged.
func ResolveSignAmbiguity(bitmap *Bitmap) {
	width, height := bitmap.Width, bitmap.Height
	original := make([]float64, len(bitmap.Pixels))
	copy(original, bitmap.Pixels)
	get := func(x, y int) float64 {
		i := (y*width + x) * bitmap.N
		return medianOf(original[i : i+bitmap.N])
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m := get(x, y)
			if math.Abs(m-0.5) > 0.4 {
				continue // far from the boundary: not ambiguous
			}
			pos, neg := 0, 0
			for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || nx >= width || ny < 0 || ny >= height {
					continue
				}
				if get(nx, ny) > 0.5 {
					pos++
				} else {
					neg++
				}
			}
			want := m > 0.5
			if pos > neg {
				want = true
			} else if neg > pos {
				want = false
			} else {
				continue
			}
			if want != (m > 0.5) {
				px := bitmap.At(x, y)
				for i := range px {
					px[i] = 1 - px[i]
				}
			}
		}
	}
}
