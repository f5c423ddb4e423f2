package msdfgen

import "math"

// ErrorCorrectionMode selects how aggressively MSDFErrorCorrection
// protects legitimate sharp corners from being smoothed away by the
// detection pass.
type ErrorCorrectionMode int

const (
	// ErrorCorrectionDisabled skips error correction entirely: the bitmap
	// is returned unmodified.
	ErrorCorrectionDisabled ErrorCorrectionMode = iota
	// ErrorCorrectionIndiscriminate runs detection and correction with no
	// protect phase at all: every flagged texel is corrected, including
	// texels that happen to sit on a real corner or edge.
	ErrorCorrectionIndiscriminate
	// ErrorCorrectionEdgePriority protects known corners and edges
	// before detecting artifacts, the recommended default.
	ErrorCorrectionEdgePriority
	// ErrorCorrectionEdgeOnly marks every texel protected; since the
	// detection pass skips protected texels, no texel is corrected in
	// this mode.
	ErrorCorrectionEdgeOnly
)

// DistanceCheckMode controls whether MSDFErrorCorrection cross-checks a
// candidate artifact against the shape's true signed distance (expensive:
// one closest-edge query per candidate texel) before flagging it, beyond
// the cheap per-texel channel-spread heuristic.
type DistanceCheckMode int

const (
	// DoNotCheckDistance flags purely on channel spread, the cheapest and
	// default option.
	DoNotCheckDistance DistanceCheckMode = iota
	// CheckDistanceAtEdge additionally cross-checks candidates whose
	// median already sits close to the 0.5 boundary, where artifacts are
	// most often confused with real edges.
	CheckDistanceAtEdge
	// AlwaysCheckDistance cross-checks every candidate regardless of how
	// close its median is to the boundary.
	AlwaysCheckDistance
)

// ErrorCorrectionConfig controls MSDFErrorCorrection.
type ErrorCorrectionConfig struct {
	Mode ErrorCorrectionMode
	// DistanceCheckMode controls how aggressively flagged candidates are
	// cross-checked against the shape's true distance before correction.
	DistanceCheckMode DistanceCheckMode
	// MinDeviationRatio is the threshold a texel's channel spread (the
	// largest distance of a channel from the median, times rangeWidth)
	// must exceed before it is flagged as an artifact. Defaults to 1.11111
	// (matching the original's MSDFGEN_ERROR_CORRECTION_DEFAULT_DEVIATION_RATIO).
	MinDeviationRatio float64
	// MinImproveRatio is the minimum ratio of channel spread to
	// true-distance deviation required for a DistanceCheckMode-gated
	// cross-check to still flag the texel: below this ratio, the spread
	// is no larger than the texel's genuine positional uncertainty and
	// flattening it would not be an improvement. Defaults to 1.11111.
	MinImproveRatio float64
	// Buffer, if it has exactly Width*Height bytes, is used as the
	// stencil's backing storage instead of allocating one internally; a
	// buffer of any other length is ignored.
	Buffer []byte
}

// DefaultErrorCorrectionConfig returns the recommended configuration.
func DefaultErrorCorrectionConfig() ErrorCorrectionConfig {
	return ErrorCorrectionConfig{
		Mode:              ErrorCorrectionEdgePriority,
		DistanceCheckMode: DoNotCheckDistance,
		MinDeviationRatio: 1.11111111,
		MinImproveRatio:   1.11111111,
	}
}

const stencilProtected = 1

// stencil marks which texels are protected from correction (bit
// stencilProtected) and which have been flagged as artifacts
// (bit stencilError, set during findErrors and consumed by apply).
type stencil struct {
	width, height int
	flags         []byte
}

const stencilError = 2

func newStencil(w, h int, buffer []byte) *stencil {
	if buffer != nil && len(buffer) == w*h {
		for i := range buffer {
			buffer[i] = 0
		}
		return &stencil{width: w, height: h, flags: buffer}
	}
	return &stencil{width: w, height: h, flags: make([]byte, w*h)}
}

func (s *stencil) set(x, y int, bit byte)       { s.flags[y*s.width+x] |= bit }
func (s *stencil) has(x, y int, bit byte) bool { return s.flags[y*s.width+x]&bit != 0 }

// MSDFErrorCorrection scans a generated MSDF/MTSDF bitmap for texels
// whose channels spread far from their median — an artifact of combining
// independently-resolved channel distances (a comparison with the
// shape's true distance is added only when config.DistanceCheckMode asks
// for it) — and flattens those texels
// to their median value so the reconstructed distance degrades
// gracefully to plain-SDF quality instead of producing a visible notch.
func MSDFErrorCorrection(bitmap *Bitmap, shape *Shape, projection Projection, rangeWidth float64, config ErrorCorrectionConfig) {
	if bitmap.N < 3 {
		return
	}
	if config.Mode == ErrorCorrectionDisabled {
		return
	}
	st := newStencil(bitmap.Width, bitmap.Height, config.Buffer)

	switch config.Mode {
	case ErrorCorrectionEdgePriority:
		protectCorners(st, shape, projection)
		protectEdges(st, bitmap)
	case ErrorCorrectionEdgeOnly:
		for i := range st.flags {
			st.flags[i] |= stencilProtected
		}
	}

	findErrors(st, bitmap, shape, projection, rangeWidth, config)
	applyStencil(st, bitmap)
}

// protectCorners marks texels nearest each contour corner as protected,
// so the detector never flattens a legitimate sharp feature.
func protectCorners(st *stencil, shape *Shape, projection Projection) {
	for _, contour := range shape.Contours {
		n := len(contour.Edges)
		if n < 2 {
			continue
		}
		prevDir := contour.Edges[n-1].Direction(1).Normalize()
		for _, e := range contour.Edges {
			dir := e.Direction(0).Normalize()
			if isCorner(prevDir, dir, 0.5) {
				p := projection.Project(e.P0)
				markProtected(st, p)
			}
			prevDir = e.Direction(1).Normalize()
		}
	}
}

func markProtected(st *stencil, p Point2) {
	x := int(math.Round(p.X - 0.5))
	y := int(math.Round(p.Y - 0.5))
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := x+dx, y+dy
			if nx >= 0 && nx < st.width && ny >= 0 && ny < st.height {
				st.set(nx, ny, stencilProtected)
			}
		}
	}
}

// protectEdges marks texels whose current median value is close to the
// boundary (within 0.25 of 0.5, i.e. within a quarter of rangeWidth of
// the edge) as protected, on the assumption that
// genuine boundary texels are more likely to carry an intentional sharp
// transition than an artifact.
func protectEdges(st *stencil, bitmap *Bitmap) {
	for y := 0; y < bitmap.Height; y++ {
		for x := 0; x < bitmap.Width; x++ {
			px := bitmap.At(x, y)
			m := median3(px[0], px[1], px[2])
			if math.Abs(m-0.5) < 0.25 {
				st.set(x, y, stencilProtected)
			}
		}
	}
}

// findErrors flags every unprotected texel in which some channel deviates
// from the median by more than MinDeviationRatio/rangeWidth (that is, the
// largest deviation times rangeWidth exceeds MinDeviationRatio), the
// signature of a resolved-distance
// discontinuity rather than a true corner. When config.DistanceCheckMode
// requests it, a candidate is additionally cross-checked against the
// shape's true signed distance at that texel, and MinImproveRatio decides
// whether the channel spread is large enough relative to that texel's
// genuine positional uncertainty to be worth flattening.
func findErrors(st *stencil, bitmap *Bitmap, shape *Shape, projection Projection, rangeWidth float64, config ErrorCorrectionConfig) {
	threshold := config.MinDeviationRatio
	if threshold <= 0 {
		threshold = 1.11111111
	}
	improveRatio := config.MinImproveRatio
	if improveRatio <= 0 {
		improveRatio = 1.11111111
	}
	for y := 0; y < bitmap.Height; y++ {
		for x := 0; x < bitmap.Width; x++ {
			if st.has(x, y, stencilProtected) {
				continue
			}
			px := bitmap.At(x, y)
			m := median3(px[0], px[1], px[2])
			maxDeviation := 0.0
			for _, c := range px[:3] {
				dev := math.Abs(c - m)
				if dev > maxDeviation {
					maxDeviation = dev
				}
			}
			if maxDeviation*rangeWidth <= threshold {
				continue
			}

			checkDistance := config.DistanceCheckMode == AlwaysCheckDistance ||
				(config.DistanceCheckMode == CheckDistanceAtEdge && math.Abs(m-0.5) < 0.25)
			if checkDistance {
				trueAlpha := distanceToAlpha(trueDistanceAtPixel(shape, projection, x, y), rangeWidth)
				trueDeviation := math.Abs(m - trueAlpha)
				if trueDeviation > 0 && maxDeviation/trueDeviation < improveRatio {
					continue
				}
			}

			st.set(x, y, stencilError)
		}
	}
}

// trueDistanceAtPixel resolves the shape's own true signed distance at a
// bitmap texel, used as ground truth by findErrors' distance cross-check.
func trueDistanceAtPixel(shape *Shape, projection Projection, x, y int) float64 {
	point := projection.Unproject(Pt(float64(x)+0.5, float64(y)+0.5))
	combiner := NewSimpleContourCombiner(NewTrueDistanceSelector())
	combiner.Reset(point, shape.Windings())
	for ci, contour := range shape.Contours {
		feedContour(combiner.EdgeSelector(ci), contour)
	}
	return combiner.Distance()[0]
}

// applyStencil flattens every texel flagged as an error to its median
// value across all three color channels, leaving the alpha channel (if
// present) untouched.
func applyStencil(st *stencil, bitmap *Bitmap) {
	for y := 0; y < bitmap.Height; y++ {
		for x := 0; x < bitmap.Width; x++ {
			if !st.has(x, y, stencilError) {
				continue
			}
			px := bitmap.At(x, y)
			m := median3(px[0], px[1], px[2])
			px[0], px[1], px[2] = m, m, m
		}
	}
}

func median3(a, b, c float64) float64 {
	return math.Max(math.Min(a, b), math.Min(math.Max(a, b), c))
}

// LegacyErrorCorrection runs the pre-stencil neighbor-clash detector:
// for each axis-adjacent texel pair, it compares which channel changed
// the most and flags the texel farther from the shape boundary (the one
// more likely to be the spurious outlier) whenever the change exceeds
// thresholdX (horizontal neighbors) or thresholdY (vertical neighbors).
// Cheaper than MSDFErrorCorrection and useful as an independent
// cross-check on simple shapes.
func LegacyErrorCorrection(bitmap *Bitmap, thresholdX, thresholdY float64) {
	if bitmap.N < 3 {
		return
	}
	flagged := make([]bool, bitmap.Width*bitmap.Height)
	flag := func(x, y int) { flagged[y*bitmap.Width+x] = true }

	for y := 0; y < bitmap.Height; y++ {
		for x := 0; x < bitmap.Width; x++ {
			a := bitmap.At(x, y)
			if x+1 < bitmap.Width {
				b := bitmap.At(x+1, y)
				if detectClash(a, b, thresholdX) {
					flag(x+1, y)
				} else if detectClash(b, a, thresholdX) {
					flag(x, y)
				}
			}
			if y+1 < bitmap.Height {
				b := bitmap.At(x, y+1)
				if detectClash(a, b, thresholdY) {
					flag(x, y+1)
				} else if detectClash(b, a, thresholdY) {
					flag(x, y)
				}
			}
		}
	}

	for y := 0; y < bitmap.Height; y++ {
		for x := 0; x < bitmap.Width; x++ {
			if !flagged[y*bitmap.Width+x] {
				continue
			}
			px := bitmap.At(x, y)
			m := median3(px[0], px[1], px[2])
			px[0], px[1], px[2] = m, m, m
		}
	}
}

// detectClash reports whether texel b's channels diverged from a's in a
// way that looks like a spurious clash rather than a legitimate
// three-way corner: the largest per-channel change must reach threshold,
// the triple in b must not already agree, and b must be at least as far
// from the boundary (median as close or closer to 0 or 1) as a.
func detectClash(a, b []float64, threshold float64) bool {
	// Sort both triples' indices by |b[i]-a[i]| descending; only the
	// largest-divergence channel pair is evaluated (a bubble pass is
	// cheap at n=3 and keeps this free of a slice allocation).
	idx := [3]int{0, 1, 2}
	diff := func(i int) float64 { return math.Abs(b[i] - a[i]) }
	if diff(idx[0]) < diff(idx[1]) {
		idx[0], idx[1] = idx[1], idx[0]
	}
	if diff(idx[1]) < diff(idx[2]) {
		idx[1], idx[2] = idx[2], idx[1]
	}
	if diff(idx[0]) < diff(idx[1]) {
		idx[0], idx[1] = idx[1], idx[0]
	}

	if diff(idx[0]) < threshold {
		return false
	}
	if b[0] == b[1] && b[1] == b[2] {
		return false
	}
	aMedian := median3(a[0], a[1], a[2])
	bMedian := median3(b[0], b[1], b[2])
	return math.Abs(bMedian-0.5) >= math.Abs(aMedian-0.5)
}
