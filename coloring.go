package msdfgen

import "math"

// EdgeColoringSimple colors every edge of the shape so that each detected
// corner (a direction change between consecutive edges exceeding
// angleThreshold radians) separates two edges that share exactly one
// channel. A contour with two or more corners cycles {Cyan, Magenta,
// Yellow} starting from the first corner; a contour with no corner is
// colored White; a contour with a single corner is colored Magenta,
// White and Yellow in thirds. seed perturbs which of
// the two valid 3-cycles (CMY vs YMC) a contour starts from, so adjacent
// contours in the same shape are less likely to pick matching colors at
// a shared seam.
func EdgeColoringSimple(shape *Shape, angleThreshold float64, seed uint64) {
	crossThreshold := math.Sin(angleThreshold)
	for _, contour := range shape.Contours {
		colorContour(contour, crossThreshold, &seed)
	}
}

func colorContour(contour *Contour, crossThreshold float64, seed *uint64) {
	n := len(contour.Edges)
	if n == 0 {
		return
	}

	corners := cornerIndices(contour, crossThreshold)

	if len(corners) == 0 {
		// Smooth contour: every edge shares the same three channels so
		// the whole loop reconstructs as one continuous curve.
		for _, e := range contour.Edges {
			e.Color = White
		}
		return
	}

	if len(corners) == 1 {
		// Teardrop: a single corner on an otherwise-smooth contour. The
		// loop is colored in thirds starting at the corner: the first and
		// last thirds get the two non-white colors (so the one real
		// corner separates Magenta from Yellow, which share only red) and the smooth
		// middle majority of the arc stays White, matching a contour with
		// two corners collapsed onto a single point.
		colors := [3]EdgeColor{Magenta, White, Yellow}
		start := corners[0]
		if n < 3 {
			// Not enough material for three thirds to mean anything;
			// split every edge into thirds so the corner's own edge
			// contributes distinct pieces on each side.
			var split []*EdgeSegment
			for k := 0; k < n; k++ {
				i := (start + k) % n
				parts := contour.Edges[i].SplitInThirds()
				split = append(split, parts[0], parts[1], parts[2])
			}
			contour.Edges = split
			start = 0
			n = len(split)
		}
		colorTeardrop(contour, start, n, colors)
		return
	}

	colorSequentialFromCorners(contour, corners, nextSeed(seed))
}

// cornerIndices returns the indices of edges whose incoming tangent turns
// sharply relative to the previous edge's outgoing tangent — i.e. the
// edge at index i starts a new corner.
func cornerIndices(contour *Contour, crossThreshold float64) []int {
	n := len(contour.Edges)
	var corners []int
	prevDir := contour.Edges[n-1].Direction(1).Normalize()
	for i, e := range contour.Edges {
		dir := e.Direction(0).Normalize()
		if isCorner(prevDir, dir, crossThreshold) {
			corners = append(corners, i)
		}
		prevDir = e.Direction(1).Normalize()
	}
	return corners
}

func isCorner(aDir, bDir Vector2, crossThreshold float64) bool {
	return aDir.Dot(bDir) <= 0 || math.Abs(aDir.Cross(bDir)) > crossThreshold
}

// colorSequentialFromCorners walks the contour starting at the first
// corner, assigning a new color from the 3-cycle each time a corner is
// crossed, so that between any two consecutive corners every edge shares
// one uniform color.
func colorSequentialFromCorners(contour *Contour, corners []int, seed uint64) {
	n := len(contour.Edges)
	numCorners := len(corners)
	colors := pickCycle(seed)

	// When corners%3==1, the spline at the very end of the loop lands
	// back on colors[(numCorners-1)%3], which equals colors[0] — the same
	// color the first spline would otherwise get — colliding across the
	// wrap-around seam. A uniform phase shift of the whole cycle can't
	// fix this (the seam collision recurs at whatever offset is chosen),
	// so only the first spline is overridden, to the cycle's third color,
	// which differs from both its neighbor at the seam and from
	// colors[1] on its other side.
	splineColor := func(spline int) EdgeColor {
		if spline == 0 && numCorners%3 == 1 {
			return colors[2]
		}
		return colors[spline%3]
	}

	cornerSet := make(map[int]bool, numCorners)
	for _, c := range corners {
		cornerSet[c] = true
	}
	start := corners[0]
	spline := 0
	color := splineColor(spline)
	for k := 0; k < n; k++ {
		i := (start + k) % n
		if k > 0 && cornerSet[i] {
			spline++
			color = splineColor(spline)
		}
		contour.Edges[i].Color = color
	}
}

// colorTeardrop assigns colors[0] to the first third of the loop starting
// at the corner, colors[1] (White) to the smooth middle third, and
// colors[2] to the final third, so only the two thirds adjacent to the
// single real corner carry a distinguishing, non-White color.
func colorTeardrop(contour *Contour, start, n int, colors [3]EdgeColor) {
	for k := 0; k < n; k++ {
		i := (start + k) % n
		switch {
		case k < n/3:
			contour.Edges[i].Color = colors[0]
		case k < 2*n/3:
			contour.Edges[i].Color = colors[1]
		default:
			contour.Edges[i].Color = colors[2]
		}
	}
}

func pickCycle(seed uint64) [3]EdgeColor {
	if seed%2 == 0 {
		return [3]EdgeColor{Cyan, Magenta, Yellow}
	}
	return [3]EdgeColor{Yellow, Magenta, Cyan}
}

// nextSeed advances a simple xorshift generator, giving each contour a
// distinct but deterministic starting cycle.
func nextSeed(seed *uint64) uint64 {
	x := *seed
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	if x == 0 {
		x = 0x9e3779b97f4a7c15
	}
	*seed = x
	return x
}
