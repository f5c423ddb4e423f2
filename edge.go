package msdfgen

import "math"

// Number of evenly spaced starting parameters, plus one, for the cubic
// closest-point Newton search, and the number of refinement steps taken
// from each start. Fixed per spec: changing them changes output.
const (
	cubicSearchStarts = 4
	cubicSearchSteps  = 4
)

// EdgeColor is a 3-bit mask over {Red, Green, Blue} assigned to an edge so
// that MSDF generation can reconstruct sharp corners from the per-channel
// median.
type EdgeColor uint8

// Channel bits and their combinations. White (all channels) is the
// default for edges that have not been assigned a distinguishing color.
const (
	Black EdgeColor = 0
	Red   EdgeColor = 1 << 0
	Green EdgeColor = 1 << 1
	Blue  EdgeColor = 1 << 2

	Yellow  = Red | Green
	Magenta = Red | Blue
	Cyan    = Green | Blue
	White   = Red | Green | Blue
)

func (c EdgeColor) HasRed() bool   { return c&Red != 0 }
func (c EdgeColor) HasGreen() bool { return c&Green != 0 }
func (c EdgeColor) HasBlue() bool  { return c&Blue != 0 }

// edgeKind tags which Bezier degree an EdgeSegment represents.
type edgeKind uint8

const (
	kindLinear edgeKind = iota
	kindQuadratic
	kindCubic
)

// EdgeSegment is a single piece of a contour: a linear, quadratic, or
// cubic Bezier curve, tagged by kind. Only the points meaningful for the
// kind are used; P2 is unused for Linear and P3 is unused for Linear and
// Quadratic.
type EdgeSegment struct {
	kind       edgeKind
	P0, P1, P2, P3 Point2
	Color      EdgeColor
}

// NewLinearEdge constructs a line segment from p0 to p1.
func NewLinearEdge(p0, p1 Point2) *EdgeSegment {
	return &EdgeSegment{kind: kindLinear, P0: p0, P1: p1, Color: White}
}

// NewQuadraticEdge constructs a quadratic Bezier edge. A control point
// coincident with either endpoint is rewritten to the midpoint, per the
// normalization invariant in spec.md §3 (otherwise direction() at the
// shared endpoint is undefined).
func NewQuadraticEdge(p0, p1, p2 Point2) *EdgeSegment {
	if p1.Equal(p0) || p1.Equal(p2) {
		p1 = p0.Lerp(p2, 0.5)
	}
	return &EdgeSegment{kind: kindQuadratic, P0: p0, P1: p1, P2: p2, Color: White}
}

// NewCubicEdge constructs a cubic Bezier edge. If both control points are
// degenerate (coincident with an endpoint), they are rewritten onto the
// 1/3 and 2/3 mix of the endpoints so the curve has well-defined tangents.
func NewCubicEdge(p0, p1, p2, p3 Point2) *EdgeSegment {
	if (p1.Equal(p0) || p1.Equal(p3)) && (p2.Equal(p0) || p2.Equal(p3)) {
		p1 = p0.Lerp(p3, 1.0/3.0)
		p2 = p0.Lerp(p3, 2.0/3.0)
	}
	return &EdgeSegment{kind: kindCubic, P0: p0, P1: p1, P2: p2, P3: p3, Color: White}
}

// Clone returns a copy of the edge.
func (e *EdgeSegment) Clone() *EdgeSegment {
	c := *e
	return &c
}

// IsDegenerate reports whether the segment has zero geometric extent.
func (e *EdgeSegment) IsDegenerate() bool {
	switch e.kind {
	case kindLinear:
		return e.P0.Equal(e.P1)
	case kindQuadratic:
		return e.P0.Equal(e.P1) && e.P1.Equal(e.P2)
	default:
		return e.P0.Equal(e.P1) && e.P1.Equal(e.P2) && e.P2.Equal(e.P3)
	}
}

// Point evaluates the edge at parameter t via de Casteljau evaluation.
func (e *EdgeSegment) Point(t float64) Point2 {
	switch e.kind {
	case kindLinear:
		return e.P0.Lerp(e.P1, t)
	case kindQuadratic:
		return e.P0.Lerp(e.P1, t).Lerp(e.P1.Lerp(e.P2, t), t)
	default:
		ab := e.P0.Lerp(e.P1, t)
		bc := e.P1.Lerp(e.P2, t)
		cd := e.P2.Lerp(e.P3, t)
		return ab.Lerp(bc, t).Lerp(bc.Lerp(cd, t), t)
	}
}

// Direction returns the tangent vector at parameter t. When the tangent
// is degenerate (e.g. at a control point coincident with both neighbors
// after all), it falls back to the chord direction.
func (e *EdgeSegment) Direction(t float64) Vector2 {
	switch e.kind {
	case kindLinear:
		return e.P1.Sub(e.P0)
	case kindQuadratic:
		tangent := Mix(e.P1.Sub(e.P0), e.P2.Sub(e.P1), t)
		if tangent.IsZero() {
			return e.P2.Sub(e.P0)
		}
		return tangent
	default:
		d1 := Mix(e.P1.Sub(e.P0), e.P2.Sub(e.P1), t)
		d2 := Mix(e.P2.Sub(e.P1), e.P3.Sub(e.P2), t)
		tangent := Mix(d1, d2, t)
		if tangent.IsZero() {
			if t == 0 {
				return e.P2.Sub(e.P0)
			}
			if t == 1 {
				return e.P3.Sub(e.P1)
			}
		}
		return tangent
	}
}

// DirectionChange returns the second derivative at parameter t, used by
// corner / deconvergence heuristics.
func (e *EdgeSegment) DirectionChange(t float64) Vector2 {
	switch e.kind {
	case kindLinear:
		return Vector2{}
	case kindQuadratic:
		return e.P2.Sub(e.P1).Sub(e.P1.Sub(e.P0))
	default:
		a := e.P2.Sub(e.P1).Sub(e.P1.Sub(e.P0))
		b := e.P3.Sub(e.P2).Sub(e.P2.Sub(e.P1))
		return Mix(a, b, t)
	}
}

// Bounds extends the box [l,b,r,t] to enclose the segment, including
// internal extrema (roots of the derivative's components).
func (e *EdgeSegment) Bounds(l, b, r, t *float64) {
	pointBounds(e.P0, l, b, r, t)
	switch e.kind {
	case kindLinear:
		pointBounds(e.P1, l, b, r, t)
	case kindQuadratic:
		pointBounds(e.P2, l, b, r, t)
		d := e.P1.Sub(e.P0).Sub(e.P2.Sub(e.P1))
		if d.X != 0 {
			tx := (e.P1.X - e.P0.X) / d.X
			if tx > 0 && tx < 1 {
				pointBounds(e.Point(tx), l, b, r, t)
			}
		}
		if d.Y != 0 {
			ty := (e.P1.Y - e.P0.Y) / d.Y
			if ty > 0 && ty < 1 {
				pointBounds(e.Point(ty), l, b, r, t)
			}
		}
	default:
		pointBounds(e.P3, l, b, r, t)
		d0 := e.P1.Sub(e.P0)
		d1 := e.P2.Sub(e.P1)
		d2 := e.P3.Sub(e.P2)
		for _, root := range solveQuadraticInUnitInterval(d0.X-2*d1.X+d2.X, 2*(d1.X-d0.X), d0.X) {
			pointBounds(e.Point(root), l, b, r, t)
		}
		for _, root := range solveQuadraticInUnitInterval(d0.Y-2*d1.Y+d2.Y, 2*(d1.Y-d0.Y), d0.Y) {
			pointBounds(e.Point(root), l, b, r, t)
		}
	}
}

func pointBounds(p Point2, l, b, r, t *float64) {
	if p.X < *l {
		*l = p.X
	}
	if p.X > *r {
		*r = p.X
	}
	if p.Y < *b {
		*b = p.Y
	}
	if p.Y > *t {
		*t = p.Y
	}
}

// SignedDistance returns the signed distance from origin to the edge and
// the parameter t of the closest point (not clamped to [0,1] when the
// closest point is an extension of an endpoint's tangent — callers use
// DistanceToPseudoDistance to account for that).
func (e *EdgeSegment) SignedDistance(origin Point2) (SignedDistance, float64) {
	switch e.kind {
	case kindLinear:
		return linearSignedDistance(e.P0, e.P1, origin)
	case kindQuadratic:
		return quadraticSignedDistance(e.P0, e.P1, e.P2, origin)
	default:
		return cubicSignedDistance(e.P0, e.P1, e.P2, e.P3, origin)
	}
}

func linearSignedDistance(p0, p1, origin Point2) (SignedDistance, float64) {
	aq := origin.Sub(p0)
	ab := p1.Sub(p0)
	abLenSq := ab.SquaredLength()
	var param float64
	if abLenSq == 0 {
		param = 0
	} else {
		param = aq.Dot(ab) / abLenSq
	}
	var eq Vector2
	if param > 0.5 {
		eq = p1.Sub(origin)
	} else {
		eq = p0.Sub(origin)
	}
	endpointDistance := eq.Length()
	if param > 0 && param < 1 {
		orthoDistance := ab.Orthonormal(true).Dot(aq)
		if math.Abs(orthoDistance) < endpointDistance {
			return NewSignedDistance(orthoDistance, 0), param
		}
	}
	dist := nonZeroSign(ab.Cross(aq)) * endpointDistance
	dot := math.Abs(ab.Normalize().Dot(eq.Normalize()))
	return NewSignedDistance(dist, dot), param
}

func quadraticSignedDistance(p0, p1, p2, origin Point2) (SignedDistance, float64) {
	qa := p0.Sub(origin)
	ab := p1.Sub(p0)
	br := p2.Sub(p1).Sub(ab)

	a := br.Dot(br)
	b := 3 * ab.Dot(br)
	c := 2*ab.Dot(ab) + qa.Dot(br)
	d := qa.Dot(ab)
	roots := solveCubic(a, b, c, d)

	dir0 := ab
	minDistance := nonZeroSign(qa.Cross(dir0)) * qa.Length()
	param := -qa.Dot(dir0) / dir0.Dot(dir0)

	{
		dir1 := p2.Sub(p1)
		bq := p2.Sub(origin)
		distance := bq.Length()
		if distance < math.Abs(minDistance) {
			minDistance = nonZeroSign(bq.Cross(dir1)) * distance
			param = origin.Sub(p1).Dot(dir1) / dir1.Dot(dir1)
		}
	}

	for _, t := range roots {
		if t > 0 && t < 1 {
			qe := Vector2{qa.X + 2*t*ab.X + t*t*br.X, qa.Y + 2*t*ab.Y + t*t*br.Y}
			distance := qe.Length()
			if distance <= math.Abs(minDistance) {
				tangent := ab.Add(br.Scale(t))
				minDistance = nonZeroSign(qe.Cross(tangent)) * distance
				param = t
			}
		}
	}

	if param >= 0 && param <= 1 {
		return NewSignedDistance(minDistance, 0), param
	}
	if param < 0.5 {
		return NewSignedDistance(minDistance, math.Abs(dir0.Normalize().Dot(qa.Normalize()))), param
	}
	bq := p2.Sub(origin)
	return NewSignedDistance(minDistance, math.Abs(p2.Sub(p1).Normalize().Dot(bq.Normalize()))), param
}

// cubicSignedDistance runs the multi-start Newton search mandated by
// spec.md §4.2/§9: cubicSearchStarts+1 evenly spaced starting parameters,
// refined over cubicSearchSteps Newton steps each, always compared against
// both endpoint distances.
func cubicSignedDistance(p0, p1, p2, p3, origin Point2) (SignedDistance, float64) {
	qa := p0.Sub(origin)
	ab := p1.Sub(p0)
	br := p2.Sub(p1).Sub(ab)
	as := p3.Sub(p2).Sub(p2.Sub(p1)).Sub(br)

	dir0 := ab
	if dir0.IsZero() {
		dir0 = p2.Sub(p0)
	}
	minDistance := nonZeroSign(qa.Cross(dir0)) * qa.Length()
	param := -qa.Dot(dir0) / dir0.Dot(dir0)

	{
		dir1 := p3.Sub(p2)
		if dir1.IsZero() {
			dir1 = p3.Sub(p1)
		}
		bq := p3.Sub(origin)
		distance := bq.Length()
		if distance < math.Abs(minDistance) {
			minDistance = nonZeroSign(bq.Cross(dir1)) * distance
			param = bq.Neg().Dot(dir1)/dir1.Dot(dir1) + 1
		}
	}

	for i := 0; i <= cubicSearchStarts; i++ {
		t := float64(i) / float64(cubicSearchStarts)
		for step := 0; step < cubicSearchSteps; step++ {
			qe := Vector2{
				qa.X + 3*t*ab.X + 3*t*t*br.X + t*t*t*as.X,
				qa.Y + 3*t*ab.Y + 3*t*t*br.Y + t*t*t*as.Y,
			}
			d1 := ab.Scale(3).Add(br.Scale(6 * t)).Add(as.Scale(3 * t * t))
			d2 := br.Scale(6).Add(as.Scale(6 * t))
			denom := d1.Dot(d1) + qe.Dot(d2)
			if math.Abs(denom) < 1e-14 {
				break
			}
			t -= qe.Dot(d1) / denom
			if t < 0 || t > 1 {
				break
			}
			qe = Vector2{
				qa.X + 3*t*ab.X + 3*t*t*br.X + t*t*t*as.X,
				qa.Y + 3*t*ab.Y + 3*t*t*br.Y + t*t*t*as.Y,
			}
			distance := qe.Length()
			if distance < math.Abs(minDistance) {
				minDistance = nonZeroSign(qe.Cross(d1)) * distance
				param = t
			}
		}
	}

	if param >= 0 && param <= 1 {
		return NewSignedDistance(minDistance, 0), param
	}
	if param < 0.5 {
		d0 := ab
		if d0.IsZero() {
			d0 = p2.Sub(p0)
		}
		return NewSignedDistance(minDistance, math.Abs(d0.Normalize().Dot(qa.Normalize()))), param
	}
	d1 := p3.Sub(p2)
	if d1.IsZero() {
		d1 = p3.Sub(p1)
	}
	bq := p3.Sub(origin)
	return NewSignedDistance(minDistance, math.Abs(d1.Normalize().Dot(bq.Normalize()))), param
}

// DistanceToPseudoDistance replaces distance with the perpendicular
// distance to the edge's tangent line extended beyond its endpoint, but
// only when origin actually lies on the correct side of that extension —
// otherwise the true endpoint distance already computed is kept.
func (e *EdgeSegment) DistanceToPseudoDistance(distance *SignedDistance, origin Point2, param float64) {
	if param < 0 {
		dir := e.Direction(0).Normalize()
		aq := origin.Sub(e.P0)
		ts := aq.Dot(dir)
		if ts < 0 {
			pseudoDistance := dir.Cross(aq)
			if math.Abs(pseudoDistance) <= math.Abs(distance.Distance) {
				distance.Distance = pseudoDistance
				distance.Dot = 0
			}
		}
	} else if param > 1 {
		dir := e.Direction(1).Normalize()
		bq := origin.Sub(e.endpoint())
		ts := bq.Dot(dir)
		if ts > 0 {
			pseudoDistance := dir.Cross(bq)
			if math.Abs(pseudoDistance) <= math.Abs(distance.Distance) {
				distance.Distance = pseudoDistance
				distance.Dot = 0
			}
		}
	}
}

func (e *EdgeSegment) endpoint() Point2 {
	switch e.kind {
	case kindLinear:
		return e.P1
	case kindQuadratic:
		return e.P2
	default:
		return e.P3
	}
}

// ScanlineIntersections appends the x coordinates (and their ±1 winding
// direction) where the edge crosses the horizontal line y, to out/dirs,
// returning the extended slices. Up to 1/2/3 intersections for
// linear/quadratic/cubic respectively.
func (e *EdgeSegment) ScanlineIntersections(out []float64, dirs []int, y float64) ([]float64, []int) {
	switch e.kind {
	case kindLinear:
		return linearScanline(e.P0, e.P1, out, dirs, y)
	case kindQuadratic:
		return quadraticScanline(e.P0, e.P1, e.P2, out, dirs, y)
	default:
		return cubicScanline(e.P0, e.P1, e.P2, e.P3, out, dirs, y)
	}
}

func linearScanline(p0, p1 Point2, out []float64, dirs []int, y float64) ([]float64, []int) {
	if (y >= p0.Y && y < p1.Y) || (y >= p1.Y && y < p0.Y) {
		param := (y - p0.Y) / (p1.Y - p0.Y)
		x := p0.X + param*(p1.X-p0.X)
		d := 1
		if p1.Y < p0.Y {
			d = -1
		}
		out = append(out, x)
		dirs = append(dirs, d)
	}
	return out, dirs
}

func quadraticScanline(p0, p1, p2 Point2, out []float64, dirs []int, y float64) ([]float64, []int) {
	total := 0
	nextDY := 1
	if y <= p0.Y {
		nextDY = -1
	}
	var xs [3]float64
	var ds [3]int
	xs[total] = p0.X
	if p0.Y == y {
		if p0.Y < p1.Y || (p0.Y == p1.Y && p0.Y < p2.Y) {
			ds[total] = 1
			total++
		} else {
			nextDY = 1
		}
	}
	{
		ab := p1.Sub(p0)
		br := p2.Sub(p1).Sub(ab)
		ts := solveQuadratic(br.Y, 2*ab.Y, p0.Y-y)
		if len(ts) >= 2 && ts[0] > ts[1] {
			ts[0], ts[1] = ts[1], ts[0]
		}
		for i := 0; i < len(ts) && total < 2; i++ {
			t := ts[i]
			if t >= 0 && t <= 1 {
				xs[total] = p0.X + 2*t*ab.X + t*t*br.X
				if float64(nextDY)*(ab.Y+t*br.Y) >= 0 {
					ds[total] = nextDY
					total++
					nextDY = -nextDY
				}
			}
		}
	}
	if p2.Y == y {
		if nextDY > 0 && total > 0 {
			total--
			nextDY = -1
		}
		if (p2.Y < p1.Y || (p2.Y == p1.Y && p2.Y < p0.Y)) && total < 2 {
			xs[total] = p2.X
			if nextDY < 0 {
				ds[total] = -1
				total++
				nextDY = 1
			}
		}
	}
	expected := 1
	if y < p2.Y {
		expected = -1
	}
	if nextDY != expected {
		if total > 0 {
			total--
		} else {
			if math.Abs(p2.Y-y) < math.Abs(p0.Y-y) {
				xs[total] = p2.X
			}
			ds[total] = nextDY
			total++
		}
	}
	for i := 0; i < total; i++ {
		out = append(out, xs[i])
		dirs = append(dirs, ds[i])
	}
	return out, dirs
}

func cubicScanline(p0, p1, p2, p3 Point2, out []float64, dirs []int, y float64) ([]float64, []int) {
	total := 0
	nextDY := 1
	if y <= p0.Y {
		nextDY = -1
	}
	var xs [3]float64
	var ds [3]int
	xs[total] = p0.X
	if p0.Y == y {
		if p0.Y < p1.Y || (p0.Y == p1.Y && (p0.Y < p2.Y || (p0.Y == p2.Y && p0.Y < p3.Y))) {
			ds[total] = 1
			total++
		} else {
			nextDY = 1
		}
	}
	ab := p1.Sub(p0)
	br := p2.Sub(p1).Sub(ab)
	as := p3.Sub(p2).Sub(p2.Sub(p1)).Sub(br)
	ts := solveCubic(as.Y, 3*br.Y, 3*ab.Y, p0.Y-y)
	sortFloats(ts)
	for i := 0; i < len(ts) && total < 3; i++ {
		t := ts[i]
		if t >= 0 && t <= 1 {
			x := p0.X + 3*t*ab.X + 3*t*t*br.X + t*t*t*as.X
			yDeriv := 3*ab.Y + 6*t*br.Y + 3*t*t*as.Y
			if float64(nextDY)*yDeriv >= 0 {
				xs[total] = x
				ds[total] = nextDY
				total++
				nextDY = -nextDY
			}
		}
	}
	if p3.Y == y {
		if nextDY > 0 && total > 0 {
			total--
			nextDY = -1
		}
		if (p3.Y < p2.Y || (p3.Y == p2.Y && (p3.Y < p1.Y || (p3.Y == p1.Y && p3.Y < p0.Y)))) && total < 3 {
			xs[total] = p3.X
			if nextDY < 0 {
				ds[total] = -1
				total++
				nextDY = 1
			}
		}
	}
	expected := 1
	if y < p3.Y {
		expected = -1
	}
	if nextDY != expected {
		if total > 0 {
			total--
		} else {
			if math.Abs(p3.Y-y) < math.Abs(p0.Y-y) {
				xs[total] = p3.X
			}
			ds[total] = nextDY
			total++
		}
	}
	for i := 0; i < total; i++ {
		out = append(out, xs[i])
		dirs = append(dirs, ds[i])
	}
	return out, dirs
}

func sortFloats(s []float64) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// SplitInThirds subdivides the edge into three sub-edges at parameters
// 1/3 and 2/3, used when a single-edge contour needs enough material for
// edge coloring to assign distinct corner colors.
func (e *EdgeSegment) SplitInThirds() [3]*EdgeSegment {
	switch e.kind {
	case kindLinear:
		a := e.Point(1.0 / 3.0)
		b := e.Point(2.0 / 3.0)
		return [3]*EdgeSegment{
			NewLinearEdge(e.P0, a),
			NewLinearEdge(a, b),
			NewLinearEdge(b, e.P1),
		}
	case kindQuadratic:
		left, rest := quadraticSubdivide(e.P0, e.P1, e.P2, 1.0/3.0)
		mid, right := quadraticSubdivide(rest[0], rest[1], rest[2], 0.5)
		return [3]*EdgeSegment{
			NewQuadraticEdge(left[0], left[1], left[2]),
			NewQuadraticEdge(mid[0], mid[1], mid[2]),
			NewQuadraticEdge(right[0], right[1], right[2]),
		}
	default:
		left, rest := cubicSubdivide(e.P0, e.P1, e.P2, e.P3, 1.0/3.0)
		mid, right := cubicSubdivide(rest[0], rest[1], rest[2], rest[3], 0.5)
		return [3]*EdgeSegment{
			NewCubicEdge(left[0], left[1], left[2], left[3]),
			NewCubicEdge(mid[0], mid[1], mid[2], mid[3]),
			NewCubicEdge(right[0], right[1], right[2], right[3]),
		}
	}
}

// quadraticSubdivide splits a quadratic at t via de Casteljau.
func quadraticSubdivide(p0, p1, p2 Point2, t float64) (left, right [3]Point2) {
	p01 := p0.Lerp(p1, t)
	p12 := p1.Lerp(p2, t)
	mid := p01.Lerp(p12, t)
	return [3]Point2{p0, p01, mid}, [3]Point2{mid, p12, p2}
}

// cubicSubdivide splits a cubic at t via de Casteljau.
func cubicSubdivide(p0, p1, p2, p3 Point2, t float64) (left, right [4]Point2) {
	p01 := p0.Lerp(p1, t)
	p12 := p1.Lerp(p2, t)
	p23 := p2.Lerp(p3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	mid := p012.Lerp(p123, t)
	return [4]Point2{p0, p01, p012, mid}, [4]Point2{mid, p123, p23, p3}
}
