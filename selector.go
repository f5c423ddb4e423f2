package msdfgen

// EdgeSelector accumulates the closest edge (by the rules of a particular
// distance flavor) seen so far for one query point, across every edge of
// one contour. A combiner resets one selector per contour (or per
// resolution bucket), feeds it every edge via AddEdge, Merges sibling
// selectors together when contours need to be compared, and finally asks
// for Distance.
type EdgeSelector interface {
	Reset(point Point2)
	AddEdge(prevEdge, edge, nextEdge *EdgeSegment)
	Merge(other EdgeSelector)
	Distance() []float64
}

// pointFacingEdge reports whether the closest point on edge at parameter
// param — which lies outside [0,1] — is still the correct closest point
// to consider, as opposed to belonging properly to the neighboring edge
// on that side. When param<0, the offset from the edge's start point must
// project at least as far onto the edge's start tangent as onto the
// previous edge's end tangent; symmetric for param>1, comparing the
// edge's end tangent with nextEdge's start tangent.
func pointFacingEdge(prevEdge, edge, nextEdge *EdgeSegment, p Point2, param float64) bool {
	if param < 0 {
		prevDir := prevEdge.Direction(1).Normalize()
		dir := edge.Direction(0).Normalize()
		aq := p.Sub(edge.P0)
		return aq.Dot(dir) >= aq.Dot(prevDir)
	}
	if param > 1 {
		dir := edge.Direction(1).Normalize()
		nextDir := nextEdge.Direction(0).Normalize()
		bq := p.Sub(edge.endpoint())
		return bq.Dot(dir) >= bq.Dot(nextDir)
	}
	return true
}

// trueDistanceState tracks the single closest true (clamped-parameter)
// signed distance seen so far, the shared core of every selector flavor.
type trueDistanceState struct {
	point Point2
	min   SignedDistance
}

func (s *trueDistanceState) reset(point Point2) {
	s.point = point
	s.min = Infinite()
}

func (s *trueDistanceState) consider(edge *EdgeSegment) (SignedDistance, float64) {
	d, param := edge.SignedDistance(s.point)
	if d.IsCloserThan(s.min) {
		s.min = d
	}
	return d, param
}

func (s *trueDistanceState) merge(other *trueDistanceState) {
	if other.min.IsCloserThan(s.min) {
		s.min = other.min
	}
}

// TrueDistanceSelector reports the plain closest signed distance to any
// edge, with no pseudo-distance extension — the single-channel SDF case.
type TrueDistanceSelector struct {
	trueDistanceState
}

func NewTrueDistanceSelector() *TrueDistanceSelector { return &TrueDistanceSelector{} }

func (s *TrueDistanceSelector) Reset(point Point2) { s.reset(point) }

func (s *TrueDistanceSelector) AddEdge(prevEdge, edge, nextEdge *EdgeSegment) {
	s.consider(edge)
}

func (s *TrueDistanceSelector) Merge(other EdgeSelector) {
	o, ok := other.(*TrueDistanceSelector)
	if !ok {
		return
	}
	s.merge(&o.trueDistanceState)
}

func (s *TrueDistanceSelector) Distance() []float64 { return []float64{s.min.Distance} }

// pseudoDistanceState is the shared machinery behind pseudo-distance-based
// selectors: besides the true distance, it tracks the closest edge whose
// extended-tangent pseudo-distance applies on each side of zero, so the
// final query can prefer whichever bucket agrees in sign with the best
// true distance found.
type pseudoDistanceState struct {
	trueDistanceState
	nearEdge      *EdgeSegment
	nearEdgeParam float64
	minNegative   SignedDistance
	minPositive   SignedDistance
}

func (s *pseudoDistanceState) reset(point Point2) {
	s.trueDistanceState.reset(point)
	s.nearEdge = nil
	s.nearEdgeParam = 0
	s.minNegative = Infinite()
	s.minPositive = Infinite()
}

func (s *pseudoDistanceState) addTrueDistance(edge *EdgeSegment, d SignedDistance, param float64) {
	if d.IsCloserThan(s.min) {
		s.min = d
		s.nearEdge = edge
		s.nearEdgeParam = param
	}
}

func (s *pseudoDistanceState) addPseudoDistance(d SignedDistance) {
	if d.Distance <= 0 {
		if d.IsCloserThan(s.minNegative) {
			s.minNegative = d
		}
	} else {
		if d.IsCloserThan(s.minPositive) {
			s.minPositive = d
		}
	}
}

func (s *pseudoDistanceState) merge(other *pseudoDistanceState) {
	if other.min.IsCloserThan(s.min) {
		s.min = other.min
		s.nearEdge = other.nearEdge
		s.nearEdgeParam = other.nearEdgeParam
	}
	if other.minNegative.IsCloserThan(s.minNegative) {
		s.minNegative = other.minNegative
	}
	if other.minPositive.IsCloserThan(s.minPositive) {
		s.minPositive = other.minPositive
	}
}

// compute resolves the final pseudo-distance: starts from whichever
// signed bucket matches the sign of the best true distance, then lets
// the true-distance edge's own extension override it if that produces an
// even closer result — mirroring distanceToPseudoDistance being applied
// post hoc in the original implementation.
func (s *pseudoDistanceState) compute() SignedDistance {
	result := s.min
	if s.min.Distance <= 0 {
		if s.minNegative.IsCloserThan(result) {
			result = s.minNegative
		}
	} else {
		if s.minPositive.IsCloserThan(result) {
			result = s.minPositive
		}
	}
	if s.nearEdge != nil {
		d := result
		s.nearEdge.DistanceToPseudoDistance(&d, s.point, s.nearEdgeParam)
		if d.IsCloserThan(result) {
			result = d
		}
	}
	return result
}

// PseudoDistanceSelector is the full-precision pseudo-distance flavor:
// every edge's signed distance is converted to a pseudo-distance whenever
// the closest parameter lies outside [0,1] and the query point faces the
// extension, producing the single-channel "PSDF" variant.
type PseudoDistanceSelector struct {
	pseudoDistanceState
}

func NewPseudoDistanceSelector() *PseudoDistanceSelector { return &PseudoDistanceSelector{} }

func (s *PseudoDistanceSelector) Reset(point Point2) { s.reset(point) }

func (s *PseudoDistanceSelector) AddEdge(prevEdge, edge, nextEdge *EdgeSegment) {
	d, param := edge.SignedDistance(s.point)
	s.addTrueDistance(edge, d, param)
	if pointFacingEdge(prevEdge, edge, nextEdge, s.point, param) {
		pd := d
		edge.DistanceToPseudoDistance(&pd, s.point, param)
		s.addPseudoDistance(pd)
	}
}

func (s *PseudoDistanceSelector) Merge(other EdgeSelector) {
	o, ok := other.(*PseudoDistanceSelector)
	if !ok {
		return
	}
	s.merge(&o.pseudoDistanceState)
}

func (s *PseudoDistanceSelector) Distance() []float64 { return []float64{s.compute().Distance} }

// MultiDistanceSelector tracks three independent pseudo-distance states,
// one per color channel, each fed only the edges carrying that channel in
// their EdgeColor mask — the core of MSDF generation.
type MultiDistanceSelector struct {
	r, g, b pseudoDistanceState
	trueAlpha trueDistanceState
	withAlpha bool
}

// NewMultiDistanceSelector returns a selector producing 3 (MSDF) channels.
func NewMultiDistanceSelector() *MultiDistanceSelector {
	return &MultiDistanceSelector{}
}

// NewMultiAndTrueDistanceSelector returns a selector producing 4 (MTSDF)
// channels: r, g, b pseudo-distance plus a true-distance alpha channel.
func NewMultiAndTrueDistanceSelector() *MultiDistanceSelector {
	return &MultiDistanceSelector{withAlpha: true}
}

func (s *MultiDistanceSelector) Reset(point Point2) {
	s.r.reset(point)
	s.g.reset(point)
	s.b.reset(point)
	if s.withAlpha {
		s.trueAlpha.reset(point)
	}
}

func (s *MultiDistanceSelector) AddEdge(prevEdge, edge, nextEdge *EdgeSegment) {
	d, param := edge.SignedDistance(s.point())
	if s.withAlpha && d.IsCloserThan(s.trueAlpha.min) {
		s.trueAlpha.min = d
	}
	facing := pointFacingEdge(prevEdge, edge, nextEdge, s.point(), param)
	var pd SignedDistance
	if facing {
		pd = d
		edge.DistanceToPseudoDistance(&pd, s.point(), param)
	}
	if edge.Color.HasRed() {
		s.r.addTrueDistance(edge, d, param)
		if facing {
			s.r.addPseudoDistance(pd)
		}
	}
	if edge.Color.HasGreen() {
		s.g.addTrueDistance(edge, d, param)
		if facing {
			s.g.addPseudoDistance(pd)
		}
	}
	if edge.Color.HasBlue() {
		s.b.addTrueDistance(edge, d, param)
		if facing {
			s.b.addPseudoDistance(pd)
		}
	}
}

func (s *MultiDistanceSelector) point() Point2 { return s.r.point }

func (s *MultiDistanceSelector) Merge(other EdgeSelector) {
	o, ok := other.(*MultiDistanceSelector)
	if !ok {
		return
	}
	s.r.merge(&o.r)
	s.g.merge(&o.g)
	s.b.merge(&o.b)
	if s.withAlpha {
		s.trueAlpha.merge(&o.trueAlpha)
	}
}

func (s *MultiDistanceSelector) Distance() []float64 {
	out := []float64{s.r.compute().Distance, s.g.compute().Distance, s.b.compute().Distance}
	if s.withAlpha {
		out = append(out, s.trueAlpha.min.Distance)
	}
	return out
}
