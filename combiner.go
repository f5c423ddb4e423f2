package msdfgen

import "math"

// ContourCombiner resolves the per-channel distance for a query point
// across every contour of a shape, given one EdgeSelector instance per
// contour already fed with that contour's edges.
type ContourCombiner interface {
	// Reset prepares the combiner for a new query point, given the
	// shape's per-contour windings.
	Reset(point Point2, windings []int)
	// EdgeSelector returns the selector to feed contour i's edges into.
	EdgeSelector(i int) EdgeSelector
	// Distance resolves the final per-channel distance once every
	// contour's selector has been fed.
	Distance() []float64
}

// newSelector builds a fresh EdgeSelector of the same concrete type as
// proto, used so a combiner can allocate one selector per contour
// without the caller naming the type directly.
func newSelector(proto EdgeSelector) EdgeSelector {
	switch proto.(type) {
	case *TrueDistanceSelector:
		return NewTrueDistanceSelector()
	case *PseudoDistanceSelector:
		return NewPseudoDistanceSelector()
	case *MultiDistanceSelector:
		if proto.(*MultiDistanceSelector).withAlpha {
			return NewMultiAndTrueDistanceSelector()
		}
		return NewMultiDistanceSelector()
	default:
		return proto
	}
}

// SimpleContourCombiner merges every contour's selector together without
// regard to winding, the correct choice whenever a shape's contours are
// known not to overlap (the common case for a single glyph outline).
type SimpleContourCombiner struct {
	proto     EdgeSelector
	selectors []EdgeSelector
	shape     EdgeSelector
}

func NewSimpleContourCombiner(proto EdgeSelector) *SimpleContourCombiner {
	return &SimpleContourCombiner{proto: proto}
}

func (c *SimpleContourCombiner) Reset(point Point2, windings []int) {
	if len(c.selectors) != len(windings) {
		c.selectors = make([]EdgeSelector, len(windings))
		for i := range c.selectors {
			c.selectors[i] = newSelector(c.proto)
		}
	}
	for _, s := range c.selectors {
		s.Reset(point)
	}
}

func (c *SimpleContourCombiner) EdgeSelector(i int) EdgeSelector { return c.selectors[i] }

func (c *SimpleContourCombiner) Distance() []float64 {
	if len(c.selectors) == 0 {
		return newSelector(c.proto).Distance()
	}
	merged := c.selectors[0]
	for _, s := range c.selectors[1:] {
		merged.Merge(s)
	}
	return merged.Distance()
}

// OverlappingContourCombiner correctly resolves distance when contours of
// the same shape may overlap (e.g. self-intersecting paths, or a glyph
// built from unioned sub-outlines): it tracks which contours are "inner"
// (positive winding, the query point on the side the contour fills) and
// "outer" (negative winding) relative to a per-contour resolved distance,
// and picks the nearer of the two before falling back to a plain merge
// of every contour if neither side yields a usable result.
type OverlappingContourCombiner struct {
	proto     EdgeSelector
	windings  []int
	selectors []EdgeSelector
	point     Point2
}

func NewOverlappingContourCombiner(proto EdgeSelector) *OverlappingContourCombiner {
	return &OverlappingContourCombiner{proto: proto}
}

func (c *OverlappingContourCombiner) Reset(point Point2, windings []int) {
	c.windings = windings
	c.point = point
	if len(c.selectors) != len(windings) {
		c.selectors = make([]EdgeSelector, len(windings))
		for i := range c.selectors {
			c.selectors[i] = newSelector(c.proto)
		}
	}
	for _, s := range c.selectors {
		s.Reset(point)
	}
}

func (c *OverlappingContourCombiner) EdgeSelector(i int) EdgeSelector { return c.selectors[i] }

// scalar extracts a single representative channel (the first) from a
// selector's distance, used only to rank contours against each other;
// the final returned value still comes from the winning selector's own
// Distance().
func scalar(s EdgeSelector) float64 {
	d := s.Distance()
	if len(d) == 0 {
		return math.Inf(1)
	}
	return d[0]
}

func (c *OverlappingContourCombiner) Distance() []float64 {
	n := len(c.selectors)
	if n == 0 {
		return newSelector(c.proto).Distance()
	}

	// inner/outer are built by merging every same-winding contour whose
	// own distance already agrees in sign, so a MultiDistanceSelector's
	// r/g/b channels each independently take the best value across all
	// qualifying contours rather than being tied to a single contour's
	// selector.
	shape := newSelector(c.proto)
	shape.Reset(c.point)
	inner := newSelector(c.proto)
	inner.Reset(c.point)
	outer := newSelector(c.proto)
	outer.Reset(c.point)

	for i, s := range c.selectors {
		d := scalar(s)
		shape.Merge(s)
		w := c.windings[i]
		if w > 0 && d >= 0 {
			inner.Merge(s)
		}
		if w < 0 && d <= 0 {
			outer.Merge(s)
		}
	}

	innerDistance := scalar(inner)
	outerDistance := scalar(outer)

	switch {
	case innerDistance >= 0 && math.Abs(innerDistance) <= math.Abs(outerDistance):
		best, bestDistance := inner, innerDistance
		for i, s := range c.selectors {
			if c.windings[i] <= 0 {
				continue
			}
			d := scalar(s)
			if math.Abs(d) < math.Abs(outerDistance) && d > bestDistance {
				best, bestDistance = s, d
			}
		}
		return best.Distance()
	case outerDistance <= 0 && math.Abs(outerDistance) < math.Abs(innerDistance):
		best, bestDistance := outer, outerDistance
		for i, s := range c.selectors {
			if c.windings[i] >= 0 {
				continue
			}
			d := scalar(s)
			if math.Abs(d) < math.Abs(innerDistance) && d < bestDistance {
				best, bestDistance = s, d
			}
		}
		return best.Distance()
	default:
		return shape.Distance()
	}
}
