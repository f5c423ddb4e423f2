package msdfgen

import "sort"

// FillRule determines which winding-number parities a scanline treats as
// "inside" the shape.
type FillRule int

const (
	FillNonZero FillRule = iota
	FillEvenOdd
	FillPositive
	FillNegative
)

// interpretFillRule reports whether the given cumulative winding total,
// as produced by Scanline.SumIntersections, is "inside" under rule.
func interpretFillRule(total int, rule FillRule) bool {
	switch rule {
	case FillNonZero:
		return total != 0
	case FillEvenOdd:
		return total&1 != 0
	case FillPositive:
		return total > 0
	case FillNegative:
		return total < 0
	default:
		return total != 0
	}
}

// Intersection is a single scanline crossing: the x coordinate at which
// an edge crosses the scanline, and +1/-1 for whether the shape's
// winding increases or decreases there (before accumulation).
type Intersection struct {
	X         float64
	Direction int
}

// Scanline holds every intersection of a shape with one horizontal line,
// sorted by x, with each Direction replaced by the cumulative winding sum
// up to and including that intersection (see setIntersections). Querying
// repeatedly at increasing x is near-constant time via a cached index.
type Scanline struct {
	intersections []Intersection
	lastIndex     int
}

// NewScanline builds a Scanline from the unsorted, raw (x, direction)
// crossings collected from a shape's edges.
func NewScanline(xs []float64, dirs []int) *Scanline {
	s := &Scanline{}
	s.setIntersections(xs, dirs)
	return s
}

// setIntersections sorts the raw crossings by x and replaces each
// Direction with the running total of directions up to that point, so a
// later query can read off the winding number directly without
// re-summing a prefix every time.
func (s *Scanline) setIntersections(xs []float64, dirs []int) {
	n := len(xs)
	s.intersections = make([]Intersection, n)
	for i := range xs {
		s.intersections[i] = Intersection{X: xs[i], Direction: dirs[i]}
	}
	sort.Slice(s.intersections, func(i, j int) bool {
		return s.intersections[i].X < s.intersections[j].X
	})
	total := 0
	for i := range s.intersections {
		total += s.intersections[i].Direction
		s.intersections[i].Direction = total
	}
	s.lastIndex = 0
}

// moveTo returns the index of the rightmost intersection with X <= x, or
// -1 if x is left of every intersection. Scans from the last returned
// index in whichever direction is needed, which is O(1) amortized for
// the monotonically increasing x queries a row scan makes.
func (s *Scanline) moveTo(x float64) int {
	if len(s.intersections) == 0 {
		return -1
	}
	index := s.lastIndex
	if x < s.intersections[index].X {
		for index > 0 && x < s.intersections[index].X {
			index--
		}
	} else {
		for index+1 < len(s.intersections) && x >= s.intersections[index+1].X {
			index++
		}
	}
	s.lastIndex = index
	if x < s.intersections[index].X {
		return -1
	}
	return index
}

// CountIntersections returns how many crossings lie at or left of x.
func (s *Scanline) CountIntersections(x float64) int {
	return s.moveTo(x) + 1
}

// SumIntersections returns the cumulative winding number at x: the total
// signed direction of every crossing at or left of x.
func (s *Scanline) SumIntersections(x float64) int {
	i := s.moveTo(x)
	if i < 0 {
		return 0
	}
	return s.intersections[i].Direction
}

// Filled reports whether x is inside the shape under rule.
func (s *Scanline) Filled(x float64, rule FillRule) bool {
	return interpretFillRule(s.SumIntersections(x), rule)
}
