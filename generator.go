package msdfgen

import (
	"sync"
)

// GeneratorConfig controls generation behavior shared by every Generate*
// entry point.
type GeneratorConfig struct {
	// OverlapSupport selects OverlappingContourCombiner instead of
	// SimpleContourCombiner. Needed whenever a shape's contours may
	// overlap (self-intersecting outlines, boolean-unioned sub-paths);
	// costs roughly one extra pass over the shape's contours per pixel.
	OverlapSupport bool
}

// DefaultGeneratorConfig returns the config used when none is given
// explicitly: overlap support off, matching the common single, simple
// glyph-outline case.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{OverlapSupport: false}
}

const generatorWorkers = 4

// generateRows fills bitmap by evaluating combiner-produced distances at
// every pixel center, split into row bands processed concurrently. Each
// goroutine owns disjoint rows and its own combiner instance, so no
// shared mutable state crosses goroutines.
func generateRows(bitmap *Bitmap, shape *Shape, projection Projection, distanceMapper func([]float64) []float64, newCombiner func() ContourCombiner) {
	windings := shape.Windings()
	height := bitmap.Height
	workers := generatorWorkers
	if workers > height {
		workers = height
	}
	if workers < 1 {
		workers = 1
	}
	var wg sync.WaitGroup
	rowsPerWorker := (height + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * rowsPerWorker
		end := start + rowsPerWorker
		if end > height {
			end = height
		}
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			combiner := newCombiner()
			for y := start; y < end; y++ {
				for x := 0; x < bitmap.Width; x++ {
					point := projection.Unproject(Pt(float64(x)+0.5, float64(y)+0.5))
					combiner.Reset(point, windings)
					for ci, contour := range shape.Contours {
						feedContour(combiner.EdgeSelector(ci), contour)
					}
					values := combiner.Distance()
					bitmap.Set(x, y, distanceMapper(values)...)
				}
			}
		}(start, end)
	}
	wg.Wait()
}

// feedContour pushes every edge of contour into sel, giving each AddEdge
// call its neighboring edges for the point-facing-edge test.
func feedContour(sel EdgeSelector, contour *Contour) {
	n := len(contour.Edges)
	if n == 0 {
		return
	}
	for i, edge := range contour.Edges {
		prev := contour.Edges[(i-1+n)%n]
		next := contour.Edges[(i+1)%n]
		sel.AddEdge(prev, edge, next)
	}
}

func newCombinerFor(proto EdgeSelector, overlapSupport bool) func() ContourCombiner {
	if overlapSupport {
		return func() ContourCombiner { return NewOverlappingContourCombiner(proto) }
	}
	return func() ContourCombiner { return NewSimpleContourCombiner(proto) }
}

// GenerateSDF computes a single-channel true-distance field: the classic,
// corner-rounding signed distance field.
func GenerateSDF(bitmap *Bitmap, shape *Shape, projection Projection, rangeWidth float64, config GeneratorConfig) {
	mapper := func(v []float64) []float64 { return []float64{distanceToAlpha(v[0], rangeWidth)} }
	generateRows(bitmap, shape, projection, mapper, newCombinerFor(NewTrueDistanceSelector(), config.OverlapSupport))
}

// GeneratePSDF computes a single-channel pseudo-distance field: sharper
// corners than GenerateSDF but still only one channel.
func GeneratePSDF(bitmap *Bitmap, shape *Shape, projection Projection, rangeWidth float64, config GeneratorConfig) {
	mapper := func(v []float64) []float64 { return []float64{distanceToAlpha(v[0], rangeWidth)} }
	generateRows(bitmap, shape, projection, mapper, newCombinerFor(NewPseudoDistanceSelector(), config.OverlapSupport))
}

// GenerateMSDF computes a 3-channel multi-channel signed distance field,
// assuming shape's edges have already been colored via EdgeColoringSimple.
func GenerateMSDF(bitmap *Bitmap, shape *Shape, projection Projection, rangeWidth float64, config GeneratorConfig) {
	mapper := func(v []float64) []float64 {
		return []float64{distanceToAlpha(v[0], rangeWidth), distanceToAlpha(v[1], rangeWidth), distanceToAlpha(v[2], rangeWidth)}
	}
	generateRows(bitmap, shape, projection, mapper, newCombinerFor(NewMultiDistanceSelector(), config.OverlapSupport))
}

// GenerateMTSDF computes a 4-channel field: MSDF's three pseudo-distance
// channels plus a true-distance alpha channel, letting a shader fall back
// to ordinary SDF rendering (e.g. at small sizes where MSDF's artifacts
// dominate) without a second texture.
func GenerateMTSDF(bitmap *Bitmap, shape *Shape, projection Projection, rangeWidth float64, config GeneratorConfig) {
	mapper := func(v []float64) []float64 {
		return []float64{
			distanceToAlpha(v[0], rangeWidth),
			distanceToAlpha(v[1], rangeWidth),
			distanceToAlpha(v[2], rangeWidth),
			distanceToAlpha(v[3], rangeWidth),
		}
	}
	generateRows(bitmap, shape, projection, mapper, newCombinerFor(NewMultiAndTrueDistanceSelector(), config.OverlapSupport))
}

// distanceToAlpha maps a shape-space signed distance to the [0,1] range
// stored in a bitmap channel: 0.5 at the boundary, reaching 1 at
// +rangeWidth/2 and 0 at -rangeWidth/2 and clamped beyond, so the whole
// band is rangeWidth shape-space units wide.
func distanceToAlpha(distance, rangeWidth float64) float64 {
	if rangeWidth <= 0 {
		rangeWidth = 1
	}
	v := distance/rangeWidth + 0.5
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
