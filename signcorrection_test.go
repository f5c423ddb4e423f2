package msdfgen

import "testing"

func TestDistanceSignCorrectionFlipsInvertedShape(t *testing.T) {
	shape := unitSquareShape()
	bitmap := NewBitmap(10, 10, 1)
	projection := FitProjection(0, 0, 10, 10, 10, 10, 1)
	GenerateSDF(bitmap, shape, projection, 4, DefaultGeneratorConfig())

	// Invert every texel, simulating a shape whose fill sense was wrong.
	for i := range bitmap.Pixels {
		bitmap.Pixels[i] = 1 - bitmap.Pixels[i]
	}

	DistanceSignCorrection(bitmap, shape, projection, FillNonZero)

	center := projection.Project(Pt(5, 5))
	cx, cy := int(center.X), int(center.Y)
	if bitmap.At(cx, cy)[0] <= 0.5 {
		t.Errorf("center alpha after correction = %v, want > 0.5 (inside)", bitmap.At(cx, cy)[0])
	}
}

func TestResolveSignAmbiguityLeavesConfidentTexelsAlone(t *testing.T) {
	b := NewBitmap(3, 3, 1)
	for i := range b.Pixels {
		b.Pixels[i] = 1.0 // confidently inside everywhere
	}
	ResolveSignAmbiguity(b)
	for i, v := range b.Pixels {
		if v != 1.0 {
			t.Errorf("pixel %d changed from confident value: %v", i, v)
		}
	}
}
