package msdfgen

import "testing"

func TestMSDFErrorCorrectionFlattensFlaggedTexels(t *testing.T) {
	bitmap := NewBitmap(4, 4, 3)
	// Plant an obvious channel-combination artifact at (2,2): channels
	// wildly disagree, its median (0.9) is far from the 0.5 boundary, and
	// under the identity projection the square's corners sit at texels
	// (0,0) and beyond the bitmap, so no corner protects it.
	bitmap.Set(2, 2, 0.05, 0.95, 0.9)

	shape := unitSquareShape()
	projection := IdentityProjection()
	MSDFErrorCorrection(bitmap, shape, projection, 4, DefaultErrorCorrectionConfig())

	px := bitmap.At(2, 2)
	if px[0] != px[1] || px[1] != px[2] {
		t.Errorf("flagged texel not flattened: %v", px)
	}
}

func TestLegacyErrorCorrectionFlattensClash(t *testing.T) {
	bitmap := NewBitmap(3, 1, 3)
	bitmap.Set(0, 0, 0.5, 0.5, 0.5)
	bitmap.Set(1, 0, 0.9, 0.1, 0.5) // sharp divergence from neighbor
	bitmap.Set(2, 0, 0.5, 0.5, 0.5)

	LegacyErrorCorrection(bitmap, 0.2, 0.2)

	px := bitmap.At(1, 0)
	if px[0] != px[1] {
		t.Errorf("clashing texel not flattened: %v", px)
	}
}

func TestMedian3(t *testing.T) {
	tests := []struct {
		a, b, c, want float64
	}{
		{1, 2, 3, 2},
		{3, 2, 1, 2},
		{2, 2, 2, 2},
		{0, 1, 0, 0},
	}
	for _, tt := range tests {
		if got := median3(tt.a, tt.b, tt.c); got != tt.want {
			t.Errorf("median3(%v,%v,%v) = %v, want %v", tt.a, tt.b, tt.c, got, tt.want)
		}
	}
}
