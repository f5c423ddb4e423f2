package msdfgen

import (
	"math"
	"testing"
)

func TestVector2Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vector2
		want Vector2
	}{
		{"zero", Vec(0, 0), Vec(0, 0)},
		{"unit x", Vec(3, 0), Vec(1, 0)},
		{"diagonal", Vec(1, 1), Vec(1 / math.Sqrt2, 1 / math.Sqrt2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Normalize()
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestVector2CrossDot(t *testing.T) {
	a := Vec(1, 0)
	b := Vec(0, 1)
	if got := a.Cross(b); got != 1 {
		t.Errorf("Cross() = %v, want 1", got)
	}
	if got := a.Dot(b); got != 0 {
		t.Errorf("Dot() = %v, want 0", got)
	}
}

func TestSolveQuadratic(t *testing.T) {
	tests := []struct {
		name       string
		a, b, c    float64
		wantRoots  []float64
	}{
		{"two roots", 1, -3, 2, []float64{1, 2}},
		{"double root", 1, -2, 1, []float64{1}},
		{"no real roots", 1, 0, 1, nil},
		{"linear fallback", 0, 2, -4, []float64{2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roots := solveQuadratic(tt.a, tt.b, tt.c)
			if len(roots) != len(tt.wantRoots) {
				t.Fatalf("solveQuadratic(%v,%v,%v) = %v, want %v", tt.a, tt.b, tt.c, roots, tt.wantRoots)
			}
			for _, want := range tt.wantRoots {
				found := false
				for _, r := range roots {
					if math.Abs(r-want) < 1e-9 {
						found = true
					}
				}
				if !found {
					t.Errorf("solveQuadratic(%v,%v,%v) = %v, missing root %v", tt.a, tt.b, tt.c, roots, want)
				}
			}
		})
	}
}

func TestSolveCubicThreeRealRoots(t *testing.T) {
	// (x-1)(x-2)(x-3) = x^3 -6x^2 +11x -6
	roots := solveCubic(1, -6, 11, -6)
	want := []float64{1, 2, 3}
	if len(roots) != 3 {
		t.Fatalf("solveCubic = %v, want 3 roots", roots)
	}
	for _, w := range want {
		found := false
		for _, r := range roots {
			if math.Abs(r-w) < 1e-6 {
				found = true
			}
		}
		if !found {
			t.Errorf("solveCubic result %v missing root %v", roots, w)
		}
	}
}

func TestSolveCubicOneRealRoot(t *testing.T) {
	// x^3 + x + 1 = 0 has one real root near -0.6823278
	roots := solveCubic(1, 0, 1, 1)
	if len(roots) != 1 {
		t.Fatalf("solveCubic = %v, want 1 root", roots)
	}
	if math.Abs(roots[0]-(-0.6823278)) > 1e-5 {
		t.Errorf("solveCubic root = %v, want ~-0.6823278", roots[0])
	}
}
