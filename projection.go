package msdfgen

// Projection maps between shape space (the coordinate system the Bezier
// curves are defined in) and pixel space (the coordinate system of a
// generated Bitmap), via Pixel = (Shape + Translate)*Scale.
type Projection struct {
	Scale     Vector2
	Translate Vector2
}

// IdentityProjection returns a Projection with unit scale and no offset.
func IdentityProjection() Projection {
	return Projection{Scale: Vec(1, 1), Translate: Vec(0, 0)}
}

// Project maps a shape-space point to pixel space.
func (p Projection) Project(point Point2) Point2 {
	return Pt(p.Scale.X*(point.X+p.Translate.X), p.Scale.Y*(point.Y+p.Translate.Y))
}

// Unproject maps a pixel-space point back to shape space.
func (p Projection) Unproject(point Point2) Point2 {
	return Pt(point.X/p.Scale.X-p.Translate.X, point.Y/p.Scale.Y-p.Translate.Y)
}

// ProjectVector scales a shape-space displacement into pixel space,
// ignoring translation (vectors have no position).
func (p Projection) ProjectVector(v Vector2) Vector2 {
	return Vec(p.Scale.X*v.X, p.Scale.Y*v.Y)
}

// UnprojectVector scales a pixel-space displacement back into shape
// space, ignoring translation.
func (p Projection) UnprojectVector(v Vector2) Vector2 {
	return Vec(v.X/p.Scale.X, v.Y/p.Scale.Y)
}

// FitProjection computes a Projection that fits a shape-space bounding
// box [l,b,r,t], expanded by border pixels on each side, into a width x
// height bitmap, preserving aspect ratio uniformly across both axes
// (matching the original implementation's autoframe behavior).
func FitProjection(l, b, r, t float64, width, height int, border float64) Projection {
	w := r - l
	h := t - b
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	availW := float64(width) - 2*border
	availH := float64(height) - 2*border
	if availW <= 0 {
		availW = 1
	}
	if availH <= 0 {
		availH = 1
	}
	scale := availW / w
	if s := availH / h; s < scale {
		scale = s
	}
	translateX := border/scale - l
	translateY := border/scale - b
	return Projection{Scale: Vec(scale, scale), Translate: Vec(translateX, translateY)}
}
