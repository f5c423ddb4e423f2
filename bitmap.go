package msdfgen

// Bitmap is a caller-owned, row-major, multi-channel float buffer: the
// generic output type of every Generate* function. N is fixed per bitmap
// (1 for a plain SDF, 3 for MSDF, 4 for MTSDF) and Pixels holds
// Width*Height*N values, channel-interleaved within each pixel.
type Bitmap struct {
	Pixels []float64
	Width  int
	Height int
	N      int
	// InverseYAxis, when true, stores row 0 as the maximum-Y row of
	// shape space instead of the minimum; Generate* writes respecting
	// this flag so callers never need to flip rows themselves.
	InverseYAxis bool
}

// NewBitmap allocates a zeroed bitmap of width x height pixels with n
// channels each.
func NewBitmap(width, height, n int) *Bitmap {
	return &Bitmap{
		Pixels: make([]float64, width*height*n),
		Width:  width,
		Height: height,
		N:      n,
	}
}

// index returns the offset of pixel (x,y)'s first channel, accounting
// for InverseYAxis.
func (b *Bitmap) index(x, y int) int {
	row := y
	if b.InverseYAxis {
		row = b.Height - 1 - y
	}
	return (row*b.Width + x) * b.N
}

// At returns the channel values of pixel (x,y) as a slice aliasing the
// underlying buffer — mutating it mutates the bitmap.
func (b *Bitmap) At(x, y int) []float64 {
	i := b.index(x, y)
	return b.Pixels[i : i+b.N]
}

// Set overwrites the channel values of pixel (x,y). Panics if len(values)
// != b.N, the same contract as a direct slice copy.
func (b *Bitmap) Set(x, y int, values ...float64) {
	if len(values) != b.N {
		panic("msdfgen: Bitmap.Set: wrong channel count")
	}
	copy(b.At(x, y), values)
}

// Channel returns the N channel values of pixel (x,y) as a copy, safe to
// retain across later writes to the bitmap.
func (b *Bitmap) Channel(x, y int) []float64 {
	src := b.At(x, y)
	out := make([]float64, len(src))
	copy(out, src)
	return out
}
