package msdfgen

import "testing"

func TestBitmapSetAndAt(t *testing.T) {
	b := NewBitmap(4, 4, 3)
	b.Set(1, 2, 0.1, 0.2, 0.3)
	got := b.At(1, 2)
	want := []float64{0.1, 0.2, 0.3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("At(1,2)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBitmapInverseYAxis(t *testing.T) {
	b := NewBitmap(2, 2, 1)
	b.InverseYAxis = true
	b.Set(0, 0, 1)
	// With InverseYAxis, row 0 is stored at the last buffer row.
	if b.Pixels[(1*2+0)*1] != 1 {
		t.Errorf("InverseYAxis row mapping wrong: %v", b.Pixels)
	}
}

func TestBitmapSetWrongChannelCountPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Set() with wrong channel count did not panic")
		}
	}()
	b := NewBitmap(2, 2, 3)
	b.Set(0, 0, 1, 2)
}

func TestBitmapChannelIsACopy(t *testing.T) {
	b := NewBitmap(2, 2, 1)
	b.Set(0, 0, 5)
	ch := b.Channel(0, 0)
	ch[0] = 99
	if b.At(0, 0)[0] != 5 {
		t.Errorf("Channel() aliased the underlying buffer")
	}
}
