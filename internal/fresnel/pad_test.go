package fresnel

import (
	"math/cmplx"
	"testing"

	"github.com/DanLovesOrange/holography/internal/field"
)

func fieldFrom(t *testing.T, rows, cols int, data []complex128) *field.Field {
	t.Helper()
	f, err := field.FromSlice(data, field.Shape{Rows: rows, Cols: cols})
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	return f
}

func TestBorderValueSquare(t *testing.T) {
	// 3x3: every sample except the center lies on a border.
	f := fieldFrom(t, 3, 3, []complex128{
		1, 2, 3,
		4, 100, 6,
		7, 8, 9,
	})

	top := (1 + 2 + 3) / 3.0
	bottom := (7 + 8 + 9) / 3.0
	left := (1 + 4 + 7) / 3.0
	right := (3 + 6 + 9) / 3.0
	want := complex((top+bottom+left+right)/4, 0)

	if got := BorderValue(f); cmplx.Abs(got-want) > 1e-12 {
		t.Errorf("BorderValue = %v, want %v", got, want)
	}
}

func TestBorderValueNonSquare(t *testing.T) {
	// 2x3: edge lengths differ, so each edge is averaged on its own before
	// the four edge means are combined.
	f := fieldFrom(t, 2, 3, []complex128{
		1, 2, 3,
		4, 5, 6,
	})

	top := (1 + 2 + 3) / 3.0
	bottom := (4 + 5 + 6) / 3.0
	left := (1 + 4) / 2.0
	right := (3 + 6) / 2.0
	want := complex((top+bottom+left+right)/4, 0)

	if got := BorderValue(f); cmplx.Abs(got-want) > 1e-12 {
		t.Errorf("BorderValue = %v, want %v", got, want)
	}
}

func TestPadSameShapeIsExactCopy(t *testing.T) {
	f := fieldFrom(t, 2, 2, []complex128{1, 2i, 3, 4})
	p := Pad(f, 2, 2)

	for i, v := range p.Data() {
		if v != f.Data()[i] {
			t.Fatalf("Pad to same shape altered sample %d: %v", i, v)
		}
	}

	// The copy is independent of the input.
	p.Set(0, 0, 99)
	if f.At(0, 0) != 1 {
		t.Error("Pad should not alias the input field")
	}
}

func TestPadCentersAndFillsMargin(t *testing.T) {
	f := fieldFrom(t, 2, 2, []complex128{1, 2, 3, 4})
	p := Pad(f, 6, 4)

	if p.Rows() != 6 || p.Cols() != 4 {
		t.Fatalf("padded shape (%d,%d), want (6,4)", p.Rows(), p.Cols())
	}

	// Centered embedding: offsets (2,1).
	if p.At(2, 1) != 1 || p.At(2, 2) != 2 || p.At(3, 1) != 3 || p.At(3, 2) != 4 {
		t.Errorf("embedded block misplaced: %v %v %v %v", p.At(2, 1), p.At(2, 2), p.At(3, 1), p.At(3, 2))
	}

	bv := BorderValue(f)
	margin := [][2]int{{0, 0}, {0, 3}, {5, 0}, {5, 3}, {1, 1}, {4, 2}, {2, 0}, {3, 3}}
	for _, rc := range margin {
		if got := p.At(rc[0], rc[1]); cmplx.Abs(got-bv) > 1e-12 {
			t.Errorf("margin sample (%d,%d) = %v, want border value %v", rc[0], rc[1], got, bv)
		}
	}
}

func TestCropInvertsPad(t *testing.T) {
	f := fieldFrom(t, 3, 2, []complex128{1, 2i, 3, 4, 5 - 1i, 6})
	p := Pad(f, 8, 8)
	c := Crop(p, 3, 2)

	if c.Rows() != 3 || c.Cols() != 2 {
		t.Fatalf("cropped shape (%d,%d), want (3,2)", c.Rows(), c.Cols())
	}
	for i, v := range c.Data() {
		if v != f.Data()[i] {
			t.Errorf("Crop(Pad(f)) sample %d = %v, want %v", i, v, f.Data()[i])
		}
	}
}
