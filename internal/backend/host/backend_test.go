package host

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/DanLovesOrange/holography/internal/field"
)

func assertFieldNear(t *testing.T, expected, actual *field.Field, tol float64, msg string) {
	t.Helper()
	if !expected.Shape().Equal(actual.Shape()) {
		t.Fatalf("%s: shape %v, want %v", msg, actual.Shape(), expected.Shape())
	}
	for i, v := range expected.Data() {
		if cmplx.Abs(v-actual.Data()[i]) > tol {
			t.Fatalf("%s: sample %d = %v, want %v", msg, i, actual.Data()[i], v)
		}
	}
}

func testField(rows, cols int) *field.Field {
	f := field.Zeros(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			f.Set(r, c, complex(math.Sin(float64(r*cols+c)), math.Cos(float64(2*r+c))))
		}
	}
	return f
}

func TestBackendIdentity(t *testing.T) {
	b := New()
	if b.Name() != "Host" {
		t.Errorf("Name() = %q, want %q", b.Name(), "Host")
	}
	if b.Device() != field.Host {
		t.Errorf("Device() = %v, want Host", b.Device())
	}
}

func TestElementwiseOps(t *testing.T) {
	b := New()
	a := testField(4, 6)
	c := testField(4, 6)
	c.Set(2, 3, 0.5+0.5i)

	tests := []struct {
		name string
		op   func(x, y *field.Field) *field.Field
		f    func(x, y complex128) complex128
	}{
		{"Add", b.Add, func(x, y complex128) complex128 { return x + y }},
		{"Sub", b.Sub, func(x, y complex128) complex128 { return x - y }},
		{"Mul", b.Mul, func(x, y complex128) complex128 { return x * y }},
		{"Div", b.Div, func(x, y complex128) complex128 { return x / y }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.op(a, c)
			for i := range a.Data() {
				want := tt.f(a.Data()[i], c.Data()[i])
				if cmplx.Abs(got.Data()[i]-want) > 1e-12 {
					t.Fatalf("sample %d = %v, want %v", i, got.Data()[i], want)
				}
			}
		})
	}
}

func TestOpsDoNotMutateInputs(t *testing.T) {
	b := New()
	a := testField(3, 3)
	c := testField(3, 3)
	aCopy := a.Clone()

	b.Mul(a, c)
	assertFieldNear(t, aCopy, a, 0, "input after Mul")
}

func TestShapeMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Add with mismatched shapes should panic")
		}
	}()
	b := New()
	b.Add(field.Ones(2, 2), field.Ones(2, 3))
}

func TestMulScalar(t *testing.T) {
	b := New()
	f := testField(3, 5)

	got := b.MulScalar(f, 2i)
	for i, v := range f.Data() {
		if cmplx.Abs(got.Data()[i]-v*2i) > 1e-12 {
			t.Fatalf("sample %d = %v, want %v", i, got.Data()[i], v*2i)
		}
	}
}

func TestFFT2Impulse(t *testing.T) {
	// A centered-at-origin impulse transforms to a flat unit spectrum.
	b := New()
	f := field.Zeros(8, 8)
	f.Set(0, 0, 1)

	got := b.FFT2(f)
	assertFieldNear(t, field.Ones(8, 8), got, 1e-12, "FFT2(impulse)")
}

func TestFFT2Constant(t *testing.T) {
	// A constant field concentrates in the (0,0) bin with weight rows·cols.
	b := New()
	got := b.FFT2(field.Ones(4, 4))

	want := field.Zeros(4, 4)
	want.Set(0, 0, 16)
	assertFieldNear(t, want, got, 1e-12, "FFT2(ones)")
}

func TestFFT2Roundtrip(t *testing.T) {
	b := New()

	// Includes non power-of-two and non-square sizes.
	shapes := []field.Shape{
		{Rows: 4, Cols: 4},
		{Rows: 8, Cols: 16},
		{Rows: 6, Cols: 10},
		{Rows: 7, Cols: 5},
		{Rows: 1, Cols: 9},
	}

	for _, s := range shapes {
		f := testField(s.Rows, s.Cols)
		got := b.IFFT2(b.FFT2(f))
		assertFieldNear(t, f, got, 1e-10, s.String())
	}
}

func TestFFT2Linearity(t *testing.T) {
	b := New()
	x := testField(8, 8)
	y := testField(8, 8)
	y.Set(3, 3, 2-1i)

	lhs := b.FFT2(b.Add(x, y))
	rhs := b.Add(b.FFT2(x), b.FFT2(y))
	assertFieldNear(t, rhs, lhs, 1e-9, "FFT2(x+y) vs FFT2(x)+FFT2(y)")
}

func TestPlanCacheReuse(t *testing.T) {
	b := New()
	f := testField(16, 16)

	// Repeated transforms at the same length exercise plan pooling.
	first := b.FFT2(f)
	for i := 0; i < 4; i++ {
		assertFieldNear(t, first, b.FFT2(f), 1e-12, "repeated FFT2")
	}
}
