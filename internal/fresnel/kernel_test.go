package fresnel

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestTransferFunctionZeroDistance(t *testing.T) {
	g := NewGrid(8, 8, 6.5e-6)
	h := TransferFunction(g, 632.8e-9, 0, 1)

	for i, v := range h.Data() {
		if cmplx.Abs(v-1) > 1e-12 {
			t.Fatalf("kernel sample %d = %v at z = 0, want 1", i, v)
		}
	}
}

func TestTransferFunctionUnitModulus(t *testing.T) {
	g := NewGrid(8, 16, 6.5e-6)
	h := TransferFunction(g, 632.8e-9, 2.5e-3, 1)

	if h.Rows() != 8 || h.Cols() != 16 {
		t.Fatalf("kernel shape (%d,%d), want canvas (8,16)", h.Rows(), h.Cols())
	}
	for i, v := range h.Data() {
		if math.Abs(cmplx.Abs(v)-1) > 1e-12 {
			t.Fatalf("kernel sample %d has modulus %g, want 1", i, cmplx.Abs(v))
		}
	}
}

func TestTransferFunctionOppositeDistancesConjugate(t *testing.T) {
	g := NewGrid(8, 8, 6.5e-6)
	fwd := TransferFunction(g, 632.8e-9, 1e-3, 1)
	back := TransferFunction(g, 632.8e-9, -1e-3, 1)

	// H(z)·H(-z) = 1 elementwise, the basis of refocus reversibility.
	for i := range fwd.Data() {
		prod := fwd.Data()[i] * back.Data()[i]
		if cmplx.Abs(prod-1) > 1e-12 {
			t.Fatalf("H(z)·H(-z) at %d = %v, want 1", i, prod)
		}
	}
}

func TestTransferCoefficient(t *testing.T) {
	const lambda, z = 632.8e-9, 1e-3

	got := transferCoefficient(lambda, z)
	want := cmplx.Exp(complex(0, 2*math.Pi/lambda*z))
	if cmplx.Abs(got-want) > 1e-12 {
		t.Errorf("transferCoefficient = %v, want %v", got, want)
	}
}

func TestTransferCoefficientsDisabled(t *testing.T) {
	coeffs := transferCoefficients(632.8e-9, []float64{0, 1e-3, -2e-3}, false)
	for i, c := range coeffs {
		if c != 1 {
			t.Errorf("coeff[%d] = %v with flag unset, want 1", i, c)
		}
	}
}

func TestTransferCoefficientsEnabled(t *testing.T) {
	distances := []float64{0, 1e-3, -2e-3}
	coeffs := transferCoefficients(632.8e-9, distances, true)

	if len(coeffs) != len(distances) {
		t.Fatalf("got %d coefficients for %d distances", len(coeffs), len(distances))
	}
	for i, z := range distances {
		want := transferCoefficient(632.8e-9, z)
		if cmplx.Abs(coeffs[i]-want) > 1e-12 {
			t.Errorf("coeff[%d] = %v, want %v", i, coeffs[i], want)
		}
	}
}
