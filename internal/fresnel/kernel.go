package fresnel

import (
	"math"
	"math/cmplx"

	"github.com/DanLovesOrange/holography/internal/field"
)

// TransferFunction builds the Fresnel transfer-function kernel for one
// propagation distance z (meters):
//
//	H = coeff · exp(−i·π·λ·z·(fx²+fy²))
//
// This is the quadratic-phase (paraxial) form of the angular-spectrum
// method. coeff is the optional global phase factor exp(i·2π/λ·z), or 1
// when the transfer coefficient is disabled. The kernel has the canvas
// shape; at z = 0 with coeff = 1 it is identically 1.
func TransferFunction(g *Grid, wavelength, z float64, coeff complex128) *field.Field {
	h := field.Zeros(g.Rows, g.Cols)
	data := h.Data()
	for i, fsq := range g.SumSq {
		phase := -math.Pi * wavelength * z * fsq
		data[i] = coeff * cmplx.Exp(complex(0, phase))
	}
	return h
}

// transferCoefficient returns exp(i·2π/λ·z) for one distance.
func transferCoefficient(wavelength, z float64) complex128 {
	return cmplx.Exp(complex(0, 2*math.Pi/wavelength*z))
}

// transferCoefficients precomputes the per-distance global phase factors for
// the whole distance sequence up front. When the flag is unset every factor
// is fixed at 1.
func transferCoefficients(wavelength float64, distances []float64, enabled bool) []complex128 {
	coeffs := make([]complex128, len(distances))
	for i := range coeffs {
		coeffs[i] = 1
	}
	if !enabled {
		return coeffs
	}
	for i, z := range distances {
		coeffs[i] = transferCoefficient(wavelength, z)
	}
	return coeffs
}
