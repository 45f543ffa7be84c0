package fresnel

// Grid holds the spatial-frequency coordinates of a canvas. FX and FY span
// the symmetric integer offsets -N/2 .. N/2-1 normalized by (pitch × N),
// in that order, and multiply the unshifted spectrum directly. SumSq caches
// fx²+fy².
//
// The grid is built exactly once per propagation call and reused for every
// distance.
type Grid struct {
	Rows, Cols int
	FX, FY     []float64 // row-major over the canvas
	SumSq      []float64 // fx² + fy², precomputed
}

// NewGrid builds the frequency grid for a rows×cols canvas sampled at the
// given pixel pitch (meters). Pure function; no side effects.
func NewGrid(rows, cols int, pitch float64) *Grid {
	g := &Grid{
		Rows:  rows,
		Cols:  cols,
		FX:    make([]float64, rows*cols),
		FY:    make([]float64, rows*cols),
		SumSq: make([]float64, rows*cols),
	}

	fx := freqAxis(cols, pitch)
	fy := freqAxis(rows, pitch)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := r*cols + c
			g.FX[i] = fx[c]
			g.FY[i] = fy[r]
			g.SumSq[i] = fx[c]*fx[c] + fy[r]*fy[r]
		}
	}
	return g
}

// freqAxis returns the 1D frequency coordinates for a length-n axis:
// index k maps to offset k − n/2, covering -n/2 .. n/2-1, normalized by
// pitch·n.
func freqAxis(n int, pitch float64) []float64 {
	axis := make([]float64, n)
	norm := pitch * float64(n)
	for k := 0; k < n; k++ {
		axis[k] = float64(k-n/2) / norm
	}
	return axis
}
