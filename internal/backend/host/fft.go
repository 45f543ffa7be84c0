package host

import (
	"sync"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/DanLovesOrange/holography/internal/field"
	"github.com/DanLovesOrange/holography/internal/parallel"
)

// planCache pools fourier.CmplxFFT plans per transform length. Plans carry
// internal scratch space and must not be shared between goroutines, so each
// worker checks one out for the duration of a row or column pass.
type planCache struct {
	mu    sync.Mutex
	pools map[int]*sync.Pool
}

func newPlanCache() *planCache {
	return &planCache{pools: make(map[int]*sync.Pool)}
}

func (c *planCache) get(n int) *fourier.CmplxFFT {
	c.mu.Lock()
	pool, ok := c.pools[n]
	if !ok {
		pool = &sync.Pool{New: func() any { return fourier.NewCmplxFFT(n) }}
		c.pools[n] = pool
	}
	c.mu.Unlock()
	return pool.Get().(*fourier.CmplxFFT)
}

func (c *planCache) put(n int, plan *fourier.CmplxFFT) {
	c.mu.Lock()
	pool := c.pools[n]
	c.mu.Unlock()
	pool.Put(plan)
}

// FFT2 computes the unnormalized forward 2D DFT.
func (h *Backend) FFT2(x *field.Field) *field.Field {
	return h.fft2(x, true)
}

// IFFT2 computes the inverse 2D DFT scaled by 1/(rows·cols).
func (h *Backend) IFFT2(x *field.Field) *field.Field {
	result := h.fft2(x, false)
	// Gonum transforms are unnormalized: forward then inverse multiplies
	// the sequence by rows·cols.
	scale := complex(1/float64(x.Rows()*x.Cols()), 0)
	data := result.Data()
	for i := range data {
		data[i] *= scale
	}
	return result
}

// fft2 runs a row pass followed by a column pass, each length transformed
// in place through a pooled plan.
func (h *Backend) fft2(x *field.Field, forward bool) *field.Field {
	rows, cols := x.Rows(), x.Cols()
	result := x.Clone()
	data := result.Data()

	parallel.For(rows, func(r int) {
		plan := h.plans.get(cols)
		row := data[r*cols : (r+1)*cols]
		if forward {
			plan.Coefficients(row, row)
		} else {
			plan.Sequence(row, row)
		}
		h.plans.put(cols, plan)
	}, h.par)

	parallel.For(cols, func(c int) {
		plan := h.plans.get(rows)
		col := make([]complex128, rows)
		for r := 0; r < rows; r++ {
			col[r] = data[r*cols+c]
		}
		if forward {
			plan.Coefficients(col, col)
		} else {
			plan.Sequence(col, col)
		}
		for r := 0; r < rows; r++ {
			data[r*cols+c] = col[r]
		}
		h.plans.put(rows, plan)
	}, h.par)

	return result
}
