package host

import (
	"fmt"

	"github.com/DanLovesOrange/holography/internal/field"
	"github.com/DanLovesOrange/holography/internal/parallel"
)

// binaryOp applies f elementwise over two equally shaped fields, chunking
// rows across workers.
func (h *Backend) binaryOp(name string, a, b *field.Field, f func(x, y complex128) complex128) *field.Field {
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("host: %s: shape mismatch: %v vs %v", name, a.Shape(), b.Shape()))
	}

	result := field.Zeros(a.Rows(), a.Cols())
	src1, src2, dst := a.Data(), b.Data(), result.Data()
	cols := a.Cols()

	parallel.For(a.Rows(), func(row int) {
		start := row * cols
		for i := start; i < start+cols; i++ {
			dst[i] = f(src1[i], src2[i])
		}
	}, h.par)

	return result
}

// Add performs elementwise addition.
func (h *Backend) Add(a, b *field.Field) *field.Field {
	return h.binaryOp("add", a, b, func(x, y complex128) complex128 { return x + y })
}

// Sub performs elementwise subtraction.
func (h *Backend) Sub(a, b *field.Field) *field.Field {
	return h.binaryOp("sub", a, b, func(x, y complex128) complex128 { return x - y })
}

// Mul performs the elementwise complex product.
func (h *Backend) Mul(a, b *field.Field) *field.Field {
	return h.binaryOp("mul", a, b, func(x, y complex128) complex128 { return x * y })
}

// Div performs elementwise division.
func (h *Backend) Div(a, b *field.Field) *field.Field {
	return h.binaryOp("div", a, b, func(x, y complex128) complex128 { return x / y })
}

// MulScalar multiplies every sample by a complex scalar.
func (h *Backend) MulScalar(x *field.Field, s complex128) *field.Field {
	result := field.Zeros(x.Rows(), x.Cols())
	src, dst := x.Data(), result.Data()
	cols := x.Cols()

	parallel.For(x.Rows(), func(row int) {
		start := row * cols
		for i := start; i < start+cols; i++ {
			dst[i] = src[i] * s
		}
	}, h.par)

	return result
}
