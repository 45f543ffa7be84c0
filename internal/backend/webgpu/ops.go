package webgpu

import (
	"github.com/DanLovesOrange/holography/internal/field"
)

// Add performs elementwise complex addition on GPU.
func (b *Backend) Add(a, other *field.Field) *field.Field {
	result, err := b.runBinaryOp(a, other, "cadd", caddShader)
	if err != nil {
		panic("webgpu: Add: " + err.Error())
	}
	return result
}

// Sub performs elementwise complex subtraction on GPU.
func (b *Backend) Sub(a, other *field.Field) *field.Field {
	result, err := b.runBinaryOp(a, other, "csub", csubShader)
	if err != nil {
		panic("webgpu: Sub: " + err.Error())
	}
	return result
}

// Mul performs the elementwise complex product on GPU.
func (b *Backend) Mul(a, other *field.Field) *field.Field {
	result, err := b.runBinaryOp(a, other, "cmul", cmulShader)
	if err != nil {
		panic("webgpu: Mul: " + err.Error())
	}
	return result
}

// Div performs elementwise complex division on GPU.
func (b *Backend) Div(a, other *field.Field) *field.Field {
	result, err := b.runBinaryOp(a, other, "cdiv", cdivShader)
	if err != nil {
		panic("webgpu: Div: " + err.Error())
	}
	return result
}

// MulScalar multiplies every sample by a complex scalar on GPU.
func (b *Backend) MulScalar(x *field.Field, s complex128) *field.Field {
	result, err := b.runScale(x, s)
	if err != nil {
		panic("webgpu: MulScalar: " + err.Error())
	}
	return result
}

// FFT2 computes the unnormalized forward 2D DFT on GPU.
func (b *Backend) FFT2(x *field.Field) *field.Field {
	result, err := b.runFFT2(x, -1)
	if err != nil {
		panic("webgpu: FFT2: " + err.Error())
	}
	return result
}

// IFFT2 computes the inverse 2D DFT on GPU, scaled by 1/(rows·cols).
// The normalization happens host-side in float64 after the gather.
func (b *Backend) IFFT2(x *field.Field) *field.Field {
	result, err := b.runFFT2(x, 1)
	if err != nil {
		panic("webgpu: IFFT2: " + err.Error())
	}
	scale := complex(1/float64(x.Rows()*x.Cols()), 0)
	data := result.Data()
	for i := range data {
		data[i] *= scale
	}
	return result
}
