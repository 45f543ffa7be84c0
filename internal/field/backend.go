package field

// Backend defines the interface that all compute backends must implement.
// Backends handle allocation-free array math on fields: elementwise complex
// arithmetic and the forward/inverse 2D discrete Fourier transforms the
// propagation engine is written against.
//
// Implementations:
//   - backend/host: pure Go, gonum dsp/fourier transforms
//   - backend/webgpu: GPU compute via WebGPU
//
// Every operation accepts host-resident fields and returns a host-resident
// result; backends that execute elsewhere marshal inputs to device memory
// and gather results back before returning.
type Backend interface {
	// Elementwise binary operations. Operands must share a shape.
	Add(a, b *Field) *Field // a + b
	Sub(a, b *Field) *Field // a - b
	Mul(a, b *Field) *Field // a * b (complex product)
	Div(a, b *Field) *Field // a / b

	// MulScalar multiplies every sample by a complex scalar.
	MulScalar(x *Field, s complex128) *Field

	// FFT2 computes the unnormalized forward 2D DFT.
	FFT2(x *Field) *Field
	// IFFT2 computes the inverse 2D DFT scaled by 1/(rows·cols), so that
	// IFFT2(FFT2(x)) == x up to roundoff.
	IFFT2(x *Field) *Field

	// Metadata.
	Name() string   // Backend name (e.g., "Host", "WebGPU").
	Device() Device // Device type.
}
