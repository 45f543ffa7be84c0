package webgpu

import (
	"unsafe"

	"github.com/DanLovesOrange/holography/internal/field"
)

// unsafeBytes views a mapped GPU range as a byte slice.
func unsafeBytes(ptr unsafe.Pointer, size uint64) []byte {
	//nolint:gosec // unsafe.Slice for zero-copy view of the mapped range
	return unsafe.Slice((*byte)(ptr), size)
}

// fieldToDevice marshals a complex128 field into the device layout:
// interleaved (re, im) float32 pairs, row-major.
func fieldToDevice(f *field.Field) []byte {
	src := f.Data()
	buf := make([]float32, 2*len(src))
	for i, v := range src {
		buf[2*i] = float32(real(v))
		buf[2*i+1] = float32(imag(v))
	}
	//nolint:gosec // unsafe.Slice for zero-copy float32→byte view
	return unsafe.Slice((*byte)(unsafe.Pointer(&buf[0])), len(buf)*4)
}

// fieldFromDevice gathers device data back into a host field, widening the
// float32 pairs to complex128.
func fieldFromDevice(data []byte, shape field.Shape) *field.Field {
	//nolint:gosec // unsafe.Slice for zero-copy byte→float32 view
	floats := unsafe.Slice((*float32)(unsafe.Pointer(&data[0])), len(data)/4)
	out := field.Zeros(shape.Rows, shape.Cols)
	dst := out.Data()
	for i := range dst {
		dst[i] = complex(float64(floats[2*i]), float64(floats[2*i+1]))
	}
	return out
}
