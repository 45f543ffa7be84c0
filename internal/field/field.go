// Package field provides the complex-valued plane and stack types shared by
// all propagation backends.
package field

import "fmt"

// Field is a 2D complex-valued sampling of an optical wavefront
// (amplitude and phase at one plane). Data is stored row-major.
type Field struct {
	data  []complex128
	shape Shape
}

// New creates a zero-initialized field of the given shape.
func New(shape Shape) (*Field, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &Field{
		data:  make([]complex128, shape.NumElements()),
		shape: shape,
	}, nil
}

// Zeros creates a zero-filled field. Panics on an invalid shape.
func Zeros(rows, cols int) *Field {
	f, err := New(Shape{Rows: rows, Cols: cols})
	if err != nil {
		panic(err)
	}
	return f
}

// Ones creates a field filled with 1+0i.
func Ones(rows, cols int) *Field {
	return Full(rows, cols, 1)
}

// Full creates a field filled with a constant value.
func Full(rows, cols int, value complex128) *Field {
	f := Zeros(rows, cols)
	for i := range f.data {
		f.data[i] = value
	}
	return f
}

// FromSlice creates a field from row-major data. The slice is copied.
func FromSlice(data []complex128, shape Shape) (*Field, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("field: shape %v requires %d elements, got %d",
			shape, shape.NumElements(), len(data))
	}
	f, err := New(shape)
	if err != nil {
		return nil, err
	}
	copy(f.data, data)
	return f, nil
}

// fromBacking wraps an existing slice without copying. Used by Stack views.
func fromBacking(data []complex128, shape Shape) *Field {
	return &Field{data: data, shape: shape}
}

// Shape returns the field's dimensions.
func (f *Field) Shape() Shape {
	return f.shape
}

// Rows returns the number of rows.
func (f *Field) Rows() int {
	return f.shape.Rows
}

// Cols returns the number of columns.
func (f *Field) Cols() int {
	return f.shape.Cols
}

// NumElements returns the total number of samples.
func (f *Field) NumElements() int {
	return f.shape.NumElements()
}

// Data returns the row-major backing slice.
//
// WARNING: Modifications to the returned slice modify the field.
func (f *Field) Data() []complex128 {
	return f.data
}

// At returns the sample at (row, col). Panics when out of bounds.
func (f *Field) At(row, col int) complex128 {
	f.checkBounds(row, col)
	return f.data[row*f.shape.Cols+col]
}

// Set stores a sample at (row, col). Panics when out of bounds.
func (f *Field) Set(row, col int, value complex128) {
	f.checkBounds(row, col)
	f.data[row*f.shape.Cols+col] = value
}

// Row returns a zero-copy view of one row.
func (f *Field) Row(row int) []complex128 {
	f.checkBounds(row, 0)
	start := row * f.shape.Cols
	return f.data[start : start+f.shape.Cols]
}

// Clone returns a deep copy of the field.
func (f *Field) Clone() *Field {
	out := Zeros(f.shape.Rows, f.shape.Cols)
	copy(out.data, f.data)
	return out
}

// CopyFrom copies data from src into f. Panics on shape mismatch.
func (f *Field) CopyFrom(src *Field) {
	if !f.shape.Equal(src.shape) {
		panic(fmt.Sprintf("field: CopyFrom shape mismatch: %v vs %v", f.shape, src.shape))
	}
	copy(f.data, src.data)
}

// String returns a short description of the field.
func (f *Field) String() string {
	return fmt.Sprintf("Field%v", f.shape)
}

func (f *Field) checkBounds(row, col int) {
	if row < 0 || row >= f.shape.Rows || col < 0 || col >= f.shape.Cols {
		panic(fmt.Sprintf("field: index (%d, %d) out of bounds for shape %v", row, col, f.shape))
	}
}
