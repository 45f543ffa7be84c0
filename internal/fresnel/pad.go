package fresnel

import (
	"github.com/DanLovesOrange/holography/internal/field"
)

// BorderValue averages the field's outermost samples. Each of the four
// edges (top row, bottom row, left column, right column) is averaged on its
// own and the four edge means are then averaged, so the rule stays
// well-defined when the field is non-square and edge lengths differ.
// Corner samples contribute to both edges they belong to.
func BorderValue(f *field.Field) complex128 {
	m, n := f.Rows(), f.Cols()

	edgeMean := func(samples []complex128) complex128 {
		var sum complex128
		for _, v := range samples {
			sum += v
		}
		return sum / complex(float64(len(samples)), 0)
	}

	left := make([]complex128, m)
	right := make([]complex128, m)
	for r := 0; r < m; r++ {
		left[r] = f.At(r, 0)
		right[r] = f.At(r, n-1)
	}

	return (edgeMean(f.Row(0)) + edgeMean(f.Row(m-1)) + edgeMean(left) + edgeMean(right)) / 4
}

// padOffsets returns the top-left corner of the centered embedding of an
// m×n field in an M×N canvas.
func padOffsets(canvas, inner field.Shape) (row, col int) {
	return (canvas.Rows - inner.Rows) / 2, (canvas.Cols - inner.Cols) / 2
}

// Pad embeds f into a rows×cols canvas. The margin is filled with the
// field's border value to suppress wraparound edge discontinuities in the
// circular convolution. When the canvas matches the field's shape the
// result equals f exactly.
func Pad(f *field.Field, rows, cols int) *field.Field {
	if rows == f.Rows() && cols == f.Cols() {
		return f.Clone()
	}

	canvas := field.Full(rows, cols, BorderValue(f))
	offRow, offCol := padOffsets(canvas.Shape(), f.Shape())
	for r := 0; r < f.Rows(); r++ {
		copy(canvas.Row(r+offRow)[offCol:offCol+f.Cols()], f.Row(r))
	}
	return canvas
}

// Crop extracts the centered rows×cols region of f, matching the embedding
// offsets used by Pad.
func Crop(f *field.Field, rows, cols int) *field.Field {
	if rows == f.Rows() && cols == f.Cols() {
		return f.Clone()
	}

	out := field.Zeros(rows, cols)
	offRow, offCol := padOffsets(f.Shape(), out.Shape())
	for r := 0; r < rows; r++ {
		copy(out.Row(r), f.Row(r+offRow)[offCol:offCol+cols])
	}
	return out
}
