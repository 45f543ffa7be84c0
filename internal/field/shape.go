package field

import "fmt"

// Shape describes the dimensions of a 2D field (rows × cols).
type Shape struct {
	Rows int
	Cols int
}

// NumElements returns the total number of samples in the field.
func (s Shape) NumElements() int {
	return s.Rows * s.Cols
}

// Validate checks that both dimensions are positive.
func (s Shape) Validate() error {
	if s.Rows <= 0 || s.Cols <= 0 {
		return fmt.Errorf("field: invalid shape %v (dimensions must be > 0)", s)
	}
	return nil
}

// Equal reports whether two shapes have the same dimensions.
func (s Shape) Equal(other Shape) bool {
	return s.Rows == other.Rows && s.Cols == other.Cols
}

// Contains reports whether other fits inside s in both dimensions.
func (s Shape) Contains(other Shape) bool {
	return s.Rows >= other.Rows && s.Cols >= other.Cols
}

// String returns the shape as "(rows, cols)".
func (s Shape) String() string {
	return fmt.Sprintf("(%d, %d)", s.Rows, s.Cols)
}
