package field

import "fmt"

// Stack is an ordered sequence of equally shaped fields backed by one
// contiguous allocation (rows × cols × depth). Plane i of a propagation
// result corresponds to distance i of the input sequence.
type Stack struct {
	data  []complex128
	shape Shape
	depth int
}

// NewStack creates a zero-initialized stack of depth planes.
func NewStack(shape Shape, depth int) (*Stack, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if depth <= 0 {
		return nil, fmt.Errorf("field: invalid stack depth %d (must be > 0)", depth)
	}
	return &Stack{
		data:  make([]complex128, shape.NumElements()*depth),
		shape: shape,
		depth: depth,
	}, nil
}

// Shape returns the per-plane dimensions.
func (s *Stack) Shape() Shape {
	return s.shape
}

// Depth returns the number of planes.
func (s *Stack) Depth() int {
	return s.depth
}

// Slice returns a zero-copy field view of plane i. Writes through the view
// mutate the stack.
func (s *Stack) Slice(i int) *Field {
	if i < 0 || i >= s.depth {
		panic(fmt.Sprintf("field: stack plane %d out of range [0, %d)", i, s.depth))
	}
	n := s.shape.NumElements()
	return fromBacking(s.data[i*n:(i+1)*n], s.shape)
}

// SetSlice copies src into plane i. Panics on shape mismatch.
func (s *Stack) SetSlice(i int, src *Field) {
	s.Slice(i).CopyFrom(src)
}

// Data returns the contiguous backing slice (plane-major).
func (s *Stack) Data() []complex128 {
	return s.data
}

// String returns a short description of the stack.
func (s *Stack) String() string {
	return fmt.Sprintf("Stack(%d, %d, %d)", s.shape.Rows, s.shape.Cols, s.depth)
}
