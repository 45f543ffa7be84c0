// Copyright 2026 The Holography Authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package field

import "github.com/DanLovesOrange/holography/internal/field"

// Field is a 2D complex-valued sampling of an optical wavefront.
type Field = field.Field

// Stack is an ordered sequence of equally shaped fields (one per
// propagation distance).
type Stack = field.Stack

// Shape describes field dimensions (rows × cols).
type Shape = field.Shape

// Device represents the compute device a backend executes on.
type Device = field.Device

// Supported compute devices.
const (
	Host   = field.Host
	WebGPU = field.WebGPU
)

// New creates a zero-initialized field of the given shape.
func New(shape Shape) (*Field, error) {
	return field.New(shape)
}

// Zeros creates a zero-filled field. Panics on an invalid shape.
func Zeros(rows, cols int) *Field {
	return field.Zeros(rows, cols)
}

// Ones creates a field filled with 1+0i.
func Ones(rows, cols int) *Field {
	return field.Ones(rows, cols)
}

// Full creates a field filled with a constant value.
func Full(rows, cols int, value complex128) *Field {
	return field.Full(rows, cols, value)
}

// FromSlice creates a field from row-major data. The slice is copied.
func FromSlice(data []complex128, shape Shape) (*Field, error) {
	return field.FromSlice(data, shape)
}

// NewStack creates a zero-initialized stack of depth planes.
func NewStack(shape Shape, depth int) (*Stack, error) {
	return field.NewStack(shape, depth)
}
