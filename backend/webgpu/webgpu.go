// Copyright 2026 The Holography Authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package webgpu provides the WebGPU accelerator backend for field
// operations.
//
// WebGPU is a cross-platform graphics and compute API; the backend loads
// the native wgpu library at runtime and reports unavailability through
// IsAvailable rather than failing. Device arithmetic is 32-bit float;
// results are widened back to complex128 on gather.
//
// Example:
//
//	import "github.com/DanLovesOrange/holography/backend/webgpu"
//
//	func main() {
//	    if !webgpu.IsAvailable() {
//	        return
//	    }
//	    gpu, err := webgpu.New()
//	    if err != nil {
//	        return
//	    }
//	    defer gpu.Release()
//	}
package webgpu

import (
	"github.com/DanLovesOrange/holography/field"
	internalwebgpu "github.com/DanLovesOrange/holography/internal/backend/webgpu"
)

// Backend represents the WebGPU backend implementation.
type Backend = internalwebgpu.Backend

// Compile-time check that Backend implements field.Backend.
var _ field.Backend = (*Backend)(nil)

// New creates a new WebGPU backend.
// Returns an error if WebGPU is not available or initialization fails.
func New() (*Backend, error) {
	return internalwebgpu.New()
}

// IsAvailable reports whether a WebGPU device can be acquired on this
// system. Probe failures report false, never an error.
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}
