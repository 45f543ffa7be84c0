// Copyright 2026 The Holography Authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package host provides the CPU backend for field operations.
package host

import (
	"github.com/DanLovesOrange/holography/field"
	internalhost "github.com/DanLovesOrange/holography/internal/backend/host"
)

// Backend represents the host (CPU) backend implementation. Transforms run
// on gonum's FFT routines; elementwise work is chunked across CPU cores.
type Backend = internalhost.Backend

// Compile-time check that Backend implements field.Backend.
var _ field.Backend = (*Backend)(nil)

// New creates a new host backend.
//
// Example:
//
//	import (
//	    "github.com/DanLovesOrange/holography/backend/host"
//	    "github.com/DanLovesOrange/holography/field"
//	)
//
//	func main() {
//	    b := host.New()
//	    spectrum := b.FFT2(field.Ones(256, 256))
//	    _ = spectrum
//	}
func New() *Backend {
	return internalhost.New()
}
