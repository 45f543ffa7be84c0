// Copyright 2026 The Holography Authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package field

import "github.com/DanLovesOrange/holography/internal/field"

// Backend defines the interface that all compute backends must implement:
// elementwise complex arithmetic and the forward/inverse 2D transforms the
// propagation engine is written against.
//
// Implementations:
//   - backend/host: pure Go, gonum dsp/fourier transforms
//   - backend/webgpu: GPU compute via WebGPU
//
// Every operation accepts host-resident fields and returns a host-resident
// result; backends that execute elsewhere marshal inputs to device memory
// and gather results back before returning.
type Backend = field.Backend
