// Copyright 2026 The Holography Authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package fresnel implements FFT-based Fresnel (angular-spectrum)
// propagation of complex optical fields, used to digitally refocus
// holographic recordings at arbitrary distances without moving the sensor.
//
// # Method
//
// The padded input field is transformed to frequency space once; for each
// requested distance Z the spectrum is multiplied by the transfer function
//
//	H = exp(−i·π·λ·Z·(fx²+fy²))
//
// (optionally carrying the global phase factor exp(i·2π/λ·Z)), inverse
// transformed, and cropped back to the input shape. Padding fills the
// canvas margin with the field's border value to suppress wraparound
// artifacts of the circular convolution.
//
// # Backends
//
// Computation runs on the host CPU, or on a WebGPU device when one is
// available, the call does not force the host backend, and the canvas
// dimensions are powers of two. Results are always gathered to host
// memory.
//
// # Basic Usage
//
//	res, err := fresnel.Propagate(hologram,
//	    fresnel.WithDistances(0, 1e-3, 2e-3),
//	    fresnel.WithCanvasSize(1024),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	refocused := res.Fields.Slice(1) // plane at 1 mm
package fresnel
