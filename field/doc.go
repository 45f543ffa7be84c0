// Copyright 2026 The Holography Authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package field provides the complex-valued plane and stack types shared by
// all propagation backends.
//
// # Overview
//
// A Field is a 2D complex128 array representing amplitude and phase at one
// plane; a Stack is an ordered sequence of equally shaped fields, one per
// propagation distance. Backends implement the Backend interface over these
// types on the host CPU or a WebGPU device.
//
// # Basic Usage
//
//	import (
//	    "github.com/DanLovesOrange/holography/backend/host"
//	    "github.com/DanLovesOrange/holography/field"
//	)
//
//	func main() {
//	    b := host.New()
//	    f := field.Ones(256, 256)
//	    spectrum := b.FFT2(f)
//	    back := b.IFFT2(spectrum) // equals f up to roundoff
//	    _ = back
//	}
package field
