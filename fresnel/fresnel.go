// Copyright 2026 The Holography Authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package fresnel

import (
	"github.com/DanLovesOrange/holography/field"
	"github.com/DanLovesOrange/holography/internal/fresnel"
)

// Defaults applied when a parameter is omitted.
const (
	DefaultWavelength = fresnel.DefaultWavelength
	DefaultPixelPitch = fresnel.DefaultPixelPitch
)

// Config is the fully resolved configuration of one propagation call.
type Config = fresnel.Config

// Option customizes a propagation call.
type Option = fresnel.Option

// Result holds the output of one propagation call, gathered to host memory.
type Result = fresnel.Result

// Resolver turns a legacy positional/named argument list into a resolved
// field and Config.
type Resolver = fresnel.Resolver

// Grid holds the spatial-frequency coordinates of a canvas.
type Grid = fresnel.Grid

// InvalidOptionError reports an unrecognized named option.
type InvalidOptionError = fresnel.InvalidOptionError

// ShapeMismatchError reports input dimensions incompatible with the canvas.
type ShapeMismatchError = fresnel.ShapeMismatchError

// Propagate computes the Fresnel propagation of f across the configured
// distance sequence.
//
// Example:
//
//	res, err := fresnel.Propagate(hologram,
//	    fresnel.WithWavelength(532e-9),
//	    fresnel.WithDistances(0, 1e-3, 2e-3),
//	    fresnel.WithCanvasSize(1024),
//	)
func Propagate(f *field.Field, opts ...Option) (*Result, error) {
	return fresnel.Propagate(f, opts...)
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return fresnel.DefaultConfig()
}

// NewGrid builds the frequency grid for a rows×cols canvas sampled at the
// given pixel pitch.
func NewGrid(rows, cols int, pitch float64) *Grid {
	return fresnel.NewGrid(rows, cols, pitch)
}

// BorderValue averages the field's outermost samples (mean of the four
// per-edge means).
func BorderValue(f *field.Field) complex128 {
	return fresnel.BorderValue(f)
}

// Pad embeds f into a rows×cols canvas filled with the border value.
func Pad(f *field.Field, rows, cols int) *field.Field {
	return fresnel.Pad(f, rows, cols)
}

// Crop extracts the centered rows×cols region of f.
func Crop(f *field.Field, rows, cols int) *field.Field {
	return fresnel.Crop(f, rows, cols)
}

// TransferFunction builds the Fresnel transfer-function kernel for one
// propagation distance.
func TransferFunction(g *Grid, wavelength, z float64, coeff complex128) *field.Field {
	return fresnel.TransferFunction(g, wavelength, z, coeff)
}

// Re-exported option constructors.
var (
	WithWavelength          = fresnel.WithWavelength
	WithDistance            = fresnel.WithDistance
	WithDistances           = fresnel.WithDistances
	WithPixelPitch          = fresnel.WithPixelPitch
	WithCanvasSize          = fresnel.WithCanvasSize
	ForceHostBackend        = fresnel.ForceHostBackend
	WithApertureMask        = fresnel.WithApertureMask
	WithTransferCoefficient = fresnel.WithTransferCoefficient
	WithKernelStack         = fresnel.WithKernelStack
)
