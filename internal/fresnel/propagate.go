// Package fresnel implements FFT-based Fresnel (angular-spectrum)
// propagation of complex optical fields, used to digitally refocus
// holographic recordings at arbitrary distances.
package fresnel

import (
	"fmt"

	"github.com/DanLovesOrange/holography/internal/backend/host"
	"github.com/DanLovesOrange/holography/internal/backend/webgpu"
	"github.com/DanLovesOrange/holography/internal/field"
	"github.com/DanLovesOrange/holography/internal/parallel"
)

// Result holds the output of one propagation call, gathered to host memory.
type Result struct {
	// Fields is the refocused field stack: one plane per distance, each
	// with the input field's shape, in input distance order.
	Fields *field.Stack

	// Kernels retains the transfer-function kernel of every distance
	// (canvas shape) when requested via WithKernelStack; nil otherwise.
	Kernels *field.Stack
}

// Propagate computes the Fresnel propagation of f across the configured
// distance sequence. Configuration and validation errors surface before any
// transform work begins; the numerical core itself does not fail.
func Propagate(f *field.Field, opts ...Option) (*Result, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return propagate(f, cfg)
}

// PropagateArgs is the legacy loose-argument surface; see Resolver.
func (r Resolver) PropagateArgs(args ...any) (*Result, error) {
	f, cfg, err := r.Resolve(args...)
	if err != nil {
		return nil, err
	}
	return propagate(f, cfg)
}

func propagate(f *field.Field, cfg Config) (*Result, error) {
	if f == nil {
		return nil, fmt.Errorf("fresnel: nil input field")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	canvas := f.Shape()
	if cfg.CanvasSize > 0 {
		canvas = field.Shape{Rows: cfg.CanvasSize, Cols: cfg.CanvasSize}
	}
	if !canvas.Contains(f.Shape()) {
		return nil, &ShapeMismatchError{What: "field", Got: f.Shape(), Want: canvas}
	}
	if cfg.Mask != nil && !cfg.Mask.Shape().Equal(canvas) {
		return nil, &ShapeMismatchError{What: "aperture mask", Got: cfg.Mask.Shape(), Want: canvas}
	}

	backend := selectBackend(cfg, canvas)
	if releaser, ok := backend.(interface{ Release() }); ok {
		defer releaser.Release()
	}

	padded := Pad(f, canvas.Rows, canvas.Cols)
	grid := NewGrid(canvas.Rows, canvas.Cols, cfg.PixelPitch)
	coeffs := transferCoefficients(cfg.Wavelength, cfg.Distances, cfg.TransferCoefficient)

	// One forward transform, shared read-only across all distances. The
	// aperture mask is distance-independent, so it folds into the shared
	// spectrum once.
	spectrum := backend.FFT2(padded)
	if cfg.Mask != nil {
		spectrum = backend.Mul(spectrum, cfg.Mask)
	}

	depth := len(cfg.Distances)
	out, err := field.NewStack(f.Shape(), depth)
	if err != nil {
		return nil, err
	}
	var kernels *field.Stack
	if cfg.KeepKernels {
		kernels, err = field.NewStack(canvas, depth)
		if err != nil {
			return nil, err
		}
	}

	// Distances are independent given the shared spectrum; run them across
	// workers on the host, sequentially on an accelerator's single queue.
	par := parallel.DefaultConfig()
	if backend.Device() != field.Host {
		par = parallel.Serial()
	}
	parallel.ForEach(depth, func(i int) {
		h := TransferFunction(grid, cfg.Wavelength, cfg.Distances[i], coeffs[i])
		if kernels != nil {
			kernels.SetSlice(i, h)
		}
		plane := backend.IFFT2(backend.Mul(spectrum, h))
		out.SetSlice(i, Crop(plane, f.Rows(), f.Cols()))
	}, par)

	return &Result{Fields: out, Kernels: kernels}, nil
}

// selectBackend picks the execution backend as a pure function of the probe
// result, the override flag, and the canvas shape. The WGSL transform is
// radix-2, so the accelerator only takes power-of-two canvases; everything
// else degrades to the host backend before any computation begins.
func selectBackend(cfg Config, canvas field.Shape) field.Backend {
	if cfg.ForceHost || !isPowerOfTwo(canvas.Rows) || !isPowerOfTwo(canvas.Cols) {
		return host.New()
	}
	if !webgpu.IsAvailable() {
		return host.New()
	}
	gpu, err := webgpu.New()
	if err != nil {
		// Probe raced with device loss; treat as unavailable.
		return host.New()
	}
	return gpu
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
