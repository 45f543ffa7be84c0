package fresnel

import (
	"fmt"

	"github.com/DanLovesOrange/holography/internal/field"
)

// Defaults applied when a parameter is omitted.
const (
	DefaultWavelength = 632.8e-9 // HeNe laser line, meters
	DefaultPixelPitch = 6.5e-6   // meters
)

// Config is the fully resolved configuration of one propagation call. Every
// field is independently defaulted; validation happens once, before any
// transform work begins.
type Config struct {
	Wavelength float64   // meters, > 0
	Distances  []float64 // meters, signable; order defines output order
	PixelPitch float64   // meters, > 0

	// CanvasSize sets both canvas dimensions; 0 means the canvas matches
	// the input field (no padding).
	CanvasSize int

	// ForceHost disables accelerator use regardless of availability.
	ForceHost bool

	// Mask is the optional aperture mask applied in frequency space.
	// Identity when nil. Must match the canvas shape.
	Mask *field.Field

	// TransferCoefficient enables the per-distance global phase factor
	// exp(i·2π/λ·Z); all factors are computed up front.
	TransferCoefficient bool

	// KeepKernels retains the transfer-function kernel of every distance
	// in the result, for per-distance aliasing diagnostics.
	KeepKernels bool
}

// DefaultConfig returns the configuration used when no options are given:
// a single zero distance, HeNe wavelength, 6.5 µm pitch, no padding.
func DefaultConfig() Config {
	return Config{
		Wavelength: DefaultWavelength,
		Distances:  []float64{0},
		PixelPitch: DefaultPixelPitch,
	}
}

// validate checks scalar parameters. Shape compatibility is checked by the
// engine once the canvas is resolved.
func (c *Config) validate() error {
	if c.Wavelength <= 0 {
		return fmt.Errorf("fresnel: wavelength must be positive, got %g", c.Wavelength)
	}
	if c.PixelPitch <= 0 {
		return fmt.Errorf("fresnel: pixel pitch must be positive, got %g", c.PixelPitch)
	}
	if len(c.Distances) == 0 {
		return fmt.Errorf("fresnel: distance sequence is empty")
	}
	if c.CanvasSize < 0 {
		return fmt.Errorf("fresnel: canvas size must be non-negative, got %d", c.CanvasSize)
	}
	return nil
}

// Option customizes a propagation call by mutating the Config before the
// call begins. Option constructors validate and panic on meaningless
// inputs; data-dependent validation surfaces as an error from Propagate.
type Option func(*Config)

// WithWavelength sets the wavelength in meters. Panics if λ <= 0.
func WithWavelength(lambda float64) Option {
	if lambda <= 0 {
		panic("fresnel: WithWavelength requires a positive wavelength")
	}
	return func(c *Config) { c.Wavelength = lambda }
}

// WithDistance sets a single propagation distance in meters. Negative
// distances propagate backward.
func WithDistance(z float64) Option {
	return func(c *Config) { c.Distances = []float64{z} }
}

// WithDistances sets the ordered distance sequence in meters. Output plane i
// corresponds to distances[i]. Panics on an empty sequence.
func WithDistances(distances ...float64) Option {
	if len(distances) == 0 {
		panic("fresnel: WithDistances requires at least one distance")
	}
	zs := append([]float64(nil), distances...)
	return func(c *Config) { c.Distances = zs }
}

// WithPixelPitch sets the sensor pixel pitch in meters. Panics if <= 0.
func WithPixelPitch(pitch float64) Option {
	if pitch <= 0 {
		panic("fresnel: WithPixelPitch requires a positive pitch")
	}
	return func(c *Config) { c.PixelPitch = pitch }
}

// WithCanvasSize sets both canvas dimensions to n samples, padding the
// input field before the transforms. Panics if n <= 0.
func WithCanvasSize(n int) Option {
	if n <= 0 {
		panic("fresnel: WithCanvasSize requires a positive size")
	}
	return func(c *Config) { c.CanvasSize = n }
}

// ForceHostBackend disables accelerator use for this call.
func ForceHostBackend() Option {
	return func(c *Config) { c.ForceHost = true }
}

// WithApertureMask applies mask elementwise in frequency space. The mask
// must match the canvas shape; a mismatch surfaces as a ShapeMismatchError
// from Propagate. Panics on nil.
func WithApertureMask(mask *field.Field) Option {
	if mask == nil {
		panic("fresnel: WithApertureMask(nil)")
	}
	return func(c *Config) { c.Mask = mask }
}

// WithTransferCoefficient enables the per-distance global phase factor
// exp(i·2π/λ·Z) on every kernel.
func WithTransferCoefficient() Option {
	return func(c *Config) { c.TransferCoefficient = true }
}

// WithKernelStack retains every distance's transfer-function kernel in the
// result for aliasing diagnostics.
func WithKernelStack() Option {
	return func(c *Config) { c.KeepKernels = true }
}
