package fresnel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanLovesOrange/holography/internal/field"
)

func TestResolveDefaults(t *testing.T) {
	f := field.Ones(4, 4)

	got, cfg, err := Resolver{}.Resolve(f)
	require.NoError(t, err)

	assert.Same(t, f, got)
	assert.Equal(t, DefaultWavelength, cfg.Wavelength)
	assert.Equal(t, []float64{0}, cfg.Distances)
	assert.Equal(t, DefaultPixelPitch, cfg.PixelPitch)
	assert.Equal(t, 0, cfg.CanvasSize)
	assert.False(t, cfg.ForceHost)
	assert.Nil(t, cfg.Mask)
}

func TestResolvePositionals(t *testing.T) {
	f := field.Ones(4, 4)

	_, cfg, err := Resolver{}.Resolve(f, 532e-9, 1e-3, 5e-6)
	require.NoError(t, err)

	assert.Equal(t, 532e-9, cfg.Wavelength)
	assert.Equal(t, []float64{1e-3}, cfg.Distances)
	assert.Equal(t, 5e-6, cfg.PixelPitch)
}

func TestResolvePositionalPrefix(t *testing.T) {
	// Omitted tail positionals keep their defaults.
	f := field.Ones(4, 4)

	_, cfg, err := Resolver{}.Resolve(f, 532e-9)
	require.NoError(t, err)

	assert.Equal(t, 532e-9, cfg.Wavelength)
	assert.Equal(t, []float64{0}, cfg.Distances)
	assert.Equal(t, DefaultPixelPitch, cfg.PixelPitch)
}

func TestResolveDistanceSequence(t *testing.T) {
	f := field.Ones(4, 4)
	zs := []float64{0, 1e-3, -1e-3}

	_, cfg, err := Resolver{}.Resolve(f, 532e-9, zs)
	require.NoError(t, err)
	assert.Equal(t, zs, cfg.Distances)

	// The config owns its own copy of the sequence.
	zs[0] = 99
	assert.Equal(t, 0.0, cfg.Distances[0])
}

func TestResolveCanvasShortcut(t *testing.T) {
	f := field.Ones(4, 4)

	_, cfg, err := Resolver{}.Resolve(f, 632.8e-9, 1e-3, 6.5e-6, 128)
	require.NoError(t, err)
	assert.Equal(t, 128, cfg.CanvasSize)
}

func TestResolveNamedOptions(t *testing.T) {
	f := field.Ones(4, 4)
	mask := field.Ones(8, 8)

	_, cfg, err := Resolver{}.Resolve(f,
		"canvasSize", 8,
		"forceHostBackend", true,
		"apertureMask", mask,
		"enableTransferCoefficient", true,
	)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.CanvasSize)
	assert.True(t, cfg.ForceHost)
	assert.Same(t, mask, cfg.Mask)
	assert.True(t, cfg.TransferCoefficient)
}

func TestResolveUnknownOptionName(t *testing.T) {
	f := field.Ones(4, 4)

	_, _, err := Resolver{}.Resolve(f, "canvassize", 8)
	require.Error(t, err)

	var invalid *InvalidOptionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "canvassize", invalid.Name)
	assert.Contains(t, err.Error(), "canvassize")
}

func TestResolveNamedOptionTypeMismatch(t *testing.T) {
	f := field.Ones(4, 4)

	tests := []struct {
		name  string
		value any
	}{
		{"canvasSize", "128"},
		{"forceHostBackend", 1},
		{"apertureMask", 3.0},
		{"enableTransferCoefficient", "yes"},
	}

	for _, tt := range tests {
		_, _, err := Resolver{}.Resolve(f, tt.name, tt.value)
		assert.Error(t, err, "option %q with %T value", tt.name, tt.value)
	}
}

func TestResolveMissingOptionValue(t *testing.T) {
	f := field.Ones(4, 4)

	_, _, err := Resolver{}.Resolve(f, "canvasSize")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "canvasSize")
}

func TestResolveTooManyPositionals(t *testing.T) {
	f := field.Ones(4, 4)

	_, _, err := Resolver{}.Resolve(f, 1.0, 2.0, 3.0, 4.0)
	assert.Error(t, err)
}

func TestResolvePatternFallback(t *testing.T) {
	pattern := field.Full(4, 4, 2)
	r := Resolver{Pattern: func() *field.Field { return pattern }}

	f, cfg, err := r.Resolve(532e-9, 1e-3)
	require.NoError(t, err)

	assert.Same(t, pattern, f)
	assert.Equal(t, 532e-9, cfg.Wavelength)
}

func TestResolveNoFieldNoPattern(t *testing.T) {
	_, _, err := Resolver{}.Resolve(532e-9)
	assert.Error(t, err)
}

func TestResolveRejectsInvalidScalars(t *testing.T) {
	f := field.Ones(4, 4)

	tests := []struct {
		name string
		args []any
	}{
		{"negative wavelength", []any{f, -532e-9}},
		{"zero pitch", []any{f, 532e-9, 1e-3, 0.0}},
		{"empty distances", []any{f, 532e-9, []float64{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Resolver{}.Resolve(tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestErrorAsShapeMismatch(t *testing.T) {
	err := error(&ShapeMismatchError{
		What: "aperture mask",
		Got:  field.Shape{Rows: 3, Cols: 3},
		Want: field.Shape{Rows: 4, Cols: 4},
	})

	var mismatch *ShapeMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, "aperture mask", mismatch.What)
	assert.Contains(t, err.Error(), "aperture mask")
}
