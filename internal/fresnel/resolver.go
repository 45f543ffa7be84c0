package fresnel

import (
	"fmt"

	"github.com/DanLovesOrange/holography/internal/field"
)

// Named options recognized by the Resolver.
const (
	optCanvasSize          = "canvasSize"
	optForceHostBackend    = "forceHostBackend"
	optApertureMask        = "apertureMask"
	optTransferCoefficient = "enableTransferCoefficient"
)

// Resolver turns a loose positional/named argument list into a resolved
// field and Config. It mirrors the permissive call surface of legacy
// holography tooling:
//
//	field, wavelength, distances, pixelPitch, [canvasSize,] name, value, ...
//
// Positional arguments may be omitted from the tail and default to a 6.5 µm
// pitch, a single zero distance, the HeNe wavelength, and the pattern
// supplied by the Pattern collaborator. A lone int immediately following
// the positionals is the canvas-size shortcut. Resolution is all-or-nothing:
// any unrecognized option name fails the whole call.
type Resolver struct {
	// Pattern supplies a default test field when the argument list carries
	// none. Left nil, a field argument is required.
	Pattern func() *field.Field
}

// Resolve parses args into a field and a validated Config.
func (r Resolver) Resolve(args ...any) (*field.Field, Config, error) {
	cfg := DefaultConfig()
	i := 0

	var f *field.Field
	if i < len(args) {
		if v, ok := args[i].(*field.Field); ok {
			f = v
			i++
		}
	}

	// Leading float-typed values bind wavelength, distances, pixel pitch
	// in order; omitted ones keep their defaults.
	var positionals []any
	for i < len(args) {
		switch args[i].(type) {
		case float64, []float64:
			positionals = append(positionals, args[i])
			i++
			continue
		}
		break
	}
	if len(positionals) > 3 {
		return nil, Config{}, fmt.Errorf("fresnel: too many positional arguments (%d, at most 3 after the field)", len(positionals))
	}
	if len(positionals) > 0 {
		v, ok := positionals[0].(float64)
		if !ok {
			return nil, Config{}, fmt.Errorf("fresnel: wavelength must be a float64, got %T", positionals[0])
		}
		cfg.Wavelength = v
	}
	if len(positionals) > 1 {
		switch z := positionals[1].(type) {
		case float64:
			cfg.Distances = []float64{z}
		case []float64:
			cfg.Distances = append([]float64(nil), z...)
		}
	}
	if len(positionals) > 2 {
		v, ok := positionals[2].(float64)
		if !ok {
			return nil, Config{}, fmt.Errorf("fresnel: pixel pitch must be a float64, got %T", positionals[2])
		}
		cfg.PixelPitch = v
	}

	// Canvas-size shortcut: a lone unnamed int after the positionals.
	if i < len(args) {
		if n, ok := args[i].(int); ok {
			cfg.CanvasSize = n
			i++
		}
	}

	// Remaining arguments are name/value pairs.
	for ; i < len(args); i += 2 {
		name, ok := args[i].(string)
		if !ok {
			return nil, Config{}, fmt.Errorf("fresnel: expected option name, got %T", args[i])
		}
		if i+1 >= len(args) {
			return nil, Config{}, fmt.Errorf("fresnel: option %q is missing a value", name)
		}
		if err := applyNamed(&cfg, name, args[i+1]); err != nil {
			return nil, Config{}, err
		}
	}

	if f == nil {
		if r.Pattern == nil {
			return nil, Config{}, fmt.Errorf("fresnel: no input field and no default pattern source")
		}
		f = r.Pattern()
	}

	if err := cfg.validate(); err != nil {
		return nil, Config{}, err
	}
	return f, cfg, nil
}

func applyNamed(cfg *Config, name string, value any) error {
	switch name {
	case optCanvasSize:
		n, ok := value.(int)
		if !ok {
			return fmt.Errorf("fresnel: option %q requires an int, got %T", name, value)
		}
		cfg.CanvasSize = n
	case optForceHostBackend:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("fresnel: option %q requires a bool, got %T", name, value)
		}
		cfg.ForceHost = v
	case optApertureMask:
		mask, ok := value.(*field.Field)
		if !ok {
			return fmt.Errorf("fresnel: option %q requires a *field.Field, got %T", name, value)
		}
		cfg.Mask = mask
	case optTransferCoefficient:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("fresnel: option %q requires a bool, got %T", name, value)
		}
		cfg.TransferCoefficient = v
	default:
		return &InvalidOptionError{Name: name}
	}
	return nil
}
