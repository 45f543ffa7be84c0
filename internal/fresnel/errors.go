package fresnel

import (
	"fmt"

	"github.com/DanLovesOrange/holography/internal/field"
)

// InvalidOptionError reports an unrecognized named option. Resolution is
// all-or-nothing: no partial configuration is applied.
type InvalidOptionError struct {
	Name string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("fresnel: unknown option %q", e.Name)
}

// ShapeMismatchError reports input dimensions that are incompatible with the
// resolved canvas. It is raised before any transform work begins.
type ShapeMismatchError struct {
	What string // which input: "aperture mask", "field"
	Got  field.Shape
	Want field.Shape
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("fresnel: %s shape %v incompatible with canvas %v", e.What, e.Got, e.Want)
}
