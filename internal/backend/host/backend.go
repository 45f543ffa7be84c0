// Package host implements the CPU backend on top of gonum's FFT routines.
package host

import (
	"github.com/DanLovesOrange/holography/internal/field"
	"github.com/DanLovesOrange/holography/internal/parallel"
)

// Backend implements field operations in host memory.
type Backend struct {
	device field.Device
	par    parallel.Config
	plans  *planCache
}

// New creates a new host backend.
func New() *Backend {
	return &Backend{
		device: field.Host,
		par:    parallel.DefaultConfig(),
		plans:  newPlanCache(),
	}
}

// Name returns the backend name.
func (h *Backend) Name() string {
	return "Host"
}

// Device returns the compute device.
func (h *Backend) Device() field.Device {
	return h.device
}
