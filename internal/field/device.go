package field

// Device represents the compute device a backend executes on.
type Device int

// Supported compute devices.
const (
	Host Device = iota
	WebGPU
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case Host:
		return "Host"
	case WebGPU:
		return "WebGPU"
	default:
		return "Unknown"
	}
}
