package profile

// Domain describes the rectangular surface-position by depth region a
// profile covers.
type Domain struct {
	XMin, XMax float64
	ZMin, ZMax float64
}

// Config controls one profile generation run.
type Config struct {
	// Seed drives the run-scoped RNG. Equal seeds reproduce the field
	// bit-for-bit.
	Seed int64

	// Points is the scatter size drawn over the domain.
	Points int

	// Resolution is the side length of the interpolation lattice.
	Resolution int

	Domain Domain
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Seed:       678,
		Points:     800,
		Resolution: 80,
		Domain: Domain{
			XMin: 1,
			XMax: 6,
			ZMin: 0,
			ZMax: 80,
		},
	}
}
