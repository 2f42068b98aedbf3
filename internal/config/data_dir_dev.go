//go:build !prod

package config

// DefaultDataDir returns the data directory for development builds.
// It lives next to the working directory for easy inspection.
func DefaultDataDir() string {
	return "deskpilot-data"
}

func IsDevelopment() bool {
	return true
}
