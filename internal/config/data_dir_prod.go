//go:build prod

package config

import (
	"log"
	"os"
	"path/filepath"
)

// DefaultDataDir returns the data directory for production builds, inside
// the user's config directory.
func DefaultDataDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Printf("Warning: Failed to get user config dir: %v. Using fallback.", err)
		return "deskpilot-data"
	}
	return filepath.Join(configDir, "deskpilot")
}

func IsDevelopment() bool {
	return false
}
