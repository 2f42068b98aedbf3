package utils

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// LoadEnv loads .env from the project root when running from a checkout,
// otherwise from the working directory. A missing file is not an error.
func LoadEnv() error {
	envPath := ".env"
	if root, err := FindProjectRoot(); err == nil {
		envPath = filepath.Join(root, ".env")
	}
	err := godotenv.Load(envPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
