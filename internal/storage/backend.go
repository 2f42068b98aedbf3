// Package storage reads and writes whole JSON documents under the
// application data directory.
package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Backend maps logical collection names to JSON files in one directory.
type Backend struct {
	dir string
	log *logrus.Entry
}

func NewBackend(dir string, log *logrus.Entry) *Backend {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Backend{dir: dir, log: log.WithField("component", "storage")}
}

func (b *Backend) Dir() string {
	return b.dir
}

// ResolvePath returns <dir>/<collection>.json, creating dir if needed.
func (b *Backend) ResolvePath(collection string) (string, error) {
	if err := os.MkdirAll(b.dir, dirPerm); err != nil {
		return "", &IOError{Op: "create data directory", Path: b.dir, Err: err}
	}
	return filepath.Join(b.dir, collection+".json"), nil
}

// Save writes value as indented JSON, replacing the file in a single write.
func (b *Backend) Save(path string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return &SerializationError{Target: filepath.Base(path), Err: err}
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	b.log.WithField("path", path).Debug("saved document")
	return nil
}

// Load decodes the JSON document at path. A missing, unreadable or corrupt
// file yields defaults(); the failure is logged and never returned.
func Load[T any](b *Backend, path string, defaults func() T) T {
	return LoadWith(b, path, defaults, func(data []byte) (T, error) {
		var v T
		err := json.Unmarshal(data, &v)
		return v, err
	})
}

// LoadWith is Load with a caller-supplied decoder, used when a document needs
// migrating before it can be used.
func LoadWith[T any](b *Backend, path string, defaults func() T, decode func([]byte) (T, error)) T {
	log := b.log.WithField("path", path)

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Debug("document not found, using defaults")
		return defaults()
	}
	if err != nil {
		log.WithError(err).Warn("failed to read document, using defaults")
		return defaults()
	}

	v, err := decode(data)
	if err != nil {
		log.WithError(&SerializationError{Target: filepath.Base(path), Err: err}).
			Warn("failed to parse document, using defaults")
		return defaults()
	}
	return v
}

// SaveNamed resolves the file for collection and saves value to it.
func (b *Backend) SaveNamed(collection string, value any) error {
	path, err := b.ResolvePath(collection)
	if err != nil {
		return err
	}
	return b.Save(path, value)
}

// LoadNamed resolves the file for collection and loads it with decode.
// If the data directory cannot be created, defaults() is returned.
func LoadNamed[T any](b *Backend, collection string, defaults func() T, decode func([]byte) (T, error)) T {
	path, err := b.ResolvePath(collection)
	if err != nil {
		b.log.WithError(err).Warn("failed to resolve document path, using defaults")
		return defaults()
	}
	if decode == nil {
		return Load(b, path, defaults)
	}
	return LoadWith(b, path, defaults, decode)
}
