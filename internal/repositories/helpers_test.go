package repositories

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"deskpilot/internal/storage"
)

func newTestBackend(t *testing.T) (*storage.Backend, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return storage.NewBackend(filepath.Join(t.TempDir(), "data"), logrus.NewEntry(logger)), hook
}

func strPtr(s string) *string { return &s }
