package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"deskpilot/internal/events"
)

type emitted struct {
	Name  string
	Event events.ChangeEvent
}

// captureEvents installs a recording emitter for the duration of the test.
func captureEvents(t *testing.T) func() []emitted {
	t.Helper()
	var mu sync.Mutex
	var got []emitted
	events.SetCustomEmitter(func(_ context.Context, name string, evt events.ChangeEvent) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, emitted{Name: name, Event: evt})
	})
	t.Cleanup(func() { events.SetCustomEmitter(nil) })
	return func() []emitted {
		mu.Lock()
		defer mu.Unlock()
		return append([]emitted(nil), got...)
	}
}

func nullLog() (*logrus.Entry, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return logrus.NewEntry(logger), hook
}

func strPtr(s string) *string { return &s }
