package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestBackend(t *testing.T, dir string) (*Backend, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return NewBackend(dir, logrus.NewEntry(logger)), hook
}

func defaultDoc() doc { return doc{Name: "default"} }

func TestResolvePath_CreatesNestedDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	b, _ := newTestBackend(t, dir)

	path, err := b.ResolvePath("chats")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "chats.json"), path)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestResolvePath_FailsWhenDirIsAFile(t *testing.T) {
	parent := t.TempDir()
	blocker := filepath.Join(parent, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	b, _ := newTestBackend(t, filepath.Join(blocker, "data"))
	_, err := b.ResolvePath("settings")

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "create data directory", ioErr.Op)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	b, _ := newTestBackend(t, t.TempDir())
	path, err := b.ResolvePath("doc")
	require.NoError(t, err)

	require.NoError(t, b.Save(path, doc{Name: "x", Count: 3}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"name\": \"x\"")

	assert.Equal(t, doc{Name: "x", Count: 3}, Load(b, path, defaultDoc))
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	b, hook := newTestBackend(t, t.TempDir())
	path, err := b.ResolvePath("missing")
	require.NoError(t, err)

	assert.Equal(t, defaultDoc(), Load(b, path, defaultDoc))
	for _, e := range hook.AllEntries() {
		assert.NotEqual(t, logrus.WarnLevel, e.Level)
	}
}

func TestLoad_CorruptFileReturnsDefaultsAndWarns(t *testing.T) {
	b, hook := newTestBackend(t, t.TempDir())
	path, err := b.ResolvePath("corrupt")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	assert.Equal(t, defaultDoc(), Load(b, path, defaultDoc))
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestLoadWith_DecoderErrorReturnsDefaults(t *testing.T) {
	b, _ := newTestBackend(t, t.TempDir())
	path, err := b.ResolvePath("doc")
	require.NoError(t, err)
	require.NoError(t, b.Save(path, doc{Name: "stored"}))

	got := LoadWith(b, path, defaultDoc, func([]byte) (doc, error) {
		return doc{}, errors.New("unsupported")
	})
	assert.Equal(t, defaultDoc(), got)
}

func TestSave_SerializationError(t *testing.T) {
	b, _ := newTestBackend(t, t.TempDir())
	path, err := b.ResolvePath("bad")
	require.NoError(t, err)

	err = b.Save(path, map[string]any{"ch": make(chan int)})
	var serErr *SerializationError
	require.ErrorAs(t, err, &serErr)
	assert.Equal(t, "bad.json", serErr.Target)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSave_WriteErrorIsIOError(t *testing.T) {
	b, _ := newTestBackend(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "missing-dir", "x.json")

	err := b.Save(path, doc{})
	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, path, ioErr.Path)
}

func TestNotFoundError_MatchesSentinel(t *testing.T) {
	err := error(&NotFoundError{Collection: "chat", ID: "c9"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, `chat "c9" not found`, err.Error())
}

func TestSaveNamed_LoadNamed(t *testing.T) {
	b, _ := newTestBackend(t, t.TempDir())

	require.NoError(t, b.SaveNamed("folders", []doc{{Name: "a"}}))
	got := LoadNamed(b, "folders", func() []doc { return nil }, nil)
	assert.Equal(t, []doc{{Name: "a"}}, got)
}

func TestLoadNamed_UnresolvableDirReturnsDefaults(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	b, hook := newTestBackend(t, filepath.Join(blocker, "data"))

	got := LoadNamed(b, "settings", defaultDoc, nil)
	assert.Equal(t, defaultDoc(), got)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}
