package repositories

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskpilot/internal/models"
	"deskpilot/internal/storage"
)

func chat(id string, ts int64) models.SavedChat {
	return models.SavedChat{
		ID:        id,
		Timestamp: ts,
		Mode:      models.ChatModeAction,
		Messages:  []models.ChatMessage{{Sender: models.SenderUser, Content: "hi " + id}},
	}
}

func TestChatRepository_EmptyWhenNoFile(t *testing.T) {
	backend, _ := newTestBackend(t)
	repo := NewChatRepository(backend)

	chats := repo.GetAll()
	assert.NotNil(t, chats)
	assert.Empty(t, chats)
}

func TestChatRepository_UpsertReplacesByID(t *testing.T) {
	backend, _ := newTestBackend(t)
	repo := NewChatRepository(backend)

	require.NoError(t, repo.Upsert(chat("c1", 100)))
	updated := chat("c1", 200)
	updated.Title = strPtr("X")
	require.NoError(t, repo.Upsert(updated))

	chats := repo.GetAll()
	require.Len(t, chats, 1)
	assert.Equal(t, int64(200), chats[0].Timestamp)
	require.NotNil(t, chats[0].Title)
	assert.Equal(t, "X", *chats[0].Title)
}

func TestChatRepository_UpsertIsIdempotent(t *testing.T) {
	backend, _ := newTestBackend(t)
	repo := NewChatRepository(backend)

	c := chat("c1", 100)
	require.NoError(t, repo.Upsert(c))
	first := repo.GetAll()
	require.NoError(t, repo.Upsert(c))

	assert.Equal(t, first, repo.GetAll())
}

func TestChatRepository_NewestFirst(t *testing.T) {
	backend, _ := newTestBackend(t)
	repo := NewChatRepository(backend)

	for _, c := range []models.SavedChat{chat("a", 100), chat("b", 300), chat("c", 200)} {
		require.NoError(t, repo.Upsert(c))
	}

	var ids []string
	for _, c := range repo.GetAll() {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"b", "c", "a"}, ids)
}

func TestChatRepository_PersistsAcrossInstances(t *testing.T) {
	backend, _ := newTestBackend(t)
	repo := NewChatRepository(backend)

	c := chat("c1", 100)
	c.Mode = models.ChatModeWalkthrough
	c.Title = strPtr("Install Go")
	c.Messages = append(c.Messages, models.ChatMessage{Sender: models.SenderAssistant, Content: "ok"})
	require.NoError(t, repo.Upsert(c))
	require.NoError(t, repo.Upsert(chat("c2", 50)))

	reloaded := NewChatRepository(storage.NewBackend(backend.Dir(), nil))
	assert.Equal(t, repo.GetAll(), reloaded.GetAll())
}

func TestChatRepository_DeleteRemovesRecord(t *testing.T) {
	backend, _ := newTestBackend(t)
	repo := NewChatRepository(backend)
	require.NoError(t, repo.Upsert(chat("c1", 100)))
	require.NoError(t, repo.Upsert(chat("c2", 200)))

	require.NoError(t, repo.Delete("c1"))

	chats := repo.GetAll()
	require.Len(t, chats, 1)
	assert.Equal(t, "c2", chats[0].ID)
}

func TestChatRepository_DeleteMissingLeavesFileAlone(t *testing.T) {
	backend, _ := newTestBackend(t)
	repo := NewChatRepository(backend)
	require.NoError(t, repo.Upsert(chat("c1", 100)))

	path := filepath.Join(backend.Dir(), "chats.json")
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	err = repo.Delete("nope")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	var nf *storage.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "chat", nf.Collection)
	assert.Equal(t, "nope", nf.ID)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Len(t, repo.GetAll(), 1)
}

func TestChatRepository_CorruptFileYieldsEmpty(t *testing.T) {
	backend, hook := newTestBackend(t)
	path, err := backend.ResolvePath("chats")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("[{not json"), 0o644))

	repo := NewChatRepository(backend)
	assert.Empty(t, repo.GetAll())
	require.NotNil(t, hook.LastEntry())
	assert.Contains(t, hook.LastEntry().Message, "failed to parse")
}

func TestChatRepository_CacheIsNotReloaded(t *testing.T) {
	backend, _ := newTestBackend(t)
	repo := NewChatRepository(backend)
	require.NoError(t, repo.Upsert(chat("c1", 100)))

	path := filepath.Join(backend.Dir(), "chats.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	assert.Len(t, repo.GetAll(), 1)
}

func TestChatRepository_ReturnedSlicesAreCopies(t *testing.T) {
	backend, _ := newTestBackend(t)
	repo := NewChatRepository(backend)
	require.NoError(t, repo.Upsert(chat("c1", 100)))

	got := repo.GetAll()
	got[0].Messages[0].Content = "mutated"
	got[0].ID = "other"

	again := repo.GetAll()
	assert.Equal(t, "c1", again[0].ID)
	assert.Equal(t, "hi c1", again[0].Messages[0].Content)
}

func TestChatRepository_NormalizesMissingFields(t *testing.T) {
	backend, _ := newTestBackend(t)
	path, err := backend.ResolvePath("chats")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"old","timestamp":5}]`), 0o644))

	chats := NewChatRepository(backend).GetAll()
	require.Len(t, chats, 1)
	assert.Equal(t, models.ChatModeAction, chats[0].Mode)
	assert.NotNil(t, chats[0].Messages)
	assert.Nil(t, chats[0].Title)
}

func TestChatRepository_WriteFailureKeepsCache(t *testing.T) {
	backend, _ := newTestBackend(t)
	repo := NewChatRepository(backend)
	require.NoError(t, repo.Upsert(chat("c1", 100)))

	// Replace chats.json with a directory so the next write fails.
	path := filepath.Join(backend.Dir(), "chats.json")
	require.NoError(t, os.Remove(path))
	require.NoError(t, os.Mkdir(path, 0o755))

	err := repo.Upsert(chat("c2", 200))
	var ioErr *storage.IOError
	require.ErrorAs(t, err, &ioErr)

	assert.Len(t, repo.GetAll(), 2)
}

func TestChatRepository_ConcurrentUpserts(t *testing.T) {
	backend, _ := newTestBackend(t)
	repo := NewChatRepository(backend)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, repo.Upsert(chat(string(rune('a'+i)), int64(i))))
		}(i)
	}
	wg.Wait()

	assert.Len(t, repo.GetAll(), 20)
	reloaded := NewChatRepository(storage.NewBackend(backend.Dir(), nil))
	assert.Len(t, reloaded.GetAll(), 20)
}
