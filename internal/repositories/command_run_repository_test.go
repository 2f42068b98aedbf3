package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"deskpilot/internal/database"
	"deskpilot/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Init(database.Config{Path: filepath.Join(t.TempDir(), database.FileName)})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestCommandRunRepository_CreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewCommandRunRepository(newTestDB(t))

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, cmd := range []string{"ls", "pwd", "whoami"} {
		run := &models.CommandRun{Command: cmd, Succeeded: true, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, repo.Create(ctx, run))
		assert.NotZero(t, run.ID)
	}

	runs, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "whoami", runs[0].Command)
	assert.Equal(t, "ls", runs[2].Command)

	limited, err := repo.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "pwd", limited[1].Command)
}

func TestCommandRunRepository_DeleteAll(t *testing.T) {
	ctx := context.Background()
	repo := NewCommandRunRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, &models.CommandRun{Command: "ls", ErrorKind: "other"}))
	require.NoError(t, repo.DeleteAll(ctx))

	runs, err := repo.List(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
