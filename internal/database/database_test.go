package database

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"deskpilot/internal/models"
)

func TestInit_CreatesDirectoryAndMigrates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	db, err := Init(Config{Path: path})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	assert.True(t, db.Migrator().HasTable(&models.CommandRun{}))
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	assert.FileExists(t, path)
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, logger.Info, LogLevel(logrus.DebugLevel))
	assert.Equal(t, logger.Info, LogLevel(logrus.TraceLevel))
	assert.Equal(t, logger.Warn, LogLevel(logrus.InfoLevel))
	assert.Equal(t, logger.Warn, LogLevel(logrus.WarnLevel))
	assert.Equal(t, logger.Error, LogLevel(logrus.ErrorLevel))
}
