package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskpilot/internal/models"
	"deskpilot/internal/services"
	"deskpilot/internal/tests/mocks"
)

func TestSearchService_UsesKeyFromSettings(t *testing.T) {
	settings := models.DefaultSettings()
	settings.BraveSearchAPIKey = "brave-key"
	repo := &mocks.SettingsRepositoryMock{GetFunc: func() models.Settings { return settings }}
	searcher := &mocks.SearcherMock{SearchFunc: func(_ context.Context, query string, limit int, apiKey string) ([]models.WebSearchResult, error) {
		assert.Equal(t, "golang", query)
		assert.Equal(t, 3, limit)
		assert.Equal(t, "brave-key", apiKey)
		return []models.WebSearchResult{{Title: "Go", URL: "https://go.dev"}}, nil
	}}

	results, err := services.NewSearchService(searcher, repo).WebSearch("golang", 3)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Go", results[0].Title)
}

func TestSearchService_WrapsErrors(t *testing.T) {
	searchErr := errors.New("brave search API key is not set")
	searcher := &mocks.SearcherMock{SearchFunc: func(context.Context, string, int, string) ([]models.WebSearchResult, error) {
		return nil, searchErr
	}}

	_, err := services.NewSearchService(searcher, &mocks.SettingsRepositoryMock{}).WebSearch("go", 0)
	assert.ErrorIs(t, err, searchErr)
	assert.Equal(t, "service: web search: brave search API key is not set", err.Error())
}
