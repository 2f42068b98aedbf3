package mocks

import (
	"context"

	"deskpilot/internal/models"
)

type CommandRunnerMock struct {
	ExecuteFunc func(ctx context.Context, commandLine, workingDir string) (string, error)
}

func (m *CommandRunnerMock) Execute(ctx context.Context, commandLine, workingDir string) (string, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, commandLine, workingDir)
	}
	return "", nil
}

type SearcherMock struct {
	SearchFunc func(ctx context.Context, query string, limit int, apiKey string) ([]models.WebSearchResult, error)
}

func (m *SearcherMock) Search(ctx context.Context, query string, limit int, apiKey string) ([]models.WebSearchResult, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, limit, apiKey)
	}
	return []models.WebSearchResult{}, nil
}
