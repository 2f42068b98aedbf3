package services

import (
	"context"
	"fmt"

	"deskpilot/internal/models"
	"deskpilot/internal/repositories"
)

// Searcher is satisfied by *search.Client.
type Searcher interface {
	Search(ctx context.Context, query string, limit int, apiKey string) ([]models.WebSearchResult, error)
}

type SearchService struct {
	searcher Searcher
	settings repositories.SettingsRepository
	context  context.Context
}

func NewSearchService(searcher Searcher, settings repositories.SettingsRepository) *SearchService {
	return &SearchService{searcher: searcher, settings: settings}
}

func (s *SearchService) Startup(ctx context.Context) {
	s.context = ctx
}

// WebSearch queries the web with the Brave key from settings. A non-positive
// limit uses the configured default.
func (s *SearchService) WebSearch(query string, limit int) ([]models.WebSearchResult, error) {
	key := s.settings.Get().BraveSearchAPIKey
	results, err := s.searcher.Search(ctxOrBackground(s.context), query, limit, key)
	if err != nil {
		return nil, fmt.Errorf("service: web search: %w", err)
	}
	return results, nil
}
