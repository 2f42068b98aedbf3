// Package search queries the Brave web search API on behalf of the assistant.
package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	cache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"deskpilot/internal/models"
)

const (
	DefaultEndpoint = "https://api.search.brave.com/res/v1/web/search"
	DefaultLimit    = 5

	maxResponseBytes = 4 << 20
)

var ErrMissingAPIKey = errors.New("brave search API key is not set")

// Options configures a Client. Zero values fall back to the defaults above.
type Options struct {
	Endpoint     string
	DefaultLimit int
	CacheTTL     time.Duration
	Timeout      time.Duration
	HTTPClient   *http.Client
	Log          *logrus.Entry
}

// Client is a Brave web search client with a per-(query, limit) result cache.
type Client struct {
	endpoint     string
	defaultLimit int
	http         *http.Client
	cache        *cache.Cache
	log          *logrus.Entry
}

type braveResponse struct {
	Web struct {
		Results []models.WebSearchResult `json:"results"`
	} `json:"web"`
}

func NewClient(opts Options) *Client {
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = DefaultLimit
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 5 * time.Minute
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Timeout}
	}
	if opts.Log == nil {
		opts.Log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Client{
		endpoint:     opts.Endpoint,
		defaultLimit: opts.DefaultLimit,
		http:         opts.HTTPClient,
		cache:        cache.New(opts.CacheTTL, 2*opts.CacheTTL),
		log:          opts.Log.WithField("component", "search"),
	}
}

// Search returns up to limit results for query. A non-positive limit uses
// the client default. Successful responses are cached; failures are not.
func (c *Client) Search(ctx context.Context, query string, limit int, apiKey string) ([]models.WebSearchResult, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if limit <= 0 {
		limit = c.defaultLimit
	}

	key := cacheKey(query, limit)
	if cached, found := c.cache.Get(key); found {
		c.log.WithField("query", query).Debug("search cache hit")
		return cloneResults(cached.([]models.WebSearchResult)), nil
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid search endpoint: %w", err)
	}
	q := u.Query()
	q.Set("q", query)
	q.Set("count", strconv.Itoa(limit))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("X-Subscription-Token", apiKey)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil, fmt.Errorf("search request failed with status: %s", resp.Status)
	}

	var body braveResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	results := body.Web.Results
	if results == nil {
		results = []models.WebSearchResult{}
	}
	c.log.WithFields(logrus.Fields{
		"query":    query,
		"results":  len(results),
		"duration": time.Since(start).String(),
	}).Info("web search completed")

	c.cache.SetDefault(key, cloneResults(results))
	return results, nil
}

func cacheKey(query string, limit int) string {
	return strconv.Itoa(limit) + "\x00" + query
}

func cloneResults(in []models.WebSearchResult) []models.WebSearchResult {
	return append([]models.WebSearchResult{}, in...)
}
