package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Document is one web document returned by the search backend.
type Document struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// SearchClient abstracts the AI web-search backend: free-text query in,
// ordered web documents out. Implementations for different vendors must
// conform to this shape.
type SearchClient interface {
	Search(ctx context.Context, query string, maxResults int) ([]Document, error)
}

// ValyuClient is the default SearchClient over the Valyu HTTP API.
type ValyuClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewValyuClient builds a client with an explicit request timeout. The
// client is constructed once at startup and injected; there is no lazily
// initialized shared instance.
func NewValyuClient(apiKey, baseURL string, timeout time.Duration, logger *zap.Logger) *ValyuClient {
	return &ValyuClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type valyuSearchRequest struct {
	Query         string `json:"query"`
	MaxNumResults int    `json:"max_num_results"`
	SearchType    string `json:"search_type"`
}

type valyuSearchResponse struct {
	Success bool       `json:"success"`
	Error   string     `json:"error,omitempty"`
	Results []Document `json:"results"`
}

// Search issues one search query. Timeouts and cancellation come from both
// the passed context and the client's own request timeout.
func (c *ValyuClient) Search(ctx context.Context, query string, maxResults int) ([]Document, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("search backend API key is not configured")
	}

	body, err := json.Marshal(valyuSearchRequest{
		Query:         query,
		MaxNumResults: maxResults,
		SearchType:    "all",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search backend returned status %d", resp.StatusCode)
	}

	var parsed valyuSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	if !parsed.Success {
		return nil, fmt.Errorf("search backend reported failure: %s", parsed.Error)
	}

	c.logger.Debug("Search backend returned documents",
		zap.Int("count", len(parsed.Results)),
	)
	return parsed.Results, nil
}
