package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// timeout for archive requests; search waits on the embedding provider
const requestTimeout = 60 * time.Second

// manages HTTP requests to the archive REST API
type ArchiveClient struct {
	endpoint   string
	httpClient *http.Client
}

// creates a new archive REST client
func NewArchiveClient() *ArchiveClient {
	endpoint := os.Getenv("TIMEARCHIVE_API_ENDPOINT")
	if endpoint == "" {
		endpoint = "http://localhost:8080"
	}

	return &ArchiveClient{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// sends a search request to the archive
func (c *ArchiveClient) Search(ctx context.Context, query string, page, limit int) (*SearchResultMsg, error) {
	payload := searchRequest{
		Query: query,
		Page:  page,
		Limit: limit,
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/search", c.endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var result searchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &SearchResultMsg{
		query:   query,
		page:    result.Page,
		total:   result.Total,
		results: result.Results,
	}, nil
}

// fetches a single document by id
func (c *ArchiveClient) GetDocument(ctx context.Context, id string) (*DocumentDetail, error) {
	url := fmt.Sprintf("%s/api/v1/documents/%s", c.endpoint, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var doc DocumentDetail
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &doc, nil
}

func (c *ArchiveClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp apiErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			return nil, fmt.Errorf("%s: %s", errResp.Error, errResp.Message)
		}
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// returns a tea.Cmd that runs a search request
func (c *ArchiveClient) SearchCmd(query string, page, limit int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		resp, err := c.Search(ctx, query, page, limit)
		if err != nil {
			return RequestErrorMsg{err: err}
		}

		return *resp
	}
}

// returns a tea.Cmd that fetches a document
func (c *ArchiveClient) GetDocumentCmd(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		doc, err := c.GetDocument(ctx, id)
		if err != nil {
			return RequestErrorMsg{err: err}
		}

		return DocumentMsg{document: doc}
	}
}

// REST API request/response types

type searchRequest struct {
	Query string `json:"query"`
	Page  int    `json:"page,omitempty"`
	Limit int    `json:"limit,omitempty"`
}

type searchResponse struct {
	Total   int         `json:"total"`
	Page    int         `json:"page"`
	Limit   int         `json:"limit"`
	Results []SearchHit `json:"results"`
}

type apiErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
