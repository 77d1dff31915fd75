package embedder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	openaiEmbeddingsURL = "https://api.openai.com/v1/embeddings"
	defaultModel        = "text-embedding-3-small"
)

// shared HTTP client for embedding API calls
// reuses connection pool and timeout configuration
var sharedHTTPClient = &http.Client{
	Timeout: 60 * time.Second, // total request timeout
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// creates a new embedding client. Retries are deliberately not implemented
// here; callers decide whether a failed embedding is worth repeating.
func NewClient(config Config) *Client {
	if config.Model == "" {
		config.Model = defaultModel
	}

	if config.BaseURL == "" {
		config.BaseURL = openaiEmbeddingsURL
	}

	var limiter *rate.Limiter
	if config.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(config.RequestsPerSecond), 1)
	}

	return &Client{
		config:     config,
		httpClient: sharedHTTPClient,
		limiter:    limiter,
	}
}

// GenerateEmbedding embeds a single text
func (c *Client) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	embeddings, err := c.GenerateEmbeddings(ctx, []string{text})
	if err != nil {
		return nil, err
	}

	if len(embeddings) == 0 {
		return nil, &ProviderError{Kind: KindNetwork, Message: "no embeddings returned"}
	}

	return embeddings[0], nil
}

// GenerateEmbeddings embeds a batch of texts in one provider call
func (c *Client) GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, &ProviderError{Kind: KindInvalidInput, Message: "no texts provided"}
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &ProviderError{Kind: KindNetwork, Message: err.Error()}
		}
	}

	reqBody := embeddingRequest{
		Input:    texts,
		Model:    c.config.Model,
		Encoding: "float",
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.config.APIKey))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ProviderError{Kind: KindNetwork, Message: err.Error()}
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, classifyStatus(resp.StatusCode, string(body))
	}

	var embResp embeddingResponse
	if err := json.NewDecoder(resp.Body).Decode(&embResp); err != nil {
		return nil, &ProviderError{Kind: KindNetwork, Message: fmt.Sprintf("failed to decode response: %v", err)}
	}

	embeddings := make([][]float32, len(embResp.Data))
	for _, data := range embResp.Data {
		if data.Index < 0 || data.Index >= len(embeddings) {
			return nil, &ProviderError{
				Kind:    KindNetwork,
				Message: fmt.Sprintf("embedding index %d out of range for %d results", data.Index, len(embResp.Data)),
			}
		}

		embeddings[data.Index] = data.Embedding
	}

	return embeddings, nil
}

// maps HTTP status codes onto provider error kinds
func classifyStatus(status int, body string) *ProviderError {
	kind := KindNetwork

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = KindUnauthenticated
	case http.StatusTooManyRequests:
		kind = KindRateLimited
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		kind = KindInvalidInput
	}

	return &ProviderError{
		Kind:       kind,
		StatusCode: status,
		Message:    body,
	}
}
