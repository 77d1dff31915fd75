package embedder

import (
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// classifies provider failures for callers that branch on cause
type ErrorKind string

const (
	KindUnauthenticated ErrorKind = "unauthenticated"
	KindRateLimited     ErrorKind = "rate_limited"
	KindInvalidInput    ErrorKind = "invalid_input"
	KindNetwork         ErrorKind = "network"
)

// ProviderError is returned for any embedding API failure
type ProviderError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("embedding provider %s (status %d): %s", e.Kind, e.StatusCode, e.Message)
	}

	return fmt.Sprintf("embedding provider %s: %s", e.Kind, e.Message)
}

// Config holds embedder client settings
type Config struct {
	APIKey  string
	Model   string // e.g. "text-embedding-3-small"
	BaseURL string // override for tests; defaults to the OpenAI endpoint

	// requests per second allowed against the provider; 0 disables throttling
	RequestsPerSecond float64
}

// Client calls the OpenAI embeddings API
type Client struct {
	config     Config
	httpClient *http.Client
	limiter    *rate.Limiter
}

type embeddingRequest struct {
	Input    []string `json:"input"`
	Model    string   `json:"model"`
	Encoding string   `json:"encoding_format"`
}

type embeddingResponse struct {
	Object string `json:"object"`
	Data   []struct {
		Object    string    `json:"object"`
		Index     int       `json:"index"`
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
	Model string `json:"model"`
	Usage struct {
		PromptTokens int `json:"prompt_tokens"`
		TotalTokens  int `json:"total_tokens"`
	} `json:"usage"`
}
