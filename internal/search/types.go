package search

import (
	"context"
	"errors"

	"github.com/timearchive/server/archive/documents"
)

// error kinds surfaced by the engine; callers match with errors.Is
var (
	// ErrInvalidQuery means the query string was empty; no upstream calls were made
	ErrInvalidQuery = errors.New("query must not be empty")

	// ErrEmbeddingUnavailable wraps any embedding provider failure
	ErrEmbeddingUnavailable = errors.New("embedding unavailable")

	// ErrCorpusUnavailable wraps any document store failure
	ErrCorpusUnavailable = errors.New("corpus unavailable")
)

// Embedder turns a text into a fixed-length vector
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// Corpus fetches every document holding a non-empty embedding
type Corpus interface {
	FetchEmbedded(ctx context.Context) ([]documents.Document, error)
}

// Engine scores a query against the full corpus. It holds no mutable state
// between calls; concurrent searches are independent.
type Engine struct {
	embedder Embedder
	corpus   Corpus
}

// ScoredDocument is a document plus its similarity to the current query.
// Computed fresh per search, never persisted.
type ScoredDocument struct {
	documents.Document
	Score float64 `json:"score"`
}

// Result is the single response shape for every search, errors aside
type Result struct {
	Total   int              `json:"total"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
	Results []ScoredDocument `json:"results"`
}
