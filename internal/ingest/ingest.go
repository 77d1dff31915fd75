package ingest

import (
	"context"
	"fmt"
	"strings"

	"github.com/timearchive/server/archive/documents"
	"github.com/timearchive/server/internal/chunker"
)

// Embedder turns a text into a fixed-length vector
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// DocumentStore persists ingested documents
type DocumentStore interface {
	Create(ctx context.Context, in documents.CreateDocument) (*documents.Document, error)
}

// Service is the ingestion path: text in, embedded document out.
// Embeddings are computed once, at creation time.
type Service struct {
	embedder Embedder
	store    DocumentStore
	opts     chunker.Options
}

// Input describes one document to ingest. Text may already have been
// extracted from an upload; SourceFile carries the stored binary's locator.
type Input struct {
	Title      string
	Date       string
	Text       string
	SourceFile string
	CreatedBy  string
}

func NewService(embedder Embedder, store DocumentStore) *Service {
	return &Service{
		embedder: embedder,
		store:    store,
		opts:     chunker.DefaultOptions(),
	}
}

// Ingest computes one embedding covering the whole text and persists the
// document. Long text is chunked and rejoined up to the provider's input
// budget before the single embedding call. Empty text still creates the
// document, just without an embedding, which keeps it out of search.
func (s *Service) Ingest(ctx context.Context, in Input) (*documents.Document, error) {
	text := strings.TrimSpace(in.Text)

	var embedding []float32

	if text != "" {
		chunks := chunker.SplitText(text, s.opts)
		capped := chunker.JoinWithinBudget(chunks, s.opts.MaxTotalTokens)

		emb, err := s.embedder.GenerateEmbedding(ctx, capped)
		if err != nil {
			return nil, fmt.Errorf("failed to embed document: %w", err)
		}

		embedding = emb
	}

	doc, err := s.store.Create(ctx, documents.CreateDocument{
		Title:      in.Title,
		Date:       in.Date,
		Text:       text,
		Embedding:  embedding,
		SourceFile: in.SourceFile,
		CreatedBy:  in.CreatedBy,
	})

	if err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}

	return doc, nil
}
