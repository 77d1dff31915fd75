package search

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

const (
	defaultLimit = 10
	maxLimit     = 100

	// ceiling on the page number; keeps the start offset inside int range,
	// and any page this far past the end is empty regardless
	maxPage = 1_000_000
)

// NewEngine creates a search engine over the given collaborators.
// Dependencies are explicit; the engine owns no connections or credentials.
func NewEngine(embedder Embedder, corpus Corpus) *Engine {
	return &Engine{
		embedder: embedder,
		corpus:   corpus,
	}
}

// Search embeds the query, scores every stored embedding with cosine
// similarity, and returns one page of the ranked corpus.
//
// Steps run in fixed order: validate -> embed query -> fetch corpus ->
// score -> stable sort -> paginate. Provider or store failures abort the
// whole search; there are no partial results and no retries here.
func (e *Engine) Search(ctx context.Context, query string, page, limit int) (*Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrInvalidQuery
	}

	page, limit = normalizePage(page, limit)

	queryEmbedding, err := e.embedder.GenerateEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEmbeddingUnavailable, err)
	}

	docs, err := e.corpus.FetchEmbedded(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorpusUnavailable, err)
	}

	// documents whose dimensionality differs from the query are
	// non-comparable: scored 0, scorer skipped, never an error
	scored := make([]ScoredDocument, len(docs))

	for i, doc := range docs {
		var score float64

		if len(doc.Embedding) == len(queryEmbedding) {
			score = CosineSimilarity(doc.Embedding, queryEmbedding)
		}

		scored[i] = ScoredDocument{Document: doc, Score: score}
	}

	// stable sort keeps fetch order on ties, so repeated searches against
	// an unchanged corpus return identical rankings
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	total := len(scored)

	start := (page - 1) * limit
	if start > total {
		start = total
	}

	end := start + limit
	if end > total {
		end = total
	}

	return &Result{
		Total:   total,
		Page:    page,
		Limit:   limit,
		Results: scored[start:end],
	}, nil
}

// clamps pagination inputs to the contract: page in [1, maxPage],
// limit in [1, 100]
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}

	if page > maxPage {
		page = maxPage
	}

	if limit < 1 {
		limit = defaultLimit
	}

	if limit > maxLimit {
		limit = maxLimit
	}

	return page, limit
}
