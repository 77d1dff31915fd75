package search

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timearchive/server/archive/documents"
	"github.com/timearchive/server/internal/embedder"
)

// test double returning a canned query embedding
type fakeEmbedder struct {
	embedding []float32
	err       error
	calls     int
}

func (f *fakeEmbedder) GenerateEmbedding(_ context.Context, _ string) ([]float32, error) {
	f.calls++

	if f.err != nil {
		return nil, f.err
	}

	return f.embedding, nil
}

// test double returning a canned corpus
type fakeCorpus struct {
	docs  []documents.Document
	err   error
	calls int
}

func (f *fakeCorpus) FetchEmbedded(_ context.Context) ([]documents.Document, error) {
	f.calls++

	if f.err != nil {
		return nil, f.err
	}

	return f.docs, nil
}

func corpusOf(embeddings ...[]float32) []documents.Document {
	docs := make([]documents.Document, len(embeddings))

	for i, emb := range embeddings {
		docs[i] = documents.Document{
			ID:        fmt.Sprintf("doc-%d", i+1),
			Title:     fmt.Sprintf("document %d", i+1),
			Embedding: emb,
		}
	}

	return docs
}

func TestSearch_RanksBySimilarity(t *testing.T) {
	// corpus [1,0], [0,1], [1,0] against query [1,0]:
	// the two score-1 documents come first, fetch order preserved between them
	emb := &fakeEmbedder{embedding: []float32{1, 0}}
	corpus := &fakeCorpus{docs: corpusOf([]float32{1, 0}, []float32{0, 1}, []float32{1, 0})}
	engine := NewEngine(emb, corpus)

	result, err := engine.Search(context.Background(), "time travel", 1, 10)

	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)
	require.Len(t, result.Results, 3)

	assert.Equal(t, "doc-1", result.Results[0].ID)
	assert.Equal(t, "doc-3", result.Results[1].ID)
	assert.Equal(t, "doc-2", result.Results[2].ID)

	assert.InDelta(t, 1.0, result.Results[0].Score, 1e-6)
	assert.InDelta(t, 1.0, result.Results[1].Score, 1e-6)
	assert.InDelta(t, 0.0, result.Results[2].Score, 1e-6)
}

func TestSearch_DimensionMismatchScoresZero(t *testing.T) {
	// every candidate has the wrong dimensionality: all scores 0,
	// ranking degenerates to fetch order, still a successful result
	emb := &fakeEmbedder{embedding: []float32{1, 0, 0}}
	corpus := &fakeCorpus{docs: corpusOf([]float32{1, 0}, []float32{0, 1}, []float32{1})}
	engine := NewEngine(emb, corpus)

	result, err := engine.Search(context.Background(), "mismatched", 1, 10)

	require.NoError(t, err)
	require.Len(t, result.Results, 3)

	for i, scored := range result.Results {
		assert.Zero(t, scored.Score)
		assert.Equal(t, fmt.Sprintf("doc-%d", i+1), scored.ID, "fetch order preserved")
	}
}

func TestSearch_PageBeyondEnd(t *testing.T) {
	emb := &fakeEmbedder{embedding: []float32{1, 0}}
	corpus := &fakeCorpus{docs: corpusOf([]float32{1, 0}, []float32{0, 1}, []float32{1, 0})}
	engine := NewEngine(emb, corpus)

	result, err := engine.Search(context.Background(), "anything", 5, 10)

	require.NoError(t, err)
	assert.Equal(t, 3, result.Total, "total reflects the real count")
	assert.Empty(t, result.Results)
	assert.NotNil(t, result.Results, "empty page serializes as [], not null")
}

func TestSearch_HugePageClipsToEmpty(t *testing.T) {
	// an absurdly large page must not overflow the start offset; it is just
	// another page past the end
	emb := &fakeEmbedder{embedding: []float32{1, 0}}
	corpus := &fakeCorpus{docs: corpusOf([]float32{1, 0}, []float32{0, 1}, []float32{1, 0})}
	engine := NewEngine(emb, corpus)

	result, err := engine.Search(context.Background(), "anything", 1<<62, 100)

	require.NoError(t, err)
	assert.Equal(t, 3, result.Total, "total reflects the real count")
	assert.Empty(t, result.Results)
	assert.NotNil(t, result.Results, "empty page serializes as [], not null")
}

func TestSearch_EmptyCorpus(t *testing.T) {
	emb := &fakeEmbedder{embedding: []float32{1, 0}}
	corpus := &fakeCorpus{}
	engine := NewEngine(emb, corpus)

	result, err := engine.Search(context.Background(), "anything", 1, 10)

	require.NoError(t, err)
	assert.Zero(t, result.Total)
	assert.Empty(t, result.Results)
}

func TestSearch_EmptyQueryMakesNoCalls(t *testing.T) {
	emb := &fakeEmbedder{embedding: []float32{1, 0}}
	corpus := &fakeCorpus{docs: corpusOf([]float32{1, 0})}
	engine := NewEngine(emb, corpus)

	for _, query := range []string{"", "   ", "\n\t"} {
		_, err := engine.Search(context.Background(), query, 1, 10)
		assert.ErrorIs(t, err, ErrInvalidQuery)
	}

	assert.Zero(t, emb.calls, "embedder never invoked for empty queries")
	assert.Zero(t, corpus.calls, "corpus never invoked for empty queries")
}

func TestSearch_ProviderFailureAbortsBeforeCorpus(t *testing.T) {
	provErr := &embedder.ProviderError{Kind: embedder.KindRateLimited, StatusCode: 429}
	emb := &fakeEmbedder{err: provErr}
	corpus := &fakeCorpus{docs: corpusOf([]float32{1, 0})}
	engine := NewEngine(emb, corpus)

	_, err := engine.Search(context.Background(), "query", 1, 10)

	assert.ErrorIs(t, err, ErrEmbeddingUnavailable)

	var wrapped *embedder.ProviderError
	assert.ErrorAs(t, err, &wrapped, "provider cause preserved for diagnostics")

	assert.Equal(t, 1, emb.calls)
	assert.Zero(t, corpus.calls, "corpus never invoked after provider failure")
}

func TestSearch_CorpusFailure(t *testing.T) {
	emb := &fakeEmbedder{embedding: []float32{1, 0}}
	corpus := &fakeCorpus{err: fmt.Errorf("connection refused")}
	engine := NewEngine(emb, corpus)

	_, err := engine.Search(context.Background(), "query", 1, 10)

	assert.ErrorIs(t, err, ErrCorpusUnavailable)
}

func TestSearch_Idempotent(t *testing.T) {
	emb := &fakeEmbedder{embedding: []float32{0.6, 0.8}}
	corpus := &fakeCorpus{docs: corpusOf(
		[]float32{0.6, 0.8},
		[]float32{0.8, 0.6},
		[]float32{0.6, 0.8},
		[]float32{0, 1},
	)}
	engine := NewEngine(emb, corpus)

	first, err := engine.Search(context.Background(), "repeatable", 1, 10)
	require.NoError(t, err)

	second, err := engine.Search(context.Background(), "repeatable", 1, 10)
	require.NoError(t, err)

	assert.Equal(t, first, second, "unchanged corpus yields identical results, tie order included")
}

func TestSearch_PaginationReassemblesFullRanking(t *testing.T) {
	var embeddings [][]float32
	for i := 0; i < 7; i++ {
		embeddings = append(embeddings, []float32{float32(i), 1})
	}

	emb := &fakeEmbedder{embedding: []float32{1, 0}}
	corpus := &fakeCorpus{docs: corpusOf(embeddings...)}
	engine := NewEngine(emb, corpus)

	full, err := engine.Search(context.Background(), "paging", 1, 100)
	require.NoError(t, err)
	require.Equal(t, 7, full.Total)

	// pages of 3 concatenated must reproduce the full ranking exactly
	limit := 3
	var reassembled []ScoredDocument

	for page := 1; (page-1)*limit < full.Total; page++ {
		result, err := engine.Search(context.Background(), "paging", page, limit)
		require.NoError(t, err)
		assert.Equal(t, full.Total, result.Total)

		reassembled = append(reassembled, result.Results...)
	}

	assert.Equal(t, full.Results, reassembled, "no duplicates, no omissions")
}

func TestSearch_NormalizesPagination(t *testing.T) {
	emb := &fakeEmbedder{embedding: []float32{1, 0}}
	corpus := &fakeCorpus{docs: corpusOf([]float32{1, 0})}
	engine := NewEngine(emb, corpus)

	result, err := engine.Search(context.Background(), "clamped", 0, 500)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, maxLimit, result.Limit)
}
