package ingest

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timearchive/server/archive/documents"
)

type fakeEmbedder struct {
	embedding []float32
	err       error
	calls     int
	lastText  string
}

func (f *fakeEmbedder) GenerateEmbedding(_ context.Context, text string) ([]float32, error) {
	f.calls++
	f.lastText = text

	if f.err != nil {
		return nil, f.err
	}

	return f.embedding, nil
}

type fakeStore struct {
	created []documents.CreateDocument
	err     error
}

func (f *fakeStore) Create(_ context.Context, in documents.CreateDocument) (*documents.Document, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.created = append(f.created, in)

	return &documents.Document{
		ID:        fmt.Sprintf("doc-%d", len(f.created)),
		Title:     in.Title,
		Date:      in.Date,
		Text:      in.Text,
		Embedding: in.Embedding,
	}, nil
}

func TestIngest_EmbedsAndStores(t *testing.T) {
	emb := &fakeEmbedder{embedding: []float32{0.1, 0.2}}
	store := &fakeStore{}
	svc := NewService(emb, store)

	doc, err := svc.Ingest(context.Background(), Input{
		Title:     "moon landing",
		Date:      "1969-07-20",
		Text:      "one small step",
		CreatedBy: "user-1",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, emb.calls)
	assert.Equal(t, []float32{0.1, 0.2}, doc.Embedding)

	require.Len(t, store.created, 1)
	assert.Equal(t, "user-1", store.created[0].CreatedBy)
	assert.Equal(t, "one small step", store.created[0].Text)
}

func TestIngest_EmptyTextSkipsEmbedding(t *testing.T) {
	// a document with no extractable text is still archived,
	// just excluded from semantic search
	emb := &fakeEmbedder{embedding: []float32{0.1}}
	store := &fakeStore{}
	svc := NewService(emb, store)

	doc, err := svc.Ingest(context.Background(), Input{
		Title:      "scanned ledger",
		SourceFile: "s3://archive/uploads/ledger.pdf",
	})

	require.NoError(t, err)
	assert.Zero(t, emb.calls, "embedder never invoked for empty text")
	assert.Empty(t, doc.Embedding)
	require.Len(t, store.created, 1)
}

func TestIngest_ProviderFailureAborts(t *testing.T) {
	emb := &fakeEmbedder{err: fmt.Errorf("rate limited")}
	store := &fakeStore{}
	svc := NewService(emb, store)

	_, err := svc.Ingest(context.Background(), Input{Title: "t", Text: "some text"})

	assert.Error(t, err)
	assert.Empty(t, store.created, "nothing persisted when embedding fails")
}

func TestIngest_LongTextStaysWithinBudget(t *testing.T) {
	emb := &fakeEmbedder{embedding: []float32{1}}
	store := &fakeStore{}
	svc := NewService(emb, store)

	paragraphs := make([]string, 200)
	for i := range paragraphs {
		paragraphs[i] = strings.Repeat("chronicle ", 50)
	}
	longText := strings.Join(paragraphs, "\n\n")

	doc, err := svc.Ingest(context.Background(), Input{Title: "long", Text: longText})

	require.NoError(t, err)
	assert.Equal(t, 1, emb.calls, "one embedding covers the whole document")
	assert.Less(t, len(emb.lastText), len(longText), "embedded text capped to the provider budget")

	// the stored body keeps the full text; only the embedding input is capped
	assert.Equal(t, strings.TrimSpace(longText), doc.Text)
}

func TestIngest_TrimsWhitespaceOnlyText(t *testing.T) {
	emb := &fakeEmbedder{embedding: []float32{1}}
	store := &fakeStore{}
	svc := NewService(emb, store)

	_, err := svc.Ingest(context.Background(), Input{Title: "blank", Text: "   \n\t  "})

	require.NoError(t, err)
	assert.Zero(t, emb.calls)
	require.Len(t, store.created, 1)
	assert.Empty(t, store.created[0].Embedding)
}
