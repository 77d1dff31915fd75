package embedder

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, status int, body any) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.Header.Get("Authorization"), "Bearer ")

		w.WriteHeader(status)
		if body != nil {
			json.NewEncoder(w).Encode(body) //nolint:errcheck
		}
	}))
}

func TestGenerateEmbedding_Success(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, map[string]any{
		"object": "list",
		"data": []map[string]any{
			{"object": "embedding", "index": 0, "embedding": []float32{0.1, 0.2, 0.3}},
		},
	})
	defer srv.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})

	embedding, err := client.GenerateEmbedding(context.Background(), "hello archive")

	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, embedding)
}

func TestGenerateEmbeddings_PreservesOrder(t *testing.T) {
	// provider may return data out of order; index decides placement
	srv := newTestServer(t, http.StatusOK, map[string]any{
		"object": "list",
		"data": []map[string]any{
			{"object": "embedding", "index": 1, "embedding": []float32{1}},
			{"object": "embedding", "index": 0, "embedding": []float32{0}},
		},
	})
	defer srv.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})

	embeddings, err := client.GenerateEmbeddings(context.Background(), []string{"a", "b"})

	require.NoError(t, err)
	require.Len(t, embeddings, 2)
	assert.Equal(t, []float32{0}, embeddings[0])
	assert.Equal(t, []float32{1}, embeddings[1])
}

func TestGenerateEmbeddings_ErrorKinds(t *testing.T) {
	tests := []struct {
		name   string
		status int
		kind   ErrorKind
	}{
		{"unauthorized", http.StatusUnauthorized, KindUnauthenticated},
		{"forbidden", http.StatusForbidden, KindUnauthenticated},
		{"rate limited", http.StatusTooManyRequests, KindRateLimited},
		{"bad request", http.StatusBadRequest, KindInvalidInput},
		{"server error", http.StatusInternalServerError, KindNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.status, nil)
			defer srv.Close()

			client := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})

			_, err := client.GenerateEmbeddings(context.Background(), []string{"x"})

			var provErr *ProviderError
			require.ErrorAs(t, err, &provErr)
			assert.Equal(t, tt.kind, provErr.Kind)
			assert.Equal(t, tt.status, provErr.StatusCode)
		})
	}
}

func TestGenerateEmbeddings_OutOfRangeIndex(t *testing.T) {
	// a malformed provider response must surface as an error, not a panic
	srv := newTestServer(t, http.StatusOK, map[string]any{
		"object": "list",
		"data": []map[string]any{
			{"object": "embedding", "index": 7, "embedding": []float32{0.5}},
		},
	})
	defer srv.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})

	_, err := client.GenerateEmbeddings(context.Background(), []string{"a"})

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, KindNetwork, provErr.Kind)
}

func TestGenerateEmbeddings_EmptyInput(t *testing.T) {
	client := NewClient(Config{APIKey: "test-key"})

	_, err := client.GenerateEmbeddings(context.Background(), nil)

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, KindInvalidInput, provErr.Kind)
}

func TestGenerateEmbedding_NetworkError(t *testing.T) {
	// point at a closed server to force a transport failure
	srv := newTestServer(t, http.StatusOK, nil)
	srv.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})

	_, err := client.GenerateEmbedding(context.Background(), "unreachable")

	var provErr *ProviderError
	require.True(t, errors.As(err, &provErr))
	assert.Equal(t, KindNetwork, provErr.Kind)
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(Config{APIKey: "test-key"})

	assert.Equal(t, defaultModel, client.config.Model)
	assert.Equal(t, openaiEmbeddingsURL, client.config.BaseURL)
	assert.Nil(t, client.limiter, "throttling disabled by default")
}
