package documents

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles document database operations
type Repository struct {
	db *pgxpool.Pool
}

// represents one archived text artifact. Embedding is empty until the
// ingestion path computes one; only embedded documents participate in search.
type Document struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Date       string    `json:"date"`
	Text       string    `json:"text,omitempty"`
	Embedding  []float32 `json:"-"`
	SourceFile string    `json:"source_file,omitempty"`
	CreatedBy  string    `json:"created_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// contains data for inserting a new document
type CreateDocument struct {
	Title      string
	Date       string
	Text       string
	Embedding  []float32
	SourceFile string
	CreatedBy  string
}
