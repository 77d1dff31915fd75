package documents

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
)

// returned when no document matches the lookup
var ErrNotFound = errors.New("document not found")

// creates a new document repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// inserts a new document. An empty embedding is stored as NULL so the
// document stays out of semantic search until it is re-ingested.
func (r *Repository) Create(ctx context.Context, in CreateDocument) (*Document, error) {
	var embedding any
	if len(in.Embedding) > 0 {
		embedding = pgvector.NewVector(in.Embedding)
	}

	var createdBy any
	if in.CreatedBy != "" {
		createdBy = in.CreatedBy
	}

	var sourceFile any
	if in.SourceFile != "" {
		sourceFile = in.SourceFile
	}

	doc := Document{
		Title:      in.Title,
		Date:       in.Date,
		Text:       in.Text,
		Embedding:  in.Embedding,
		SourceFile: in.SourceFile,
		CreatedBy:  in.CreatedBy,
	}

	err := r.db.QueryRow(ctx, queryCreate,
		in.Title,
		in.Date,
		in.Text,
		embedding,
		sourceFile,
		createdBy,
	).Scan(&doc.ID, &doc.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to insert document: %w", err)
	}

	return &doc, nil
}

// fetches a single document by ID, without its embedding
func (r *Repository) Get(ctx context.Context, id string) (*Document, error) {
	var doc Document

	err := r.db.QueryRow(ctx, queryGet, id).Scan(
		&doc.ID,
		&doc.Title,
		&doc.Date,
		&doc.Text,
		&doc.SourceFile,
		&doc.CreatedBy,
		&doc.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to fetch document: %w", err)
	}

	return &doc, nil
}

// lists document summaries (no body, no embedding) newest first
func (r *Repository) List(ctx context.Context, limit, offset int) ([]Document, error) {
	rows, err := r.db.Query(ctx, queryList, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []Document

	for rows.Next() {
		var doc Document

		err := rows.Scan(&doc.ID, &doc.Title, &doc.Date, &doc.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return docs, nil
}

// returns the total number of documents
func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int

	if err := r.db.QueryRow(ctx, queryCount).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}

	return count, nil
}

// FetchEmbedded returns every document with a stored embedding, in insertion
// order. The search engine scans this set linearly per query.
func (r *Repository) FetchEmbedded(ctx context.Context) ([]Document, error) {
	rows, err := r.db.Query(ctx, queryFetchEmbedded)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch embedded documents: %w", err)
	}
	defer rows.Close()

	var docs []Document

	for rows.Next() {
		var doc Document
		var embedding pgvector.Vector

		err := rows.Scan(
			&doc.ID,
			&doc.Title,
			&doc.Date,
			&doc.Text,
			&embedding,
			&doc.SourceFile,
			&doc.CreatedBy,
			&doc.CreatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		doc.Embedding = embedding.Slice()
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return docs, nil
}
