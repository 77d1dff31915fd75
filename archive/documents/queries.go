package documents

const (
	queryCreate = `
		INSERT INTO documents (title, doc_date, body, embedding, source_file, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	queryGet = `
		SELECT id, title, doc_date, body, COALESCE(source_file, ''), COALESCE(created_by::text, ''), created_at
		FROM documents
		WHERE id = $1
	`

	queryList = `
		SELECT id, title, doc_date, created_at
		FROM documents
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`

	queryCount = `
		SELECT COUNT(*) FROM documents
	`

	// insertion order keeps search tie-breaking reproducible
	queryFetchEmbedded = `
		SELECT id, title, doc_date, body, embedding, COALESCE(source_file, ''), COALESCE(created_by::text, ''), created_at
		FROM documents
		WHERE embedding IS NOT NULL
		ORDER BY created_at ASC, id ASC
	`
)
