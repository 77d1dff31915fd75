package search

// contains the semantic search request
type SearchRequest struct {
	Query string `json:"query" binding:"required"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}
