package documents

import (
	"github.com/timearchive/server/archive/documents"
)

// contains data for creating a text document
type CreateDocumentRequest struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Text  string `json:"text" binding:"required"`
}

// returned after a successful ingestion
type CreateDocumentResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// wraps a paginated document listing; always the same shape
type ListResponse struct {
	Page  int                  `json:"page"`
	Limit int                  `json:"limit"`
	Total int                  `json:"total"`
	Items []documents.Document `json:"items"`
}
