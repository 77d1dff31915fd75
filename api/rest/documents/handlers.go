package documents

import (
	stderrors "errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/timearchive/server/api/rest/pagination"
	"github.com/timearchive/server/archive/documents"
	"github.com/timearchive/server/internal/auth"
	"github.com/timearchive/server/internal/embedder"
	"github.com/timearchive/server/internal/errors"
	"github.com/timearchive/server/internal/extract"
	"github.com/timearchive/server/internal/ingest"
	"github.com/timearchive/server/internal/logger"
	"github.com/timearchive/server/internal/objstore"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100

	// uploads above this are rejected outright
	maxUploadBytes = 20 << 20
)

// CreateDocumentHandler godoc
// @Summary Create a text document
// @Description Archive a text document; its embedding is computed at creation time
// @Tags documents
// @Accept json
// @Produce json
// @Success 201 {object} CreateDocumentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /api/v1/documents [post]
// @Security BearerAuth
func CreateDocumentHandler(ingestSvc *ingest.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "not authenticated")
			return
		}

		var req CreateDocumentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		doc, err := ingestSvc.Ingest(c.Request.Context(), ingest.Input{
			Title:     req.Title,
			Date:      req.Date,
			Text:      req.Text,
			CreatedBy: userID,
		})

		if err != nil {
			respondIngestError(c, err)
			return
		}

		c.JSON(http.StatusCreated, CreateDocumentResponse{
			Message: "document saved",
			ID:      doc.ID,
		})
	}
}

// UploadDocumentHandler godoc
// @Summary Upload a document file
// @Description Upload a PDF (text is extracted) or another file with accompanying text
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} CreateDocumentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /api/v1/documents/upload [post]
// @Security BearerAuth
func UploadDocumentHandler(ingestSvc *ingest.Service, uploads *objstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "not authenticated")
			return
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			errors.BadRequest(c, "no file provided", err)
			return
		}

		if fileHeader.Size > maxUploadBytes {
			errors.BadRequest(c, "file too large", nil)
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			errors.InternalError(c, "failed to read upload", err)
			return
		}
		defer file.Close() //nolint:errcheck

		data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
		if err != nil {
			errors.InternalError(c, "failed to read upload", err)
			return
		}

		contentType := fileHeader.Header.Get("Content-Type")

		text := c.PostForm("text")

		if extract.IsPDF(contentType, fileHeader.Filename) {
			extracted, err := extract.PDFText(data)
			if err != nil {
				// a broken text layer is a data-quality issue, not a request failure:
				// archive the file without an embedding
				logger.Warn("pdf text extraction failed",
					"filename", fileHeader.Filename,
					"error", err,
				)
				extracted = ""
			}

			text = extracted
		}

		locator, err := uploads.Save(c.Request.Context(), fileHeader.Filename, data, contentType)
		if err != nil {
			errors.InternalError(c, "failed to store file", err)
			return
		}

		title := c.PostForm("title")
		if title == "" {
			title = fileHeader.Filename
		}

		doc, err := ingestSvc.Ingest(c.Request.Context(), ingest.Input{
			Title:      title,
			Date:       c.PostForm("date"),
			Text:       text,
			SourceFile: locator,
			CreatedBy:  userID,
		})

		if err != nil {
			respondIngestError(c, err)
			return
		}

		c.JSON(http.StatusCreated, CreateDocumentResponse{
			Message: "uploaded and indexed",
			ID:      doc.ID,
		})
	}
}

// ListDocumentsHandler godoc
// @Summary List documents
// @Description Paginated document listing, newest first
// @Tags documents
// @Produce json
// @Success 200 {object} ListResponse
// @Router /api/v1/documents [get]
func ListDocumentsHandler(docRepo *documents.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
		params := pagination.Normalize(page, limit, defaultPageSize, maxPageSize)

		total, err := docRepo.Count(c.Request.Context())
		if err != nil {
			errors.InternalError(c, "failed to list documents", err)
			return
		}

		items, err := docRepo.List(c.Request.Context(), params.Limit, params.Offset())
		if err != nil {
			errors.InternalError(c, "failed to list documents", err)
			return
		}

		if items == nil {
			items = []documents.Document{}
		}

		c.JSON(http.StatusOK, ListResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
			Items: items,
		})
	}
}

// GetDocumentHandler godoc
// @Summary Get a document
// @Tags documents
// @Produce json
// @Success 200 {object} documents.Document
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/documents/{id} [get]
func GetDocumentHandler(docRepo *documents.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		doc, err := docRepo.Get(c.Request.Context(), id)
		if err != nil {
			if stderrors.Is(err, documents.ErrNotFound) {
				errors.NotFound(c, "document")
				return
			}

			errors.InternalError(c, "failed to fetch document", err)
			return
		}

		c.JSON(http.StatusOK, doc)
	}
}

// maps ingestion failures onto HTTP responses
func respondIngestError(c *gin.Context, err error) {
	var provErr *embedder.ProviderError
	if stderrors.As(err, &provErr) {
		errors.UpstreamFailed(c, "failed to embed document", err)
		return
	}

	errors.InternalError(c, "failed to save document", err)
}
