package search

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/timearchive/server/internal/errors"
	"github.com/timearchive/server/internal/search"
)

// SearchHandler godoc
// @Summary Semantic search
// @Description Embed the query and rank every archived document by cosine similarity
// @Tags search
// @Accept json
// @Produce json
// @Success 200 {object} search.Result
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /api/v1/search [post]
func SearchHandler(engine *search.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SearchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.BadRequest(c, "missing query", err)
			return
		}

		result, err := engine.Search(c.Request.Context(), req.Query, req.Page, req.Limit)
		if err != nil {
			respondSearchError(c, err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// maps engine error kinds onto HTTP responses
func respondSearchError(c *gin.Context, err error) {
	switch {
	case stderrors.Is(err, search.ErrInvalidQuery):
		errors.BadRequest(c, "missing query", nil)
	case stderrors.Is(err, search.ErrEmbeddingUnavailable):
		errors.UpstreamFailed(c, "failed to embed query", err)
	case stderrors.Is(err, search.ErrCorpusUnavailable):
		errors.StoreUnavailable(c, "failed to load documents", err)
	default:
		errors.InternalError(c, "search failed", err)
	}
}
