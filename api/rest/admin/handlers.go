package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/timearchive/server/archive/documents"
	"github.com/timearchive/server/archive/users"
	"github.com/timearchive/server/internal/errors"
)

// StatsHandler godoc
// @Summary Archive statistics
// @Description Document and user counts; admin only
// @Tags admin
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /api/v1/admin/stats [get]
// @Security BearerAuth
func StatsHandler(docRepo *documents.Repository, userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		totalDocs, err := docRepo.Count(c.Request.Context())
		if err != nil {
			errors.InternalError(c, "failed to load stats", err)
			return
		}

		totalUsers, err := userRepo.Count(c.Request.Context())
		if err != nil {
			errors.InternalError(c, "failed to load stats", err)
			return
		}

		c.JSON(http.StatusOK, StatsResponse{
			TotalDocuments: totalDocs,
			TotalUsers:     totalUsers,
		})
	}
}
