package search

import (
	"github.com/gin-gonic/gin"
	"github.com/timearchive/server/internal/search"
)

// registers the semantic search route (public, like document reads)
func RegisterRoutes(router *gin.RouterGroup, engine *search.Engine) {
	router.POST("/search", SearchHandler(engine))
}
