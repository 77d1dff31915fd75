package admin

import (
	"github.com/gin-gonic/gin"
	"github.com/timearchive/server/archive/documents"
	"github.com/timearchive/server/archive/users"
	"github.com/timearchive/server/internal/auth"
)

// registers admin-only routes
func RegisterRoutes(router *gin.RouterGroup, docRepo *documents.Repository, userRepo *users.Repository) {
	adminGroup := router.Group("/admin")
	adminGroup.Use(auth.AuthMiddleware(), auth.RequireRole(auth.RoleAdmin))
	{
		adminGroup.GET("/stats", StatsHandler(docRepo, userRepo))
	}
}
