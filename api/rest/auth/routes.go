package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/timearchive/server/archive/users"
	"github.com/timearchive/server/internal/auth"
)

// registers all authentication routes
func RegisterRoutes(router *gin.RouterGroup, userRepo *users.Repository) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", RegisterHandler(userRepo))
		authGroup.POST("/login", LoginHandler(userRepo))
		authGroup.GET("/me", auth.AuthMiddleware(), GetCurrentUserHandler(userRepo))
	}
}
