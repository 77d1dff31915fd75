package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/timearchive/server/archive/users"
	"github.com/timearchive/server/internal/auth"
	"github.com/timearchive/server/internal/errors"
)

// RegisterHandler godoc
// @Summary Register a new user
// @Description Create an account with email and password. Role defaults to editor.
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/v1/auth/register [post]
func RegisterHandler(userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		role := req.Role
		if role == "" {
			role = auth.RoleEditor
		}

		// self-registration never grants admin
		if role != auth.RoleEditor && role != auth.RoleViewer {
			errors.BadRequest(c, "invalid role", nil)
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		if _, err := userRepo.FindByEmail(c.Request.Context(), email); err == nil {
			errors.Conflict(c, "email already registered")
			return
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			errors.InternalError(c, "failed to register", err)
			return
		}

		if _, err := userRepo.Create(c.Request.Context(), email, hash, role); err != nil {
			errors.InternalError(c, "failed to register", err)
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "registered successfully"})
	}
}

// LoginHandler godoc
// @Summary Log in
// @Description Exchange email/password for a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/auth/login [post]
func LoginHandler(userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		user, err := userRepo.FindByEmail(c.Request.Context(), email)
		if err != nil {
			// same response for unknown email and bad password
			errors.Unauthorized(c, "invalid credentials")
			return
		}

		if !auth.CheckPassword(user.PasswordHash, req.Password) {
			errors.Unauthorized(c, "invalid credentials")
			return
		}

		token, err := auth.GenerateJWT(user.ID, user.Email, user.Role)
		if err != nil {
			errors.InternalError(c, "failed to generate token", err)
			return
		}

		c.JSON(http.StatusOK, TokenResponse{Token: token})
	}
}

// GetCurrentUserHandler godoc
// @Summary Get current user
// @Description Get authenticated user's profile
// @Tags auth
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/auth/me [get]
// @Security BearerAuth
func GetCurrentUserHandler(userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		user, err := userRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			errors.NotFound(c, "user")
			return
		}

		c.JSON(http.StatusOK, UserResponse{User: user})
	}
}
