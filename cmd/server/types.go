package main

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/timearchive/server/archive/documents"
	"github.com/timearchive/server/archive/users"
	"github.com/timearchive/server/internal/config"
	"github.com/timearchive/server/internal/embedder"
	"github.com/timearchive/server/internal/ingest"
	"github.com/timearchive/server/internal/objstore"
	"github.com/timearchive/server/internal/search"
)

// holds all dependencies and state for the API server
type Server struct {
	db       *pgxpool.Pool
	config   *config.Config
	userRepo *users.Repository
	docRepo  *documents.Repository
	services *Services
	router   *gin.Engine
}

// holds all service clients, constructed once at startup
type Services struct {
	Embedder *embedder.Client
	Search   *search.Engine
	Ingest   *ingest.Service
	Uploads  *objstore.Store
}
