package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/timearchive/server/archive/documents"
	"github.com/timearchive/server/archive/users"
	"github.com/timearchive/server/internal/config"
	"github.com/timearchive/server/internal/embedder"
	"github.com/timearchive/server/internal/ingest"
	"github.com/timearchive/server/internal/objstore"
	"github.com/timearchive/server/internal/search"
)

// requests per second allowed against the embedding provider
const embedderRequestsPerSecond = 5

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// keep the pool small; managed Postgres poolers cap connections
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	// simple protocol for transaction-mode pooler (PgBouncer) compatibility;
	// prepared statements hang connections there
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	userRepo := users.NewRepository(db)
	docRepo := documents.NewRepository(db)

	embedClient := embedder.NewClient(embedder.Config{
		APIKey:            cfg.OpenAIKey,
		Model:             cfg.EmbedModel,
		RequestsPerSecond: embedderRequestsPerSecond,
	})

	uploads, err := objstore.New(cfg.S3, cfg.UploadDir)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize upload storage: %w", err)
	}

	services := &Services{
		Embedder: embedClient,
		Search:   search.NewEngine(embedClient, docRepo),
		Ingest:   ingest.NewService(embedClient, docRepo),
		Uploads:  uploads,
	}

	router := gin.Default()

	server := &Server{
		db:       db,
		config:   cfg,
		userRepo: userRepo,
		docRepo:  docRepo,
		services: services,
		router:   router,
	}

	RegisterRoutes(router, server)

	return server, nil
}
