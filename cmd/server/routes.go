package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/timearchive/server/api/rest/admin"
	"github.com/timearchive/server/api/rest/auth"
	"github.com/timearchive/server/api/rest/documents"
	"github.com/timearchive/server/api/rest/health"
	"github.com/timearchive/server/api/rest/search"
	"github.com/timearchive/server/internal/config"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(corsMiddleware(server.config))
	router.GET("/health", health.Handler)

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		documents.RegisterRoutes(v1, server.docRepo, server.services.Ingest, server.services.Uploads)
		admin.RegisterRoutes(v1, server.docRepo, server.userRepo)

		// auth and search hit bcrypt and the embedding provider; throttle per client IP
		limited := v1.Group("")
		limited.Use(rateLimitMiddleware("30-M"))
		{
			auth.RegisterRoutes(limited, server.userRepo)
			search.RegisterRoutes(limited, server.services.Search)
		}
	}
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")

	if cfg.IsProduction() {
		corsConfig.AllowOriginFunc = func(origin string) bool {
			return origin == "https://timearchive.dev" || origin == "https://www.timearchive.dev"
		}
	} else {
		corsConfig.AllowAllOrigins = true
	}

	return cors.New(corsConfig)
}

// per-IP rate limit backed by an in-memory store; format is "<count>-<period>"
func rateLimitMiddleware(format string) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(format)
	if err != nil {
		panic(err)
	}

	store := memorystore.NewStore()
	return mgin.NewMiddleware(limiter.New(store, rate))
}
