package documents

import (
	"github.com/gin-gonic/gin"
	"github.com/timearchive/server/archive/documents"
	"github.com/timearchive/server/internal/auth"
	"github.com/timearchive/server/internal/ingest"
	"github.com/timearchive/server/internal/objstore"
)

// registers document CRUD and upload routes
func RegisterRoutes(router *gin.RouterGroup, docRepo *documents.Repository, ingestSvc *ingest.Service, uploads *objstore.Store) {
	// public reads
	router.GET("/documents", ListDocumentsHandler(docRepo))
	router.GET("/documents/:id", GetDocumentHandler(docRepo))

	// writes require the editor role
	writeGroup := router.Group("/documents")
	writeGroup.Use(auth.AuthMiddleware(), auth.RequireRole(auth.RoleEditor))
	{
		writeGroup.POST("", CreateDocumentHandler(ingestSvc))
		writeGroup.POST("/upload", UploadDocumentHandler(ingestSvc, uploads))
	}
}
