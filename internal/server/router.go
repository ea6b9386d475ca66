package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/signbridge/signbridge-backend/internal/handlers"
	"github.com/signbridge/signbridge-backend/internal/middleware"
	"github.com/signbridge/signbridge-backend/internal/services"
)

type RouterConfig struct {
	AuthService     services.AuthService
	HealthHandler   *handlers.HealthHandler
	AuthHandler     *handlers.AuthHandler
	FileHandler     *handlers.FileHandler
	AssetHandler    *handlers.AssetHandler
	GlossHandler    *handlers.GlossHandler
	LanguageHandler *handlers.LanguageHandler
	VariantHandler  *handlers.VariantHandler
	SearchHandler   *handlers.SearchHandler
	AllowOrigins    []string
}

// NewRouter wires all routes. Reads are public so viewer frontends need no
// auth; every mutation sits behind the bearer token.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/health", cfg.HealthHandler.Health)
	router.GET("/health/ready", cfg.HealthHandler.Ready)

	api := router.Group("/api/v1")
	api.POST("/auth/login", cfg.AuthHandler.Login)

	// Public reads
	files := api.Group("/files")
	files.GET("", cfg.FileHandler.List)
	files.GET("/download", cfg.FileHandler.Download)
	files.GET("/metadata", cfg.FileHandler.Metadata)

	cms := api.Group("/cms")
	cms.GET("/search", cfg.SearchHandler.Search)
	cms.GET("/assets", cfg.AssetHandler.List)
	cms.GET("/assets/:id", cfg.AssetHandler.Get)
	cms.GET("/glosses", cfg.GlossHandler.List)
	cms.GET("/glosses/:id", cfg.GlossHandler.Get)
	cms.GET("/languages", cfg.LanguageHandler.List)
	cms.GET("/languages/:code", cfg.LanguageHandler.Get)
	cms.GET("/variants", cfg.VariantHandler.List)
	cms.GET("/variants/:id", cfg.VariantHandler.Get)

	// Protected mutations
	auth := middleware.RequireAuth(cfg.AuthService)

	filesMut := api.Group("/files", auth)
	filesMut.POST("/upload", cfg.FileHandler.Upload)
	filesMut.POST("/presigned-url", cfg.FileHandler.PresignedURL)
	filesMut.DELETE("/delete", cfg.FileHandler.Delete)

	cmsMut := api.Group("/cms", auth)
	cmsMut.DELETE("/assets/:id", cfg.AssetHandler.Delete)
	cmsMut.POST("/glosses", cfg.GlossHandler.Create)
	cmsMut.PUT("/glosses/:id", cfg.GlossHandler.Update)
	cmsMut.DELETE("/glosses/:id", cfg.GlossHandler.Delete)
	cmsMut.POST("/languages", cfg.LanguageHandler.Create)
	cmsMut.PUT("/languages/:code", cfg.LanguageHandler.Update)
	cmsMut.DELETE("/languages/:code", cfg.LanguageHandler.Delete)
	cmsMut.POST("/variants", cfg.VariantHandler.Create)
	cmsMut.PUT("/variants/:id", cfg.VariantHandler.Update)
	cmsMut.DELETE("/variants/:id", cfg.VariantHandler.Delete)

	return router
}
