package app

import (
	"github.com/gin-gonic/gin"

	"github.com/signbridge/signbridge-backend/internal/server"
)

func wireRouter(cfg Config, h Handlers, s Services) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		AuthService:     s.Auth,
		HealthHandler:   h.Health,
		AuthHandler:     h.Auth,
		FileHandler:     h.File,
		AssetHandler:    h.Asset,
		GlossHandler:    h.Gloss,
		LanguageHandler: h.Language,
		VariantHandler:  h.Variant,
		SearchHandler:   h.Search,
		AllowOrigins:    cfg.AllowOrigins,
	})
}
