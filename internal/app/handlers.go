package app

import (
	"github.com/signbridge/signbridge-backend/internal/handlers"
	"github.com/signbridge/signbridge-backend/internal/platform/logger"
	"github.com/signbridge/signbridge-backend/internal/platform/s3"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	Auth     *handlers.AuthHandler
	File     *handlers.FileHandler
	Asset    *handlers.AssetHandler
	Gloss    *handlers.GlossHandler
	Language *handlers.LanguageHandler
	Variant  *handlers.VariantHandler
	Search   *handlers.SearchHandler
}

func wireHandlers(log *logger.Logger, cfg Config, store s3.ObjectStore, s Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   handlers.NewHealthHandler(store),
		Auth:     handlers.NewAuthHandler(s.Auth),
		File:     handlers.NewFileHandler(log, s.File, s.Upload, cfg.PresignExpiry),
		Asset:    handlers.NewAssetHandler(s.Asset),
		Gloss:    handlers.NewGlossHandler(s.Gloss),
		Language: handlers.NewLanguageHandler(s.Language),
		Variant:  handlers.NewVariantHandler(s.Variant),
		Search:   handlers.NewSearchHandler(s.Search),
	}
}
