package app

import (
	"gorm.io/gorm"

	"github.com/signbridge/signbridge-backend/internal/platform/logger"
	"github.com/signbridge/signbridge-backend/internal/platform/s3"
	"github.com/signbridge/signbridge-backend/internal/services"
)

type Services struct {
	Auth     services.AuthService
	File     services.FileService
	Upload   services.UploadService
	Asset    services.AssetService
	Gloss    services.GlossService
	Language services.LanguageService
	Variant  services.VariantService
	Search   services.SearchService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, store s3.ObjectStore, r Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Auth:     services.NewAuthService(log, cfg.Auth),
		File:     services.NewFileService(log, store),
		Upload:   services.NewUploadService(db, log, store, r.Asset, cfg.Upload),
		Asset:    services.NewAssetService(db, log, store, r.Asset),
		Gloss:    services.NewGlossService(db, log, r.Gloss),
		Language: services.NewLanguageService(db, log, r.Language),
		Variant:  services.NewVariantService(db, log, store, r.Variant, r.Gloss, r.Asset, r.Language),
		Search:   services.NewSearchService(db, log, r.Variant),
	}
}
