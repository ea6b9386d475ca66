package app

import (
	"gorm.io/gorm"

	"github.com/signbridge/signbridge-backend/internal/platform/logger"
	"github.com/signbridge/signbridge-backend/internal/repos"
)

type Repos struct {
	Asset    repos.AssetRepo
	Gloss    repos.GlossRepo
	Language repos.LanguageRepo
	Variant  repos.VariantRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Asset:    repos.NewAssetRepo(db, log),
		Gloss:    repos.NewGlossRepo(db, log),
		Language: repos.NewLanguageRepo(db, log),
		Variant:  repos.NewVariantRepo(db, log),
	}
}
