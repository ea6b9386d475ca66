package repos

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/signbridge/signbridge-backend/internal/platform/logger"
	"github.com/signbridge/signbridge-backend/internal/types"
)

// Sort keys accepted by Search.
const (
	SortNewest       = "newest"
	SortOldest       = "oldest"
	SortDurationAsc  = "duration_asc"
	SortDurationDesc = "duration_desc"
)

// SearchFilter is an optional, independently-combinable set of constraints
// over variants joined with gloss, language and asset. Nil/empty fields
// impose no constraint; present fields are ANDed.
type SearchFilter struct {
	Query       string
	LanguageID  string
	Emotion     string
	MinFPS      *int
	MaxFPS      *int
	MinDuration *float64
	MaxDuration *float64
	SortBy      string
	Limit       int
	Offset      int
}

type VariantRepo interface {
	Create(ctx context.Context, tx *gorm.DB, variant *types.SignVariant) error
	GetByID(ctx context.Context, tx *gorm.DB, id int64) (*types.SignVariant, error)
	List(ctx context.Context, tx *gorm.DB, glossID *int64, languageID string, limit, offset int) ([]*types.SignVariant, error)
	Update(ctx context.Context, tx *gorm.DB, variant *types.SignVariant) error
	Delete(ctx context.Context, tx *gorm.DB, id int64) error
	Search(ctx context.Context, tx *gorm.DB, filter SearchFilter) ([]*types.SignVariant, error)
}

type variantRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVariantRepo(db *gorm.DB, baseLog *logger.Logger) VariantRepo {
	return &variantRepo{db: db, log: baseLog.With("repo", "VariantRepo")}
}

func (r *variantRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *variantRepo) preloaded(tx *gorm.DB, ctx context.Context) *gorm.DB {
	return r.handle(tx).WithContext(ctx).
		Preload("Gloss").
		Preload("Language").
		Preload("Asset")
}

func (r *variantRepo) Create(ctx context.Context, tx *gorm.DB, variant *types.SignVariant) error {
	return r.handle(tx).WithContext(ctx).Create(variant).Error
}

func (r *variantRepo) GetByID(ctx context.Context, tx *gorm.DB, id int64) (*types.SignVariant, error) {
	var variant types.SignVariant
	err := r.preloaded(tx, ctx).First(&variant, "sign_variants.id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &variant, nil
}

func (r *variantRepo) List(ctx context.Context, tx *gorm.DB, glossID *int64, languageID string, limit, offset int) ([]*types.SignVariant, error) {
	q := r.preloaded(tx, ctx).Order("priority DESC").Offset(offset)
	if limit > 0 {
		q = q.Limit(limit)
	}
	if glossID != nil {
		q = q.Where("gloss_id = ?", *glossID)
	}
	if languageID != "" {
		q = q.Where("language_id = ?", languageID)
	}
	var variants []*types.SignVariant
	if err := q.Find(&variants).Error; err != nil {
		return nil, err
	}
	return variants, nil
}

func (r *variantRepo) Update(ctx context.Context, tx *gorm.DB, variant *types.SignVariant) error {
	return r.handle(tx).WithContext(ctx).Save(variant).Error
}

func (r *variantRepo) Delete(ctx context.Context, tx *gorm.DB, id int64) error {
	return r.handle(tx).WithContext(ctx).Delete(&types.SignVariant{}, "id = ?", id).Error
}

func (r *variantRepo) Search(ctx context.Context, tx *gorm.DB, filter SearchFilter) ([]*types.SignVariant, error) {
	q := r.preloaded(tx, ctx).
		Joins("JOIN glosses ON glosses.id = sign_variants.gloss_id").
		Joins("JOIN animation_assets ON animation_assets.id = sign_variants.asset_id")

	if text := strings.ToLower(strings.TrimSpace(filter.Query)); text != "" {
		pattern := "%" + text + "%"
		q = q.Where(
			"LOWER(glosses.name) LIKE ? OR LOWER(CAST(glosses.synonyms AS TEXT)) LIKE ?",
			pattern, pattern,
		)
	}
	if filter.LanguageID != "" {
		q = q.Where("sign_variants.language_id = ?", filter.LanguageID)
	}
	if filter.Emotion != "" {
		q = q.Where("sign_variants.emotion = ?", filter.Emotion)
	}
	if filter.MinFPS != nil {
		q = q.Where("animation_assets.framerate >= ?", *filter.MinFPS)
	}
	if filter.MaxFPS != nil {
		q = q.Where("animation_assets.framerate <= ?", *filter.MaxFPS)
	}
	if filter.MinDuration != nil {
		q = q.Where("animation_assets.duration >= ?", *filter.MinDuration)
	}
	if filter.MaxDuration != nil {
		q = q.Where("animation_assets.duration <= ?", *filter.MaxDuration)
	}

	switch filter.SortBy {
	case SortNewest:
		q = q.Order("sign_variants.created_at DESC")
	case SortOldest:
		q = q.Order("sign_variants.created_at ASC")
	case SortDurationAsc:
		q = q.Order("animation_assets.duration ASC")
	case SortDurationDesc:
		q = q.Order("animation_assets.duration DESC")
	default:
		q = q.Order("sign_variants.priority DESC").Order("glosses.name ASC")
	}

	q = q.Offset(filter.Offset)
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var variants []*types.SignVariant
	if err := q.Find(&variants).Error; err != nil {
		return nil, err
	}
	return variants, nil
}
