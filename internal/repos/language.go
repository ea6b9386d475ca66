package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/signbridge/signbridge-backend/internal/platform/logger"
	"github.com/signbridge/signbridge-backend/internal/types"
)

type LanguageRepo interface {
	Create(ctx context.Context, tx *gorm.DB, lang *types.SignLanguage) error
	GetByCode(ctx context.Context, tx *gorm.DB, code string) (*types.SignLanguage, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.SignLanguage, error)
	UpdateName(ctx context.Context, tx *gorm.DB, code, name string) error
	Delete(ctx context.Context, tx *gorm.DB, code string) error
	CountVariantRefs(ctx context.Context, tx *gorm.DB, code string) (int64, error)
}

type languageRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLanguageRepo(db *gorm.DB, baseLog *logger.Logger) LanguageRepo {
	return &languageRepo{db: db, log: baseLog.With("repo", "LanguageRepo")}
}

func (r *languageRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *languageRepo) Create(ctx context.Context, tx *gorm.DB, lang *types.SignLanguage) error {
	return r.handle(tx).WithContext(ctx).Create(lang).Error
}

func (r *languageRepo) GetByCode(ctx context.Context, tx *gorm.DB, code string) (*types.SignLanguage, error) {
	var lang types.SignLanguage
	err := r.handle(tx).WithContext(ctx).First(&lang, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lang, nil
}

func (r *languageRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.SignLanguage, error) {
	var langs []*types.SignLanguage
	if err := r.handle(tx).WithContext(ctx).Order("code ASC").Find(&langs).Error; err != nil {
		return nil, err
	}
	return langs, nil
}

func (r *languageRepo) UpdateName(ctx context.Context, tx *gorm.DB, code, name string) error {
	return r.handle(tx).WithContext(ctx).
		Model(&types.SignLanguage{}).
		Where("code = ?", code).
		Update("name", name).Error
}

func (r *languageRepo) Delete(ctx context.Context, tx *gorm.DB, code string) error {
	return r.handle(tx).WithContext(ctx).Delete(&types.SignLanguage{}, "code = ?", code).Error
}

func (r *languageRepo) CountVariantRefs(ctx context.Context, tx *gorm.DB, code string) (int64, error) {
	var count int64
	err := r.handle(tx).WithContext(ctx).
		Model(&types.SignVariant{}).
		Where("language_id = ?", code).
		Count(&count).Error
	return count, err
}
