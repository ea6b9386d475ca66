package repos

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/signbridge/signbridge-backend/internal/platform/logger"
	"github.com/signbridge/signbridge-backend/internal/types"
)

type GlossRepo interface {
	Create(ctx context.Context, tx *gorm.DB, gloss *types.Gloss) error
	GetByID(ctx context.Context, tx *gorm.DB, id int64) (*types.Gloss, error)
	List(ctx context.Context, tx *gorm.DB, search string, limit, offset int) ([]*types.Gloss, error)
	Update(ctx context.Context, tx *gorm.DB, gloss *types.Gloss) error
	Delete(ctx context.Context, tx *gorm.DB, id int64) error
	CountVariantRefs(ctx context.Context, tx *gorm.DB, glossID int64) (int64, error)
}

type glossRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGlossRepo(db *gorm.DB, baseLog *logger.Logger) GlossRepo {
	return &glossRepo{db: db, log: baseLog.With("repo", "GlossRepo")}
}

func (r *glossRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *glossRepo) Create(ctx context.Context, tx *gorm.DB, gloss *types.Gloss) error {
	return r.handle(tx).WithContext(ctx).Create(gloss).Error
}

func (r *glossRepo) GetByID(ctx context.Context, tx *gorm.DB, id int64) (*types.Gloss, error) {
	var gloss types.Gloss
	err := r.handle(tx).WithContext(ctx).First(&gloss, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &gloss, nil
}

func (r *glossRepo) List(ctx context.Context, tx *gorm.DB, search string, limit, offset int) ([]*types.Gloss, error) {
	q := r.handle(tx).WithContext(ctx).Model(&types.Gloss{}).Order("name ASC").Offset(offset)
	if limit > 0 {
		q = q.Limit(limit)
	}
	if search = strings.TrimSpace(search); search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	var glosses []*types.Gloss
	if err := q.Find(&glosses).Error; err != nil {
		return nil, err
	}
	return glosses, nil
}

func (r *glossRepo) Update(ctx context.Context, tx *gorm.DB, gloss *types.Gloss) error {
	return r.handle(tx).WithContext(ctx).Save(gloss).Error
}

func (r *glossRepo) Delete(ctx context.Context, tx *gorm.DB, id int64) error {
	return r.handle(tx).WithContext(ctx).Delete(&types.Gloss{}, "id = ?", id).Error
}

func (r *glossRepo) CountVariantRefs(ctx context.Context, tx *gorm.DB, glossID int64) (int64, error) {
	var count int64
	err := r.handle(tx).WithContext(ctx).
		Model(&types.SignVariant{}).
		Where("gloss_id = ?", glossID).
		Count(&count).Error
	return count, err
}
