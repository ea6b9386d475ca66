package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/signbridge/signbridge-backend/internal/platform/logger"
	"github.com/signbridge/signbridge-backend/internal/types"
)

type AssetRepo interface {
	Create(ctx context.Context, tx *gorm.DB, asset *types.AnimationAsset) error
	GetByID(ctx context.Context, tx *gorm.DB, id int64) (*types.AnimationAsset, error)
	GetByHash(ctx context.Context, tx *gorm.DB, hash string) (*types.AnimationAsset, error)
	List(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*types.AnimationAsset, error)
	CountVariantRefs(ctx context.Context, tx *gorm.DB, assetID int64) (int64, error)
	DeleteIfUnreferenced(ctx context.Context, tx *gorm.DB, assetID int64) (bool, error)
}

type assetRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAssetRepo(db *gorm.DB, baseLog *logger.Logger) AssetRepo {
	return &assetRepo{db: db, log: baseLog.With("repo", "AssetRepo")}
}

func (r *assetRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *assetRepo) Create(ctx context.Context, tx *gorm.DB, asset *types.AnimationAsset) error {
	return r.handle(tx).WithContext(ctx).Create(asset).Error
}

func (r *assetRepo) GetByID(ctx context.Context, tx *gorm.DB, id int64) (*types.AnimationAsset, error) {
	var asset types.AnimationAsset
	err := r.handle(tx).WithContext(ctx).First(&asset, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *assetRepo) GetByHash(ctx context.Context, tx *gorm.DB, hash string) (*types.AnimationAsset, error) {
	var asset types.AnimationAsset
	err := r.handle(tx).WithContext(ctx).First(&asset, "content_hash = ?", hash).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *assetRepo) List(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*types.AnimationAsset, error) {
	var assets []*types.AnimationAsset
	q := r.handle(tx).WithContext(ctx).Order("created_at DESC").Offset(offset)
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

func (r *assetRepo) CountVariantRefs(ctx context.Context, tx *gorm.DB, assetID int64) (int64, error) {
	var count int64
	err := r.handle(tx).WithContext(ctx).
		Model(&types.SignVariant{}).
		Where("asset_id = ?", assetID).
		Count(&count).Error
	return count, err
}

// DeleteIfUnreferenced removes the asset row only while no variant references
// it, in a single statement so the reference check cannot go stale between a
// read and the delete. Returns false when the row survived (still referenced
// or already gone).
func (r *assetRepo) DeleteIfUnreferenced(ctx context.Context, tx *gorm.DB, assetID int64) (bool, error) {
	res := r.handle(tx).WithContext(ctx).
		Where("id = ?", assetID).
		Where("NOT EXISTS (SELECT 1 FROM sign_variants WHERE sign_variants.asset_id = ?)", assetID).
		Delete(&types.AnimationAsset{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
