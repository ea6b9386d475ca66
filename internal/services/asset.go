package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/signbridge/signbridge-backend/internal/platform/apierr"
	"github.com/signbridge/signbridge-backend/internal/platform/logger"
	"github.com/signbridge/signbridge-backend/internal/platform/s3"
	"github.com/signbridge/signbridge-backend/internal/repos"
	"github.com/signbridge/signbridge-backend/internal/types"
)

// AssetService owns the registry side of animation assets. Deleting an asset
// removes both the row and, when requested, the backing blob as one logical
// operation: the row delete runs inside a transaction that only commits after
// the blob is gone, so a storage failure leaves the registry untouched.
type AssetService interface {
	Get(ctx context.Context, id int64) (*types.AnimationAsset, error)
	List(ctx context.Context, limit, offset int) ([]*types.AnimationAsset, error)
	Delete(ctx context.Context, id int64, deleteFile bool) error
}

type assetService struct {
	db        *gorm.DB
	log       *logger.Logger
	store     s3.ObjectStore
	assetRepo repos.AssetRepo
}

func NewAssetService(
	db *gorm.DB,
	baseLog *logger.Logger,
	store s3.ObjectStore,
	assetRepo repos.AssetRepo,
) AssetService {
	return &assetService{
		db:        db,
		log:       baseLog.With("service", "AssetService"),
		store:     store,
		assetRepo: assetRepo,
	}
}

func (as *assetService) Get(ctx context.Context, id int64) (*types.AnimationAsset, error) {
	asset, err := as.assetRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, apierr.Internal(fmt.Errorf("load asset %d: %w", id, err))
	}
	if asset == nil {
		return nil, apierr.NotFound(fmt.Errorf("asset %d not found", id))
	}
	return asset, nil
}

func (as *assetService) List(ctx context.Context, limit, offset int) ([]*types.AnimationAsset, error) {
	if limit < 1 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	assets, err := as.assetRepo.List(ctx, nil, limit, offset)
	if err != nil {
		return nil, apierr.Internal(fmt.Errorf("list assets: %w", err))
	}
	return assets, nil
}

func (as *assetService) Delete(ctx context.Context, id int64, deleteFile bool) error {
	err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		asset, err := as.assetRepo.GetByID(ctx, tx, id)
		if err != nil {
			return apierr.Internal(fmt.Errorf("load asset %d: %w", id, err))
		}
		if asset == nil {
			return apierr.NotFound(fmt.Errorf("asset %d not found", id))
		}

		deleted, err := as.assetRepo.DeleteIfUnreferenced(ctx, tx, id)
		if err != nil {
			return apierr.Internal(fmt.Errorf("delete asset %d: %w", id, err))
		}
		if !deleted {
			refs, countErr := as.assetRepo.CountVariantRefs(ctx, tx, id)
			if countErr != nil {
				refs = -1
			}
			return apierr.Conflict(fmt.Errorf("asset %d is referenced by sign variants", id)).
				WithDetail("variant_refs", refs)
		}

		if deleteFile && asset.FileKey != "" {
			if delErr := as.store.Delete(ctx, asset.FileKey); delErr != nil && !errors.Is(delErr, s3.ErrObjectNotFound) {
				// Returning the error rolls the row delete back, keeping the
				// registry and the bucket consistent.
				return apierr.StorageUnavailable(fmt.Errorf("delete blob %s: %w", asset.FileKey, delErr)).
					WithDetail("file_key", asset.FileKey)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	as.log.Info("asset deleted", "asset_id", id, "with_file", deleteFile)
	return nil
}
