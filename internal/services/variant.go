package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/signbridge/signbridge-backend/internal/platform/apierr"
	"github.com/signbridge/signbridge-backend/internal/platform/logger"
	"github.com/signbridge/signbridge-backend/internal/platform/s3"
	"github.com/signbridge/signbridge-backend/internal/repos"
	"github.com/signbridge/signbridge-backend/internal/types"
)

type VariantCreateInput struct {
	GlossID    int64  `json:"gloss_id"`
	AssetID    int64  `json:"asset_id"`
	LanguageID string `json:"language_id"`
	Emotion    string `json:"emotion"`
	Type       string `json:"type"`
	Priority   *int   `json:"priority"`
}

type VariantUpdateInput struct {
	Emotion  *string `json:"emotion"`
	Type     *string `json:"type"`
	Priority *int    `json:"priority"`
}

// VariantService manages the links between glosses, languages and animation
// assets. Creation verifies all three referenced rows exist up front so a
// broken link reads as a 404 naming the missing side, not a bare foreign key
// violation.
type VariantService interface {
	Create(ctx context.Context, input VariantCreateInput) (*types.SignVariant, error)
	Get(ctx context.Context, id int64) (*types.SignVariant, error)
	List(ctx context.Context, glossID *int64, languageID string, limit, offset int) ([]*types.SignVariant, error)
	Update(ctx context.Context, id int64, input VariantUpdateInput) (*types.SignVariant, error)
	Delete(ctx context.Context, id int64, deleteFile bool) error
}

type variantService struct {
	db           *gorm.DB
	log          *logger.Logger
	store        s3.ObjectStore
	variantRepo  repos.VariantRepo
	glossRepo    repos.GlossRepo
	assetRepo    repos.AssetRepo
	languageRepo repos.LanguageRepo
}

func NewVariantService(
	db *gorm.DB,
	baseLog *logger.Logger,
	store s3.ObjectStore,
	variantRepo repos.VariantRepo,
	glossRepo repos.GlossRepo,
	assetRepo repos.AssetRepo,
	languageRepo repos.LanguageRepo,
) VariantService {
	return &variantService{
		db:           db,
		log:          baseLog.With("service", "VariantService"),
		store:        store,
		variantRepo:  variantRepo,
		glossRepo:    glossRepo,
		assetRepo:    assetRepo,
		languageRepo: languageRepo,
	}
}

func validatePriority(p int) error {
	if p < 0 || p > 100 {
		return apierr.Validation(fmt.Errorf("priority must be between 0 and 100, got %d", p))
	}
	return nil
}

func (vs *variantService) Create(ctx context.Context, input VariantCreateInput) (*types.SignVariant, error) {
	variant := &types.SignVariant{
		GlossID:    input.GlossID,
		AssetID:    input.AssetID,
		LanguageID: strings.TrimSpace(input.LanguageID),
		Emotion:    types.EmotionNeutral,
		Type:       types.VariantTypeLexical,
		Priority:   50,
	}
	if input.Emotion != "" {
		variant.Emotion = types.Emotion(input.Emotion)
		if !variant.Emotion.Valid() {
			return nil, apierr.Validation(fmt.Errorf("invalid emotion %q", input.Emotion))
		}
	}
	if input.Type != "" {
		variant.Type = types.VariantType(input.Type)
		if !variant.Type.Valid() {
			return nil, apierr.Validation(fmt.Errorf("invalid variant type %q", input.Type))
		}
	}
	if input.Priority != nil {
		if err := validatePriority(*input.Priority); err != nil {
			return nil, err
		}
		variant.Priority = *input.Priority
	}
	if variant.LanguageID == "" {
		return nil, apierr.Validation(fmt.Errorf("language_id is required"))
	}

	if err := vs.checkReferences(ctx, variant); err != nil {
		return nil, err
	}
	if err := vs.variantRepo.Create(ctx, nil, variant); err != nil {
		return nil, apierr.Internal(fmt.Errorf("create variant: %w", err))
	}
	vs.log.Info("variant created",
		"variant_id", variant.ID,
		"gloss_id", variant.GlossID,
		"asset_id", variant.AssetID,
		"language_id", variant.LanguageID,
	)
	return vs.Get(ctx, variant.ID)
}

func (vs *variantService) checkReferences(ctx context.Context, variant *types.SignVariant) error {
	gloss, err := vs.glossRepo.GetByID(ctx, nil, variant.GlossID)
	if err != nil {
		return apierr.Internal(fmt.Errorf("load gloss %d: %w", variant.GlossID, err))
	}
	if gloss == nil {
		return apierr.NotFound(fmt.Errorf("gloss %d not found", variant.GlossID))
	}
	asset, err := vs.assetRepo.GetByID(ctx, nil, variant.AssetID)
	if err != nil {
		return apierr.Internal(fmt.Errorf("load asset %d: %w", variant.AssetID, err))
	}
	if asset == nil {
		return apierr.NotFound(fmt.Errorf("asset %d not found", variant.AssetID))
	}
	lang, err := vs.languageRepo.GetByCode(ctx, nil, variant.LanguageID)
	if err != nil {
		return apierr.Internal(fmt.Errorf("load language %q: %w", variant.LanguageID, err))
	}
	if lang == nil {
		return apierr.NotFound(fmt.Errorf("language %q not found", variant.LanguageID))
	}
	return nil
}

func (vs *variantService) Get(ctx context.Context, id int64) (*types.SignVariant, error) {
	variant, err := vs.variantRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, apierr.Internal(fmt.Errorf("load variant %d: %w", id, err))
	}
	if variant == nil {
		return nil, apierr.NotFound(fmt.Errorf("variant %d not found", id))
	}
	return variant, nil
}

func (vs *variantService) List(ctx context.Context, glossID *int64, languageID string, limit, offset int) ([]*types.SignVariant, error) {
	if limit < 1 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	variants, err := vs.variantRepo.List(ctx, nil, glossID, languageID, limit, offset)
	if err != nil {
		return nil, apierr.Internal(fmt.Errorf("list variants: %w", err))
	}
	return variants, nil
}

func (vs *variantService) Update(ctx context.Context, id int64, input VariantUpdateInput) (*types.SignVariant, error) {
	variant, err := vs.variantRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, apierr.Internal(fmt.Errorf("load variant %d: %w", id, err))
	}
	if variant == nil {
		return nil, apierr.NotFound(fmt.Errorf("variant %d not found", id))
	}

	if input.Emotion != nil {
		emotion := types.Emotion(*input.Emotion)
		if !emotion.Valid() {
			return nil, apierr.Validation(fmt.Errorf("invalid emotion %q", *input.Emotion))
		}
		variant.Emotion = emotion
	}
	if input.Type != nil {
		vtype := types.VariantType(*input.Type)
		if !vtype.Valid() {
			return nil, apierr.Validation(fmt.Errorf("invalid variant type %q", *input.Type))
		}
		variant.Type = vtype
	}
	if input.Priority != nil {
		if err := validatePriority(*input.Priority); err != nil {
			return nil, err
		}
		variant.Priority = *input.Priority
	}
	if err := vs.variantRepo.Update(ctx, nil, variant); err != nil {
		return nil, apierr.Internal(fmt.Errorf("update variant %d: %w", id, err))
	}
	return variant, nil
}

// Delete removes the variant and, when deleteFile is set, also the backing
// asset and blob provided no other variant still references the asset. The
// row deletes share a transaction with the blob delete so storage failure
// rolls everything back.
func (vs *variantService) Delete(ctx context.Context, id int64, deleteFile bool) error {
	err := vs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		variant, err := vs.variantRepo.GetByID(ctx, tx, id)
		if err != nil {
			return apierr.Internal(fmt.Errorf("load variant %d: %w", id, err))
		}
		if variant == nil {
			return apierr.NotFound(fmt.Errorf("variant %d not found", id))
		}
		asset, err := vs.assetRepo.GetByID(ctx, tx, variant.AssetID)
		if err != nil {
			return apierr.Internal(fmt.Errorf("load asset %d: %w", variant.AssetID, err))
		}

		if err := vs.variantRepo.Delete(ctx, tx, id); err != nil {
			return apierr.Internal(fmt.Errorf("delete variant %d: %w", id, err))
		}

		if !deleteFile || asset == nil {
			return nil
		}
		deleted, err := vs.assetRepo.DeleteIfUnreferenced(ctx, tx, asset.ID)
		if err != nil {
			return apierr.Internal(fmt.Errorf("delete asset %d: %w", asset.ID, err))
		}
		if deleted && asset.FileKey != "" {
			if delErr := vs.store.Delete(ctx, asset.FileKey); delErr != nil && !errors.Is(delErr, s3.ErrObjectNotFound) {
				return apierr.StorageUnavailable(fmt.Errorf("delete blob %s: %w", asset.FileKey, delErr)).
					WithDetail("file_key", asset.FileKey)
			}
			vs.log.Info("asset deleted with variant", "asset_id", asset.ID, "key", asset.FileKey)
		}
		return nil
	})
	if err != nil {
		return err
	}
	vs.log.Info("variant deleted", "variant_id", id, "with_file", deleteFile)
	return nil
}
