package services

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/signbridge/signbridge-backend/internal/platform/apierr"
	"github.com/signbridge/signbridge-backend/internal/platform/logger"
	"github.com/signbridge/signbridge-backend/internal/platform/s3"
	"github.com/signbridge/signbridge-backend/internal/repos"
	"github.com/signbridge/signbridge-backend/internal/types"
	"github.com/signbridge/signbridge-backend/internal/utils"
	"github.com/signbridge/signbridge-backend/internal/vrma"
)

type UploadConfig struct {
	MaxFileSizeBytes  int64
	AllowedExtensions []string
	KeyPrefix         string
}

type UploadInput struct {
	Filename      string
	ContentType   string
	Content       []byte
	TransitionIn  string
	TransitionOut string
}

type UploadResult struct {
	Asset *types.AnimationAsset `json:"asset"`
	// Deduplicated is true when the uploaded bytes matched an existing
	// asset's content hash and no new blob or row was created.
	Deduplicated bool `json:"deduplicated"`
}

// UploadService runs the server half of the upload-and-link workflow: store
// the blob, then register (or resolve by content hash) the asset row. The
// object store and the database share no transaction coordinator, so the
// second step compensates the first on failure: if the asset row cannot be
// written after the blob landed, the blob is deleted again, and only when
// that cleanup also fails does the caller see a partial-failure error naming
// the orphaned key.
type UploadService interface {
	Upload(ctx context.Context, input UploadInput) (*UploadResult, error)
}

type uploadService struct {
	db        *gorm.DB
	log       *logger.Logger
	store     s3.ObjectStore
	assetRepo repos.AssetRepo
	cfg       UploadConfig
}

func NewUploadService(
	db *gorm.DB,
	baseLog *logger.Logger,
	store s3.ObjectStore,
	assetRepo repos.AssetRepo,
	cfg UploadConfig,
) UploadService {
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "uploads"
	}
	return &uploadService{
		db:        db,
		log:       baseLog.With("service", "UploadService"),
		store:     store,
		assetRepo: assetRepo,
		cfg:       cfg,
	}
}

var animationExtensions = map[string]bool{
	".vrma": true,
	".glb":  true,
	".gltf": true,
}

func (us *uploadService) Upload(ctx context.Context, input UploadInput) (*UploadResult, error) {
	// Policy checks happen before any side effect.
	if !utils.ValidateFileExtension(input.Filename, us.cfg.AllowedExtensions) {
		return nil, apierr.Validation(fmt.Errorf(
			"file type not allowed, allowed types: %s", strings.Join(us.cfg.AllowedExtensions, ", "),
		))
	}
	if !utils.ValidateFileSize(int64(len(input.Content)), us.cfg.MaxFileSizeBytes) {
		return nil, apierr.Validation(fmt.Errorf(
			"file too large, maximum size: %d bytes", us.cfg.MaxFileSizeBytes,
		))
	}
	if len(input.Content) == 0 {
		return nil, apierr.Validation(fmt.Errorf("empty file"))
	}

	sum := md5.Sum(input.Content)
	hash := hex.EncodeToString(sum[:])

	// Dedup fast path: identical bytes resolve to the existing row without
	// touching the bucket.
	existing, err := us.assetRepo.GetByHash(ctx, nil, hash)
	if err != nil {
		return nil, apierr.Internal(fmt.Errorf("look up asset by hash: %w", err))
	}
	if existing != nil {
		us.log.Info("upload deduplicated by content hash", "asset_id", existing.ID, "hash", hash)
		return &UploadResult{Asset: existing, Deduplicated: true}, nil
	}

	asset := &types.AnimationAsset{
		ContentHash: hash,
	}
	ext := strings.ToLower(filepath.Ext(input.Filename))
	if animationExtensions[ext] {
		meta, metaErr := vrma.ExtractMetadata(input.Content)
		if metaErr != nil {
			us.log.Warn("animation metadata extraction failed", "filename", input.Filename, "error", metaErr)
		}
		asset.Duration = &meta.Duration
		asset.Framerate = &meta.Framerate
		asset.FrameCount = &meta.FrameCount
	}
	if t := strings.TrimSpace(input.TransitionIn); t != "" {
		asset.TransitionIn = &t
	}
	if t := strings.TrimSpace(input.TransitionOut); t != "" {
		asset.TransitionOut = &t
	}

	key := fmt.Sprintf("%s/%s/%s%s", us.cfg.KeyPrefix, time.Now().UTC().Format("2006/01/02"), uuid.New().String(), ext)
	url, err := us.store.Upload(ctx, key, input.ContentType, bytes.NewReader(input.Content))
	if err != nil {
		// Nothing persisted yet: the uploader aborts incomplete multipart
		// uploads itself.
		return nil, apierr.StorageUnavailable(fmt.Errorf("store blob: %w", err)).
			WithDetail("failed_step", "blob_upload")
	}
	asset.FileKey = key
	asset.FileURL = url

	if err := us.assetRepo.Create(ctx, nil, asset); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return us.resolveHashRace(ctx, key, hash)
		}
		return nil, us.compensateBlob(ctx, key, fmt.Errorf("register asset: %w", err))
	}

	us.log.Info("asset registered", "asset_id", asset.ID, "key", key, "hash", hash)
	return &UploadResult{Asset: asset}, nil
}

// resolveHashRace handles two concurrent uploads of identical bytes: the
// loser's insert hits the unique hash constraint, deletes its own blob and
// returns the winner's row.
func (us *uploadService) resolveHashRace(ctx context.Context, key, hash string) (*UploadResult, error) {
	existing, err := us.assetRepo.GetByHash(ctx, nil, hash)
	if err != nil || existing == nil {
		return nil, us.compensateBlob(ctx, key, fmt.Errorf("resolve duplicate hash %s: %w", hash, err))
	}
	if delErr := us.store.Delete(ctx, key); delErr != nil && !errors.Is(delErr, s3.ErrObjectNotFound) {
		// The registry stayed consistent, so the duplicate blob is only an
		// orphan to clean up, not a failed upload.
		us.log.Error("orphaned duplicate blob needs manual cleanup", "key", key, "error", delErr)
	}
	us.log.Info("concurrent upload resolved to existing asset", "asset_id", existing.ID, "hash", hash)
	return &UploadResult{Asset: existing, Deduplicated: true}, nil
}

// compensateBlob deletes the already-stored blob after a later step failed.
// If the cleanup succeeds the caller reports a plain failure; if it fails
// too, the error escalates to a partial failure naming the orphaned key.
func (us *uploadService) compensateBlob(ctx context.Context, key string, cause error) error {
	if delErr := us.store.Delete(ctx, key); delErr != nil && !errors.Is(delErr, s3.ErrObjectNotFound) {
		us.log.Error("compensating blob delete failed", "key", key, "cause", cause, "error", delErr)
		return apierr.PartialFailure(fmt.Errorf("%v; blob cleanup also failed: %w", cause, delErr)).
			WithDetail("failed_step", "asset_register").
			WithDetail("orphaned_key", key)
	}
	us.log.Warn("upload rolled back after registry failure", "key", key, "error", cause)
	return apierr.Internal(cause).WithDetail("failed_step", "asset_register")
}
