package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/signbridge/signbridge-backend/internal/platform/apierr"
	"github.com/signbridge/signbridge-backend/internal/platform/logger"
	"github.com/signbridge/signbridge-backend/internal/platform/s3"
)

const (
	minPresignExpiry = 60 * time.Second
	maxPresignExpiry = 7 * 24 * time.Hour
)

// FileService exposes the raw blob operations of the object store to the
// HTTP layer: listing, download, metadata, deletion and presigned URLs.
// Asset bookkeeping lives in UploadService / AssetService, not here.
type FileService interface {
	List(ctx context.Context, prefix string, maxKeys int32, continuationToken string) (*s3.ListResult, error)
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Metadata(ctx context.Context, key string) (*s3.ObjectInfo, error)
	Delete(ctx context.Context, key string) error
	Presign(ctx context.Context, key, method string, expiry time.Duration) (string, error)
}

type fileService struct {
	log   *logger.Logger
	store s3.ObjectStore
}

func NewFileService(baseLog *logger.Logger, store s3.ObjectStore) FileService {
	return &fileService{log: baseLog.With("service", "FileService"), store: store}
}

func (fs *fileService) List(ctx context.Context, prefix string, maxKeys int32, continuationToken string) (*s3.ListResult, error) {
	if maxKeys < 1 {
		maxKeys = 100
	}
	if maxKeys > 1000 {
		maxKeys = 1000
	}
	result, err := fs.store.List(ctx, prefix, maxKeys, continuationToken)
	if err != nil {
		return nil, apierr.StorageUnavailable(err)
	}
	return result, nil
}

func (fs *fileService) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	if key == "" {
		return nil, apierr.Validation(fmt.Errorf("file_key is required"))
	}
	body, err := fs.store.Download(ctx, key)
	if err != nil {
		if errors.Is(err, s3.ErrObjectNotFound) {
			return nil, apierr.NotFound(err)
		}
		return nil, apierr.StorageUnavailable(err)
	}
	return body, nil
}

func (fs *fileService) Metadata(ctx context.Context, key string) (*s3.ObjectInfo, error) {
	if key == "" {
		return nil, apierr.Validation(fmt.Errorf("file_key is required"))
	}
	info, err := fs.store.Head(ctx, key)
	if err != nil {
		if errors.Is(err, s3.ErrObjectNotFound) {
			return nil, apierr.NotFound(err)
		}
		return nil, apierr.StorageUnavailable(err)
	}
	return info, nil
}

func (fs *fileService) Delete(ctx context.Context, key string) error {
	if key == "" {
		return apierr.Validation(fmt.Errorf("file_key is required"))
	}
	if err := fs.store.Delete(ctx, key); err != nil {
		if errors.Is(err, s3.ErrObjectNotFound) {
			return apierr.NotFound(err)
		}
		return apierr.StorageUnavailable(err)
	}
	fs.log.Info("blob deleted", "key", key)
	return nil
}

func (fs *fileService) Presign(ctx context.Context, key, method string, expiry time.Duration) (string, error) {
	if key == "" {
		return "", apierr.Validation(fmt.Errorf("file_key is required"))
	}
	if expiry < minPresignExpiry || expiry > maxPresignExpiry {
		return "", apierr.Validation(fmt.Errorf(
			"expiration must be between %d and %d seconds",
			int(minPresignExpiry.Seconds()), int(maxPresignExpiry.Seconds()),
		))
	}
	url, err := fs.store.Presign(ctx, key, method, expiry)
	if err != nil {
		return "", apierr.StorageUnavailable(err)
	}
	return url, nil
}
