package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/signbridge/signbridge-backend/internal/platform/logger"
	"github.com/signbridge/signbridge-backend/internal/platform/s3"
	"github.com/signbridge/signbridge-backend/internal/repos"
	"github.com/signbridge/signbridge-backend/internal/types"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&types.AnimationAsset{},
		&types.Gloss{},
		&types.SignLanguage{},
		&types.SignVariant{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func newTestLogger() *logger.Logger {
	return logger.NewNop()
}

// fakeStore is an in-memory ObjectStore with injectable failures.
type fakeStore struct {
	objects   map[string][]byte
	uploadErr error
	deleteErr error
	deleted   []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}}
}

func (f *fakeStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	f.objects[key] = data
	return f.PublicURL(key), nil
}

func (f *fakeStore) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	data, ok := f.objects[key]
	if !ok {
		return nil, s3.ErrObjectNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeStore) Delete(ctx context.Context, key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.objects[key]; !ok {
		return s3.ErrObjectNotFound
	}
	delete(f.objects, key)
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeStore) List(ctx context.Context, prefix string, maxKeys int32, continuationToken string) (*s3.ListResult, error) {
	var keys []string
	for k := range f.objects {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	result := &s3.ListResult{}
	for _, k := range keys {
		result.Objects = append(result.Objects, s3.ObjectInfo{
			Key:  k,
			Size: int64(len(f.objects[k])),
			URL:  f.PublicURL(k),
		})
	}
	result.Count = len(result.Objects)
	return result, nil
}

func (f *fakeStore) Head(ctx context.Context, key string) (*s3.ObjectInfo, error) {
	data, ok := f.objects[key]
	if !ok {
		return nil, s3.ErrObjectNotFound
	}
	return &s3.ObjectInfo{Key: key, Size: int64(len(data)), URL: f.PublicURL(key)}, nil
}

func (f *fakeStore) Presign(ctx context.Context, key, method string, expiry time.Duration) (string, error) {
	return f.PublicURL(key) + "?signed=1", nil
}

func (f *fakeStore) HealthCheck(ctx context.Context) error { return nil }

func (f *fakeStore) PublicURL(key string) string {
	return "http://localhost:9000/test-bucket/" + key
}

func (f *fakeStore) has(key string) bool {
	_, ok := f.objects[key]
	return ok
}

// catalog bundles the wired services and repos most tests need.
type catalog struct {
	db       *gorm.DB
	store    *fakeStore
	assets   repos.AssetRepo
	glosses  repos.GlossRepo
	langs    repos.LanguageRepo
	variants repos.VariantRepo

	upload   UploadService
	asset    AssetService
	gloss    GlossService
	language LanguageService
	variant  VariantService
	search   SearchService
}

func newCatalog(t *testing.T) *catalog {
	t.Helper()
	db := newTestDB(t)
	log := newTestLogger()
	store := newFakeStore()

	assets := repos.NewAssetRepo(db, log)
	glosses := repos.NewGlossRepo(db, log)
	langs := repos.NewLanguageRepo(db, log)
	variants := repos.NewVariantRepo(db, log)

	uploadCfg := UploadConfig{
		MaxFileSizeBytes:  10 * 1024 * 1024,
		AllowedExtensions: []string{".vrma", ".glb", ".gltf", ".bin"},
		KeyPrefix:         "uploads",
	}

	return &catalog{
		db:       db,
		store:    store,
		assets:   assets,
		glosses:  glosses,
		langs:    langs,
		variants: variants,
		upload:   NewUploadService(db, log, store, assets, uploadCfg),
		asset:    NewAssetService(db, log, store, assets),
		gloss:    NewGlossService(db, log, glosses),
		language: NewLanguageService(db, log, langs),
		variant:  NewVariantService(db, log, store, variants, glosses, assets, langs),
		search:   NewSearchService(db, log, variants),
	}
}
