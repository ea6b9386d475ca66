package services

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/signbridge/signbridge-backend/internal/platform/apierr"
)

func TestFileServiceRoundTrip(t *testing.T) {
	store := newFakeStore()
	svc := NewFileService(newTestLogger(), store)
	ctx := context.Background()

	store.objects["uploads/a.bin"] = []byte("payload")

	body, err := svc.Download(ctx, "uploads/a.bin")
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	data, _ := io.ReadAll(body)
	body.Close()
	if string(data) != "payload" {
		t.Fatalf("payload: want=payload got=%q", data)
	}

	info, err := svc.Metadata(ctx, "uploads/a.bin")
	if err != nil {
		t.Fatalf("Metadata: %v", err)
	}
	if info.Size != int64(len("payload")) {
		t.Fatalf("size: want=%d got=%d", len("payload"), info.Size)
	}

	if err := svc.Delete(ctx, "uploads/a.bin"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Download(ctx, "uploads/a.bin"); apierr.From(err).Code != apierr.CodeNotFound {
		t.Fatalf("want not_found after delete, got %v", err)
	}
}

func TestFileServiceMissingKey(t *testing.T) {
	svc := NewFileService(newTestLogger(), newFakeStore())
	ctx := context.Background()

	if _, err := svc.Download(ctx, "missing"); apierr.From(err).Code != apierr.CodeNotFound {
		t.Fatalf("Download: want not_found, got %v", err)
	}
	if _, err := svc.Metadata(ctx, ""); apierr.From(err).Code != apierr.CodeValidation {
		t.Fatalf("Metadata empty key: want validation_error, got %v", err)
	}
}

func TestFileServicePresignExpiryBounds(t *testing.T) {
	store := newFakeStore()
	store.objects["k"] = []byte("x")
	svc := NewFileService(newTestLogger(), store)
	ctx := context.Background()

	if _, err := svc.Presign(ctx, "k", "GET", 10*time.Second); apierr.From(err).Code != apierr.CodeValidation {
		t.Fatalf("below minimum: want validation_error, got %v", err)
	}
	if _, err := svc.Presign(ctx, "k", "GET", 8*24*time.Hour); apierr.From(err).Code != apierr.CodeValidation {
		t.Fatalf("above maximum: want validation_error, got %v", err)
	}
	url, err := svc.Presign(ctx, "k", "GET", time.Hour)
	if err != nil {
		t.Fatalf("Presign: %v", err)
	}
	if url == "" {
		t.Fatalf("empty presigned url")
	}
}
