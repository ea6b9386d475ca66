package services

import (
	"context"
	"testing"

	"github.com/signbridge/signbridge-backend/internal/platform/apierr"
	"github.com/signbridge/signbridge-backend/internal/types"
)

func TestVariantCreateDefaults(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()

	result, err := c.upload.Upload(ctx, uploadInput("clip.bin", "variant-defaults"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	variant := seedLinkedVariant(t, c, result.Asset.ID)

	if variant.Emotion != types.EmotionNeutral {
		t.Fatalf("emotion default: want=Neutral got=%q", variant.Emotion)
	}
	if variant.Type != types.VariantTypeLexical {
		t.Fatalf("type default: want=lexical got=%q", variant.Type)
	}
	if variant.Priority != 50 {
		t.Fatalf("priority default: want=50 got=%d", variant.Priority)
	}
	if variant.Gloss == nil || variant.Asset == nil || variant.Language == nil {
		t.Fatalf("relations not loaded: %+v", variant)
	}
}

func TestVariantCreateValidation(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()

	result, err := c.upload.Upload(ctx, uploadInput("clip.bin", "variant-validation"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if _, err := c.language.Create(ctx, LanguageInput{Code: "asl", Name: "ASL"}); err != nil {
		t.Fatalf("language: %v", err)
	}
	gloss, err := c.gloss.Create(ctx, GlossInput{Name: "hello"})
	if err != nil {
		t.Fatalf("gloss: %v", err)
	}

	bad := []VariantCreateInput{
		{GlossID: gloss.ID, AssetID: result.Asset.ID, LanguageID: "asl", Emotion: "Ecstatic"},
		{GlossID: gloss.ID, AssetID: result.Asset.ID, LanguageID: "asl", Type: "interpretive"},
	}
	for _, input := range bad {
		if _, err := c.variant.Create(ctx, input); apierr.From(err).Code != apierr.CodeValidation {
			t.Fatalf("input %+v: want validation_error, got %v", input, err)
		}
	}

	p := 101
	_, err = c.variant.Create(ctx, VariantCreateInput{
		GlossID: gloss.ID, AssetID: result.Asset.ID, LanguageID: "asl", Priority: &p,
	})
	if apierr.From(err).Code != apierr.CodeValidation {
		t.Fatalf("priority out of range: want validation_error, got %v", err)
	}
}

func TestVariantCreateMissingReferences(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()

	result, err := c.upload.Upload(ctx, uploadInput("clip.bin", "variant-refs"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if _, err := c.language.Create(ctx, LanguageInput{Code: "asl", Name: "ASL"}); err != nil {
		t.Fatalf("language: %v", err)
	}
	gloss, err := c.gloss.Create(ctx, GlossInput{Name: "hello"})
	if err != nil {
		t.Fatalf("gloss: %v", err)
	}

	cases := []VariantCreateInput{
		{GlossID: 9999, AssetID: result.Asset.ID, LanguageID: "asl"},
		{GlossID: gloss.ID, AssetID: 9999, LanguageID: "asl"},
		{GlossID: gloss.ID, AssetID: result.Asset.ID, LanguageID: "xx"},
	}
	for _, input := range cases {
		if _, err := c.variant.Create(ctx, input); apierr.From(err).Code != apierr.CodeNotFound {
			t.Fatalf("input %+v: want not_found, got %v", input, err)
		}
	}
}

func TestVariantUpdate(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()

	result, err := c.upload.Upload(ctx, uploadInput("clip.bin", "variant-update"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	variant := seedLinkedVariant(t, c, result.Asset.ID)

	emotion := "Happy"
	priority := 90
	updated, err := c.variant.Update(ctx, variant.ID, VariantUpdateInput{
		Emotion: &emotion, Priority: &priority,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Emotion != types.EmotionHappy || updated.Priority != 90 {
		t.Fatalf("unexpected result %+v", updated)
	}
	if updated.Type != types.VariantTypeLexical {
		t.Fatalf("unset fields must be kept, type=%q", updated.Type)
	}
}

func TestVariantDeleteWithFileCleansUpAsset(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()

	result, err := c.upload.Upload(ctx, uploadInput("clip.bin", "variant-cleanup"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	variant := seedLinkedVariant(t, c, result.Asset.ID)

	if err := c.variant.Delete(ctx, variant.ID, true); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if row, _ := c.assets.GetByID(ctx, nil, result.Asset.ID); row != nil {
		t.Fatalf("orphaned asset row should be gone")
	}
	if c.store.has(result.Asset.FileKey) {
		t.Fatalf("orphaned blob should be gone")
	}
}

func TestVariantDeleteWithFileKeepsSharedAsset(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()

	result, err := c.upload.Upload(ctx, uploadInput("clip.bin", "variant-shared"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	first := seedLinkedVariant(t, c, result.Asset.ID)
	second, err := c.variant.Create(ctx, VariantCreateInput{
		GlossID: first.GlossID, AssetID: result.Asset.ID, LanguageID: "asl", Emotion: "Happy",
	})
	if err != nil {
		t.Fatalf("second variant: %v", err)
	}

	if err := c.variant.Delete(ctx, first.ID, true); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if row, _ := c.assets.GetByID(ctx, nil, result.Asset.ID); row == nil {
		t.Fatalf("shared asset must survive")
	}
	if !c.store.has(result.Asset.FileKey) {
		t.Fatalf("shared blob must survive")
	}
	if _, err := c.variant.Get(ctx, second.ID); err != nil {
		t.Fatalf("sibling variant must survive: %v", err)
	}
}
