package services

import (
	"context"
	"testing"

	"github.com/signbridge/signbridge-backend/internal/platform/apierr"
	"github.com/signbridge/signbridge-backend/internal/repos"
)

// Walks the whole editorial flow once: upload a clip, build the catalog
// entries around it, find it through search, then tear everything down in
// the only order the reference rules allow.
func TestCatalogLifecycle(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()

	uploaded, err := c.upload.Upload(ctx, uploadInput("hello_wave.bin", "hello-animation-bytes"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	asset := uploaded.Asset

	if _, err := c.language.Create(ctx, LanguageInput{Code: "ru-RSL", Name: "Russian Sign Language"}); err != nil {
		t.Fatalf("create language: %v", err)
	}
	gloss, err := c.gloss.Create(ctx, GlossInput{Name: "hello", Synonyms: []string{"hi"}})
	if err != nil {
		t.Fatalf("create gloss: %v", err)
	}
	variant, err := c.variant.Create(ctx, VariantCreateInput{
		GlossID: gloss.ID, AssetID: asset.ID, LanguageID: "ru-RSL",
	})
	if err != nil {
		t.Fatalf("create variant: %v", err)
	}

	found, err := c.search.Search(ctx, repos.SearchFilter{Query: "hello", LanguageID: "ru-RSL"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(found) != 1 || found[0].ID != variant.ID {
		t.Fatalf("search should find the new variant, got %+v", found)
	}
	if found[0].Asset == nil || found[0].Asset.FileURL != asset.FileURL {
		t.Fatalf("search result missing asset metadata")
	}

	// Synonym search reaches the same variant.
	bySynonym, err := c.search.Search(ctx, repos.SearchFilter{Query: "hi"})
	if err != nil {
		t.Fatalf("search by synonym: %v", err)
	}
	if len(bySynonym) != 1 {
		t.Fatalf("synonym search: want 1 hit, got %d", len(bySynonym))
	}

	// While linked, neither the asset nor the gloss nor the language may go.
	if err := c.asset.Delete(ctx, asset.ID, true); apierr.From(err).Code != apierr.CodeConflict {
		t.Fatalf("asset delete: want conflict, got %v", err)
	}
	if err := c.gloss.Delete(ctx, gloss.ID); apierr.From(err).Code != apierr.CodeConflict {
		t.Fatalf("gloss delete: want conflict, got %v", err)
	}
	if err := c.language.Delete(ctx, "ru-RSL"); apierr.From(err).Code != apierr.CodeConflict {
		t.Fatalf("language delete: want conflict, got %v", err)
	}

	// Removing the variant with its file cleans the asset and blob too.
	if err := c.variant.Delete(ctx, variant.ID, true); err != nil {
		t.Fatalf("variant delete: %v", err)
	}
	if row, _ := c.assets.GetByID(ctx, nil, asset.ID); row != nil {
		t.Fatalf("asset should be cleaned up with its last variant")
	}
	if c.store.has(asset.FileKey) {
		t.Fatalf("blob should be cleaned up with its last variant")
	}

	// Now the catalog rows are free to go.
	if err := c.gloss.Delete(ctx, gloss.ID); err != nil {
		t.Fatalf("gloss delete after unlink: %v", err)
	}
	if err := c.language.Delete(ctx, "ru-RSL"); err != nil {
		t.Fatalf("language delete after unlink: %v", err)
	}

	empty, err := c.search.Search(ctx, repos.SearchFilter{})
	if err != nil {
		t.Fatalf("final search: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("catalog should be empty, found %d variants", len(empty))
	}
}
