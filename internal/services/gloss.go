package services

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/signbridge/signbridge-backend/internal/platform/apierr"
	"github.com/signbridge/signbridge-backend/internal/platform/logger"
	"github.com/signbridge/signbridge-backend/internal/repos"
	"github.com/signbridge/signbridge-backend/internal/types"
)

type GlossInput struct {
	Name        string   `json:"name"`
	Synonyms    []string `json:"synonyms"`
	Description string   `json:"description"`
}

// GlossService manages the concept vocabulary. Names are stored uppercased so
// lookups are case-insensitive by construction, and synonym lists are trimmed
// and deduplicated before they hit the database.
type GlossService interface {
	Create(ctx context.Context, input GlossInput) (*types.Gloss, error)
	Get(ctx context.Context, id int64) (*types.Gloss, error)
	List(ctx context.Context, search string, limit, offset int) ([]*types.Gloss, error)
	Update(ctx context.Context, id int64, input GlossInput) (*types.Gloss, error)
	Delete(ctx context.Context, id int64) error
}

type glossService struct {
	db        *gorm.DB
	log       *logger.Logger
	glossRepo repos.GlossRepo
}

func NewGlossService(db *gorm.DB, baseLog *logger.Logger, glossRepo repos.GlossRepo) GlossService {
	return &glossService{db: db, log: baseLog.With("service", "GlossService"), glossRepo: glossRepo}
}

func normalizeGlossName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

func normalizeSynonyms(raw []string) datatypes.JSONSlice[string] {
	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return datatypes.NewJSONSlice(out)
}

func (gs *glossService) Create(ctx context.Context, input GlossInput) (*types.Gloss, error) {
	name := normalizeGlossName(input.Name)
	if name == "" {
		return nil, apierr.Validation(fmt.Errorf("gloss name is required"))
	}
	gloss := &types.Gloss{
		Name:        name,
		Synonyms:    normalizeSynonyms(input.Synonyms),
		Description: strings.TrimSpace(input.Description),
	}
	if err := gs.glossRepo.Create(ctx, nil, gloss); err != nil {
		return nil, apierr.Internal(fmt.Errorf("create gloss: %w", err))
	}
	gs.log.Info("gloss created", "gloss_id", gloss.ID, "name", gloss.Name)
	return gloss, nil
}

func (gs *glossService) Get(ctx context.Context, id int64) (*types.Gloss, error) {
	gloss, err := gs.glossRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, apierr.Internal(fmt.Errorf("load gloss %d: %w", id, err))
	}
	if gloss == nil {
		return nil, apierr.NotFound(fmt.Errorf("gloss %d not found", id))
	}
	return gloss, nil
}

func (gs *glossService) List(ctx context.Context, search string, limit, offset int) ([]*types.Gloss, error) {
	if limit < 1 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	glosses, err := gs.glossRepo.List(ctx, nil, search, limit, offset)
	if err != nil {
		return nil, apierr.Internal(fmt.Errorf("list glosses: %w", err))
	}
	return glosses, nil
}

func (gs *glossService) Update(ctx context.Context, id int64, input GlossInput) (*types.Gloss, error) {
	gloss, err := gs.glossRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, apierr.Internal(fmt.Errorf("load gloss %d: %w", id, err))
	}
	if gloss == nil {
		return nil, apierr.NotFound(fmt.Errorf("gloss %d not found", id))
	}

	if name := normalizeGlossName(input.Name); name != "" {
		gloss.Name = name
	}
	if input.Synonyms != nil {
		gloss.Synonyms = normalizeSynonyms(input.Synonyms)
	}
	if desc := strings.TrimSpace(input.Description); desc != "" {
		gloss.Description = desc
	}
	if err := gs.glossRepo.Update(ctx, nil, gloss); err != nil {
		return nil, apierr.Internal(fmt.Errorf("update gloss %d: %w", id, err))
	}
	return gloss, nil
}

func (gs *glossService) Delete(ctx context.Context, id int64) error {
	return gs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		gloss, err := gs.glossRepo.GetByID(ctx, tx, id)
		if err != nil {
			return apierr.Internal(fmt.Errorf("load gloss %d: %w", id, err))
		}
		if gloss == nil {
			return apierr.NotFound(fmt.Errorf("gloss %d not found", id))
		}
		refs, err := gs.glossRepo.CountVariantRefs(ctx, tx, id)
		if err != nil {
			return apierr.Internal(fmt.Errorf("count gloss refs: %w", err))
		}
		if refs > 0 {
			return apierr.Conflict(fmt.Errorf("gloss %d is referenced by sign variants", id)).
				WithDetail("variant_refs", refs)
		}
		if err := gs.glossRepo.Delete(ctx, tx, id); err != nil {
			return apierr.Internal(fmt.Errorf("delete gloss %d: %w", id, err))
		}
		gs.log.Info("gloss deleted", "gloss_id", id, "name", gloss.Name)
		return nil
	})
}
