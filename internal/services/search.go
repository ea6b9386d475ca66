package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/signbridge/signbridge-backend/internal/platform/apierr"
	"github.com/signbridge/signbridge-backend/internal/platform/logger"
	"github.com/signbridge/signbridge-backend/internal/repos"
	"github.com/signbridge/signbridge-backend/internal/types"
)

// SearchService is the read facade over the catalog: one query across
// variants, glosses, languages and asset metadata with independently
// combinable filters.
type SearchService interface {
	Search(ctx context.Context, filter repos.SearchFilter) ([]*types.SignVariant, error)
}

type searchService struct {
	db          *gorm.DB
	log         *logger.Logger
	variantRepo repos.VariantRepo
}

func NewSearchService(db *gorm.DB, baseLog *logger.Logger, variantRepo repos.VariantRepo) SearchService {
	return &searchService{db: db, log: baseLog.With("service", "SearchService"), variantRepo: variantRepo}
}

var validSortKeys = map[string]bool{
	"":                     true,
	repos.SortNewest:       true,
	repos.SortOldest:       true,
	repos.SortDurationAsc:  true,
	repos.SortDurationDesc: true,
}

func (ss *searchService) Search(ctx context.Context, filter repos.SearchFilter) ([]*types.SignVariant, error) {
	if !validSortKeys[filter.SortBy] {
		return nil, apierr.Validation(fmt.Errorf("invalid sort_by %q", filter.SortBy))
	}
	if filter.Emotion != "" && !types.Emotion(filter.Emotion).Valid() {
		return nil, apierr.Validation(fmt.Errorf("invalid emotion %q", filter.Emotion))
	}
	if filter.MinFPS != nil && filter.MaxFPS != nil && *filter.MinFPS > *filter.MaxFPS {
		return nil, apierr.Validation(fmt.Errorf("min_fps exceeds max_fps"))
	}
	if filter.MinDuration != nil && filter.MaxDuration != nil && *filter.MinDuration > *filter.MaxDuration {
		return nil, apierr.Validation(fmt.Errorf("min_duration exceeds max_duration"))
	}
	if filter.Limit < 1 || filter.Limit > 500 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	variants, err := ss.variantRepo.Search(ctx, nil, filter)
	if err != nil {
		return nil, apierr.Internal(fmt.Errorf("search variants: %w", err))
	}
	return variants, nil
}
