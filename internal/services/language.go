package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/signbridge/signbridge-backend/internal/platform/apierr"
	"github.com/signbridge/signbridge-backend/internal/platform/logger"
	"github.com/signbridge/signbridge-backend/internal/repos"
	"github.com/signbridge/signbridge-backend/internal/types"
)

type LanguageInput struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// LanguageService manages sign language entries. The code is the primary key
// and immutable after creation; updates can only rename.
type LanguageService interface {
	Create(ctx context.Context, input LanguageInput) (*types.SignLanguage, error)
	Get(ctx context.Context, code string) (*types.SignLanguage, error)
	List(ctx context.Context) ([]*types.SignLanguage, error)
	UpdateName(ctx context.Context, code, name string) (*types.SignLanguage, error)
	Delete(ctx context.Context, code string) error
}

type languageService struct {
	db           *gorm.DB
	log          *logger.Logger
	languageRepo repos.LanguageRepo
}

func NewLanguageService(db *gorm.DB, baseLog *logger.Logger, languageRepo repos.LanguageRepo) LanguageService {
	return &languageService{
		db:           db,
		log:          baseLog.With("service", "LanguageService"),
		languageRepo: languageRepo,
	}
}

func (ls *languageService) Create(ctx context.Context, input LanguageInput) (*types.SignLanguage, error) {
	code := strings.TrimSpace(input.Code)
	name := strings.TrimSpace(input.Name)
	if code == "" || name == "" {
		return nil, apierr.Validation(fmt.Errorf("code and name are required"))
	}
	lang := &types.SignLanguage{Code: code, Name: name}
	if err := ls.languageRepo.Create(ctx, nil, lang); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierr.Conflict(fmt.Errorf("language %q already exists", code))
		}
		return nil, apierr.Internal(fmt.Errorf("create language: %w", err))
	}
	ls.log.Info("language created", "code", code, "name", name)
	return lang, nil
}

func (ls *languageService) Get(ctx context.Context, code string) (*types.SignLanguage, error) {
	lang, err := ls.languageRepo.GetByCode(ctx, nil, code)
	if err != nil {
		return nil, apierr.Internal(fmt.Errorf("load language %q: %w", code, err))
	}
	if lang == nil {
		return nil, apierr.NotFound(fmt.Errorf("language %q not found", code))
	}
	return lang, nil
}

func (ls *languageService) List(ctx context.Context) ([]*types.SignLanguage, error) {
	langs, err := ls.languageRepo.List(ctx, nil)
	if err != nil {
		return nil, apierr.Internal(fmt.Errorf("list languages: %w", err))
	}
	return langs, nil
}

func (ls *languageService) UpdateName(ctx context.Context, code, name string) (*types.SignLanguage, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apierr.Validation(fmt.Errorf("name is required"))
	}
	lang, err := ls.languageRepo.GetByCode(ctx, nil, code)
	if err != nil {
		return nil, apierr.Internal(fmt.Errorf("load language %q: %w", code, err))
	}
	if lang == nil {
		return nil, apierr.NotFound(fmt.Errorf("language %q not found", code))
	}
	if err := ls.languageRepo.UpdateName(ctx, nil, code, name); err != nil {
		return nil, apierr.Internal(fmt.Errorf("rename language %q: %w", code, err))
	}
	lang.Name = name
	return lang, nil
}

func (ls *languageService) Delete(ctx context.Context, code string) error {
	return ls.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lang, err := ls.languageRepo.GetByCode(ctx, tx, code)
		if err != nil {
			return apierr.Internal(fmt.Errorf("load language %q: %w", code, err))
		}
		if lang == nil {
			return apierr.NotFound(fmt.Errorf("language %q not found", code))
		}
		refs, err := ls.languageRepo.CountVariantRefs(ctx, tx, code)
		if err != nil {
			return apierr.Internal(fmt.Errorf("count language refs: %w", err))
		}
		if refs > 0 {
			return apierr.Conflict(fmt.Errorf("language %q is referenced by sign variants", code)).
				WithDetail("variant_refs", refs)
		}
		if err := ls.languageRepo.Delete(ctx, tx, code); err != nil {
			return apierr.Internal(fmt.Errorf("delete language %q: %w", code, err))
		}
		ls.log.Info("language deleted", "code", code)
		return nil
	})
}
