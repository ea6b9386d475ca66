package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/signbridge/signbridge-backend/internal/platform/apierr"
	"github.com/signbridge/signbridge-backend/internal/repos"
	"github.com/signbridge/signbridge-backend/internal/services"
)

type SearchHandler struct {
	searchService services.SearchService
}

func NewSearchHandler(searchService services.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

func queryIntPtr(c *gin.Context, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apierr.Validation(fmt.Errorf("%s must be an integer", name))
	}
	return &v, nil
}

func queryFloatPtr(c *gin.Context, name string) (*float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apierr.Validation(fmt.Errorf("%s must be a number", name))
	}
	return &v, nil
}

// GET /api/v1/cms/search
// All filters optional and independently combinable: q, language_id, emotion,
// min_fps, max_fps, min_duration, max_duration, sort_by, limit, offset.
func (sh *SearchHandler) Search(c *gin.Context) {
	filter := repos.SearchFilter{
		Query:      c.Query("q"),
		LanguageID: c.Query("language_id"),
		Emotion:    c.Query("emotion"),
		SortBy:     c.Query("sort_by"),
	}
	var err error
	if filter.MinFPS, err = queryIntPtr(c, "min_fps"); err != nil {
		RespondError(c, err)
		return
	}
	if filter.MaxFPS, err = queryIntPtr(c, "max_fps"); err != nil {
		RespondError(c, err)
		return
	}
	if filter.MinDuration, err = queryFloatPtr(c, "min_duration"); err != nil {
		RespondError(c, err)
		return
	}
	if filter.MaxDuration, err = queryFloatPtr(c, "max_duration"); err != nil {
		RespondError(c, err)
		return
	}
	if filter.Limit, err = queryInt(c, "limit", 100); err != nil {
		RespondError(c, err)
		return
	}
	if filter.Offset, err = queryInt(c, "offset", 0); err != nil {
		RespondError(c, err)
		return
	}

	variants, err := sh.searchService.Search(c.Request.Context(), filter)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"items": variants, "count": len(variants)})
}
