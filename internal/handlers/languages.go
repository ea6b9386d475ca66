package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/signbridge/signbridge-backend/internal/platform/apierr"
	"github.com/signbridge/signbridge-backend/internal/services"
)

type LanguageHandler struct {
	languageService services.LanguageService
}

func NewLanguageHandler(languageService services.LanguageService) *LanguageHandler {
	return &LanguageHandler{languageService: languageService}
}

// POST /api/v1/cms/languages
func (lh *LanguageHandler) Create(c *gin.Context) {
	var input services.LanguageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, apierr.Validation(fmt.Errorf("invalid request body")))
		return
	}
	lang, err := lh.languageService.Create(c.Request.Context(), input)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, lang)
}

// GET /api/v1/cms/languages
func (lh *LanguageHandler) List(c *gin.Context) {
	langs, err := lh.languageService.List(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"items": langs, "count": len(langs)})
}

// GET /api/v1/cms/languages/:code
func (lh *LanguageHandler) Get(c *gin.Context) {
	lang, err := lh.languageService.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, lang)
}

// PUT /api/v1/cms/languages/:code
// The code itself is immutable; only the display name can change.
func (lh *LanguageHandler) Update(c *gin.Context) {
	var input struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, apierr.Validation(fmt.Errorf("invalid request body")))
		return
	}
	lang, err := lh.languageService.UpdateName(c.Request.Context(), c.Param("code"), input.Name)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, lang)
}

// DELETE /api/v1/cms/languages/:code
func (lh *LanguageHandler) Delete(c *gin.Context) {
	code := c.Param("code")
	if err := lh.languageService.Delete(c.Request.Context(), code); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": code})
}
