package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/signbridge/signbridge-backend/internal/platform/apierr"
	"github.com/signbridge/signbridge-backend/internal/services"
)

type GlossHandler struct {
	glossService services.GlossService
}

func NewGlossHandler(glossService services.GlossService) *GlossHandler {
	return &GlossHandler{glossService: glossService}
}

// POST /api/v1/cms/glosses
func (gh *GlossHandler) Create(c *gin.Context) {
	var input services.GlossInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, apierr.Validation(fmt.Errorf("invalid request body")))
		return
	}
	gloss, err := gh.glossService.Create(c.Request.Context(), input)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, gloss)
}

// GET /api/v1/cms/glosses?search=&limit=&offset=
func (gh *GlossHandler) List(c *gin.Context) {
	limit, err := queryInt(c, "limit", 100)
	if err != nil {
		RespondError(c, err)
		return
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		RespondError(c, err)
		return
	}
	glosses, err := gh.glossService.List(c.Request.Context(), c.Query("search"), limit, offset)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"items": glosses, "count": len(glosses)})
}

// GET /api/v1/cms/glosses/:id
func (gh *GlossHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondError(c, err)
		return
	}
	gloss, err := gh.glossService.Get(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gloss)
}

// PUT /api/v1/cms/glosses/:id
func (gh *GlossHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondError(c, err)
		return
	}
	var input services.GlossInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, apierr.Validation(fmt.Errorf("invalid request body")))
		return
	}
	gloss, err := gh.glossService.Update(c.Request.Context(), id, input)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gloss)
}

// DELETE /api/v1/cms/glosses/:id
func (gh *GlossHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondError(c, err)
		return
	}
	if err := gh.glossService.Delete(c.Request.Context(), id); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": id})
}
