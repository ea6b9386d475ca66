package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/signbridge/signbridge-backend/internal/platform/apierr"
	"github.com/signbridge/signbridge-backend/internal/services"
)

type VariantHandler struct {
	variantService services.VariantService
}

func NewVariantHandler(variantService services.VariantService) *VariantHandler {
	return &VariantHandler{variantService: variantService}
}

// POST /api/v1/cms/variants
func (vh *VariantHandler) Create(c *gin.Context) {
	var input services.VariantCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, apierr.Validation(fmt.Errorf("invalid request body")))
		return
	}
	variant, err := vh.variantService.Create(c.Request.Context(), input)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, variant)
}

// GET /api/v1/cms/variants?gloss_id=&language_id=&limit=&offset=
func (vh *VariantHandler) List(c *gin.Context) {
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
	var glossID *int64
	if raw := c.Query("gloss_id"); raw != "" {
		v, err := queryInt(c, "gloss_id", 0)
		if err != nil {
			RespondError(c, err)
			return
		}
		id := int64(v)
		glossID = &id
	}
	variants, err := vh.variantService.List(c.Request.Context(), glossID, c.Query("language_id"), limit, offset)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"items": variants, "count": len(variants)})
}

// GET /api/v1/cms/variants/:id
func (vh *VariantHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondError(c, err)
		return
	}
	variant, err := vh.variantService.Get(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, variant)
}

// PUT /api/v1/cms/variants/:id
func (vh *VariantHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondError(c, err)
		return
	}
	var input services.VariantUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, apierr.Validation(fmt.Errorf("invalid request body")))
		return
	}
	variant, err := vh.variantService.Update(c.Request.Context(), id, input)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, variant)
}

// DELETE /api/v1/cms/variants/:id?delete_file=true
func (vh *VariantHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondError(c, err)
		return
	}
	if err := vh.variantService.Delete(c.Request.Context(), id, queryBool(c, "delete_file")); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": id})
}
