package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/signbridge/signbridge-backend/internal/platform/apierr"
	"github.com/signbridge/signbridge-backend/internal/services"
)

type AssetHandler struct {
	assetService services.AssetService
}

func NewAssetHandler(assetService services.AssetService) *AssetHandler {
	return &AssetHandler{assetService: assetService}
}

func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, apierr.Validation(fmt.Errorf("%s must be a positive integer", name))
	}
	return id, nil
}

func queryInt(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apierr.Validation(fmt.Errorf("%s must be an integer", name))
	}
	return v, nil
}

func queryBool(c *gin.Context, name string) bool {
	v, _ := strconv.ParseBool(c.DefaultQuery(name, "false"))
	return v
}

// GET /api/v1/cms/assets
func (ah *AssetHandler) List(c *gin.Context) {
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
	assets, err := ah.assetService.List(c.Request.Context(), limit, offset)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"items": assets, "count": len(assets)})
}

// GET /api/v1/cms/assets/:id
func (ah *AssetHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondError(c, err)
		return
	}
	asset, err := ah.assetService.Get(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, asset)
}

// DELETE /api/v1/cms/assets/:id?delete_file=true
func (ah *AssetHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondError(c, err)
		return
	}
	if err := ah.assetService.Delete(c.Request.Context(), id, queryBool(c, "delete_file")); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": id})
}
