package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/signbridge/signbridge-backend/internal/platform/apierr"
	"github.com/signbridge/signbridge-backend/internal/platform/logger"
	"github.com/signbridge/signbridge-backend/internal/services"
)

type FileHandler struct {
	log           *logger.Logger
	fileService   services.FileService
	uploadService services.UploadService
	presignExpiry time.Duration
}

func NewFileHandler(
	log *logger.Logger,
	fileService services.FileService,
	uploadService services.UploadService,
	presignExpiry time.Duration,
) *FileHandler {
	return &FileHandler{
		log:           log.With("handler", "FileHandler"),
		fileService:   fileService,
		uploadService: uploadService,
		presignExpiry: presignExpiry,
	}
}

// POST /api/v1/files/upload
// Multipart upload. Responds with the registered (or deduplicated) asset, so
// the client can link variants to it immediately.
func (fh *FileHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, apierr.Validation(fmt.Errorf("multipart field 'file' is required")))
		return
	}
	src, err := fileHeader.Open()
	if err != nil {
		RespondError(c, apierr.Validation(fmt.Errorf("open uploaded file: %w", err)))
		return
	}
	defer src.Close()
	content, err := io.ReadAll(src)
	if err != nil {
		RespondError(c, apierr.Internal(fmt.Errorf("read uploaded file: %w", err)))
		return
	}

	result, err := fh.uploadService.Upload(c.Request.Context(), services.UploadInput{
		Filename:      fileHeader.Filename,
		ContentType:   fileHeader.Header.Get("Content-Type"),
		Content:       content,
		TransitionIn:  c.PostForm("transition_in"),
		TransitionOut: c.PostForm("transition_out"),
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	if result.Deduplicated {
		RespondOK(c, result)
		return
	}
	RespondCreated(c, result)
}

// GET /api/v1/files
func (fh *FileHandler) List(c *gin.Context) {
	maxKeys := 100
	if raw := c.Query("max_keys"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			RespondError(c, apierr.Validation(fmt.Errorf("max_keys must be an integer")))
			return
		}
		maxKeys = parsed
	}
	result, err := fh.fileService.List(c.Request.Context(), c.Query("prefix"), int32(maxKeys), c.Query("continuation_token"))
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, result)
}

// GET /api/v1/files/download?file_key=...
func (fh *FileHandler) Download(c *gin.Context) {
	key := c.Query("file_key")
	body, err := fh.fileService.Download(c.Request.Context(), key)
	if err != nil {
		RespondError(c, err)
		return
	}
	defer body.Close()
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", key))
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, body); err != nil {
		fh.log.Warn("download stream interrupted", "key", key, "error", err)
	}
}

// GET /api/v1/files/metadata?file_key=...
func (fh *FileHandler) Metadata(c *gin.Context) {
	info, err := fh.fileService.Metadata(c.Request.Context(), c.Query("file_key"))
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, info)
}

// POST /api/v1/files/presigned-url
func (fh *FileHandler) PresignedURL(c *gin.Context) {
	var req struct {
		FileKey    string `form:"file_key" json:"file_key"`
		Method     string `form:"method" json:"method"`
		Expiration int    `form:"expiration" json:"expiration"`
	}
	if err := c.ShouldBind(&req); err != nil {
		RespondError(c, apierr.Validation(fmt.Errorf("invalid request body")))
		return
	}
	expiry := fh.presignExpiry
	if req.Expiration > 0 {
		expiry = time.Duration(req.Expiration) * time.Second
	}
	if req.Method == "" {
		req.Method = "GET"
	}
	url, err := fh.fileService.Presign(c.Request.Context(), req.FileKey, req.Method, expiry)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"url": url, "expires_in": int(expiry.Seconds())})
}

// DELETE /api/v1/files/delete?file_key=...
func (fh *FileHandler) Delete(c *gin.Context) {
	key := c.Query("file_key")
	if err := fh.fileService.Delete(c.Request.Context(), key); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": key})
}
