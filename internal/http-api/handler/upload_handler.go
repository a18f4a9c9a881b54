package handler

import (
	"fmt"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cursohub/internal/http-api/dto"
)

var videoExtensions = map[string]bool{
	".mp4":  true,
	".webm": true,
	".mkv":  true,
	".mov":  true,
}

type UploadHandler struct {
	uploadDir string
	maxSize   int64
}

func NewUploadHandler(uploadDir string, maxSize int64) *UploadHandler {
	return &UploadHandler{uploadDir: uploadDir, maxSize: maxSize}
}

func (h *UploadHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload", h.UploadFile)
	rg.POST("/upload/video", h.UploadVideo)
}

// UploadFile takes multipart field "file" and stores it at the upload root.
func (h *UploadHandler) UploadFile(c *gin.Context) {
	h.save(c, false)
}

// UploadVideo takes multipart field "video" and stores it under videos/.
func (h *UploadHandler) UploadVideo(c *gin.Context) {
	h.save(c, true)
}

// save stores the upload under a uuid-prefixed name so two uploads of the
// same filename never collide.
func (h *UploadHandler) save(c *gin.Context, video bool) {
	field, subdir := "file", ""
	if video {
		field, subdir = "video", "videos"
	}

	file, err := c.FormFile(field)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing " + field})
		return
	}

	if file.Size > h.maxSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if video && !videoExtensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported video format"})
		return
	}

	name := fmt.Sprintf("%s_%s", uuid.New().String(), filepath.Base(file.Filename))
	dst := filepath.Join(h.uploadDir, subdir, name)

	if err := c.SaveUploadedFile(file, dst); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store file"})
		return
	}

	c.JSON(http.StatusCreated, dto.UploadResponse{
		FileURL:  path.Join("/uploads", subdir, name),
		FileSize: file.Size,
	})
}
