package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"cursohub/internal/http-api/dto"
	"cursohub/internal/http-api/models"
	"cursohub/internal/http-api/service"
)

type ProgressHandler struct {
	progressService service.ProgressService
}

func NewProgressHandler(progressService service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

func (h *ProgressHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.GetProgress)
	rg.GET("/summary", h.GetSummary)
	rg.POST("", h.UpsertProgress)
	rg.PUT("/:id", h.UpdateProgress)
	rg.DELETE("/:id", h.ResetProgress)
}

// GetProgress lists the caller's ledger. The identity always comes from the
// token, never from a query parameter.
func (h *ProgressHandler) GetProgress(c *gin.Context) {
	email := c.GetString("email")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	rows, err := h.progressService.GetByUser(ctx, email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch progress"})
		return
	}

	out := make([]dto.ProgressResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toProgressResponse(&rows[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *ProgressHandler) GetSummary(c *gin.Context) {
	email := c.GetString("email")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	summary, err := h.progressService.Summary(ctx, email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// UpsertProgress records a playback event. The body may carry a user_email
// for wire-compatibility with older clients but it is ignored.
func (h *ProgressHandler) UpsertProgress(c *gin.Context) {
	var req dto.UpsertProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := c.GetString("email")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	var lastWatched time.Time
	if req.LastWatched != nil {
		lastWatched = *req.LastWatched
	}

	progress, err := h.progressService.Upsert(ctx, email, req.LessonID, req.ProgressPercentage, req.Completed, lastWatched)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPercentage):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrLessonNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "lesson not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save progress"})
		}
		return
	}

	c.JSON(http.StatusOK, toProgressResponse(progress))
}

func (h *ProgressHandler) UpdateProgress(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid progress id"})
		return
	}

	var req dto.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := c.GetString("email")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	var lastWatched time.Time
	if req.LastWatched != nil {
		lastWatched = *req.LastWatched
	}

	progress, err := h.progressService.UpdateByID(ctx, email, id, req.ProgressPercentage, req.Completed, lastWatched)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProgressNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "progress not found"})
		case errors.Is(err, service.ErrNotProgressOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
		case errors.Is(err, service.ErrInvalidPercentage):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update progress"})
		}
		return
	}

	c.JSON(http.StatusOK, toProgressResponse(progress))
}

// ResetProgress deletes the row, returning the lesson to not_started.
func (h *ProgressHandler) ResetProgress(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid progress id"})
		return
	}

	email := c.GetString("email")
	isAdmin := c.GetString("role") == models.RoleAdmin

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.progressService.Reset(ctx, email, isAdmin, id); err != nil {
		switch {
		case errors.Is(err, service.ErrProgressNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "progress not found"})
		case errors.Is(err, service.ErrNotProgressOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset progress"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "progress reset"})
}

func toProgressResponse(p *models.Progress) dto.ProgressResponse {
	return dto.ProgressResponse{
		ID:                 p.ID,
		UserEmail:          p.UserEmail,
		LessonID:           p.LessonID,
		Completed:          p.Completed,
		ProgressPercentage: p.ProgressPercentage,
		State:              service.LessonState(p),
		LastWatched:        p.LastWatched,
		UpdatedAt:          p.UpdatedAt,
	}
}
