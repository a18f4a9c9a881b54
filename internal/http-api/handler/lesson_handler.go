package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"cursohub/internal/http-api/dto"
	"cursohub/internal/http-api/service"
)

type LessonHandler struct {
	lessonService service.LessonService
}

func NewLessonHandler(lessonService service.LessonService) *LessonHandler {
	return &LessonHandler{lessonService: lessonService}
}

// RegisterRoutes wires the read endpoints; writes are admin-only and go
// through RegisterAdminRoutes.
func (h *LessonHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.GetLessons)
	rg.GET("/:id", h.GetLessonByID)
}

func (h *LessonHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.CreateLesson)
	rg.PUT("/:id", h.UpdateLesson)
	rg.DELETE("/:id", h.DeleteLesson)
}

func (h *LessonHandler) GetLessons(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	lessons, err := h.lessonService.GetAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch lessons"})
		return
	}

	c.JSON(http.StatusOK, lessons)
}

func (h *LessonHandler) GetLessonByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lesson id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	lesson, err := h.lessonService.GetByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "lesson not found"})
		return
	}

	c.JSON(http.StatusOK, lesson)
}

func (h *LessonHandler) CreateLesson(c *gin.Context) {
	var req dto.CreateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	lesson := req.ToModel()
	if err := h.lessonService.Create(ctx, &lesson); err != nil {
		if errors.Is(err, service.ErrInvalidModule) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create lesson"})
		return
	}

	c.JSON(http.StatusCreated, lesson)
}

func (h *LessonHandler) UpdateLesson(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lesson id"})
		return
	}

	var req dto.UpdateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	lesson := req.ToModel(id)
	if err := h.lessonService.Update(ctx, &lesson); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidModule):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrLessonNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "lesson not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update lesson"})
		}
		return
	}

	c.JSON(http.StatusOK, lesson)
}

func (h *LessonHandler) DeleteLesson(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lesson id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.lessonService.Delete(ctx, id); err != nil {
		if errors.Is(err, service.ErrLessonNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "lesson not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete lesson"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "lesson deleted"})
}
