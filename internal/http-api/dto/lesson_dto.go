package dto

import (
	"cursohub/internal/http-api/models"
)

// CreateLessonRequest: payload for creating a lesson (admin)
type CreateLessonRequest struct {
	Title           string `json:"title" binding:"required"`
	Module          string `json:"module" binding:"required"`
	Order           int    `json:"order" binding:"min=0"`
	VideoURL        string `json:"video_url"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes" binding:"min=0"`
}

// UpdateLessonRequest: payload for updating a lesson (admin)
type UpdateLessonRequest struct {
	Title           string `json:"title" binding:"required"`
	Module          string `json:"module" binding:"required"`
	Order           int    `json:"order" binding:"min=0"`
	VideoURL        string `json:"video_url"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes" binding:"min=0"`
}

func (r *UpdateLessonRequest) ToModel(id int64) models.Lesson {
	return models.Lesson{
		ID:              id,
		Title:           r.Title,
		Module:          r.Module,
		Order:           r.Order,
		VideoURL:        r.VideoURL,
		Description:     r.Description,
		DurationMinutes: r.DurationMinutes,
	}
}

func (r *CreateLessonRequest) ToModel() models.Lesson {
	return models.Lesson{
		Title:           r.Title,
		Module:          r.Module,
		Order:           r.Order,
		VideoURL:        r.VideoURL,
		Description:     r.Description,
		DurationMinutes: r.DurationMinutes,
	}
}
