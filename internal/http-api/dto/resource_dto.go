package dto

import "cursohub/internal/http-api/models"

// CreateResourceRequest: payload for creating a downloadable resource (admin)
type CreateResourceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"required"`
	Module      string `json:"module"`
	FileURL     string `json:"file_url" binding:"required"`
	FileSize    int64  `json:"file_size" binding:"min=0"`
}

func (r *CreateResourceRequest) ToModel() models.Resource {
	return models.Resource{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Module:      r.Module,
		FileURL:     r.FileURL,
		FileSize:    r.FileSize,
	}
}
