package repository

import (
	"context"

	"cursohub/internal/http-api/models"

	"gorm.io/gorm"
)

// ResourceRepository defines data operations for downloadable resources.
type ResourceRepository interface {
	GetAll(ctx context.Context, category string) ([]models.Resource, error)
	GetByID(ctx context.Context, id int64) (*models.Resource, error)
	Create(ctx context.Context, resource *models.Resource) error
	Delete(ctx context.Context, id int64) error
}

type resourceRepository struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &resourceRepository{db: db}
}

// GetAll lists resources, optionally filtered by category.
func (r *resourceRepository) GetAll(ctx context.Context, category string) ([]models.Resource, error) {
	var list []models.Resource
	q := r.db.WithContext(ctx).Order("created_at desc")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *resourceRepository) GetByID(ctx context.Context, id int64) (*models.Resource, error) {
	var resource models.Resource
	if err := r.db.WithContext(ctx).First(&resource, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &resource, nil
}

func (r *resourceRepository) Create(ctx context.Context, resource *models.Resource) error {
	return r.db.WithContext(ctx).Create(resource).Error
}

func (r *resourceRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Resource{}, "id = ?", id).Error
}
