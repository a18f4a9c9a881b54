package service

import (
	"context"
	"errors"

	"cursohub/internal/http-api/models"
	"cursohub/internal/http-api/repository"
)

var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrInvalidCategory  = errors.New("unknown resource category")
)

type ResourceService interface {
	GetAll(ctx context.Context, category string) ([]models.Resource, error)
	Create(ctx context.Context, resource *models.Resource) error
	Delete(ctx context.Context, id int64) error
}

type resourceService struct {
	repo repository.ResourceRepository
}

func NewResourceService(repo repository.ResourceRepository) ResourceService {
	return &resourceService{repo: repo}
}

func (s *resourceService) GetAll(ctx context.Context, category string) ([]models.Resource, error) {
	if category != "" && !models.ValidCategory(category) {
		return nil, ErrInvalidCategory
	}
	return s.repo.GetAll(ctx, category)
}

func (s *resourceService) Create(ctx context.Context, resource *models.Resource) error {
	if !models.ValidCategory(resource.Category) {
		return ErrInvalidCategory
	}
	return s.repo.Create(ctx, resource)
}

func (s *resourceService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return ErrResourceNotFound
	}
	return s.repo.Delete(ctx, id)
}
