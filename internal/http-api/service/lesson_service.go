package service

import (
	"context"
	"errors"
	"log"

	"cursohub/internal/http-api/models"
	"cursohub/internal/http-api/repository"
)

var ErrInvalidModule = errors.New("unknown course module")

type LessonService interface {
	GetAll(ctx context.Context) ([]models.Lesson, error)
	GetByID(ctx context.Context, id int64) (*models.Lesson, error)
	Create(ctx context.Context, lesson *models.Lesson) error
	Update(ctx context.Context, lesson *models.Lesson) error
	Delete(ctx context.Context, id int64) error
}

type lessonService struct {
	repo  repository.LessonRepository
	cache *repository.LessonCache
}

func NewLessonService(repo repository.LessonRepository, cache *repository.LessonCache) LessonService {
	return &lessonService{repo: repo, cache: cache}
}

// GetAll serves the catalog from Redis when possible. Cache trouble is
// logged and the request falls through to postgres.
func (s *lessonService) GetAll(ctx context.Context) ([]models.Lesson, error) {
	if cached, err := s.cache.Get(ctx); err != nil {
		log.Printf("lesson cache read failed: %v", err)
	} else if cached != nil {
		return cached, nil
	}

	list, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, list); err != nil {
		log.Printf("lesson cache write failed: %v", err)
	}
	return list, nil
}

func (s *lessonService) GetByID(ctx context.Context, id int64) (*models.Lesson, error) {
	lesson, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrLessonNotFound
	}
	return lesson, nil
}

func (s *lessonService) Create(ctx context.Context, lesson *models.Lesson) error {
	if !models.ValidModule(lesson.Module) {
		return ErrInvalidModule
	}
	if err := s.repo.Create(ctx, lesson); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *lessonService) Update(ctx context.Context, lesson *models.Lesson) error {
	if !models.ValidModule(lesson.Module) {
		return ErrInvalidModule
	}
	if _, err := s.repo.GetByID(ctx, lesson.ID); err != nil {
		return ErrLessonNotFound
	}
	if err := s.repo.Update(ctx, lesson); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *lessonService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return ErrLessonNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *lessonService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("lesson cache invalidate failed: %v", err)
	}
}
