package repository

import (
	"context"

	"cursohub/internal/http-api/models"

	"gorm.io/gorm"
)

// LessonRepository defines data operations for the lesson catalog.
type LessonRepository interface {
	GetAll(ctx context.Context) ([]models.Lesson, error)
	GetByID(ctx context.Context, id int64) (*models.Lesson, error)
	Create(ctx context.Context, lesson *models.Lesson) error
	Update(ctx context.Context, lesson *models.Lesson) error
	Delete(ctx context.Context, id int64) error
}

type lessonRepository struct {
	db *gorm.DB
}

func NewLessonRepository(db *gorm.DB) LessonRepository {
	return &lessonRepository{db: db}
}

// GetAll returns the full catalog in display order: module first, then the
// position inside the module.
func (r *lessonRepository) GetAll(ctx context.Context) ([]models.Lesson, error) {
	var list []models.Lesson
	if err := r.db.WithContext(ctx).Order("module, position").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *lessonRepository) GetByID(ctx context.Context, id int64) (*models.Lesson, error) {
	var lesson models.Lesson
	if err := r.db.WithContext(ctx).First(&lesson, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (r *lessonRepository) Create(ctx context.Context, lesson *models.Lesson) error {
	return r.db.WithContext(ctx).Create(lesson).Error
}

func (r *lessonRepository) Update(ctx context.Context, lesson *models.Lesson) error {
	return r.db.WithContext(ctx).Save(lesson).Error
}

func (r *lessonRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Lesson{}, "id = ?", id).Error
}
