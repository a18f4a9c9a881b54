package repository

import (
	"context"
	"time"

	"cursohub/internal/http-api/models"

	"gorm.io/gorm"
)

type progressRepository struct {
	db *gorm.DB
}

type ProgressRepository interface {
	GetAllProgress(ctx context.Context, userEmail string) ([]models.Progress, error)
	GetByID(ctx context.Context, id int64) (*models.Progress, error)
	GetByLessonID(ctx context.Context, userEmail string, lessonID int64) (*models.Progress, error)
	UpsertProgress(ctx context.Context, progress *models.Progress) error
	DeleteProgress(ctx context.Context, id int64) error
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) GetAllProgress(ctx context.Context, userEmail string) ([]models.Progress, error) {
	var list []models.Progress
	if err := r.db.WithContext(ctx).Where("user_email = ?", userEmail).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *progressRepository) GetByID(ctx context.Context, id int64) (*models.Progress, error) {
	var progress models.Progress
	if err := r.db.WithContext(ctx).First(&progress, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *progressRepository) GetByLessonID(ctx context.Context, userEmail string, lessonID int64) (*models.Progress, error) {
	var progress models.Progress
	if err := r.db.WithContext(ctx).
		Where("user_email = ? AND lesson_id = ?", userEmail, lessonID).
		First(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

// UpsertProgress writes the one row allowed per (user, lesson). The unique
// index idx_user_lesson backs this up against concurrent first writes from
// multiple tabs; last write wins on the updated fields.
func (r *progressRepository) UpsertProgress(ctx context.Context, progress *models.Progress) error {
	var existing models.Progress
	err := r.db.WithContext(ctx).
		Where("user_email = ? AND lesson_id = ?", progress.UserEmail, progress.LessonID).
		First(&existing).Error

	if err == gorm.ErrRecordNotFound {
		progress.UpdatedAt = time.Now()
		return r.db.WithContext(ctx).Create(progress).Error
	} else if err != nil {
		return err
	}

	// completed and progress_percentage land in one UPDATE, so no
	// intermediate state is ever readable
	if err := r.db.WithContext(ctx).Model(&existing).Updates(map[string]any{
		"completed":           progress.Completed,
		"progress_percentage": progress.ProgressPercentage,
		"last_watched":        progress.LastWatched,
		"updated_at":          time.Now(),
	}).Error; err != nil {
		return err
	}
	progress.ID = existing.ID
	return nil
}

func (r *progressRepository) DeleteProgress(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Progress{}, "id = ?", id).Error
}
