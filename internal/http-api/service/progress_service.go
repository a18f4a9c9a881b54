package service

import (
	"context"
	"errors"
	"math"
	"time"

	"cursohub/internal/http-api/models"
	"cursohub/internal/http-api/repository"
)

var (
	ErrLessonNotFound    = errors.New("lesson not found")
	ErrProgressNotFound  = errors.New("progress not found")
	ErrNotProgressOwner  = errors.New("progress belongs to another user")
	ErrInvalidPercentage = errors.New("progress_percentage must be between 0 and 100")
)

// ModuleSummary is the completion ratio for one module.
type ModuleSummary struct {
	Module     string `json:"module"`
	Percentage int    `json:"percentage"`
	Completed  int    `json:"completed"`
	Total      int    `json:"total"`
}

// CourseSummary aggregates the caller's ledger over the whole catalog.
type CourseSummary struct {
	CoursePercentage int             `json:"course_percentage"`
	CompletedLessons int             `json:"completed_lessons"`
	TotalLessons     int             `json:"total_lessons"`
	Modules          []ModuleSummary `json:"modules"`
}

type ProgressService interface {
	GetByUser(ctx context.Context, userEmail string) ([]models.Progress, error)
	Upsert(ctx context.Context, userEmail string, lessonID int64, percentage float64, completed bool, lastWatched time.Time) (*models.Progress, error)
	UpdateByID(ctx context.Context, userEmail string, id int64, percentage float64, completed bool, lastWatched time.Time) (*models.Progress, error)
	Reset(ctx context.Context, userEmail string, isAdmin bool, id int64) error
	Summary(ctx context.Context, userEmail string) (*CourseSummary, error)
}

type progressService struct {
	repo       repository.ProgressRepository
	lessonRepo repository.LessonRepository
}

func NewProgressService(repo repository.ProgressRepository, lessonRepo repository.LessonRepository) ProgressService {
	return &progressService{
		repo:       repo,
		lessonRepo: lessonRepo,
	}
}

func (s *progressService) GetByUser(ctx context.Context, userEmail string) ([]models.Progress, error) {
	return s.repo.GetAllProgress(ctx, userEmail)
}

// Upsert records a playback event for (userEmail, lessonID), creating the
// row on the first event. Marking complete forces the percentage to 100 in
// the same write. Percentages are deliberately not monotonic: a rewatch may
// report a lower value and it overwrites (last write wins). Completion is
// sticky, replaying a finished lesson never clears the completed flag.
func (s *progressService) Upsert(ctx context.Context, userEmail string, lessonID int64, percentage float64, completed bool, lastWatched time.Time) (*models.Progress, error) {
	if percentage < 0 || percentage > 100 {
		return nil, ErrInvalidPercentage
	}

	// Validate lesson exists
	if _, err := s.lessonRepo.GetByID(ctx, lessonID); err != nil {
		return nil, ErrLessonNotFound
	}

	if completed {
		percentage = 100
	} else if existing, err := s.repo.GetByLessonID(ctx, userEmail, lessonID); err == nil && existing.Completed {
		completed = true
		percentage = existing.ProgressPercentage
	}

	if lastWatched.IsZero() {
		lastWatched = time.Now()
	}

	progress := &models.Progress{
		UserEmail:          userEmail,
		LessonID:           lessonID,
		Completed:          completed,
		ProgressPercentage: percentage,
		LastWatched:        lastWatched,
	}

	if err := s.repo.UpsertProgress(ctx, progress); err != nil {
		return nil, err
	}
	return progress, nil
}

// UpdateByID services PUT /api/progress/:id. Ownership is checked against
// the row, then the write goes through the same upsert path.
func (s *progressService) UpdateByID(ctx context.Context, userEmail string, id int64, percentage float64, completed bool, lastWatched time.Time) (*models.Progress, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrProgressNotFound
	}
	if existing.UserEmail != userEmail {
		return nil, ErrNotProgressOwner
	}
	return s.Upsert(ctx, userEmail, existing.LessonID, percentage, completed, lastWatched)
}

// Reset removes the row, returning the lesson to not_started. This is the
// only path out of the completed state.
func (s *progressService) Reset(ctx context.Context, userEmail string, isAdmin bool, id int64) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ErrProgressNotFound
	}
	if !isAdmin && existing.UserEmail != userEmail {
		return ErrNotProgressOwner
	}
	return s.repo.DeleteProgress(ctx, id)
}

// Summary merges the catalog with the caller's ledger into per-module and
// course-wide completion percentages.
func (s *progressService) Summary(ctx context.Context, userEmail string) (*CourseSummary, error) {
	lessons, err := s.lessonRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	ledger, err := s.repo.GetAllProgress(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	byLesson := make(map[int64]models.Progress, len(ledger))
	for _, p := range ledger {
		byLesson[p.LessonID] = p
	}

	summary := &CourseSummary{
		TotalLessons: len(lessons),
	}

	// Modules appear in catalog order, once each.
	var moduleOrder []string
	perModule := make(map[string]*ModuleSummary)
	for _, lesson := range lessons {
		m, ok := perModule[lesson.Module]
		if !ok {
			m = &ModuleSummary{Module: lesson.Module}
			perModule[lesson.Module] = m
			moduleOrder = append(moduleOrder, lesson.Module)
		}
		m.Total++
		if byLesson[lesson.ID].Completed {
			m.Completed++
			summary.CompletedLessons++
		}
	}

	for _, name := range moduleOrder {
		m := perModule[name]
		m.Percentage = completionPercent(m.Completed, m.Total)
		summary.Modules = append(summary.Modules, *m)
	}
	summary.CoursePercentage = completionPercent(summary.CompletedLessons, summary.TotalLessons)

	return summary, nil
}

// completionPercent is round(100*completed/total); an empty set is 0%,
// never a division by zero.
func completionPercent(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

// LessonState derives the playback state from a ledger row. A nil row means
// the lesson was never started.
func LessonState(p *models.Progress) string {
	switch {
	case p == nil:
		return models.StateNotStarted
	case p.Completed:
		return models.StateCompleted
	case p.ProgressPercentage > 0:
		return models.StateInProgress
	default:
		return models.StateNotStarted
	}
}
