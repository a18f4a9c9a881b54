package models

import "time"

// Progress is the per-user watch/completion state for one lesson.
// The composite unique index keeps at most one row per (user, lesson).
type Progress struct {
	ID                 int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserEmail          string    `gorm:"index:idx_user_lesson,unique;not null" json:"user_email"`
	LessonID           int64     `gorm:"index:idx_user_lesson,unique;not null" json:"lesson_id"`
	Completed          bool      `gorm:"default:false" json:"completed"`
	ProgressPercentage float64   `gorm:"default:0" json:"progress_percentage"`
	LastWatched        time.Time `json:"last_watched"`
	UpdatedAt          time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Progress) TableName() string {
	return "progress"
}

// Lesson playback states derived from a Progress row.
const (
	StateNotStarted = "not_started"
	StateInProgress = "in_progress"
	StateCompleted  = "completed"
)
