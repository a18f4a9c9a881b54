package dto

import "time"

// UpsertProgressRequest: payload for POST /api/progress. Older clients still
// send user_email; the server always trusts the token identity over the body.
type UpsertProgressRequest struct {
	UserEmail          string     `json:"user_email"`
	LessonID           int64      `json:"lesson_id" binding:"required"`
	Completed          bool       `json:"completed"`
	ProgressPercentage float64    `json:"progress_percentage"`
	LastWatched        *time.Time `json:"last_watched"`
}

// UpdateProgressRequest: payload for PUT /api/progress/:id
type UpdateProgressRequest struct {
	Completed          bool       `json:"completed"`
	ProgressPercentage float64    `json:"progress_percentage"`
	LastWatched        *time.Time `json:"last_watched"`
}

// ProgressResponse: one ledger row as returned to the client
type ProgressResponse struct {
	ID                 int64     `json:"id"`
	UserEmail          string    `json:"user_email"`
	LessonID           int64     `json:"lesson_id"`
	Completed          bool      `json:"completed"`
	ProgressPercentage float64   `json:"progress_percentage"`
	State              string    `json:"state"`
	LastWatched        time.Time `json:"last_watched"`
	UpdatedAt          time.Time `json:"updated_at"`
}
