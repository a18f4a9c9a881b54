package models

import "time"

// Course modules. Lessons belong to exactly one of these groups.
const (
	ModuleIntroduccion = "introduccion"
	ModuleProyecto1    = "proyecto_1"
	ModuleProyecto2    = "proyecto_2"
)

// ValidModule reports whether m names a known course module.
func ValidModule(m string) bool {
	return m == ModuleIntroduccion || m == ModuleProyecto1 || m == ModuleProyecto2
}

// Lesson is a single video unit with a display position inside its module.
type Lesson struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title           string    `gorm:"not null" json:"title"`
	Module          string    `gorm:"index;not null" json:"module"`
	Order           int       `gorm:"column:position;not null" json:"order"`
	VideoURL        string    `json:"video_url"`
	Description     string    `gorm:"type:text" json:"description"`
	DurationMinutes int       `json:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Lesson) TableName() string {
	return "lessons"
}
