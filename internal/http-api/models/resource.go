package models

import "time"

// Resource categories shown in the downloads center.
const (
	CategoryEsquemas   = "esquemas"
	CategoryCodigo     = "codigo"
	CategoryDatasheets = "datasheets"
	CategoryGuias      = "guias"
	CategoryOtros      = "otros"
)

// ValidCategory reports whether c names a known resource category.
func ValidCategory(c string) bool {
	switch c {
	case CategoryEsquemas, CategoryCodigo, CategoryDatasheets, CategoryGuias, CategoryOtros:
		return true
	}
	return false
}

// Resource is an admin-managed downloadable file (schematic, code bundle, datasheet...).
type Resource struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"index;not null" json:"category"`
	Module      string    `gorm:"index" json:"module"`
	FileURL     string    `gorm:"not null" json:"file_url"`
	FileSize    int64     `json:"file_size"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Resource) TableName() string {
	return "resources"
}
