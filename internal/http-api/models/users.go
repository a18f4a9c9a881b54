package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role values stored on User.Role.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// Account status values stored on User.Status.
const (
	StatusPendingPayment = "pending_payment"
	StatusActive         = "active"
)

// Auth provider values stored on User.Provider.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

type User struct {
	ID        string     `gorm:"primaryKey;type:uuid" json:"id"`
	FullName  string     `gorm:"not null" json:"full_name"`
	Email     string     `gorm:"uniqueIndex;not null" json:"email"`
	Password  string     `gorm:"column:password_hash" json:"-"` // Not show in JSON
	Role      string     `gorm:"default:'student';not null" json:"role"`
	Status    string     `gorm:"default:'pending_payment';not null" json:"status"`
	IsPaid    bool       `gorm:"default:false" json:"is_paid"`
	Provider  string     `gorm:"default:'local';not null" json:"provider"`
	GoogleID  string     `gorm:"index" json:"-"`
	Picture   string     `json:"picture,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// BeforeCreate hook to set UUID before creating a User
func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	// If the ID is not already set, generate a new one.
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	return
}

func (User) TableName() string {
	return "users"
}
