package repository

import (
	"context"
	"time"

	"cursohub/internal/http-api/models"

	"gorm.io/gorm"
)

// CheckoutRepository stores payment sessions created against the provider.
type CheckoutRepository interface {
	Create(ctx context.Context, session *models.CheckoutSession) error
	FindByID(ctx context.Context, id string) (*models.CheckoutSession, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type checkoutRepository struct {
	db *gorm.DB
}

func NewCheckoutRepository(db *gorm.DB) CheckoutRepository {
	return &checkoutRepository{db: db}
}

func (r *checkoutRepository) Create(ctx context.Context, session *models.CheckoutSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *checkoutRepository) FindByID(ctx context.Context, id string) (*models.CheckoutSession, error) {
	var session models.CheckoutSession
	if err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *checkoutRepository) UpdateStatus(ctx context.Context, id, status string) error {
	return r.db.WithContext(ctx).Model(&models.CheckoutSession{}).Where("id = ?", id).Updates(map[string]any{
		"status":     status,
		"updated_at": time.Now(),
	}).Error
}
