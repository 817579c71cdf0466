package contacts

import (
	"context"
	"time"

	"github.com/basingerf-felix/spilna-peremoga-website/database/models"
	"gorm.io/gorm"
)

// Repository wraps all contact-message database operations. Messages are
// append-only; the application never updates or deletes them.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts one validated submission.
func (r *Repository) Create(ctx context.Context, msg *models.ContactMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// List returns messages newest-first with total count.
func (r *Repository) List(ctx context.Context, page, pageSize int) ([]*models.ContactMessage, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	db := r.db.WithContext(ctx).Model(&models.ContactMessage{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []*models.ContactMessage
	err := db.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&messages).Error
	return messages, total, err
}

// CountSince returns the number of messages created at or after t.
func (r *Repository) CountSince(ctx context.Context, t time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ContactMessage{}).
		Where("created_at >= ?", t).
		Count(&count).Error
	return count, err
}

// CountTotal returns the total number of stored messages.
func (r *Repository) CountTotal(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ContactMessage{}).Count(&count).Error
	return count, err
}
