package units

import (
	"context"

	"github.com/basingerf-felix/spilna-peremoga-website/database/models"
	"gorm.io/gorm"
)

// Repository wraps all org-unit database operations.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListAll returns every unit ordered by name.
func (r *Repository) ListAll(ctx context.Context) ([]*models.OrgUnit, error) {
	var units []*models.OrgUnit
	err := r.db.WithContext(ctx).Order("name").Find(&units).Error
	return units, err
}

// GetBySlug returns the unit with the given slug.
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*models.OrgUnit, error) {
	var unit models.OrgUnit
	err := r.db.WithContext(ctx).First(&unit, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

// Create inserts a new unit.
func (r *Repository) Create(ctx context.Context, unit *models.OrgUnit) error {
	return r.db.WithContext(ctx).Create(unit).Error
}
