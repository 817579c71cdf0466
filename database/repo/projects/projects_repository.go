package projects

import (
	"context"

	"github.com/basingerf-felix/spilna-peremoga-website/database/models"
	"gorm.io/gorm"
)

// Repository wraps all project catalog database operations.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// orderedPreloads attaches the badge/image/unit associations in display
// order, the way every public page consumes them.
func (r *Repository) orderedPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Badges", func(db *gorm.DB) *gorm.DB {
			return db.Order("position, id")
		}).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position, id")
		}).
		Preload("Units")
}

// ListPublished returns published projects ordered by (position, id),
// optionally restricted to projects attached to any of the given unit
// slugs.
func (r *Repository) ListPublished(ctx context.Context, unitSlugs []string) ([]*models.Project, error) {
	db := r.orderedPreloads(r.db.WithContext(ctx).Model(&models.Project{})).
		Where("projects.is_published = ?", true)

	if len(unitSlugs) > 0 {
		db = db.
			Joins("JOIN project_units pu ON pu.project_id = projects.id").
			Joins("JOIN org_units u ON u.id = pu.org_unit_id").
			Where("u.slug IN ?", unitSlugs).
			Distinct("projects.*")
	}

	var projects []*models.Project
	err := db.Order("projects.position, projects.id").Find(&projects).Error
	return projects, err
}

// GetBySlug returns one published project with its associations.
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*models.Project, error) {
	var project models.Project
	err := r.orderedPreloads(r.db.WithContext(ctx)).
		First(&project, "slug = ? AND is_published = ?", slug, true).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetByDetailID returns the project linked to a detail page, if any.
func (r *Repository) GetByDetailID(ctx context.Context, detailID uint) (*models.Project, error) {
	var project models.Project
	err := r.orderedPreloads(r.db.WithContext(ctx)).
		First(&project, "detail_id = ?", detailID).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Create inserts a project with its associations.
func (r *Repository) Create(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}
