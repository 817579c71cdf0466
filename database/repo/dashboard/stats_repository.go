package dashboard

import (
	"context"

	"github.com/basingerf-felix/spilna-peremoga-website/database/models"
	"gorm.io/gorm"
)

// Repository exposes the count queries behind the admin overview.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) count(ctx context.Context, model interface{}, conds ...interface{}) (int64, error) {
	var n int64
	db := r.db.WithContext(ctx).Model(model)
	if len(conds) > 0 {
		db = db.Where(conds[0], conds[1:]...)
	}
	err := db.Count(&n).Error
	return n, err
}

func (r *Repository) CountProjects(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.Project{})
}

func (r *Repository) CountPublishedProjects(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.Project{}, "is_published = ?", true)
}

func (r *Repository) CountUnits(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.OrgUnit{})
}

func (r *Repository) CountDetails(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.ProjectDetail{})
}

func (r *Repository) CountGalleryImages(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.DetailImage{})
}

func (r *Repository) CountGridImages(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.DetailGridImage{})
}
