package details

import (
	"context"
	"errors"
	"fmt"

	"github.com/basingerf-felix/spilna-peremoga-website/database/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Collection selects one of the two image collections owned by a detail
// page.
type Collection string

const (
	CollectionGallery Collection = "gallery"
	CollectionGrid    Collection = "grid"
)

var ErrDetailNotFound = errors.New("project detail not found")

// Repository wraps all detail-page database operations, including the
// ordered image collections fed by bulk ingestion.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetBySlugPublished returns one published detail page with both image
// collections in display order.
func (r *Repository) GetBySlugPublished(ctx context.Context, slug string) (*models.ProjectDetail, error) {
	var detail models.ProjectDetail
	err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position, id")
		}).
		Preload("GridImages", func(db *gorm.DB) *gorm.DB {
			return db.Order("position, id")
		}).
		First(&detail, "slug = ? AND is_published = ?", slug, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDetailNotFound
		}
		return nil, err
	}
	return &detail, nil
}

// GetByID returns a detail page without preloads.
func (r *Repository) GetByID(ctx context.Context, id uint) (*models.ProjectDetail, error) {
	var detail models.ProjectDetail
	err := r.db.WithContext(ctx).First(&detail, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDetailNotFound
		}
		return nil, err
	}
	return &detail, nil
}

// Create inserts a detail page.
func (r *Repository) Create(ctx context.Context, detail *models.ProjectDetail) error {
	return r.db.WithContext(ctx).Create(detail).Error
}

// Appender inserts images into one collection of a locked detail row,
// assigning strictly increasing positions starting at max(position)+1.
type Appender struct {
	tx       *gorm.DB
	detailID uint
	kind     Collection
	next     int
	saved    int
}

// Append persists one image record at the next position. The insert runs
// in a nested transaction (a savepoint), so a rejected row does not
// poison the surrounding bulk-upload transaction and later appends still
// commit.
func (a *Appender) Append(path, alt string) error {
	err := a.tx.Transaction(func(tx *gorm.DB) error {
		switch a.kind {
		case CollectionGrid:
			return tx.Create(&models.DetailGridImage{
				ProjectDetailID: a.detailID,
				Path:            path,
				Alt:             alt,
				Position:        a.next,
			}).Error
		default:
			return tx.Create(&models.DetailImage{
				ProjectDetailID: a.detailID,
				Path:            path,
				Alt:             alt,
				Position:        a.next,
			}).Error
		}
	})
	if err != nil {
		return err
	}
	a.next++
	a.saved++
	return nil
}

// Saved returns the number of records appended so far.
func (a *Appender) Saved() int {
	return a.saved
}

// WithCollectionLock runs fn with the detail row locked for the duration
// of one transaction. Position assignment happens against the locked row,
// so two concurrent bulk uploads to the same detail cannot compute the
// same next position.
func (r *Repository) WithCollectionLock(ctx context.Context, detailID uint, kind Collection, fn func(app *Appender) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		locked := tx
		// SQLite serializes writers on its own and rejects FOR UPDATE.
		if tx.Dialector.Name() == "postgres" {
			locked = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var detail models.ProjectDetail
		if err := locked.First(&detail, detailID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDetailNotFound
			}
			return err
		}

		maxPos, err := maxPosition(tx, detailID, kind)
		if err != nil {
			return err
		}

		return fn(&Appender{tx: tx, detailID: detailID, kind: kind, next: maxPos + 1})
	})
}

func maxPosition(tx *gorm.DB, detailID uint, kind Collection) (int, error) {
	var maxPos *int
	db := tx.Model(collectionModel(kind)).
		Select("MAX(position)").
		Where("project_detail_id = ?", detailID)
	if err := db.Scan(&maxPos).Error; err != nil {
		return 0, fmt.Errorf("failed to read max position: %w", err)
	}
	if maxPos == nil {
		return 0, nil
	}
	return *maxPos, nil
}

// ClearCollection deletes every image of one collection and returns the
// number of rows removed.
func (r *Repository) ClearCollection(ctx context.Context, detailID uint, kind Collection) (int64, error) {
	if _, err := r.GetByID(ctx, detailID); err != nil {
		return 0, err
	}

	res := r.db.WithContext(ctx).
		Where("project_detail_id = ?", detailID).
		Delete(collectionModel(kind))
	return res.RowsAffected, res.Error
}

// ListCollection returns one collection in display order.
func (r *Repository) ListCollection(ctx context.Context, detailID uint, kind Collection) ([]ImageRecord, error) {
	var records []ImageRecord
	err := r.db.WithContext(ctx).
		Model(collectionModel(kind)).
		Where("project_detail_id = ?", detailID).
		Order("position, id").
		Select("id", "path", "alt", "position").
		Scan(&records).Error
	return records, err
}

// ImageRecord is a flat projection of one collection row.
type ImageRecord struct {
	ID       uint   `json:"id"`
	Path     string `json:"path"`
	Alt      string `json:"alt,omitempty"`
	Position int    `json:"position"`
}

func collectionModel(kind Collection) interface{} {
	if kind == CollectionGrid {
		return &models.DetailGridImage{}
	}
	return &models.DetailImage{}
}
