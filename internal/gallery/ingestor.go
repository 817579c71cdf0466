// Package gallery ingests bulk ZIP uploads into the ordered image
// collections of a project detail page.
package gallery

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/basingerf-felix/spilna-peremoga-website/database/repo/details"
	"github.com/basingerf-felix/spilna-peremoga-website/internal/archive"
	"github.com/basingerf-felix/spilna-peremoga-website/storage"
	"github.com/basingerf-felix/spilna-peremoga-website/utils"
)

// ErrInvalidArchive marks an upload that is not a valid ZIP container.
var ErrInvalidArchive = errors.New("uploaded file is not a valid ZIP archive")

const (
	gridDir    = "projects/grid"
	galleryDir = "projects/gallery"

	slugFallback = "image"
)

// Report summarises one ingestion run.
type Report struct {
	Saved int           `json:"saved"`
	Stats archive.Stats `json:"stats"`
}

// Summary renders the run for an administrator.
func (r *Report) Summary() string {
	s := r.Stats
	breakdown := fmt.Sprintf(
		"%d entries: %d directories, %d macOS junk, %d hidden forks, %d disallowed extensions, %d empty or unreadable, %d soft decode failures, %d failed saves",
		s.Total, s.Directories, s.MacJunk, s.HiddenFork, s.BadExtension, s.Empty, s.DecodeFailed, s.SaveFailed)
	if r.Saved == 0 {
		return "no acceptable images found in archive (" + breakdown + ")"
	}
	return fmt.Sprintf("saved %d images (%s)", r.Saved, breakdown)
}

// Service runs bulk ingestion and clearing against detail-page image
// collections.
type Service struct {
	details *details.Repository
	store   storage.Provider
}

func NewService(detailsRepo *details.Repository, store storage.Provider) *Service {
	return &Service{details: detailsRepo, store: store}
}

// IngestGrid ingests a ZIP archive into the masonry grid collection of
// a detail page.
func (s *Service) IngestGrid(ctx context.Context, detailID uint, zipBytes []byte) (*Report, error) {
	return s.ingest(ctx, detailID, zipBytes, details.CollectionGrid, gridDir)
}

// IngestGallery ingests a ZIP archive into the gallery collection of a
// detail page.
func (s *Service) IngestGallery(ctx context.Context, detailID uint, zipBytes []byte) (*Report, error) {
	return s.ingest(ctx, detailID, zipBytes, details.CollectionGallery, galleryDir)
}

func (s *Service) ingest(ctx context.Context, detailID uint, zipBytes []byte, kind details.Collection, dir string) (*Report, error) {
	reader, err := zip.NewReader(bytes.NewReader(zipBytes), int64(len(zipBytes)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArchive, err)
	}

	scanner := archive.NewScanner(reader)

	err = s.details.WithCollectionLock(ctx, detailID, kind, func(app *details.Appender) error {
		for {
			entry, ok := scanner.Next()
			if !ok {
				return nil
			}
			if entry.Class != archive.ClassAccepted {
				continue
			}
			// A failed entry is skipped and counted; the batch
			// continues.
			if err := s.saveEntry(ctx, app, entry, dir); err != nil {
				scanner.RecordSaveFailed()
				log.Printf("Warning: failed to save archive entry %s: %v", entry.Name, err)
				continue
			}
			scanner.RecordSaved()
		}
	})
	if err != nil {
		return nil, err
	}

	stats := scanner.Stats()
	return &Report{Saved: stats.Saved, Stats: stats}, nil
}

func (s *Service) saveEntry(ctx context.Context, app *details.Appender, entry archive.Entry, dir string) error {
	base := utils.Slugify(strings.TrimSuffix(entry.Base, entry.Ext), slugFallback)
	filename := base + entry.Ext

	name, err := storage.AvailableName(ctx, s.store, dir, filename)
	if err != nil {
		return err
	}

	if err := s.store.SaveWithContext(ctx, name, bytes.NewReader(entry.Data)); err != nil {
		return err
	}

	if err := app.Append(name, ""); err != nil {
		// Keep storage consistent with the database.
		if delErr := s.store.DeleteWithContext(ctx, name); delErr != nil {
			log.Printf("Warning: failed to remove orphaned file %s: %v", name, delErr)
		}
		return err
	}
	return nil
}

// ClearGrid removes every grid image of a detail page and returns the
// number removed.
func (s *Service) ClearGrid(ctx context.Context, detailID uint) (int64, error) {
	return s.details.ClearCollection(ctx, detailID, details.CollectionGrid)
}

// ClearGallery removes every gallery image of a detail page and returns
// the number removed.
func (s *Service) ClearGallery(ctx context.Context, detailID uint) (int64, error) {
	return s.details.ClearCollection(ctx, detailID, details.CollectionGallery)
}
