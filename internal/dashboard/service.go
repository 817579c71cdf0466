// Package dashboard aggregates the admin overview counters.
package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/basingerf-felix/spilna-peremoga-website/database/repo/contacts"
	"github.com/basingerf-felix/spilna-peremoga-website/database/repo/dashboard"
)

// Service queries the overview counters for the admin dashboard.
type Service struct {
	stats    *dashboard.Repository
	contacts *contacts.Repository
}

func NewService(stats *dashboard.Repository, contactsRepo *contacts.Repository) *Service {
	return &Service{stats: stats, contacts: contactsRepo}
}

// StatsResponse is the admin dashboard payload.
type StatsResponse struct {
	Projects ProjectStats `json:"projects"`
	Units    CountStats   `json:"units"`
	Details  DetailStats  `json:"details"`
	Messages MessageStats `json:"messages"`
}

type ProjectStats struct {
	Total     int64 `json:"total"`
	Published int64 `json:"published"`
}

type CountStats struct {
	Total int64 `json:"total"`
}

type DetailStats struct {
	Total         int64 `json:"total"`
	GalleryImages int64 `json:"gallery_images"`
	GridImages    int64 `json:"grid_images"`
}

type MessageStats struct {
	Total int64 `json:"total"`
	Today int64 `json:"today"`
}

// GetStats runs the counter queries in parallel and assembles the
// response.
func (s *Service) GetStats(ctx context.Context) (*StatsResponse, error) {
	var resp StatsResponse

	g, gctx := errgroup.WithContext(ctx)

	counters := []struct {
		dst   *int64
		query func(context.Context) (int64, error)
	}{
		{&resp.Projects.Total, s.stats.CountProjects},
		{&resp.Projects.Published, s.stats.CountPublishedProjects},
		{&resp.Units.Total, s.stats.CountUnits},
		{&resp.Details.Total, s.stats.CountDetails},
		{&resp.Details.GalleryImages, s.stats.CountGalleryImages},
		{&resp.Details.GridImages, s.stats.CountGridImages},
		{&resp.Messages.Total, s.contacts.CountTotal},
	}
	for _, c := range counters {
		g.Go(func() error {
			n, err := c.query(gctx)
			if err != nil {
				return err
			}
			*c.dst = n
			return nil
		})
	}

	g.Go(func() error {
		now := time.Now()
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		n, err := s.contacts.CountSince(gctx, midnight)
		if err != nil {
			return err
		}
		resp.Messages.Today = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &resp, nil
}
