// Package projects serves the public catalog: listings, detail pages
// and the per-unit landing pages.
package projects

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/basingerf-felix/spilna-peremoga-website/database/models"
	"github.com/basingerf-felix/spilna-peremoga-website/database/repo/details"
	projectsrepo "github.com/basingerf-felix/spilna-peremoga-website/database/repo/projects"
	"github.com/basingerf-felix/spilna-peremoga-website/database/repo/units"
)

// Page identifies one of the three unit landing pages.
type Page string

const (
	PagePlatform  Page = "platform"
	PageEducation Page = "education"
	PageSport     Page = "sport"
)

var (
	ErrUnknownPage     = errors.New("unknown landing page")
	ErrProjectNotFound = errors.New("project not found")
)

// UnitPages maps each landing page to its organizational unit slug.
type UnitPages struct {
	Platform  string
	Education string
	Sport     string
}

// Service composes the catalog repositories for the public API.
type Service struct {
	projects *projectsrepo.Repository
	units    *units.Repository
	details  *details.Repository
	pages    UnitPages
}

func NewService(p *projectsrepo.Repository, u *units.Repository, d *details.Repository, pages UnitPages) *Service {
	return &Service{projects: p, units: u, details: d, pages: pages}
}

// List returns published projects, optionally filtered by unit slugs.
func (s *Service) List(ctx context.Context, unitSlugs []string) ([]*models.Project, error) {
	return s.projects.ListPublished(ctx, unitSlugs)
}

// ListUnits returns every organizational unit.
func (s *Service) ListUnits(ctx context.Context) ([]*models.OrgUnit, error) {
	return s.units.ListAll(ctx)
}

// GetProject returns one published project by slug.
func (s *Service) GetProject(ctx context.Context, slug string) (*models.Project, error) {
	project, err := s.projects.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return project, nil
}

// GetDetail returns a published detail page and, when one exists, the
// project linked to it.
func (s *Service) GetDetail(ctx context.Context, slug string) (*models.ProjectDetail, *models.Project, error) {
	detail, err := s.details.GetBySlugPublished(ctx, slug)
	if err != nil {
		return nil, nil, err
	}

	project, err := s.projects.GetByDetailID(ctx, detail.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return detail, nil, nil
		}
		return nil, nil, err
	}
	return detail, project, nil
}

// PageProject is one catalog entry with the layout direction resolved
// for a specific landing page.
type PageProject struct {
	*models.Project
	Reversed bool `json:"reversed"`
}

// PageProjects returns the projects of one unit landing page. Layout
// direction comes from the page-specific reverse flag alone; the
// project's global flag only applies outside the landing pages.
func (s *Service) PageProjects(ctx context.Context, page Page) ([]PageProject, error) {
	unitSlug, err := s.unitSlug(page)
	if err != nil {
		return nil, err
	}

	list, err := s.projects.ListPublished(ctx, []string{unitSlug})
	if err != nil {
		return nil, err
	}

	out := make([]PageProject, 0, len(list))
	for _, p := range list {
		out = append(out, PageProject{
			Project:  p,
			Reversed: pageReverse(page, p),
		})
	}
	return out, nil
}

func (s *Service) unitSlug(page Page) (string, error) {
	switch page {
	case PagePlatform:
		return s.pages.Platform, nil
	case PageEducation:
		return s.pages.Education, nil
	case PageSport:
		return s.pages.Sport, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPage, page)
	}
}

func pageReverse(page Page, p *models.Project) bool {
	switch page {
	case PagePlatform:
		return p.IsReversePlatform
	case PageEducation:
		return p.IsReverseEducation
	case PageSport:
		return p.IsReverseSport
	}
	return false
}
