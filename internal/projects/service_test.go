package projects

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/basingerf-felix/spilna-peremoga-website/database/models"
	"github.com/basingerf-felix/spilna-peremoga-website/database/repo/details"
	projectsrepo "github.com/basingerf-felix/spilna-peremoga-website/database/repo/projects"
	"github.com/basingerf-felix/spilna-peremoga-website/database/repo/units"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.OrgUnit{},
		&models.Project{},
		&models.ProjectImage{},
		&models.ProjectBadge{},
		&models.ProjectDetail{},
		&models.DetailImage{},
		&models.DetailGridImage{},
	))

	svc := NewService(
		projectsrepo.NewRepository(db),
		units.NewRepository(db),
		details.NewRepository(db),
		UnitPages{
			Platform:  "gromadska-organizaciya-spilna-peremoga",
			Education: "tov-kreativna-agenciya-brspilna-peremoga",
			Sport:     "prodakshn-studiya-brspilna-peremoga",
		},
	)
	return svc, db
}

func seedUnit(t *testing.T, db *gorm.DB, name, slug string) *models.OrgUnit {
	t.Helper()
	unit := &models.OrgUnit{Name: name, Slug: slug}
	require.NoError(t, db.Create(unit).Error)
	return unit
}

func TestListFiltersByUnit(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	platform := seedUnit(t, db, "Platform", "gromadska-organizaciya-spilna-peremoga")
	sport := seedUnit(t, db, "Sport", "prodakshn-studiya-brspilna-peremoga")

	require.NoError(t, db.Create(&models.Project{
		Title: "A", Slug: "a", Description: "d", Position: 2,
		Units: []*models.OrgUnit{platform},
	}).Error)
	require.NoError(t, db.Create(&models.Project{
		Title: "B", Slug: "b", Description: "d", Position: 1,
		Units: []*models.OrgUnit{platform, sport},
	}).Error)
	unpublished := &models.Project{
		Title: "C", Slug: "c", Description: "d",
		Units: []*models.OrgUnit{platform},
	}
	require.NoError(t, db.Create(unpublished).Error)
	require.NoError(t, db.Model(unpublished).Update("is_published", false).Error)

	all, err := svc.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "b", all[0].Slug)
	assert.Equal(t, "a", all[1].Slug)

	sportOnly, err := svc.List(ctx, []string{"prodakshn-studiya-brspilna-peremoga"})
	require.NoError(t, err)
	require.Len(t, sportOnly, 1)
	assert.Equal(t, "b", sportOnly[0].Slug)

	both, err := svc.List(ctx, []string{
		"gromadska-organizaciya-spilna-peremoga",
		"prodakshn-studiya-brspilna-peremoga",
	})
	require.NoError(t, err)
	assert.Len(t, both, 2)
}

func TestGetProject(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.Project{
		Title: "A", Slug: "a", Description: "d",
		Badges: []models.ProjectBadge{
			{Text: "2024", Position: 1},
			{Text: "Київ", Position: 0},
		},
	}).Error)

	p, err := svc.GetProject(ctx, "a")
	require.NoError(t, err)
	require.Len(t, p.Badges, 2)
	assert.Equal(t, "Київ", p.Badges[0].Text)

	_, err = svc.GetProject(ctx, "missing")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestGetDetailWithLinkedProject(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	detail := &models.ProjectDetail{Slug: "story", IsPublished: true}
	require.NoError(t, db.Create(detail).Error)
	require.NoError(t, db.Create(&models.Project{
		Title: "A", Slug: "a", Description: "d", DetailID: &detail.ID,
	}).Error)

	got, project, err := svc.GetDetail(ctx, "story")
	require.NoError(t, err)
	assert.Equal(t, detail.ID, got.ID)
	require.NotNil(t, project)
	assert.Equal(t, "a", project.Slug)

	orphan := &models.ProjectDetail{Slug: "orphan", IsPublished: true}
	require.NoError(t, db.Create(orphan).Error)
	got, project, err = svc.GetDetail(ctx, "orphan")
	require.NoError(t, err)
	assert.Equal(t, orphan.ID, got.ID)
	assert.Nil(t, project)

	draft := &models.ProjectDetail{Slug: "draft"}
	require.NoError(t, db.Create(draft).Error)
	require.NoError(t, db.Model(draft).Update("is_published", false).Error)
	_, _, err = svc.GetDetail(ctx, "draft")
	assert.ErrorIs(t, err, details.ErrDetailNotFound)
}

func TestPageProjectsResolvesReverse(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	platform := seedUnit(t, db, "Platform", "gromadska-organizaciya-spilna-peremoga")

	require.NoError(t, db.Create(&models.Project{
		Title: "PageFlag", Slug: "page-flag", Description: "d", Position: 0,
		IsReversePlatform: true,
		Units:             []*models.OrgUnit{platform},
	}).Error)
	require.NoError(t, db.Create(&models.Project{
		Title: "GlobalFlag", Slug: "global-flag", Description: "d", Position: 1,
		IsReverse: true,
		Units:     []*models.OrgUnit{platform},
	}).Error)
	require.NoError(t, db.Create(&models.Project{
		Title: "NoFlag", Slug: "no-flag", Description: "d", Position: 2,
		Units: []*models.OrgUnit{platform},
	}).Error)

	list, err := svc.PageProjects(ctx, PagePlatform)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.True(t, list[0].Reversed)
	// The page field alone decides the direction on a landing page, so a
	// global is_reverse without the platform flag renders normally.
	assert.False(t, list[1].Reversed)
	assert.False(t, list[2].Reversed)

	_, err = svc.PageProjects(ctx, Page("unknown"))
	assert.ErrorIs(t, err, ErrUnknownPage)
}
