package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/basingerf-felix/spilna-peremoga-website/database/models"
	"github.com/basingerf-felix/spilna-peremoga-website/database/repo/contacts"
	"github.com/basingerf-felix/spilna-peremoga-website/database/repo/dashboard"
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
		&models.ContactMessage{},
	))
	return NewService(dashboard.NewRepository(db), contacts.NewRepository(db)), db
}

func TestGetStats(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.OrgUnit{Name: "Platform", Slug: "platform"}).Error)

	published := &models.Project{Title: "A", Slug: "a", Description: "d"}
	require.NoError(t, db.Create(published).Error)
	draft := &models.Project{Title: "B", Slug: "b", Description: "d"}
	require.NoError(t, db.Create(draft).Error)
	require.NoError(t, db.Model(draft).Update("is_published", false).Error)

	detail := &models.ProjectDetail{Slug: "story"}
	require.NoError(t, db.Create(detail).Error)
	require.NoError(t, db.Create(&models.DetailImage{ProjectDetailID: detail.ID, Path: "a.jpg"}).Error)
	require.NoError(t, db.Create(&models.DetailGridImage{ProjectDetailID: detail.ID, Path: "b.jpg"}).Error)
	require.NoError(t, db.Create(&models.DetailGridImage{ProjectDetailID: detail.ID, Path: "c.jpg"}).Error)

	require.NoError(t, db.Create(&models.ContactMessage{
		FirstName: "Олена", Email: "o@example.com", Subject: "s", Message: "m",
	}).Error)

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.Projects.Total)
	assert.Equal(t, int64(1), stats.Projects.Published)
	assert.Equal(t, int64(1), stats.Units.Total)
	assert.Equal(t, int64(1), stats.Details.Total)
	assert.Equal(t, int64(1), stats.Details.GalleryImages)
	assert.Equal(t, int64(2), stats.Details.GridImages)
	assert.Equal(t, int64(1), stats.Messages.Total)
	assert.Equal(t, int64(1), stats.Messages.Today)
}

func TestGetStatsEmpty(t *testing.T) {
	svc, _ := newTestService(t)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Projects.Total)
	assert.Equal(t, int64(0), stats.Messages.Today)
}
