package contact

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/basingerf-felix/spilna-peremoga-website/database/models"
	"github.com/basingerf-felix/spilna-peremoga-website/database/repo/contacts"
)

type fakeNotifier struct {
	sent []*models.ContactMessage
	err  error
}

func (f *fakeNotifier) SendContactEmails(ctx context.Context, msg *models.ContactMessage) error {
	f.sent = append(f.sent, msg)
	return f.err
}

func newTestRepo(t *testing.T) *contacts.Repository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.ContactMessage{}))
	return contacts.NewRepository(db)
}

func TestSubmitPersistsAndNotifies(t *testing.T) {
	repo := newTestRepo(t)
	notifier := &fakeNotifier{}
	svc := NewService(repo, notifier)

	result, fieldErrs, err := svc.Submit(context.Background(), validForm(), ClientMeta{
		IP:        "203.0.113.7",
		UserAgent: "Mozilla/5.0",
	})
	require.NoError(t, err)
	require.Nil(t, fieldErrs)
	require.NotNil(t, result)

	assert.Empty(t, result.Warning)
	assert.NotZero(t, result.Message.ID)
	assert.Equal(t, "203.0.113.7", result.Message.IP)
	require.Len(t, notifier.sent, 1)

	total, err := repo.CountTotal(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestSubmitInvalidFormDoesNotPersist(t *testing.T) {
	repo := newTestRepo(t)
	notifier := &fakeNotifier{}
	svc := NewService(repo, notifier)

	form := validForm()
	form.Subject = "see https://spam.example"
	result, fieldErrs, err := svc.Submit(context.Background(), form, ClientMeta{})
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Contains(t, fieldErrs, "subject")
	assert.Empty(t, notifier.sent)

	total, err := repo.CountTotal(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestSubmitMailFailureKeepsRecord(t *testing.T) {
	repo := newTestRepo(t)
	notifier := &fakeNotifier{err: errors.New("smtp unreachable")}
	svc := NewService(repo, notifier)

	result, fieldErrs, err := svc.Submit(context.Background(), validForm(), ClientMeta{})
	require.NoError(t, err)
	require.Nil(t, fieldErrs)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.Warning)

	total, err := repo.CountTotal(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestSubmitWithoutNotifier(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewService(repo, nil)

	result, fieldErrs, err := svc.Submit(context.Background(), validForm(), ClientMeta{})
	require.NoError(t, err)
	require.Nil(t, fieldErrs)
	assert.Empty(t, result.Warning)
}

func TestSubmitTruncatesUserAgent(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewService(repo, nil)

	longUA := strings.Repeat("x", 600)
	result, _, err := svc.Submit(context.Background(), validForm(), ClientMeta{UserAgent: longUA})
	require.NoError(t, err)
	assert.Len(t, result.Message.UserAgent, 500)
}
