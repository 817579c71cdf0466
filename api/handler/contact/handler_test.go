package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/basingerf-felix/spilna-peremoga-website/database/models"
	"github.com/basingerf-felix/spilna-peremoga-website/database/repo/contacts"
	contactSvc "github.com/basingerf-felix/spilna-peremoga-website/internal/contact"
)

type stubNotifier struct {
	err  error
	sent int
}

func (s *stubNotifier) SendContactEmails(ctx context.Context, msg *models.ContactMessage) error {
	s.sent++
	return s.err
}

func setupRouter(t *testing.T, notifier contactSvc.Notifier) (*gin.Engine, *contacts.Repository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.ContactMessage{}))

	repo := contacts.NewRepository(db)
	handler := NewHandler(contactSvc.NewService(repo, notifier))

	router := gin.New()
	router.POST("/api/v1/contact", handler.Submit)
	return router, repo
}

func validBody() map[string]string {
	return map[string]string{
		"first_name": "Олена",
		"last_name":  "Шевченко",
		"email":      "olena@example.com",
		"phone":      "+38 (050) 123-45-67",
		"subject":    "Запит про співпрацю",
		"message":    "Доброго дня! Хочу дізнатися більше про ваші проєкти.",
	}
}

func postJSON(router *gin.Engine, body map[string]string) *httptest.ResponseRecorder {
	jsonBody, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitJSON(t *testing.T) {
	notifier := &stubNotifier{}
	router, repo := setupRouter(t, notifier)

	w := postJSON(router, validBody())
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, notifier.sent)

	total, err := repo.CountTotal(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestSubmitFormEncoded(t *testing.T) {
	router, repo := setupRouter(t, &stubNotifier{})

	form := url.Values{}
	for k, v := range validBody() {
		form.Set(k, v)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	total, err := repo.CountTotal(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestSubmitValidationFailure(t *testing.T) {
	router, repo := setupRouter(t, &stubNotifier{})

	body := validBody()
	body["subject"] = "Visit https://spam.example now"
	w := postJSON(router, body)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "subject")

	total, err := repo.CountTotal(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestSubmitHoneypot(t *testing.T) {
	notifier := &stubNotifier{}
	router, repo := setupRouter(t, notifier)

	body := validBody()
	body["website"] = "http://spam.com"
	w := postJSON(router, body)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, 0, notifier.sent)

	total, err := repo.CountTotal(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestSubmitMailFailureReturnsWarning(t *testing.T) {
	router, repo := setupRouter(t, &stubNotifier{err: errors.New("smtp down")})

	w := postJSON(router, validBody())
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "warning")

	total, err := repo.CountTotal(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}
