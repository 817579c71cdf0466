package admin

import (
	"archive/zip"
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/basingerf-felix/spilna-peremoga-website/database/models"
	"github.com/basingerf-felix/spilna-peremoga-website/database/repo/details"
	"github.com/basingerf-felix/spilna-peremoga-website/internal/gallery"
	"github.com/basingerf-felix/spilna-peremoga-website/storage"
)

func setupGalleryRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.ProjectDetail{},
		&models.DetailImage{},
		&models.DetailGridImage{},
	))

	detail := models.ProjectDetail{Slug: "new-stadium", TitleOverride: "New Stadium"}
	require.NoError(t, db.Create(&detail).Error)

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	handler := NewGalleryHandler(gallery.NewService(details.NewRepository(db), store))

	router := gin.New()
	router.POST("/api/v1/admin/details/:id/grid", handler.UploadGrid)
	router.POST("/api/v1/admin/details/:id/gallery", handler.UploadGallery)
	router.DELETE("/api/v1/admin/details/:id/gallery", handler.ClearGallery)
	return router
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.White)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func zipArchive(t *testing.T, files map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, data := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func postArchive(router *gin.Engine, target string, archive []byte) *httptest.ResponseRecorder {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, _ := mw.CreateFormFile("archive", "photos.zip")
	part.Write(archive)
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUploadGallery(t *testing.T) {
	router := setupGalleryRouter(t)

	archive := zipArchive(t, map[string][]byte{
		"Фото один.png": pngBytes(t),
		"notes.txt":     []byte("skip me"),
	})
	w := postArchive(router, "/api/v1/admin/details/1/gallery", archive)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"saved":1`)
}

func TestUploadGridInvalidArchive(t *testing.T) {
	router := setupGalleryRouter(t)

	w := postArchive(router, "/api/v1/admin/details/1/grid", []byte("not a zip"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadUnknownDetail(t *testing.T) {
	router := setupGalleryRouter(t)

	archive := zipArchive(t, map[string][]byte{"a.png": pngBytes(t)})
	w := postArchive(router, "/api/v1/admin/details/999/gallery", archive)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUploadBadID(t *testing.T) {
	router := setupGalleryRouter(t)

	w := postArchive(router, "/api/v1/admin/details/tree/gallery", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClearGallery(t *testing.T) {
	router := setupGalleryRouter(t)

	archive := zipArchive(t, map[string][]byte{"a.png": pngBytes(t), "b.png": pngBytes(t)})
	w := postArchive(router, "/api/v1/admin/details/1/gallery", archive)
	require.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/details/1/gallery", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"removed":2`)
}
