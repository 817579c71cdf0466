// Package admin holds the token-protected management endpoints.
package admin

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/basingerf-felix/spilna-peremoga-website/api/common"
	"github.com/basingerf-felix/spilna-peremoga-website/database/repo/details"
	"github.com/basingerf-felix/spilna-peremoga-website/internal/gallery"
)

// GalleryHandler runs bulk ZIP ingestion and clearing for the two image
// collections of a detail page.
type GalleryHandler struct {
	service *gallery.Service
}

func NewGalleryHandler(service *gallery.Service) *GalleryHandler {
	return &GalleryHandler{service: service}
}

// UploadGrid handles POST /api/v1/admin/details/:id/grid.
func (h *GalleryHandler) UploadGrid(c *gin.Context) {
	h.upload(c, h.service.IngestGrid)
}

// UploadGallery handles POST /api/v1/admin/details/:id/gallery.
func (h *GalleryHandler) UploadGallery(c *gin.Context) {
	h.upload(c, h.service.IngestGallery)
}

// ClearGrid handles DELETE /api/v1/admin/details/:id/grid.
func (h *GalleryHandler) ClearGrid(c *gin.Context) {
	h.clear(c, h.service.ClearGrid)
}

// ClearGallery handles DELETE /api/v1/admin/details/:id/gallery.
func (h *GalleryHandler) ClearGallery(c *gin.Context) {
	h.clear(c, h.service.ClearGallery)
}

func detailID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		common.RespondError(c, http.StatusBadRequest, "Invalid detail page id")
		return 0, false
	}
	return uint(id), true
}

func (h *GalleryHandler) upload(c *gin.Context, ingest func(ctx context.Context, id uint, zipBytes []byte) (*gallery.Report, error)) {
	id, ok := detailID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("archive")
	if err != nil {
		common.RespondError(c, http.StatusBadRequest, "Missing archive file")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		common.RespondError(c, http.StatusBadRequest, "Failed to open uploaded file")
		return
	}
	defer file.Close()

	zipBytes, err := io.ReadAll(file)
	if err != nil {
		common.RespondError(c, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	report, err := ingest(c.Request.Context(), id, zipBytes)
	if err != nil {
		switch {
		case errors.Is(err, gallery.ErrInvalidArchive):
			common.RespondError(c, http.StatusBadRequest, "Uploaded file is not a valid ZIP archive")
		case errors.Is(err, details.ErrDetailNotFound):
			common.RespondError(c, http.StatusNotFound, "Detail page not found")
		default:
			common.RespondError(c, http.StatusInternalServerError, "Ingestion failed")
		}
		return
	}

	common.RespondSuccessMessage(c, report.Summary(), report)
}

func (h *GalleryHandler) clear(c *gin.Context, clear func(ctx context.Context, id uint) (int64, error)) {
	id, ok := detailID(c)
	if !ok {
		return
	}

	removed, err := clear(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, details.ErrDetailNotFound) {
			common.RespondError(c, http.StatusNotFound, "Detail page not found")
			return
		}
		common.RespondError(c, http.StatusInternalServerError, "Failed to clear collection")
		return
	}

	common.RespondSuccessMessage(c, "Collection cleared", gin.H{"removed": removed})
}
