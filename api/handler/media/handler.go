// Package media streams stored files to the public site.
package media

import (
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/basingerf-felix/spilna-peremoga-website/api/common"
	"github.com/basingerf-felix/spilna-peremoga-website/storage"
	"github.com/basingerf-felix/spilna-peremoga-website/utils"
)

// Handler serves media files from the configured storage backend.
type Handler struct {
	store storage.Provider
}

func NewHandler(store storage.Provider) *Handler {
	return &Handler{store: store}
}

// Serve handles GET /media/*path.
func (h *Handler) Serve(c *gin.Context) {
	storagePath := strings.TrimPrefix(c.Param("path"), "/")
	if !storage.IsValidStoragePath(storagePath) {
		common.RespondError(c, http.StatusNotFound, "File not found")
		return
	}

	rs, err := h.store.GetWithContext(c.Request.Context(), storagePath)
	if err != nil {
		common.RespondError(c, http.StatusNotFound, "File not found")
		return
	}
	if closer, ok := rs.(io.Closer); ok {
		defer closer.Close()
	}

	contentType := utils.ContentTypeByExtension(storagePath)
	if contentType == "" {
		if sniffed, err := utils.SniffContentType(rs); err == nil {
			contentType = sniffed
		}
	}
	if contentType != "" {
		c.Header("Content-Type", contentType)
	}
	c.Header("Cache-Control", "public, max-age=86400")

	http.ServeContent(c.Writer, c.Request, path.Base(storagePath), time.Time{}, rs)
}
