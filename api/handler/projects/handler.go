// Package projects exposes the public catalog endpoints.
package projects

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/basingerf-felix/spilna-peremoga-website/api/common"
	"github.com/basingerf-felix/spilna-peremoga-website/database/repo/details"
	projectsSvc "github.com/basingerf-felix/spilna-peremoga-website/internal/projects"
)

// Handler serves the public project catalog.
type Handler struct {
	service *projectsSvc.Service
}

func NewHandler(service *projectsSvc.Service) *Handler {
	return &Handler{service: service}
}

// ListProjects handles GET /api/v1/projects. Unit filters come either
// as repeated ?unit= parameters or one comma-separated ?units= value.
func (h *Handler) ListProjects(c *gin.Context) {
	slugs := c.QueryArray("unit")
	if joined := c.Query("units"); joined != "" {
		for _, s := range strings.Split(joined, ",") {
			if s = strings.TrimSpace(s); s != "" {
				slugs = append(slugs, s)
			}
		}
	}

	list, err := h.service.List(c.Request.Context(), slugs)
	if err != nil {
		common.RespondError(c, http.StatusInternalServerError, "Failed to list projects")
		return
	}
	common.RespondSuccess(c, gin.H{"projects": list})
}

// GetProject handles GET /api/v1/projects/:slug.
func (h *Handler) GetProject(c *gin.Context) {
	project, err := h.service.GetProject(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, projectsSvc.ErrProjectNotFound) {
			common.RespondError(c, http.StatusNotFound, "Project not found")
			return
		}
		common.RespondError(c, http.StatusInternalServerError, "Failed to load project")
		return
	}
	common.RespondSuccess(c, project)
}

// GetDetail handles GET /api/v1/details/:slug.
func (h *Handler) GetDetail(c *gin.Context) {
	detail, project, err := h.service.GetDetail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, details.ErrDetailNotFound) {
			common.RespondError(c, http.StatusNotFound, "Detail page not found")
			return
		}
		common.RespondError(c, http.StatusInternalServerError, "Failed to load detail page")
		return
	}
	common.RespondSuccess(c, gin.H{"detail": detail, "project": project})
}

// ListUnits handles GET /api/v1/units.
func (h *Handler) ListUnits(c *gin.Context) {
	units, err := h.service.ListUnits(c.Request.Context())
	if err != nil {
		common.RespondError(c, http.StatusInternalServerError, "Failed to list units")
		return
	}
	common.RespondSuccess(c, gin.H{"units": units})
}

// PageProjects handles GET /api/v1/pages/:page/projects.
func (h *Handler) PageProjects(c *gin.Context) {
	page := projectsSvc.Page(c.Param("page"))

	list, err := h.service.PageProjects(c.Request.Context(), page)
	if err != nil {
		if errors.Is(err, projectsSvc.ErrUnknownPage) {
			common.RespondError(c, http.StatusNotFound, "Unknown page")
			return
		}
		common.RespondError(c, http.StatusInternalServerError, "Failed to load page projects")
		return
	}
	common.RespondSuccess(c, gin.H{"projects": list})
}
