package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/basingerf-felix/spilna-peremoga-website/api/common"
	"github.com/basingerf-felix/spilna-peremoga-website/internal/dashboard"
)

// DashboardHandler serves the admin overview counters.
type DashboardHandler struct {
	service *dashboard.Service
}

func NewDashboardHandler(service *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetStats handles GET /api/v1/admin/dashboard.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		common.RespondError(c, http.StatusInternalServerError, "Failed to load dashboard stats")
		return
	}
	common.RespondSuccess(c, stats)
}
