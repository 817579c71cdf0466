// Package contact exposes the public contact-form endpoint.
package contact

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/basingerf-felix/spilna-peremoga-website/api/common"
	"github.com/basingerf-felix/spilna-peremoga-website/api/middleware"
	contactSvc "github.com/basingerf-felix/spilna-peremoga-website/internal/contact"
)

// Handler accepts contact-form submissions.
type Handler struct {
	service *contactSvc.Service
}

func NewHandler(service *contactSvc.Service) *Handler {
	return &Handler{service: service}
}

// Submit handles POST /api/v1/contact. The form arrives either as
// classic form encoding or as JSON.
func (h *Handler) Submit(c *gin.Context) {
	var form contactSvc.Form
	if err := c.ShouldBind(&form); err != nil {
		common.RespondError(c, http.StatusBadRequest, "Malformed request body")
		return
	}

	meta := contactSvc.ClientMeta{
		IP:        middleware.ClientIP(c),
		UserAgent: c.Request.UserAgent(),
	}

	result, fieldErrs, err := h.service.Submit(c.Request.Context(), &form, meta)
	if err != nil {
		common.RespondError(c, http.StatusInternalServerError, "Failed to store submission")
		return
	}
	if fieldErrs != nil {
		common.RespondValidationErrors(c, fieldErrs)
		return
	}

	data := gin.H{"id": result.Message.ID}
	if result.Warning != "" {
		data["warning"] = result.Warning
	}
	common.RespondCreated(c, "Message received", data)
}
