package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/basingerf-felix/spilna-peremoga-website/api/common"
	"github.com/basingerf-felix/spilna-peremoga-website/database/repo/contacts"
)

// MessagesHandler lists stored contact submissions.
type MessagesHandler struct {
	repo *contacts.Repository
}

func NewMessagesHandler(repo *contacts.Repository) *MessagesHandler {
	return &MessagesHandler{repo: repo}
}

// List handles GET /api/v1/admin/messages, newest first.
func (h *MessagesHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	messages, total, err := h.repo.List(c.Request.Context(), page, pageSize)
	if err != nil {
		common.RespondError(c, http.StatusInternalServerError, "Failed to list messages")
		return
	}

	common.RespondSuccess(c, gin.H{
		"messages": messages,
		"total":    total,
		"page":     page,
	})
}
