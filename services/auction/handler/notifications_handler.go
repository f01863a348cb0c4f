package handler

import (
	"net/http"

	"silent-auction/internal/toast"
	"silent-auction/utils"

	"github.com/gin-gonic/gin"
)

// NotificationsHandler exposes the active toast queue.
type NotificationsHandler struct {
	notices *toast.Queue
}

func NewNotificationsHandler(notices *toast.Queue) *NotificationsHandler {
	return &NotificationsHandler{notices: notices}
}

// ListNotificationsHandler handles GET /notifications
func (h *NotificationsHandler) ListNotificationsHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, h.notices.Active(), "active notifications")
}

// DismissNotificationHandler handles DELETE /notifications/:id
func (h *NotificationsHandler) DismissNotificationHandler(c *gin.Context) {
	id := c.Param("id")
	if !h.notices.Dismiss(id) {
		utils.JSONResponse(c, http.StatusOK, nil, "notification already gone")
		return
	}
	utils.JSONResponse(c, http.StatusOK, nil, "notification dismissed")
}
