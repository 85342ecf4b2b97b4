package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/nightlife_presence/internal/models"
)

// @Summary List own notifications
// @Tags Notifications
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller user ID"
// @Param unread query bool false "Only unread notifications"
// @Success 200 {array} NotificationResponse
// @Router /notifications [get]
func (h *Handler) listNotifications(c *gin.Context) {
	log := h.log(c, "listNotifications")
	unreadOnly := c.Query("unread") == "true"

	items, err := h.services.Notifications.ListNotifications(c.Request.Context(), currentUser(c), unreadOnly)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToNotificationResponses(items))
}

// @Summary Mark a notification as read
// @Tags Notifications
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller user ID"
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Notification not found"
// @Router /notifications/{id}/read [post]
func (h *Handler) markNotificationRead(c *gin.Context) {
	log := h.log(c, "markNotificationRead")
	id, ok := pathID(c, log, "id", "notification")
	if !ok {
		return
	}

	if err := h.services.Notifications.MarkRead(c.Request.Context(), currentUser(c), id); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Register a device for push notifications
// @Description Re-registering a known token reactivates it for the caller.
// @Tags Notifications
// @Accept json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller user ID"
// @Param device body DeviceTokenRequest true "Device token"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid device token"
// @Router /device-tokens [post]
func (h *Handler) registerDeviceToken(c *gin.Context) {
	log := h.log(c, "registerDeviceToken")

	var input DeviceTokenRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	token := &models.DeviceToken{
		UserID:     currentUser(c),
		Token:      input.Token,
		DeviceType: models.DeviceType(input.DeviceType),
	}
	if err := h.services.Notifications.RegisterDeviceToken(c.Request.Context(), token); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
