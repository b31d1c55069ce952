package delivery

import (
	"strconv"

	"github.com/gin-gonic/gin"

	authdelivery "plek-backend/internal/auth/delivery"
	"plek-backend/internal/notification/dto"
	"plek-backend/internal/notification/usecase"
	"plek-backend/pkg/response"
)

// NotificationHandler handles notification and device HTTP requests
type NotificationHandler struct {
	notifUsecase usecase.NotificationUsecase
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notifUsecase usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{
		notifUsecase: notifUsecase,
	}
}

// GetNotifications lists the caller's notifications
// GET /v1/notifications?limit=50&offset=0&unread_only=false
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 0 {
		response.BadRequest(c, "limit must be a non-negative integer", "Invalid query parameters")
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		response.BadRequest(c, "offset must be a non-negative integer", "Invalid query parameters")
		return
	}
	unreadOnly := c.Query("unread_only") == "true"

	notifications, err := h.notifUsecase.List(c.Request.Context(), userID, limit, offset, unreadOnly)
	if err != nil {
		response.Error(c, err, "Failed to load notifications")
		return
	}

	response.OK(c, dto.NotificationsResponse{Notifications: notifications}, "")
}

// GetUnreadCount returns the caller's unread notification count
// GET /v1/notifications/unread
func (h *NotificationHandler) GetUnreadCount(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)

	count, err := h.notifUsecase.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err, "Failed to load unread count")
		return
	}

	response.OK(c, dto.UnreadCountResponse{UnreadCount: count}, "")
}

// MarkAsRead marks one notification read
// POST /v1/notifications/:id/read
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)
	notificationID := c.Param("id")

	if err := h.notifUsecase.MarkAsRead(c.Request.Context(), userID, notificationID); err != nil {
		response.Error(c, err, "Failed to mark notification as read")
		return
	}

	response.OK(c, dto.NotificationIDResponse{NotificationID: notificationID}, "Notification marked as read")
}

// MarkAllAsRead marks every unread notification read
// POST /v1/notifications/read-all
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)

	count, err := h.notifUsecase.MarkAllAsRead(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err, "Failed to mark notifications as read")
		return
	}

	response.OK(c, dto.MarkedCountResponse{MarkedCount: count}, "All notifications marked as read")
}

// DeleteNotification removes one notification
// DELETE /v1/notifications/:id
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)
	notificationID := c.Param("id")

	if err := h.notifUsecase.Delete(c.Request.Context(), userID, notificationID); err != nil {
		response.Error(c, err, "Failed to delete notification")
		return
	}

	response.OK(c, dto.NotificationIDResponse{NotificationID: notificationID}, "Notification deleted")
}

// RegisterDevice saves a push token for the caller
// POST /v1/devices
func (h *NotificationHandler) RegisterDevice(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)

	var req dto.RegisterDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error(), "Invalid request body")
		return
	}

	device, err := h.notifUsecase.RegisterDevice(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err, "Failed to register device")
		return
	}

	response.Created(c, dto.DeviceResponse{
		DeviceToken: device.Token,
		DeviceType:  device.DeviceType,
		DeviceName:  device.DeviceName,
	}, "Device registered")
}

// UnregisterDevice removes one of the caller's push tokens
// DELETE /v1/devices/:token
func (h *NotificationHandler) UnregisterDevice(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)
	token := c.Param("token")

	if err := h.notifUsecase.UnregisterDevice(c.Request.Context(), userID, token); err != nil {
		response.Error(c, err, "Failed to unregister device")
		return
	}

	response.OK(c, nil, "Device unregistered")
}
