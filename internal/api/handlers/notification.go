package handlers

import (
	"errors"
	"net/http"

	apperrors "maintenance-portal-backend/internal/errors"
	"maintenance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NotificationHandler handles notification and push subscription
// endpoints
type NotificationHandler struct {
	service service.NotificationServiceInterface
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(service service.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{
		service: service,
	}
}

// ListNotifications returns a page of notifications
// @Summary List notifications
// @Description Get a paginated list of in-app notifications, newest first
// @Tags notifications
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param unread query bool false "Only unread notifications"
// @Success 200 {object} service.NotificationListResponse "Notifications"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	page, pageSize := parsePagination(c)
	unreadOnly := c.Query("unread") == "true"

	list, err := h.service.GetAll(page, pageSize, unreadOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list notifications"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// MarkNotificationRead marks one notification as read
// @Summary Mark notification read
// @Description Mark a single notification as read
// @Tags notifications
// @Accept json
// @Produce json
// @Param id path string true "Notification ID"
// @Success 204 "Notification marked read"
// @Failure 400 {object} ErrorResponse "Invalid notification ID"
// @Failure 404 {object} ErrorResponse "Notification not found"
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid notification ID"})
		return
	}

	if err := h.service.MarkRead(id); err != nil {
		if errors.Is(err, apperrors.ErrNotificationNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Notification not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to mark notification read"})
		return
	}

	c.Status(http.StatusNoContent)
}

// MarkAllNotificationsRead marks every notification as read
// @Summary Mark all notifications read
// @Description Mark all notifications as read
// @Tags notifications
// @Accept json
// @Produce json
// @Success 204 "Notifications marked read"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /notifications/read-all [post]
func (h *NotificationHandler) MarkAllNotificationsRead(c *gin.Context) {
	if err := h.service.MarkAllRead(); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to mark notifications read"})
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteNotification deletes a notification
// @Summary Delete notification
// @Description Delete a notification
// @Tags notifications
// @Accept json
// @Produce json
// @Param id path string true "Notification ID"
// @Success 204 "Notification deleted"
// @Failure 400 {object} ErrorResponse "Invalid notification ID"
// @Failure 404 {object} ErrorResponse "Notification not found"
// @Router /notifications/{id} [delete]
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid notification ID"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrNotificationNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Notification not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete notification"})
		return
	}

	c.Status(http.StatusNoContent)
}

// Subscribe registers a browser push subscription
// @Summary Subscribe to push notifications
// @Description Register or refresh a web push subscription for maintenance reminders
// @Tags notifications
// @Accept json
// @Produce json
// @Param subscription body service.SubscribeRequest true "Push subscription"
// @Success 201 "Subscription stored"
// @Failure 400 {object} ErrorResponse "Invalid subscription"
// @Router /notifications/subscriptions [post]
func (h *NotificationHandler) Subscribe(c *gin.Context) {
	var req service.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request data: " + err.Error()})
		return
	}

	if err := h.service.Subscribe(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.Status(http.StatusCreated)
}

// Unsubscribe removes a browser push subscription
// @Summary Unsubscribe from push notifications
// @Description Remove the web push subscription with the given endpoint
// @Tags notifications
// @Accept json
// @Produce json
// @Param endpoint query string true "Subscription endpoint"
// @Success 204 "Subscription removed"
// @Failure 400 {object} ErrorResponse "Missing endpoint"
// @Failure 404 {object} ErrorResponse "Subscription not found"
// @Router /notifications/subscriptions [delete]
func (h *NotificationHandler) Unsubscribe(c *gin.Context) {
	endpoint := c.Query("endpoint")
	if endpoint == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "endpoint parameter is required"})
		return
	}

	if err := h.service.Unsubscribe(endpoint); err != nil {
		if errors.Is(err, apperrors.ErrSubscriptionNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Subscription not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to remove subscription"})
		return
	}

	c.Status(http.StatusNoContent)
}
