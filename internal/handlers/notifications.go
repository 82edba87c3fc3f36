package handlers

import (
	"github.com/gin-gonic/gin"

	"servicehub-server/internal/middleware"
	"servicehub-server/internal/store"
	"servicehub-server/internal/utils"
)

// NotificationHandler serves the per-user notification feed.
type NotificationHandler struct {
	Store *store.Store
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(s *store.Store) *NotificationHandler {
	return &NotificationHandler{Store: s}
}

// GetNotifications lists the caller's notifications, newest first, along with
// the unread count.
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}
	utils.Success(c, "Notifications fetched successfully", gin.H{
		"notifications": h.Store.Notifications.ListForUser(userID),
		"unreadCount":   h.Store.Notifications.UnreadCount(userID),
	})
}

// MarkNotificationRead marks a single notification as read.
func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	id := c.Param("id")

	owned := false
	for _, n := range h.Store.Notifications.ListForUser(userID) {
		if n.ID == id {
			owned = true
			break
		}
	}
	if !owned {
		utils.Forbidden(c, "You can only manage your own notifications.")
		return
	}

	notification, err := h.Store.Notifications.MarkRead(id)
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	utils.Success(c, "Notification marked as read", notification)
}

// MarkAllNotificationsRead clears the caller's unread flags.
func (h *NotificationHandler) MarkAllNotificationsRead(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	h.Store.Notifications.MarkAllRead(userID)
	utils.Success(c, "All notifications marked as read", gin.H{"unreadCount": 0})
}
