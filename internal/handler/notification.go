package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ListNotifications returns the notification feed with the derived unread
// count.
func (h *Handler) ListNotifications(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"notifications": h.store.Notifications(),
		"unread":        h.store.UnreadNotificationCount(),
	})
}

// MarkNotificationRead marks one notification as read.
func (h *Handler) MarkNotificationRead(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.store.MarkNotificationRead(id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// MarkAllNotificationsRead marks the whole feed as read.
func (h *Handler) MarkAllNotificationsRead(c echo.Context) error {
	h.store.MarkAllNotificationsRead()
	return c.NoContent(http.StatusNoContent)
}
