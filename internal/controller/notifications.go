package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"skybook/internal/poller"
	"skybook/pkg/logger"
)

// NotificationBadge serves the unread counter the dropdown polls. The wire
// shape matches the backend's.
func (ct *Controller) NotificationBadge(c *gin.Context) {
	st, sid := ct.state(c)
	if st.Token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "No autenticado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"no_leidas": ct.badgeCount(c.Request.Context(), sid, st.Token)})
}

// NotificationList serves the dropdown body as an HTML fragment.
func (ct *Controller) NotificationList(c *gin.Context) {
	st, _ := ct.state(c)
	if st.Token == "" {
		c.Status(http.StatusUnauthorized)
		return
	}
	list, err := ct.api.Notifications(c.Request.Context(), st.Token, false, 10)
	if err != nil {
		c.Status(http.StatusBadGateway)
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := ct.renderer.NotificationList(c.Writer, list.Notifications); err != nil {
		ct.logger.Error("notification fragment write failed", logger.Field{Key: "error", Value: err.Error()})
	}
}

// MarkNotificationRead is optimistic: the client already flipped the item,
// so a failure here only gets logged and the next poll reconciles.
func (ct *Controller) MarkNotificationRead(c *gin.Context) {
	st, _ := ct.state(c)
	if st.Token == "" {
		c.Status(http.StatusUnauthorized)
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if err := ct.api.MarkNotificationRead(c.Request.Context(), st.Token, id); err != nil {
		ct.logger.Warn("mark notification read failed",
			logger.Field{Key: "id", Value: id},
			logger.Field{Key: "error", Value: err.Error()},
		)
	}
	c.Status(http.StatusNoContent)
}

// DeleteNotification removes one notification; the dropdown drops the item
// before this returns, so failures only get logged.
func (ct *Controller) DeleteNotification(c *gin.Context) {
	st, _ := ct.state(c)
	if st.Token == "" {
		c.Status(http.StatusUnauthorized)
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if err := ct.api.DeleteNotification(c.Request.Context(), st.Token, id); err != nil {
		ct.logger.Warn("delete notification failed",
			logger.Field{Key: "id", Value: id},
			logger.Field{Key: "error", Value: err.Error()},
		)
	}
	c.Status(http.StatusNoContent)
}

func (ct *Controller) MarkAllNotificationsRead(c *gin.Context) {
	st, sid := ct.state(c)
	if st.Token == "" {
		c.Status(http.StatusUnauthorized)
		return
	}
	if err := ct.api.MarkAllNotificationsRead(c.Request.Context(), st.Token); err != nil {
		ct.logger.Warn("mark all notifications read failed", logger.Field{Key: "error", Value: err.Error()})
		c.Status(http.StatusNoContent)
		return
	}
	// Zero the cached badge right away instead of waiting for the poll.
	if err := ct.badges.Set(c.Request.Context(), poller.BadgeKey(sid), "0", time.Minute); err != nil {
		ct.logger.Warn("badge reset failed", logger.Field{Key: "error", Value: err.Error()})
	}
	c.Status(http.StatusNoContent)
}
