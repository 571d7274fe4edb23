package bookingclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

func (c *Client) Notifications(ctx context.Context, token string, unreadOnly bool, limit int) (*NotificationList, error) {
	query := url.Values{}
	query.Set("solo_no_leidas", strconv.FormatBool(unreadOnly))
	query.Set("limite", strconv.Itoa(limit))

	var list NotificationList
	if err := c.do(ctx, http.MethodGet, "/notificaciones/", token, query, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) UnreadCount(ctx context.Context, token string) (int, error) {
	var count UnreadCount
	if err := c.do(ctx, http.MethodGet, "/notificaciones/contador", token, nil, nil, &count); err != nil {
		return 0, err
	}
	return count.Unread, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("/notificaciones/%d/marcar-leida", id)
	return c.do(ctx, http.MethodPatch, path, token, nil, nil, nil)
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPatch, "/notificaciones/marcar-todas-leidas", token, nil, nil, nil)
}

func (c *Client) DeleteNotification(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/notificaciones/%d", id), token, nil, nil, nil)
}
