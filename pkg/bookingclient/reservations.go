package bookingclient

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) CreateReservation(ctx context.Context, token string, req ReservationCreate) (*Reservation, error) {
	var reservation Reservation
	if err := c.do(ctx, http.MethodPost, "/reservas/", token, nil, req, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (c *Client) Reservations(ctx context.Context, token string) ([]Reservation, error) {
	var reservations []Reservation
	if err := c.do(ctx, http.MethodGet, "/reservas/", token, nil, nil, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (c *Client) Reservation(ctx context.Context, token, code string) (*Reservation, error) {
	var reservation Reservation
	if err := c.do(ctx, http.MethodGet, "/reservas/"+url.PathEscape(code), token, nil, nil, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (c *Client) CancelReservation(ctx context.Context, token, code string) error {
	return c.do(ctx, http.MethodDelete, "/reservas/"+url.PathEscape(code), token, nil, nil, nil)
}

func (c *Client) CheckIn(ctx context.Context, token, ticketCode string) (*CheckInResult, error) {
	var result CheckInResult
	path := "/reservas/check-in/" + url.PathEscape(ticketCode)
	if err := c.do(ctx, http.MethodPost, path, token, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
