package bookingclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

func (c *Client) AddCard(ctx context.Context, token string, card CreditCard) (*CreditCard, error) {
	var saved CreditCard
	if err := c.do(ctx, http.MethodPost, "/pagos/tarjetas", token, nil, card, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (c *Client) Cards(ctx context.Context, token string) ([]CreditCard, error) {
	var cards []CreditCard
	if err := c.do(ctx, http.MethodGet, "/pagos/tarjetas", token, nil, nil, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

func (c *Client) DeleteCard(ctx context.Context, token string, cardID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/pagos/tarjetas/%d", cardID), token, nil, nil, nil)
}

func (c *Client) ProcessPayment(ctx context.Context, token string, req PaymentRequest) (*Payment, error) {
	var payment Payment
	if err := c.do(ctx, http.MethodPost, "/pagos/procesar", token, nil, req, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (c *Client) PaymentHistory(ctx context.Context, token string) ([]Payment, error) {
	var payments []Payment
	if err := c.do(ctx, http.MethodGet, "/pagos/historial", token, nil, nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (c *Client) Tickets(ctx context.Context, token string) ([]Ticket, error) {
	var tickets []Ticket
	if err := c.do(ctx, http.MethodGet, "/pagos/billetes", token, nil, nil, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

func (c *Client) Ticket(ctx context.Context, token, code string) (*TicketDetail, error) {
	var detail TicketDetail
	if err := c.do(ctx, http.MethodGet, "/pagos/billetes/"+url.PathEscape(code), token, nil, nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}
