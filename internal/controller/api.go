package controller

import (
	"context"

	"skybook/pkg/bookingclient"
)

// API is the slice of the booking backend the controller drives. It is the
// full *bookingclient.Client surface so handlers stay testable against a
// recording fake.
type API interface {
	Register(ctx context.Context, req bookingclient.RegisterRequest) (*bookingclient.User, error)
	Login(ctx context.Context, email, password string) (*bookingclient.Token, error)
	Profile(ctx context.Context, token string) (*bookingclient.User, error)
	UpdateProfile(ctx context.Context, token string, upd bookingclient.ProfileUpdate) (*bookingclient.User, error)
	ChangePassword(ctx context.Context, token, current, updated string) error
	DeleteAccount(ctx context.Context, token string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	VerifyEmail(ctx context.Context, token string) error
	ResendVerification(ctx context.Context, email string) error

	Cities(ctx context.Context, token string) ([]bookingclient.City, error)
	Airlines(ctx context.Context, token string) ([]bookingclient.Airline, error)
	SearchBySchedule(ctx context.Context, token string, req bookingclient.SearchRequest) ([]bookingclient.FlightOffer, error)
	SearchByFare(ctx context.Context, token string, req bookingclient.SearchRequest) ([]bookingclient.FlightOffer, error)
	FlightInfo(ctx context.Context, token, flightNumber, date string) (*bookingclient.FlightInfo, error)
	SeatMap(ctx context.Context, token string, flightID int64, date, class string) (*bookingclient.SeatMap, error)

	CreateReservation(ctx context.Context, token string, req bookingclient.ReservationCreate) (*bookingclient.Reservation, error)
	Reservations(ctx context.Context, token string) ([]bookingclient.Reservation, error)
	Reservation(ctx context.Context, token, code string) (*bookingclient.Reservation, error)
	CancelReservation(ctx context.Context, token, code string) error
	CheckIn(ctx context.Context, token, ticketCode string) (*bookingclient.CheckInResult, error)

	AddCard(ctx context.Context, token string, card bookingclient.CreditCard) (*bookingclient.CreditCard, error)
	Cards(ctx context.Context, token string) ([]bookingclient.CreditCard, error)
	DeleteCard(ctx context.Context, token string, cardID int64) error
	ProcessPayment(ctx context.Context, token string, req bookingclient.PaymentRequest) (*bookingclient.Payment, error)
	PaymentHistory(ctx context.Context, token string) ([]bookingclient.Payment, error)
	Tickets(ctx context.Context, token string) ([]bookingclient.Ticket, error)
	Ticket(ctx context.Context, token, code string) (*bookingclient.TicketDetail, error)

	Notifications(ctx context.Context, token string, unreadOnly bool, limit int) (*bookingclient.NotificationList, error)
	UnreadCount(ctx context.Context, token string) (int, error)
	MarkNotificationRead(ctx context.Context, token string, id int64) error
	MarkAllNotificationsRead(ctx context.Context, token string) error
	DeleteNotification(ctx context.Context, token string, id int64) error
}

// Pollers starts and stops the per-session notification poll.
type Pollers interface {
	Start(sid, token string)
	Stop(sid string)
}
