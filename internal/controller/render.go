package controller

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skybook/internal/poller"
	"skybook/internal/session"
	"skybook/internal/view"
	"skybook/pkg/bookingclient"
	"skybook/pkg/logger"
)

// Index is the single page render: the current view is whatever the session
// state says it is.
func (ct *Controller) Index(c *gin.Context) {
	st, sid := ct.state(c)

	if st.Token == "" {
		tab := c.Query("tab")
		if tab != "registro" {
			tab = "login"
		}
		ct.renderAuth(c, sid, st, &view.AuthData{ActiveTab: tab})
		return
	}

	ct.pollers.Start(sid, st.Token)
	ct.renderPage(c, sid, st, nil)
}

func (ct *Controller) renderAuth(c *gin.Context, sid string, st *session.State, auth *view.AuthData) {
	data := view.PageData{Auth: auth, Flashes: st.DrainFlashes()}
	ct.save(c, sid, st)
	ct.writePage(c, data)
}

func (ct *Controller) renderTokenPage(c *gin.Context, page *view.TokenPageData) {
	ct.writePage(c, view.PageData{TokenPage: page})
}

// renderPage builds the data for the active view and renders it. A failed
// fetch downgrades to the home view with a toast; a 401 resets the session.
func (ct *Controller) renderPage(c *gin.Context, sid string, st *session.State, decorate func(*view.PageData)) {
	data, err := ct.pageData(c.Request.Context(), sid, st)
	if err != nil {
		if bookingclient.IsUnauthorized(err) {
			ct.expire(c, sid, st)
			return
		}
		st.Flash("error", bookingclient.Detail(err, "No se pudo cargar la vista"))
		st.Navigate(session.ViewHome)
		data = view.PageData{User: st.User, View: st.View, Flashes: st.DrainFlashes()}
	}
	if decorate != nil {
		decorate(&data)
	}
	ct.save(c, sid, st)
	ct.writePage(c, data)
}

func (ct *Controller) writePage(c *gin.Context, data view.PageData) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := ct.renderer.Page(c.Writer, data); err != nil {
		ct.logger.Error("page write failed", logger.Field{Key: "error", Value: err.Error()})
	}
}

func (ct *Controller) pageData(ctx context.Context, sid string, st *session.State) (view.PageData, error) {
	data := view.PageData{
		User:  st.User,
		View:  st.View,
		Badge: ct.badgeCount(ctx, sid, st.Token),
	}

	switch st.View {
	case session.ViewSearch:
		search, err := ct.searchData(ctx, st)
		if err != nil {
			return data, err
		}
		data.Search = search

	case session.ViewReservations:
		reservations, err := ct.api.Reservations(ctx, st.Token)
		if err != nil {
			return data, err
		}
		items := make([]view.ReservationItem, 0, len(reservations))
		for _, r := range reservations {
			items = append(items, view.NewReservationItem(r))
		}
		data.Reservations = items

	case session.ViewTickets:
		tickets, err := ct.api.Tickets(ctx, st.Token)
		if err != nil {
			return data, err
		}
		items := make([]view.TicketItem, 0, len(tickets))
		for _, t := range tickets {
			items = append(items, view.NewTicketItem(t))
		}
		data.Tickets = items
		data.CheckIn = st.DrainCheckIn()

	case session.ViewProfile:
		payments, err := ct.api.PaymentHistory(ctx, st.Token)
		if err != nil {
			return data, err
		}
		data.Profile = &view.ProfileData{User: st.User, Payments: view.NewPaymentItems(payments)}

	case session.ViewReserve:
		reserve, err := ct.reserveData(ctx, st)
		if err != nil {
			return data, err
		}
		data.Reserve = reserve

	case session.ViewPay:
		payment := &view.PaymentData{Reservation: st.PendingReservation}
		if st.PendingReservation != nil {
			payment.TotalFmt = view.FormatPrice(st.PendingReservation.Total)
			cards, err := ct.api.Cards(ctx, st.Token)
			if err != nil {
				return data, err
			}
			payment.Cards = cards
		}
		data.Payment = payment
	}

	data.Flashes = st.DrainFlashes()
	return data, nil
}

func (ct *Controller) searchData(ctx context.Context, st *session.State) (*view.SearchData, error) {
	cities, err := ct.api.Cities(ctx, st.Token)
	if err != nil {
		return nil, err
	}
	airlines, err := ct.api.Airlines(ctx, st.Token)
	if err != nil {
		return nil, err
	}

	search := &view.SearchData{Cities: cities, Airlines: airlines, Params: st.OriginalSearch}
	if st.OriginalSearch != nil && (st.Results != nil || st.Phase != session.PhaseNone) {
		results := &view.ResultsData{
			Offers: view.NewOfferItems(st.Results),
			Phase:  st.Phase,
			SortBy: st.SortBy,
		}
		if st.Phase == session.PhaseReturn && st.Outbound != nil {
			outbound := view.NewOfferItem(*st.Outbound)
			results.Outbound = &outbound
		}
		search.Results = results
	}
	return search, nil
}

// reserveData builds one seat grid per selected leg. A single leg's seat
// map failing to load keeps the form usable for the others.
func (ct *Controller) reserveData(ctx context.Context, st *session.State) (*view.ReserveData, error) {
	legs := make([]view.ReserveLeg, 0, len(st.Trip))
	var total float64
	for i, offer := range st.Trip {
		leg := view.ReserveLeg{
			Index:    i,
			Label:    legLabel(i, st.RoundTrip),
			Offer:    view.NewOfferItem(offer),
			Selected: st.Seats[i],
		}
		seatMap, err := ct.api.SeatMap(ctx, st.Token, offer.FlightID, offer.Date, offer.Class)
		if err != nil {
			if bookingclient.IsUnauthorized(err) {
				return nil, err
			}
			ct.logger.Warn("seat map load failed",
				logger.Field{Key: "flight_id", Value: offer.FlightID},
				logger.Field{Key: "error", Value: err.Error()},
			)
			leg.LoadErr = true
		} else {
			leg.Rows = view.GroupSeatRows(seatMap.Seats, st.Seats[i])
			leg.Summary = seatMap.Summary
		}
		total += offer.Price * float64(st.Passengers)
		legs = append(legs, leg)
	}
	return &view.ReserveData{
		Legs:       legs,
		RoundTrip:  st.RoundTrip,
		Passengers: st.Passengers,
		TotalFmt:   view.FormatPrice(total),
	}, nil
}

func legLabel(index int, roundTrip bool) string {
	if !roundTrip {
		return "Vuelo"
	}
	if index == 0 {
		return "Vuelo de Ida"
	}
	return "Vuelo de Regreso"
}

// badgeCount prefers the poller's cached figure and falls back to a direct
// lookup; a miss on both renders no badge rather than an error.
func (ct *Controller) badgeCount(ctx context.Context, sid, token string) int {
	if cached, err := ct.badges.Get(ctx, poller.BadgeKey(sid)); err == nil && cached != "" {
		if n, convErr := strconv.Atoi(cached); convErr == nil {
			return n
		}
	}
	n, err := ct.api.UnreadCount(ctx, token)
	if err != nil {
		return 0
	}
	return n
}
