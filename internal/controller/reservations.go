package controller

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"skybook/internal/session"
	"skybook/internal/view"
	"skybook/pkg/bookingclient"
)

// CreateReservation submits one detail per leg. Every leg must have exactly
// as many seats picked as passengers before anything leaves the client.
func (ct *Controller) CreateReservation(c *gin.Context) {
	st, sid, ok := ct.authed(c)
	if !ok {
		return
	}
	if len(st.Trip) == 0 {
		ct.redirectHome(c)
		return
	}
	if leg := st.IncompleteLeg(); leg >= 0 {
		st.Flash("warning", fmt.Sprintf("Selecciona %d asiento(s) para el %s", st.Passengers, legName(leg, st.RoundTrip)))
		ct.save(c, sid, st)
		ct.redirectHome(c)
		return
	}

	req := bookingclient.ReservationCreate{}
	for i, offer := range st.Trip {
		detail := bookingclient.ReservationDetailCreate{
			InstanceID: offer.InstanceID,
			Class:      offer.Class,
		}
		for _, seat := range st.Seats[i] {
			detail.Passengers = append(detail.Passengers, bookingclient.Passenger{
				FirstName:  st.User.FirstName,
				LastName:   st.User.LastName,
				SeatNumber: seat,
			})
		}
		req.Details = append(req.Details, detail)
	}

	reservation, err := ct.api.CreateReservation(c.Request.Context(), st.Token, req)
	if err != nil {
		ct.fail(c, sid, st, err, "No se pudo crear la reserva")
		return
	}

	st.Trip = nil
	st.Seats = nil
	st.RoundTrip = false
	st.PendingReservation = reservation
	st.Navigate(session.ViewReservations)
	st.FlashFor("success", "Reserva "+reservation.Code+" creada. Completa el pago para emitir los billetes.", 6000)
	ct.save(c, sid, st)
	ct.redirectHome(c)
}

func legName(index int, roundTrip bool) string {
	if !roundTrip {
		return "vuelo"
	}
	if index == 0 {
		return "vuelo de ida"
	}
	return "vuelo de regreso"
}

// PayReservation reloads the reservation by code and opens the payment
// view for it.
func (ct *Controller) PayReservation(c *gin.Context) {
	st, sid, ok := ct.authed(c)
	if !ok {
		return
	}
	reservation, err := ct.api.Reservation(c.Request.Context(), st.Token, c.Param("code"))
	if err != nil {
		ct.fail(c, sid, st, err, "No se pudo cargar la reserva")
		return
	}
	st.PendingReservation = reservation
	st.Navigate(session.ViewPay)
	ct.save(c, sid, st)
	ct.redirectHome(c)
}

func (ct *Controller) CancelReservation(c *gin.Context) {
	st, sid, ok := ct.authed(c)
	if !ok {
		return
	}
	code := c.Param("code")
	if err := ct.api.CancelReservation(c.Request.Context(), st.Token, code); err != nil {
		ct.fail(c, sid, st, err, "No se pudo cancelar la reserva")
		return
	}
	if st.PendingReservation != nil && st.PendingReservation.Code == code {
		st.PendingReservation = nil
	}
	st.Flash("success", "Reserva "+code+" cancelada")
	st.Navigate(session.ViewReservations)
	ct.save(c, sid, st)
	ct.redirectHome(c)
}

// TicketDetail opens the full detail panel for one ticket on the tickets
// view. The detail renders directly so it is gone on the next page load.
func (ct *Controller) TicketDetail(c *gin.Context) {
	st, sid, ok := ct.authed(c)
	if !ok {
		return
	}
	detail, err := ct.api.Ticket(c.Request.Context(), st.Token, c.Param("code"))
	if err != nil {
		ct.fail(c, sid, st, err, "Error al cargar el billete")
		return
	}
	st.Navigate(session.ViewTickets)
	ct.renderPage(c, sid, st, func(data *view.PageData) {
		data.TicketDetail = view.NewTicketDetailData(detail)
	})
}

// CheckIn asks the backend to check the ticket in; the boarding details are
// shown once on the tickets view.
func (ct *Controller) CheckIn(c *gin.Context) {
	st, sid, ok := ct.authed(c)
	if !ok {
		return
	}
	result, err := ct.api.CheckIn(c.Request.Context(), st.Token, c.Param("code"))
	if err != nil {
		ct.fail(c, sid, st, err, "No se pudo realizar el check-in")
		return
	}
	st.LastCheckIn = result
	st.Navigate(session.ViewTickets)
	st.Flash("success", "Check-in realizado")
	ct.save(c, sid, st)
	ct.redirectHome(c)
}
