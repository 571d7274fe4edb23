package controller

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"skybook/internal/session"
	"skybook/internal/view"
	"skybook/pkg/bookingclient"
	"skybook/pkg/validate"
)

// ProcessPayment charges the pending reservation against a saved card or a
// new one. New card details are validated locally before the card is
// stored.
func (ct *Controller) ProcessPayment(c *gin.Context) {
	st, sid, ok := ct.authed(c)
	if !ok {
		return
	}
	if st.PendingReservation == nil {
		st.Flash("warning", "No hay ninguna reserva pendiente de pago")
		ct.save(c, sid, st)
		ct.redirectHome(c)
		return
	}

	delivery := c.PostForm("entrega")
	if delivery != bookingclient.DeliveryAirport {
		delivery = bookingclient.DeliveryEmail
	}

	var cardID int64
	if c.PostForm("payment_method") == "new" {
		card := bookingclient.CreditCard{
			Number:     strings.ReplaceAll(c.PostForm("numero"), " ", ""),
			Holder:     strings.TrimSpace(c.PostForm("titular")),
			Expiration: strings.TrimSpace(c.PostForm("expiracion")),
			CVV:        c.PostForm("cvv"),
			Type:       c.PostForm("tipo"),
		}

		errs := map[string]string{}
		if r := validate.CardNumber(card.Number); !r.Valid {
			errs["numero"] = r.Message
		}
		if r := validate.CardHolder(card.Holder); !r.Valid {
			errs["titular"] = r.Message
		}
		if r := validate.CardExpiry(card.Expiration); !r.Valid {
			errs["expiracion"] = r.Message
		}
		if r := validate.CVV(card.CVV); !r.Valid {
			errs["cvv"] = r.Message
		}
		if len(errs) > 0 {
			ct.renderPage(c, sid, st, func(data *view.PageData) {
				if data.Payment != nil {
					data.Payment.FieldErrors = errs
				}
			})
			return
		}

		saved, err := ct.api.AddCard(c.Request.Context(), st.Token, card)
		if err != nil {
			ct.fail(c, sid, st, err, "No se pudo guardar la tarjeta")
			return
		}
		cardID = saved.ID
	} else {
		parsed, err := strconv.ParseInt(c.PostForm("tarjeta_id"), 10, 64)
		if err != nil {
			st.Flash("warning", "Selecciona una tarjeta")
			ct.save(c, sid, st)
			ct.redirectHome(c)
			return
		}
		cardID = parsed
	}

	req := bookingclient.PaymentRequest{
		ReservationID:  st.PendingReservation.ID,
		CardID:         cardID,
		DeliveryMethod: delivery,
	}
	if _, err := ct.api.ProcessPayment(c.Request.Context(), st.Token, req); err != nil {
		ct.fail(c, sid, st, err, "No se pudo procesar el pago")
		return
	}

	st.PendingReservation = nil
	st.Navigate(session.ViewTickets)
	st.FlashFor("success", "Pago procesado. Tus billetes han sido emitidos.", 6000)
	ct.save(c, sid, st)
	ct.redirectHome(c)
}

// DeleteCard removes a stored card and re-renders the payment view.
func (ct *Controller) DeleteCard(c *gin.Context) {
	st, sid, ok := ct.authed(c)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ct.redirectHome(c)
		return
	}
	if err := ct.api.DeleteCard(c.Request.Context(), st.Token, id); err != nil {
		ct.fail(c, sid, st, err, "Error al eliminar tarjeta")
		return
	}
	st.Flash("success", "Tarjeta eliminada correctamente")
	ct.save(c, sid, st)
	ct.redirectHome(c)
}
