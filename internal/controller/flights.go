package controller

import (
	"context"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"skybook/internal/session"
	"skybook/internal/view"
	"skybook/pkg/bookingclient"
)

var knownViews = map[string]bool{
	session.ViewHome:         true,
	session.ViewSearch:       true,
	session.ViewReservations: true,
	session.ViewTickets:      true,
	session.ViewProfile:      true,
	session.ViewReserve:      true,
	session.ViewPay:          true,
}

func (ct *Controller) Navigate(c *gin.Context) {
	st, sid, ok := ct.authed(c)
	if !ok {
		return
	}
	target := c.Param("view")
	if !knownViews[target] {
		target = session.ViewHome
	}
	st.Navigate(target)
	ct.save(c, sid, st)
	ct.redirectHome(c)
}

// Search validates the form locally; a bad form never reaches the backend.
func (ct *Controller) Search(c *gin.Context) {
	st, sid, ok := ct.authed(c)
	if !ok {
		return
	}

	params := session.SearchParams{
		SearchRequest: bookingclient.SearchRequest{
			Origin:      strings.TrimSpace(c.PostForm("origen")),
			Destination: strings.TrimSpace(c.PostForm("destino")),
			Date:        c.PostForm("fecha_salida"),
			Class:       c.PostForm("clase"),
			AirlineCode: c.PostForm("aerolinea"),
			DirectOnly:  c.PostForm("escalas") == "direct",
		},
		SearchType: c.PostForm("search_type"),
		ReturnDate: c.PostForm("fecha_regreso"),
		RoundTrip:  c.PostForm("trip_type") != "one_way",
		Passengers: 1,
	}
	if slot := c.PostForm("horario_salida"); slot != "" && slot != "all" {
		params.DepartureSlot = slot
	}
	if raw := c.PostForm("precio_max"); raw != "" {
		if max, err := strconv.ParseFloat(raw, 64); err == nil && max > 0 {
			params.MaxPrice = &max
		}
	}
	if n, err := strconv.Atoi(c.PostForm("pasajeros")); err == nil && n >= 1 && n <= 6 {
		params.Passengers = n
	}
	if params.SearchType != "horarios" {
		params.SearchType = "tarifas"
	}

	if msg := validateSearch(params); msg != "" {
		st.Flash("warning", msg)
		ct.save(c, sid, st)
		ct.redirectHome(c)
		return
	}

	offers, err := ct.search(c.Request.Context(), st.Token, params.SearchType, params.SearchRequest)
	if err != nil {
		ct.fail(c, sid, st, err, "No se pudieron buscar vuelos")
		return
	}

	st.Passengers = params.Passengers
	st.OriginalSearch = &params
	st.Results = offers
	st.SortBy = ""
	if params.RoundTrip {
		st.Phase = session.PhaseOutbound
	} else {
		st.Phase = session.PhaseNone
	}
	st.Outbound = nil
	st.Navigate(session.ViewSearch)
	ct.save(c, sid, st)
	ct.redirectHome(c)
}

func validateSearch(params session.SearchParams) string {
	switch {
	case params.Origin == "" || params.Destination == "":
		return "Selecciona origen y destino"
	case params.Origin == params.Destination:
		return "El origen y el destino no pueden ser iguales"
	case params.Date == "":
		return "Selecciona la fecha de salida"
	case params.RoundTrip && params.ReturnDate == "":
		return "Selecciona la fecha de regreso"
	case params.RoundTrip && params.ReturnDate < params.Date:
		return "La fecha de regreso no puede ser anterior a la de salida"
	}
	return ""
}

func (ct *Controller) search(ctx context.Context, token, searchType string, req bookingclient.SearchRequest) ([]bookingclient.FlightOffer, error) {
	if searchType == "horarios" {
		return ct.api.SearchBySchedule(ctx, token, req)
	}
	return ct.api.SearchByFare(ctx, token, req)
}

// SelectOutbound holds the chosen leg and immediately searches the swapped
// route for return candidates.
func (ct *Controller) SelectOutbound(c *gin.Context) {
	st, sid, ok := ct.authed(c)
	if !ok {
		return
	}
	offer, ok := ct.offerFromForm(c, st)
	if !ok || st.OriginalSearch == nil {
		ct.save(c, sid, st)
		ct.redirectHome(c)
		return
	}

	params := *st.OriginalSearch
	st.SelectOutbound(offer, params)

	returns, err := ct.search(c.Request.Context(), st.Token, params.SearchType, params.Swapped().SearchRequest)
	if err != nil {
		ct.fail(c, sid, st, err, "No se pudieron buscar vuelos de regreso")
		return
	}
	st.Results = returns
	st.SortBy = ""
	st.Flash("success", "Vuelo de ida seleccionado. Elige tu vuelo de regreso.")
	ct.save(c, sid, st)
	ct.redirectHome(c)
}

// SelectReturn rejects a return leg that departs before the held outbound
// arrives at its date, then combines both legs into the reservation form.
func (ct *Controller) SelectReturn(c *gin.Context) {
	st, sid, ok := ct.authed(c)
	if !ok {
		return
	}
	offer, ok := ct.offerFromForm(c, st)
	if !ok {
		ct.save(c, sid, st)
		ct.redirectHome(c)
		return
	}

	if st.Outbound != nil && departureKey(offer) < departureKey(*st.Outbound) {
		st.Flash("warning", "El vuelo de regreso debe ser posterior al de ida")
		ct.save(c, sid, st)
		ct.redirectHome(c)
		return
	}
	if !st.SelectReturn(offer) {
		st.Flash("error", "No hay un vuelo de ida seleccionado")
	}
	ct.save(c, sid, st)
	ct.redirectHome(c)
}

func departureKey(offer bookingclient.FlightOffer) string {
	return offer.Date + "T" + offer.DepartureTime
}

func (ct *Controller) SelectOneWay(c *gin.Context) {
	st, sid, ok := ct.authed(c)
	if !ok {
		return
	}
	offer, ok := ct.offerFromForm(c, st)
	if !ok {
		ct.save(c, sid, st)
		ct.redirectHome(c)
		return
	}
	st.BeginBooking([]bookingclient.FlightOffer{offer}, false)
	ct.save(c, sid, st)
	ct.redirectHome(c)
}

// ChangeOutbound re-runs the original outbound search from carried
// parameters.
func (ct *Controller) ChangeOutbound(c *gin.Context) {
	st, sid, ok := ct.authed(c)
	if !ok {
		return
	}
	params := st.ChangeOutbound()
	if params == nil {
		ct.save(c, sid, st)
		ct.redirectHome(c)
		return
	}

	offers, err := ct.search(c.Request.Context(), st.Token, params.SearchType, params.SearchRequest)
	if err != nil {
		ct.fail(c, sid, st, err, "No se pudo repetir la búsqueda")
		return
	}
	st.Results = offers
	st.SortBy = ""
	ct.save(c, sid, st)
	ct.redirectHome(c)
}

// SortResults reorders the carried result list without refetching.
func (ct *Controller) SortResults(c *gin.Context) {
	st, sid, ok := ct.authed(c)
	if !ok {
		return
	}
	if by := c.PostForm("por"); by != "" {
		st.Results = view.SortOffers(st.Results, by)
		st.SortBy = by
	}
	ct.save(c, sid, st)
	ct.redirectHome(c)
}

// FlightInfo renders the lookup panel above the carried result list. The
// page renders directly instead of redirecting so the panel is one-shot.
func (ct *Controller) FlightInfo(c *gin.Context) {
	st, sid, ok := ct.authed(c)
	if !ok {
		return
	}
	number := c.PostForm("numero")
	if number == "" {
		ct.redirectHome(c)
		return
	}
	info, err := ct.api.FlightInfo(c.Request.Context(), st.Token, number, c.PostForm("fecha"))
	if err != nil {
		ct.fail(c, sid, st, err, "Error al consultar información del vuelo")
		return
	}
	ct.renderPage(c, sid, st, func(data *view.PageData) {
		if data.Search != nil {
			data.Search.Info = view.NewFlightInfoData(info)
		}
	})
}

func (ct *Controller) ToggleSeat(c *gin.Context) {
	st, sid, ok := ct.authed(c)
	if !ok {
		return
	}
	leg, err := strconv.Atoi(c.PostForm("leg"))
	seat := c.PostForm("asiento")
	if err != nil || leg < 0 || leg >= len(st.Trip) || seat == "" {
		ct.redirectHome(c)
		return
	}
	if _, err := st.ToggleSeat(leg, seat); err != nil {
		st.Flash("warning", err.Error())
	}
	ct.save(c, sid, st)
	ct.redirectHome(c)
}

// offerFromForm resolves the posted index against the carried result list.
func (ct *Controller) offerFromForm(c *gin.Context, st *session.State) (bookingclient.FlightOffer, bool) {
	idx, err := strconv.Atoi(c.PostForm("idx"))
	if err != nil || idx < 0 || idx >= len(st.Results) {
		st.Flash("error", "El vuelo seleccionado ya no está disponible")
		return bookingclient.FlightOffer{}, false
	}
	offer := st.Results[idx]
	if offer.InstanceID == 0 {
		st.Flash("error", "Este vuelo no admite reservas para la fecha elegida")
		return bookingclient.FlightOffer{}, false
	}
	return offer, true
}
