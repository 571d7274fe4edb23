package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skybook/internal/poller"
	"skybook/internal/session"
	"skybook/internal/view"
	"skybook/pkg/bookingclient"
	"skybook/pkg/cache"
	"skybook/pkg/logger"
)

// fakeAPI records every call and serves canned data.
type fakeAPI struct {
	calls []string

	loginErr   error
	user       bookingclient.User
	offers     []bookingclient.FlightOffer
	returns    []bookingclient.FlightOffer
	searchErr  error
	lastSearch bookingclient.SearchRequest

	seatMap bookingclient.SeatMap

	reservation     bookingclient.Reservation
	reservationErr  error
	lastReservation bookingclient.ReservationCreate
	reservations    []bookingclient.Reservation
	reservationsErr error

	cards       []bookingclient.CreditCard
	lastCard    bookingclient.CreditCard
	lastPayment bookingclient.PaymentRequest
	deletedCard int64
	payments    []bookingclient.Payment

	tickets      []bookingclient.Ticket
	ticketDetail bookingclient.TicketDetail
	checkIn      bookingclient.CheckInResult

	flightInfo bookingclient.FlightInfo

	notifications []bookingclient.Notification
	unread        int
	deletedNotif  int64
}

func (f *fakeAPI) record(name string) { f.calls = append(f.calls, name) }

func (f *fakeAPI) called(name string) bool {
	for _, call := range f.calls {
		if call == name {
			return true
		}
	}
	return false
}

func (f *fakeAPI) Register(_ context.Context, _ bookingclient.RegisterRequest) (*bookingclient.User, error) {
	f.record("Register")
	u := f.user
	return &u, nil
}

func (f *fakeAPI) Login(_ context.Context, _, _ string) (*bookingclient.Token, error) {
	f.record("Login")
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &bookingclient.Token{AccessToken: "tok-1", TokenType: "bearer"}, nil
}

func (f *fakeAPI) Profile(_ context.Context, _ string) (*bookingclient.User, error) {
	f.record("Profile")
	u := f.user
	return &u, nil
}

func (f *fakeAPI) UpdateProfile(_ context.Context, _ string, upd bookingclient.ProfileUpdate) (*bookingclient.User, error) {
	f.record("UpdateProfile")
	u := f.user
	u.FirstName = upd.FirstName
	return &u, nil
}

func (f *fakeAPI) ChangePassword(_ context.Context, _, _, _ string) error {
	f.record("ChangePassword")
	return nil
}

func (f *fakeAPI) DeleteAccount(_ context.Context, _ string) error {
	f.record("DeleteAccount")
	return nil
}

func (f *fakeAPI) RequestPasswordReset(_ context.Context, _ string) error {
	f.record("RequestPasswordReset")
	return nil
}

func (f *fakeAPI) ResetPassword(_ context.Context, _, _ string) error {
	f.record("ResetPassword")
	return nil
}

func (f *fakeAPI) VerifyEmail(_ context.Context, _ string) error {
	f.record("VerifyEmail")
	return nil
}

func (f *fakeAPI) ResendVerification(_ context.Context, _ string) error {
	f.record("ResendVerification")
	return nil
}

func (f *fakeAPI) Cities(_ context.Context, _ string) ([]bookingclient.City, error) {
	f.record("Cities")
	return []bookingclient.City{{Name: "Madrid", IATACode: "MAD", Country: "España"}, {Name: "Barcelona", IATACode: "BCN", Country: "España"}}, nil
}

func (f *fakeAPI) Airlines(_ context.Context, _ string) ([]bookingclient.Airline, error) {
	f.record("Airlines")
	return []bookingclient.Airline{{Name: "Iberia", IATACode: "IB", Active: true}}, nil
}

func (f *fakeAPI) SearchBySchedule(_ context.Context, _ string, req bookingclient.SearchRequest) ([]bookingclient.FlightOffer, error) {
	f.record("SearchBySchedule")
	return f.searchResult(req)
}

func (f *fakeAPI) SearchByFare(_ context.Context, _ string, req bookingclient.SearchRequest) ([]bookingclient.FlightOffer, error) {
	f.record("SearchByFare")
	return f.searchResult(req)
}

func (f *fakeAPI) searchResult(req bookingclient.SearchRequest) ([]bookingclient.FlightOffer, error) {
	f.lastSearch = req
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	if req.Origin == "BCN" {
		return f.returns, nil
	}
	return f.offers, nil
}

func (f *fakeAPI) FlightInfo(_ context.Context, _, _, _ string) (*bookingclient.FlightInfo, error) {
	f.record("FlightInfo")
	info := f.flightInfo
	return &info, nil
}

func (f *fakeAPI) SeatMap(_ context.Context, _ string, _ int64, _, _ string) (*bookingclient.SeatMap, error) {
	f.record("SeatMap")
	sm := f.seatMap
	return &sm, nil
}

func (f *fakeAPI) CreateReservation(_ context.Context, _ string, req bookingclient.ReservationCreate) (*bookingclient.Reservation, error) {
	f.record("CreateReservation")
	f.lastReservation = req
	if f.reservationErr != nil {
		return nil, f.reservationErr
	}
	r := f.reservation
	return &r, nil
}

func (f *fakeAPI) Reservations(_ context.Context, _ string) ([]bookingclient.Reservation, error) {
	f.record("Reservations")
	if f.reservationsErr != nil {
		return nil, f.reservationsErr
	}
	return f.reservations, nil
}

func (f *fakeAPI) Reservation(_ context.Context, _, code string) (*bookingclient.Reservation, error) {
	f.record("Reservation")
	r := f.reservation
	r.Code = code
	return &r, nil
}

func (f *fakeAPI) CancelReservation(_ context.Context, _, _ string) error {
	f.record("CancelReservation")
	return nil
}

func (f *fakeAPI) CheckIn(_ context.Context, _, _ string) (*bookingclient.CheckInResult, error) {
	f.record("CheckIn")
	r := f.checkIn
	return &r, nil
}

func (f *fakeAPI) AddCard(_ context.Context, _ string, card bookingclient.CreditCard) (*bookingclient.CreditCard, error) {
	f.record("AddCard")
	f.lastCard = card
	card.ID = 42
	return &card, nil
}

func (f *fakeAPI) Cards(_ context.Context, _ string) ([]bookingclient.CreditCard, error) {
	f.record("Cards")
	return f.cards, nil
}

func (f *fakeAPI) DeleteCard(_ context.Context, _ string, cardID int64) error {
	f.record("DeleteCard")
	f.deletedCard = cardID
	return nil
}

func (f *fakeAPI) PaymentHistory(_ context.Context, _ string) ([]bookingclient.Payment, error) {
	f.record("PaymentHistory")
	return f.payments, nil
}

func (f *fakeAPI) ProcessPayment(_ context.Context, _ string, req bookingclient.PaymentRequest) (*bookingclient.Payment, error) {
	f.record("ProcessPayment")
	f.lastPayment = req
	return &bookingclient.Payment{ID: 1, ReservationID: req.ReservationID, Status: "COMPLETADO"}, nil
}

func (f *fakeAPI) Tickets(_ context.Context, _ string) ([]bookingclient.Ticket, error) {
	f.record("Tickets")
	return f.tickets, nil
}

func (f *fakeAPI) Ticket(_ context.Context, _, _ string) (*bookingclient.TicketDetail, error) {
	f.record("Ticket")
	d := f.ticketDetail
	return &d, nil
}

func (f *fakeAPI) Notifications(_ context.Context, _ string, _ bool, _ int) (*bookingclient.NotificationList, error) {
	f.record("Notifications")
	return &bookingclient.NotificationList{Notifications: f.notifications, Total: len(f.notifications)}, nil
}

func (f *fakeAPI) UnreadCount(_ context.Context, _ string) (int, error) {
	f.record("UnreadCount")
	return f.unread, nil
}

func (f *fakeAPI) MarkNotificationRead(_ context.Context, _ string, _ int64) error {
	f.record("MarkNotificationRead")
	return nil
}

func (f *fakeAPI) MarkAllNotificationsRead(_ context.Context, _ string) error {
	f.record("MarkAllNotificationsRead")
	return nil
}

func (f *fakeAPI) DeleteNotification(_ context.Context, _ string, id int64) error {
	f.record("DeleteNotification")
	f.deletedNotif = id
	return nil
}

type fakePollers struct {
	started []string
	stopped []string
}

func (p *fakePollers) Start(sid, _ string) { p.started = append(p.started, sid) }
func (p *fakePollers) Stop(sid string)     { p.stopped = append(p.stopped, sid) }

// client drives the router keeping the session cookie between requests.
type client struct {
	t      *testing.T
	router *gin.Engine
	cookie string
}

func (cl *client) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	cl.t.Helper()
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if cl.cookie != "" {
		req.Header.Set("Cookie", cl.cookie)
	}
	w := httptest.NewRecorder()
	cl.router.ServeHTTP(w, req)
	if set := w.Header().Get("Set-Cookie"); set != "" {
		cl.cookie = strings.Split(set, ";")[0]
	}
	return w
}

func (cl *client) page() string {
	cl.t.Helper()
	w := cl.do(http.MethodGet, "/", nil)
	require.Equal(cl.t, http.StatusOK, w.Code)
	return w.Body.String()
}

type env struct {
	api     *fakeAPI
	pollers *fakePollers
	badges  cache.Cache
	client  *client
}

func newEnv(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := logger.NewZeroLog("test")
	mem := cache.NewMemoryCache()
	sessions := session.NewManager(mem, 30, l)
	renderer, err := view.New(l)
	require.NoError(t, err)

	api := &fakeAPI{
		user: bookingclient.User{ID: 1, Email: "ana@example.com", FirstName: "Ana", LastName: "García"},
		offers: []bookingclient.FlightOffer{
			{FlightID: 10, InstanceID: 100, FlightNumber: "IB100", Airline: "Iberia", Origin: "MAD", Destination: "BCN", Date: "2026-10-01", DepartureTime: "08:00", ArrivalTime: "09:15", DurationMinutes: 75, Class: "ECONOMICA", Price: 90, AvailableSeats: 20},
			{FlightID: 11, InstanceID: 101, FlightNumber: "IB102", Airline: "Iberia", Origin: "MAD", Destination: "BCN", Date: "2026-10-01", DepartureTime: "18:00", ArrivalTime: "19:15", DurationMinutes: 75, Class: "ECONOMICA", Price: 60, AvailableSeats: 5},
		},
		returns: []bookingclient.FlightOffer{
			{FlightID: 20, InstanceID: 200, FlightNumber: "IB201", Airline: "Iberia", Origin: "BCN", Destination: "MAD", Date: "2026-10-05", DepartureTime: "10:00", ArrivalTime: "11:15", DurationMinutes: 75, Class: "ECONOMICA", Price: 80, AvailableSeats: 8},
		},
		seatMap: bookingclient.SeatMap{
			Seats: []bookingclient.Seat{
				{Number: "1A", Class: "ECONOMICA", Available: true},
				{Number: "1B", Class: "ECONOMICA", Available: true},
				{Number: "2A", Class: "ECONOMICA", Available: false},
			},
			Summary: bookingclient.SeatMapSummary{Total: 3, Available: 2},
		},
		reservation: bookingclient.Reservation{ID: 7, Code: "RSV-007", Status: "PENDIENTE", Total: 170},
	}
	pollers := &fakePollers{}

	ctl := New(api, sessions, mem, pollers, renderer, l)
	router := gin.New()
	ctl.RegisterRoutes(router)

	return &env{
		api:     api,
		pollers: pollers,
		badges:  mem,
		client:  &client{t: t, router: router},
	}
}

func (e *env) login(t *testing.T) {
	t.Helper()
	w := e.client.do(http.MethodPost, "/login", url.Values{"email": {"ana@example.com"}, "password": {"secreta"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
}

func TestLogin_InvalidInputSkipsBackend(t *testing.T) {
	e := newEnv(t)

	w := e.client.do(http.MethodPost, "/login", url.Values{"email": {"no-es-un-email"}, "password": {"123"}})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Formato de email inválido")
	assert.Contains(t, w.Body.String(), "Mínimo 6 caracteres")
	assert.Empty(t, e.api.calls)
}

func TestLogin_BadCredentialsStaysLoggedOut(t *testing.T) {
	e := newEnv(t)
	e.api.loginErr = &bookingclient.APIError{Status: http.StatusUnauthorized, Detail: "Credenciales incorrectas"}

	w := e.client.do(http.MethodPost, "/login", url.Values{"email": {"ana@example.com"}, "password": {"secreta"}})

	require.Equal(t, http.StatusSeeOther, w.Code)
	html := e.client.page()
	assert.Contains(t, html, "Credenciales incorrectas")
	assert.Contains(t, html, "Iniciar Sesión")
	assert.Empty(t, e.pollers.started)
}

func TestLogin_SuccessStartsPollerAndShowsHome(t *testing.T) {
	e := newEnv(t)

	e.login(t)

	require.Len(t, e.pollers.started, 1)
	html := e.client.page()
	assert.Contains(t, html, "Hola, Ana")
	assert.Contains(t, html, "Bienvenido, Ana")
}

func TestRegister_FieldErrorsSkipBackend(t *testing.T) {
	e := newEnv(t)

	w := e.client.do(http.MethodPost, "/registro", url.Values{
		"nombre":   {"A"},
		"apellido": {"García"},
		"email":    {"ana@example.com"},
		"password": {"secreta"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Mínimo 2 caracteres")
	assert.False(t, e.api.called("Register"))
}

func TestSearch_SameOriginAndDestinationBlocked(t *testing.T) {
	e := newEnv(t)
	e.login(t)

	e.client.do(http.MethodPost, "/buscar", url.Values{
		"origen":       {"MAD"},
		"destino":      {"MAD"},
		"fecha_salida": {"2026-10-01"},
		"trip_type":    {"one_way"},
	})

	assert.False(t, e.api.called("SearchByFare"))
	assert.False(t, e.api.called("SearchBySchedule"))
	assert.Contains(t, e.client.page(), "El origen y el destino no pueden ser iguales")
}

func searchRoundTrip(t *testing.T, e *env) {
	t.Helper()
	w := e.client.do(http.MethodPost, "/buscar", url.Values{
		"origen":        {"MAD"},
		"destino":       {"BCN"},
		"fecha_salida":  {"2026-10-01"},
		"fecha_regreso": {"2026-10-05"},
		"trip_type":     {"round_trip"},
		"search_type":   {"tarifas"},
		"pasajeros":     {"1"},
		"clase":         {"ECONOMICA"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
}

func TestSearch_RoundTripShowsOutboundPhase(t *testing.T) {
	e := newEnv(t)
	e.login(t)

	searchRoundTrip(t, e)

	html := e.client.page()
	assert.Contains(t, html, "IB100")
	assert.Contains(t, html, "Seleccionar ida")
	assert.True(t, e.api.called("SearchByFare"))
}

func TestSelectOutbound_SearchesSwappedRoute(t *testing.T) {
	e := newEnv(t)
	e.login(t)
	searchRoundTrip(t, e)

	e.client.do(http.MethodPost, "/vuelos/seleccionar-ida", url.Values{"idx": {"0"}})

	assert.Equal(t, "BCN", e.api.lastSearch.Origin)
	assert.Equal(t, "MAD", e.api.lastSearch.Destination)
	assert.Equal(t, "2026-10-05", e.api.lastSearch.Date)

	html := e.client.page()
	assert.Contains(t, html, "Vuelo de ida seleccionado")
	assert.Contains(t, html, "Cambiar vuelo de ida")
	assert.Contains(t, html, "IB201")
}

func TestSelectReturn_BeforeOutboundRejected(t *testing.T) {
	e := newEnv(t)
	e.login(t)
	searchRoundTrip(t, e)
	e.client.do(http.MethodPost, "/vuelos/seleccionar-ida", url.Values{"idx": {"0"}})

	e.api.returns[0].Date = "2026-09-30"
	e.client.do(http.MethodPost, "/vuelos/cambiar-ida", nil)
	e.client.do(http.MethodPost, "/vuelos/seleccionar-ida", url.Values{"idx": {"0"}})
	e.client.do(http.MethodPost, "/vuelos/seleccionar-vuelta", url.Values{"idx": {"0"}})

	html := e.client.page()
	assert.Contains(t, html, "El vuelo de regreso debe ser posterior al de ida")
	assert.NotContains(t, html, "Confirmar Reserva")
}

func TestChangeOutbound_RestoresOriginalSearch(t *testing.T) {
	e := newEnv(t)
	e.login(t)
	searchRoundTrip(t, e)
	e.client.do(http.MethodPost, "/vuelos/seleccionar-ida", url.Values{"idx": {"0"}})

	e.client.do(http.MethodPost, "/vuelos/cambiar-ida", nil)

	assert.Equal(t, "MAD", e.api.lastSearch.Origin)
	assert.Equal(t, "2026-10-01", e.api.lastSearch.Date)
	html := e.client.page()
	assert.Contains(t, html, "Seleccionar ida")
	assert.NotContains(t, html, "Vuelo de ida seleccionado")
}

func bookRoundTrip(t *testing.T, e *env) {
	t.Helper()
	searchRoundTrip(t, e)
	e.client.do(http.MethodPost, "/vuelos/seleccionar-ida", url.Values{"idx": {"0"}})
	e.client.do(http.MethodPost, "/vuelos/seleccionar-vuelta", url.Values{"idx": {"0"}})
}

func TestSelectReturn_OpensReservationForm(t *testing.T) {
	e := newEnv(t)
	e.login(t)

	bookRoundTrip(t, e)

	html := e.client.page()
	assert.Contains(t, html, "Reservar Ida y Vuelta")
	assert.Contains(t, html, "Vuelo de Ida")
	assert.Contains(t, html, "Vuelo de Regreso")
	assert.Contains(t, html, "Confirmar Reserva")
}

func TestToggleSeat_CapAtPassengerCount(t *testing.T) {
	e := newEnv(t)
	e.login(t)
	bookRoundTrip(t, e)

	e.client.do(http.MethodPost, "/asientos/toggle", url.Values{"leg": {"0"}, "asiento": {"1A"}})
	e.client.do(http.MethodPost, "/asientos/toggle", url.Values{"leg": {"0"}, "asiento": {"1B"}})

	assert.Contains(t, e.client.page(), "solo puedes seleccionar 1 asiento(s)")
}

func TestCreateReservation_IncompleteLegBlocked(t *testing.T) {
	e := newEnv(t)
	e.login(t)
	bookRoundTrip(t, e)

	e.client.do(http.MethodPost, "/asientos/toggle", url.Values{"leg": {"0"}, "asiento": {"1A"}})
	e.client.do(http.MethodPost, "/reservas", nil)

	assert.False(t, e.api.called("CreateReservation"))
	assert.Contains(t, e.client.page(), "vuelo de regreso")
}

func TestCreateReservation_SubmitsBothLegs(t *testing.T) {
	e := newEnv(t)
	e.login(t)
	bookRoundTrip(t, e)

	e.client.do(http.MethodPost, "/asientos/toggle", url.Values{"leg": {"0"}, "asiento": {"1A"}})
	e.client.do(http.MethodPost, "/asientos/toggle", url.Values{"leg": {"1"}, "asiento": {"1B"}})
	e.api.reservations = []bookingclient.Reservation{e.api.reservation}
	e.client.do(http.MethodPost, "/reservas", nil)

	require.True(t, e.api.called("CreateReservation"))
	require.Len(t, e.api.lastReservation.Details, 2)
	assert.Equal(t, int64(100), e.api.lastReservation.Details[0].InstanceID)
	assert.Equal(t, int64(200), e.api.lastReservation.Details[1].InstanceID)
	assert.Equal(t, "1A", e.api.lastReservation.Details[0].Passengers[0].SeatNumber)
	assert.Equal(t, "Ana", e.api.lastReservation.Details[0].Passengers[0].FirstName)

	html := e.client.page()
	assert.Contains(t, html, "Reserva RSV-007 creada")
	assert.Contains(t, html, "170.00 €")
}

func TestCreateReservation_LandsOnReservationsList(t *testing.T) {
	e := newEnv(t)
	e.login(t)
	bookRoundTrip(t, e)
	e.client.do(http.MethodPost, "/asientos/toggle", url.Values{"leg": {"0"}, "asiento": {"1A"}})
	e.client.do(http.MethodPost, "/asientos/toggle", url.Values{"leg": {"1"}, "asiento": {"1B"}})
	e.api.reservations = []bookingclient.Reservation{e.api.reservation}

	e.client.do(http.MethodPost, "/reservas", nil)

	html := e.client.page()
	assert.Contains(t, html, "Mis Reservas")
	assert.Contains(t, html, "RSV-007")
	assert.Contains(t, html, "/reservas/RSV-007/pagar")
	assert.NotContains(t, html, "Pagar Reserva RSV-007")
}

func TestPayReservation_OpensPaymentView(t *testing.T) {
	e := newEnv(t)
	e.login(t)

	e.client.do(http.MethodPost, "/reservas/RSV-007/pagar", nil)

	html := e.client.page()
	assert.Contains(t, html, "Pagar Reserva RSV-007")
	assert.Contains(t, html, "170.00 €")
	assert.True(t, e.api.called("Reservation"))
}

func payWithNewCard(e *env, form url.Values) *httptest.ResponseRecorder {
	base := url.Values{
		"payment_method": {"new"},
		"numero":         {"4111 1111 1111 1111"},
		"titular":        {"Ana García"},
		"expiracion":     {"12/2028"},
		"cvv":            {"123"},
		"tipo":           {"VISA"},
		"entrega":        {"EMAIL"},
	}
	for k, v := range form {
		base[k] = v
	}
	return e.client.do(http.MethodPost, "/pagos", base)
}

func TestProcessPayment_InvalidCardSkipsBackend(t *testing.T) {
	e := newEnv(t)
	e.login(t)
	bookRoundTrip(t, e)
	e.client.do(http.MethodPost, "/asientos/toggle", url.Values{"leg": {"0"}, "asiento": {"1A"}})
	e.client.do(http.MethodPost, "/asientos/toggle", url.Values{"leg": {"1"}, "asiento": {"1B"}})
	e.client.do(http.MethodPost, "/reservas", nil)

	w := payWithNewCard(e, url.Values{"numero": {"1234"}})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Número de tarjeta inválido")
	assert.False(t, e.api.called("AddCard"))
	assert.False(t, e.api.called("ProcessPayment"))
}

func TestProcessPayment_NewCardIssuesTickets(t *testing.T) {
	e := newEnv(t)
	e.login(t)
	bookRoundTrip(t, e)
	e.client.do(http.MethodPost, "/asientos/toggle", url.Values{"leg": {"0"}, "asiento": {"1A"}})
	e.client.do(http.MethodPost, "/asientos/toggle", url.Values{"leg": {"1"}, "asiento": {"1B"}})
	e.client.do(http.MethodPost, "/reservas", nil)
	e.api.tickets = []bookingclient.Ticket{{Code: "BIL-001", Status: "EMITIDO"}}

	w := payWithNewCard(e, url.Values{"entrega": {"AEROPUERTO"}})

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.True(t, e.api.called("AddCard"))
	assert.Equal(t, "4111111111111111", e.api.lastCard.Number)
	assert.Equal(t, int64(42), e.api.lastPayment.CardID)
	assert.Equal(t, int64(7), e.api.lastPayment.ReservationID)
	assert.Equal(t, "AEROPUERTO", e.api.lastPayment.DeliveryMethod)

	html := e.client.page()
	assert.Contains(t, html, "Billetes")
	assert.Contains(t, html, "Pago procesado")
	assert.Contains(t, html, "BIL-001")
}

func TestProcessPayment_SavedCard(t *testing.T) {
	e := newEnv(t)
	e.login(t)
	bookRoundTrip(t, e)
	e.client.do(http.MethodPost, "/asientos/toggle", url.Values{"leg": {"0"}, "asiento": {"1A"}})
	e.client.do(http.MethodPost, "/asientos/toggle", url.Values{"leg": {"1"}, "asiento": {"1B"}})
	e.client.do(http.MethodPost, "/reservas", nil)

	e.client.do(http.MethodPost, "/pagos", url.Values{
		"payment_method": {"saved"},
		"tarjeta_id":     {"9"},
		"entrega":        {"EMAIL"},
	})

	assert.False(t, e.api.called("AddCard"))
	assert.Equal(t, int64(9), e.api.lastPayment.CardID)
	assert.Equal(t, "EMAIL", e.api.lastPayment.DeliveryMethod)
}

func TestCheckIn_ShowsBoardingDetailsOnce(t *testing.T) {
	e := newEnv(t)
	e.login(t)
	e.api.tickets = []bookingclient.Ticket{{Code: "BIL-001", Status: "EMITIDO"}}
	e.api.checkIn = bookingclient.CheckInResult{
		Message:    "Check-in realizado exitosamente",
		TicketCode: "BIL-001",
		Seat:       "12A",
		Gate:       "B4",
		Flight:     bookingclient.CheckInFlight{Number: "IB100", Date: "2026-10-01", DepartureTime: "08:00"},
	}

	e.client.do(http.MethodPost, "/checkin/BIL-001", nil)

	html := e.client.page()
	assert.Contains(t, html, "12A")
	assert.Contains(t, html, "B4")
	assert.Contains(t, html, "Puerta de Embarque")

	again := e.client.page()
	assert.NotContains(t, again, "Puerta de Embarque")
}

func TestExpiredTokenResetsSession(t *testing.T) {
	e := newEnv(t)
	e.login(t)
	e.api.reservationsErr = &bookingclient.APIError{Status: http.StatusUnauthorized, Detail: "Token expirado"}

	e.client.do(http.MethodPost, "/nav/reservas", nil)
	w := e.client.do(http.MethodGet, "/", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	html := e.client.page()

	assert.Contains(t, html, "Tu sesión ha expirado")
	assert.Contains(t, html, "Iniciar Sesión")
	assert.NotEmpty(t, e.pollers.stopped)
}

func TestLogout_StopsPollerAndDropsSession(t *testing.T) {
	e := newEnv(t)
	e.login(t)

	e.client.do(http.MethodPost, "/logout", nil)

	assert.NotEmpty(t, e.pollers.stopped)
	assert.Contains(t, e.client.page(), "Iniciar Sesión")
}

func TestNotificationBadge_PrefersCachedCount(t *testing.T) {
	e := newEnv(t)
	e.login(t)
	sid := strings.SplitN(e.client.cookie, "=", 2)[1]
	require.NoError(t, e.badges.Set(context.Background(), poller.BadgeKey(sid), "5", time.Minute))

	w := e.client.do(http.MethodGet, "/notificaciones/badge", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"no_leidas": 5}`, w.Body.String())
	assert.False(t, e.api.called("UnreadCount"))
}

func TestNotificationBadge_FallsBackToBackend(t *testing.T) {
	e := newEnv(t)
	e.login(t)
	e.api.unread = 3

	w := e.client.do(http.MethodGet, "/notificaciones/badge", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"no_leidas": 3}`, w.Body.String())
	assert.True(t, e.api.called("UnreadCount"))
}

func TestNotificationList_RendersFragment(t *testing.T) {
	e := newEnv(t)
	e.login(t)
	e.api.notifications = []bookingclient.Notification{
		{ID: 3, Type: "PAGO_CONFIRMADO", Title: "Pago confirmado", Message: "Listo", Read: false},
	}

	w := e.client.do(http.MethodGet, "/notificaciones/lista", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `data-notif-id="3"`)
}

func TestMarkAllNotificationsRead_Returns204(t *testing.T) {
	e := newEnv(t)
	e.login(t)

	w := e.client.do(http.MethodPost, "/notificaciones/marcar-todas", nil)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, e.api.called("MarkAllNotificationsRead"))

	sid := strings.SplitN(e.client.cookie, "=", 2)[1]
	cached, err := e.badges.Get(context.Background(), poller.BadgeKey(sid))
	require.NoError(t, err)
	assert.Equal(t, "0", cached)
}

func TestAnonymousPostRedirectsToLogin(t *testing.T) {
	e := newEnv(t)

	w := e.client.do(http.MethodPost, "/buscar", url.Values{"origen": {"MAD"}, "destino": {"BCN"}})

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Empty(t, e.api.calls)
}

func TestVerifyEmail_RendersResultPage(t *testing.T) {
	e := newEnv(t)

	w := e.client.do(http.MethodGet, "/verificar-email/tok-abc", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Email verificado correctamente")
	assert.True(t, e.api.called("VerifyEmail"))
}

func TestResetPassword_MismatchBlocked(t *testing.T) {
	e := newEnv(t)

	w := e.client.do(http.MethodPost, "/recuperar-password", url.Values{
		"token":            {"tok-abc"},
		"password":         {"secreta1"},
		"password_confirm": {"secreta2"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Las contraseñas no coinciden")
	assert.False(t, e.api.called("ResetPassword"))
}

func TestFlightInfo_RendersPanelAboveResults(t *testing.T) {
	e := newEnv(t)
	e.login(t)
	searchRoundTrip(t, e)
	e.api.flightInfo = bookingclient.FlightInfo{
		Flight: bookingclient.FlightInfoFlight{
			FlightNumber: "IB100", Airline: "Iberia",
			Origin: "Madrid (MAD)", Destination: "Barcelona (BCN)",
			DepartureTime: "08:00", ArrivalTime: "09:15",
			DurationMinutes: 75, Active: true,
		},
		Fares:  []bookingclient.Fare{{Class: "ECONOMICA", Price: 90}},
		Status: &bookingclient.FlightStatus{Date: "2026-10-01", Gate: "A3"},
	}

	w := e.client.do(http.MethodPost, "/vuelos/informacion", url.Values{
		"numero": {"IB100"},
		"fecha":  {"2026-10-01"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	html := w.Body.String()
	assert.Contains(t, html, "Información del Vuelo IB100")
	assert.Contains(t, html, "Madrid (MAD)")
	assert.Contains(t, html, "90.00 €")
	assert.Contains(t, html, "A3")
	assert.Contains(t, html, "Seleccionar ida")

	assert.NotContains(t, e.client.page(), "Información del Vuelo IB100")
}

func TestDeleteCard_RemovesStoredCard(t *testing.T) {
	e := newEnv(t)
	e.login(t)

	e.client.do(http.MethodPost, "/pagos/tarjetas/9/eliminar", nil)

	assert.True(t, e.api.called("DeleteCard"))
	assert.Equal(t, int64(9), e.api.deletedCard)
	assert.Contains(t, e.client.page(), "Tarjeta eliminada correctamente")
}

func TestTicketDetail_RendersPanelOnce(t *testing.T) {
	e := newEnv(t)
	e.login(t)
	e.api.tickets = []bookingclient.Ticket{{Code: "BIL-001", Status: "EMITIDO"}}
	e.api.ticketDetail = bookingclient.TicketDetail{
		Ticket:    bookingclient.TicketDetailTicket{Code: "BIL-001", Status: "EMITIDO"},
		Passenger: bookingclient.Passenger{FirstName: "Ana", LastName: "García"},
		Flight: bookingclient.TicketDetailFlight{
			FlightNumber: "IB100", Airline: "Iberia",
			Origin: "Madrid (MAD)", Destination: "Barcelona (BCN)",
			Date: "2026-10-01", DepartureTime: "08:00", ArrivalTime: "09:15",
			Gate: "B2",
		},
		Seat:            bookingclient.TicketDetailSeat{Number: "12A", Class: "ECONOMICA"},
		Price:           90,
		ReservationCode: "RSV-007",
	}

	w := e.client.do(http.MethodPost, "/billetes/BIL-001/detalle", nil)

	require.Equal(t, http.StatusOK, w.Code)
	html := w.Body.String()
	assert.Contains(t, html, "Detalles del Billete")
	assert.Contains(t, html, "12A")
	assert.Contains(t, html, "RSV-007")
	assert.Contains(t, html, "B2")

	assert.NotContains(t, e.client.page(), "Detalles del Billete")
}

func TestProfile_ShowsPaymentHistory(t *testing.T) {
	e := newEnv(t)
	e.login(t)
	e.api.payments = []bookingclient.Payment{
		{ID: 1, ReservationID: 7, Amount: 170, PaidAt: "2026-09-01", Status: "COMPLETADO", AuthorizationCode: "AUTH-123"},
	}

	e.client.do(http.MethodPost, "/nav/perfil", nil)

	html := e.client.page()
	assert.Contains(t, html, "Historial de Pagos")
	assert.Contains(t, html, "170.00 €")
	assert.Contains(t, html, "AUTH-123")
	assert.True(t, e.api.called("PaymentHistory"))
}

func TestDeleteNotification_Returns204(t *testing.T) {
	e := newEnv(t)
	e.login(t)

	w := e.client.do(http.MethodPost, "/notificaciones/3/eliminar", nil)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, e.api.called("DeleteNotification"))
	assert.Equal(t, int64(3), e.api.deletedNotif)
}
