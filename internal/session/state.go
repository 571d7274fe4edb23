// Package session owns the per-user controller state: the single mutable
// state object every handler loads, mutates and saves. Nothing here talks to
// the network; transitions are pure so they can be tested in isolation.
package session

import (
	"fmt"

	"skybook/pkg/bookingclient"
)

// View identifiers. Kept in the backend's locale to match the route names.
const (
	ViewHome         = "home"
	ViewSearch       = "buscar"
	ViewReservations = "reservas"
	ViewTickets      = "billetes"
	ViewProfile      = "perfil"
	ViewReserve      = "reservar"
	ViewPay          = "pagar"
)

// Phase of an in-progress round-trip search.
type Phase string

const (
	PhaseNone     Phase = ""
	PhaseOutbound Phase = "ida"
	PhaseReturn   Phase = "vuelta"
)

// Flash is a queued toast, drained at the next render.
type Flash struct {
	Kind       string `json:"kind"` // success | error | warning | info
	Message    string `json:"message"`
	DurationMS int    `json:"duration_ms"`
}

// SearchParams captures everything needed to re-issue a search, including
// the outbound leg's original query for changeOutbound.
type SearchParams struct {
	bookingclient.SearchRequest
	SearchType string `json:"search_type"` // tarifas | horarios
	ReturnDate string `json:"return_date,omitempty"`
	RoundTrip  bool   `json:"round_trip"`
	Passengers int    `json:"passengers"`
}

// Swapped returns the return-leg query: origin/destination inverted, dated
// on the return date.
func (p SearchParams) Swapped() SearchParams {
	swapped := p
	swapped.Origin, swapped.Destination = p.Destination, p.Origin
	swapped.Date = p.ReturnDate
	return swapped
}

// State is the controller's whole mutable world for one session. It is
// JSON-serialized into the cache backend between requests.
type State struct {
	Token string              `json:"token"`
	User  *bookingclient.User `json:"user,omitempty"`
	View  string              `json:"view"`

	Passengers int `json:"passengers"`

	// Trip holds the selected leg(s) once a booking is underway: one offer
	// for one-way, outbound+return for round trips.
	Trip      []bookingclient.FlightOffer `json:"trip,omitempty"`
	RoundTrip bool                        `json:"round_trip"`

	// Outbound is the leg held while return candidates are displayed.
	Outbound       *bookingclient.FlightOffer `json:"outbound,omitempty"`
	OriginalSearch *SearchParams              `json:"original_search,omitempty"`
	Phase          Phase                      `json:"phase,omitempty"`

	// Results is the last displayed result list, kept so sorting and
	// re-renders work from carried data rather than a refetch.
	Results []bookingclient.FlightOffer `json:"results,omitempty"`
	SortBy  string                      `json:"sort_by,omitempty"`

	// Seats maps leg index to the seat numbers selected for that leg.
	Seats map[int][]string `json:"seats,omitempty"`

	PendingReservation *bookingclient.Reservation `json:"pending_reservation,omitempty"`

	// LastCheckIn holds the boarding details from the most recent check-in,
	// shown once on the tickets view and then dropped.
	LastCheckIn *bookingclient.CheckInResult `json:"last_check_in,omitempty"`

	Flashes []Flash `json:"flashes,omitempty"`
}

func NewState() *State {
	return &State{View: ViewHome, Passengers: 1}
}

// Navigate sets the active view rendered on the next GET /.
func (s *State) Navigate(view string) {
	s.View = view
}

// BeginBooking stores the selected legs and moves to the reservation form.
func (s *State) BeginBooking(legs []bookingclient.FlightOffer, roundTrip bool) {
	s.Trip = legs
	s.RoundTrip = roundTrip
	s.Seats = make(map[int][]string)
	s.Navigate(ViewReserve)
}

// SelectOutbound holds the chosen outbound leg along with the parameters
// needed to re-run the original search, and moves the round-trip machine to
// the return phase. The caller issues the swapped search.
func (s *State) SelectOutbound(offer bookingclient.FlightOffer, params SearchParams) {
	held := offer
	s.Outbound = &held
	s.OriginalSearch = &params
	s.Phase = PhaseReturn
}

// SelectReturn combines the held outbound with the chosen return leg and
// enters the reservation form. It is a no-op without a held outbound.
func (s *State) SelectReturn(offer bookingclient.FlightOffer) bool {
	if s.Outbound == nil {
		return false
	}
	legs := []bookingclient.FlightOffer{*s.Outbound, offer}
	s.Outbound = nil
	s.OriginalSearch = nil
	s.Phase = PhaseNone
	s.BeginBooking(legs, true)
	return true
}

// ChangeOutbound drops the held outbound and moves back to the outbound
// phase. The caller re-issues the original search, which this returns.
func (s *State) ChangeOutbound() *SearchParams {
	s.Outbound = nil
	s.Phase = PhaseOutbound
	return s.OriginalSearch
}

// ToggleSeat flips a seat for the given leg. Selecting beyond the passenger
// count is rejected and leaves the selection untouched.
func (s *State) ToggleSeat(leg int, seat string) (selected bool, err error) {
	if s.Seats == nil {
		s.Seats = make(map[int][]string)
	}
	current := s.Seats[leg]
	for i, sel := range current {
		if sel == seat {
			s.Seats[leg] = append(current[:i], current[i+1:]...)
			return false, nil
		}
	}
	if len(current) >= s.Passengers {
		return false, fmt.Errorf("solo puedes seleccionar %d asiento(s) para %d pasajero(s)", s.Passengers, s.Passengers)
	}
	s.Seats[leg] = append(current, seat)
	return true, nil
}

// IncompleteLeg returns the index of the first leg whose seat count differs
// from the passenger count, or -1 when every leg is complete.
func (s *State) IncompleteLeg() int {
	for i := range s.Trip {
		if len(s.Seats[i]) != s.Passengers {
			return i
		}
	}
	return -1
}

// Flash queues a toast with the default display duration.
func (s *State) Flash(kind, message string) {
	s.FlashFor(kind, message, 4000)
}

func (s *State) FlashFor(kind, message string, durationMS int) {
	s.Flashes = append(s.Flashes, Flash{Kind: kind, Message: message, DurationMS: durationMS})
}

// DrainFlashes empties the toast queue and returns it.
func (s *State) DrainFlashes() []Flash {
	flashes := s.Flashes
	s.Flashes = nil
	return flashes
}

// DrainCheckIn returns the pending check-in result once.
func (s *State) DrainCheckIn() *bookingclient.CheckInResult {
	result := s.LastCheckIn
	s.LastCheckIn = nil
	return result
}

// ClearAuth wipes everything tied to the authenticated user.
func (s *State) ClearAuth() {
	*s = *NewState()
}
