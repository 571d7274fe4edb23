package view

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"skybook/internal/session"
	"skybook/pkg/bookingclient"
)

// PageData is everything Page needs to render the document for the current
// state. Exactly one of the view payloads is set, matching State.View.
type PageData struct {
	User    *bookingclient.User
	View    string
	Flashes []session.Flash
	Badge   int

	Auth         *AuthData
	TokenPage    *TokenPageData
	Search       *SearchData
	Reserve      *ReserveData
	Reservations []ReservationItem
	Tickets      []TicketItem
	CheckIn      *bookingclient.CheckInResult
	TicketDetail *TicketDetailData
	Profile      *ProfileData
	Payment      *PaymentData
}

// AuthData renders the login/registration page. FieldErrors is keyed by
// input name.
type AuthData struct {
	ActiveTab   string // login | registro
	FieldErrors map[string]string
	Email       string
}

// TokenPageData renders the email-verification and password-reset deep
// links, which bypass normal routing.
type TokenPageData struct {
	Kind    string // verificar-email | recuperar-password
	Token   string
	Done    bool
	Failed  bool
	Message string
}

// SearchData renders the search form plus, when present, the result list
// and the flight-info lookup panel.
type SearchData struct {
	Cities   []bookingclient.City
	Airlines []bookingclient.Airline
	Params   *session.SearchParams
	Results  *ResultsData
	Info     *FlightInfoData
}

// FlightInfoData is the flight lookup panel rendered above the results.
type FlightInfoData struct {
	Flight      bookingclient.FlightInfoFlight
	DurationFmt string
	Fares       []FareItem
	Status      *bookingclient.FlightStatus
}

type FareItem struct {
	Class    string
	PriceFmt string
}

func NewFlightInfoData(info *bookingclient.FlightInfo) *FlightInfoData {
	fares := make([]FareItem, 0, len(info.Fares))
	for _, f := range info.Fares {
		fares = append(fares, FareItem{Class: f.Class, PriceFmt: FormatPrice(f.Price)})
	}
	return &FlightInfoData{
		Flight:      info.Flight,
		DurationFmt: FormatDuration(info.Flight.DurationMinutes),
		Fares:       fares,
		Status:      info.Status,
	}
}

// ResultsData is the result list in any of its variants: outbound
// candidates, return candidates under a held outbound summary, or empty.
type ResultsData struct {
	Offers   []OfferItem
	Phase    session.Phase
	Outbound *OfferItem // summary shown while picking the return leg
	SortBy   string
}

type OfferItem struct {
	bookingclient.FlightOffer
	Duration string
	PriceFmt string
}

// ReserveData renders the reservation form with one seat grid per leg.
type ReserveData struct {
	Legs       []ReserveLeg
	RoundTrip  bool
	Passengers int
	TotalFmt   string
}

type ReserveLeg struct {
	Index    int
	Label    string // Vuelo de Ida / Vuelo de Regreso / Vuelo
	Offer    OfferItem
	Rows     []SeatRow
	Summary  bookingclient.SeatMapSummary
	Selected []string
	LoadErr  bool
}

type SeatRow struct {
	Row   string
	Seats []SeatCell
}

type SeatCell struct {
	bookingclient.Seat
	Selected bool
}

type ReservationItem struct {
	bookingclient.Reservation
	StatusClass string
	TotalFmt    string
	Payable     bool
	Cancelable  bool
}

type TicketItem struct {
	bookingclient.Ticket
	CanCheckIn bool
}

// TicketDetailData is the single-ticket panel opened from the list.
type TicketDetailData struct {
	bookingclient.TicketDetail
	PriceFmt string
}

func NewTicketDetailData(detail *bookingclient.TicketDetail) *TicketDetailData {
	return &TicketDetailData{TicketDetail: *detail, PriceFmt: FormatPrice(detail.Price)}
}

type ProfileData struct {
	User        *bookingclient.User
	Payments    []PaymentItem
	FieldErrors map[string]string
}

type PaymentItem struct {
	bookingclient.Payment
	AmountFmt   string
	StatusClass string
}

func NewPaymentItems(payments []bookingclient.Payment) []PaymentItem {
	items := make([]PaymentItem, 0, len(payments))
	for _, p := range payments {
		items = append(items, PaymentItem{
			Payment:     p,
			AmountFmt:   FormatPrice(p.Amount),
			StatusClass: "status-" + lower(p.Status),
		})
	}
	return items
}

// PaymentData renders the payment view for the pending reservation.
type PaymentData struct {
	Reservation *bookingclient.Reservation
	TotalFmt    string
	Cards       []bookingclient.CreditCard
	FieldErrors map[string]string
}

// PassengerOptions feeds the passenger count select.
func (PageData) PassengerOptions() []int {
	return []int{1, 2, 3, 4, 5, 6}
}

// NotifListData renders the dropdown's notification list fragment.
type NotifListData struct {
	Notifications []NotifItem
}

type NotifItem struct {
	bookingclient.Notification
	Icon string
}

var notificationIcons = map[string]string{
	"RESERVA_CREADA":    "🧾",
	"PAGO_CONFIRMADO":   "💳",
	"BILLETE_EMITIDO":   "🎫",
	"CHECK_IN":          "🛫",
	"RESERVA_CANCELADA": "❌",
	"RECORDATORIO":      "⏰",
}

func NewNotifItems(notifications []bookingclient.Notification) NotifListData {
	items := make([]NotifItem, 0, len(notifications))
	for _, n := range notifications {
		icon, ok := notificationIcons[n.Type]
		if !ok {
			icon = "🔔"
		}
		items = append(items, NotifItem{Notification: n, Icon: icon})
	}
	return NotifListData{Notifications: items}
}

// NewOfferItem decorates a wire offer with display fields.
func NewOfferItem(offer bookingclient.FlightOffer) OfferItem {
	return OfferItem{
		FlightOffer: offer,
		Duration:    FormatDuration(offer.DurationMinutes),
		PriceFmt:    FormatPrice(offer.Price),
	}
}

func NewOfferItems(offers []bookingclient.FlightOffer) []OfferItem {
	items := make([]OfferItem, 0, len(offers))
	for _, offer := range offers {
		items = append(items, NewOfferItem(offer))
	}
	return items
}

func FormatDuration(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

func FormatPrice(amount float64) string {
	return fmt.Sprintf("%.2f €", amount)
}

var rowNumberRegex = regexp.MustCompile(`\d+`)

// GroupSeatRows groups a seat map by row number, rows ascending and seats
// ordered by letter within each row.
func GroupSeatRows(seats []bookingclient.Seat, selected []string) []SeatRow {
	selectedSet := make(map[string]bool, len(selected))
	for _, s := range selected {
		selectedSet[s] = true
	}

	byRow := make(map[string][]SeatCell)
	for _, seat := range seats {
		row := rowNumberRegex.FindString(seat.Number)
		if row == "" {
			row = "1"
		}
		byRow[row] = append(byRow[row], SeatCell{Seat: seat, Selected: selectedSet[seat.Number]})
	}

	rows := make([]SeatRow, 0, len(byRow))
	for row, cells := range byRow {
		sort.Slice(cells, func(i, j int) bool { return cells[i].Number < cells[j].Number })
		rows = append(rows, SeatRow{Row: row, Seats: cells})
	}
	sort.Slice(rows, func(i, j int) bool {
		a, _ := strconv.Atoi(rows[i].Row)
		b, _ := strconv.Atoi(rows[j].Row)
		return a < b
	})
	return rows
}

// SortOffers orders a copy of the result list by the given criterion,
// operating only on the data it carries.
func SortOffers(offers []bookingclient.FlightOffer, by string) []bookingclient.FlightOffer {
	sorted := make([]bookingclient.FlightOffer, len(offers))
	copy(sorted, offers)
	switch by {
	case "precio":
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Price < sorted[j].Price })
	case "salida":
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].DepartureTime < sorted[j].DepartureTime })
	case "duracion":
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].DurationMinutes < sorted[j].DurationMinutes })
	}
	return sorted
}

// NewReservationItem derives the action flags the list renders.
func NewReservationItem(r bookingclient.Reservation) ReservationItem {
	return ReservationItem{
		Reservation: r,
		StatusClass: "status-" + lower(r.Status),
		TotalFmt:    FormatPrice(r.Total),
		Payable:     r.Status == "PENDIENTE",
		Cancelable:  r.Status == "PENDIENTE" || r.Status == "CONFIRMADA",
	}
}

// NewTicketItem applies the local check-in gate: only issued, not yet
// checked-in tickets get the control. The server still owns the time
// window.
func NewTicketItem(t bookingclient.Ticket) TicketItem {
	return TicketItem{
		Ticket:     t,
		CanCheckIn: t.Status == bookingclient.TicketStatusIssued && !t.CheckedIn,
	}
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 32
		}
	}
	return string(b)
}
