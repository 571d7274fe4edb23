package bookingclient

// Wire shapes follow the backend schema exactly; field names stay in the
// backend's locale on the wire.

type User struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	FirstName    string `json:"nombre"`
	LastName     string `json:"apellido"`
	Phone        string `json:"telefono,omitempty"`
	RegisteredAt string `json:"fecha_registro"`
	Active       bool   `json:"activo"`
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type City struct {
	ID       int64  `json:"id"`
	Name     string `json:"nombre"`
	IATACode string `json:"codigo_iata"`
	Country  string `json:"pais"`
	Timezone string `json:"zona_horaria,omitempty"`
}

type Airline struct {
	ID       int64  `json:"id"`
	Name     string `json:"nombre"`
	IATACode string `json:"codigo_iata"`
	Country  string `json:"pais,omitempty"`
	Active   bool   `json:"activa"`
}

// FlightOffer is an ephemeral search result. InstanceID is required to
// create a reservation and may be absent when no instance exists for the
// requested date.
type FlightOffer struct {
	FlightID        int64   `json:"vuelo_id"`
	InstanceID      int64   `json:"instancia_vuelo_id,omitempty"`
	FlightNumber    string  `json:"numero_vuelo"`
	Airline         string  `json:"aerolinea"`
	Origin          string  `json:"origen"`
	Destination     string  `json:"destino"`
	Date            string  `json:"fecha"`
	DepartureTime   string  `json:"hora_salida"`
	ArrivalTime     string  `json:"hora_llegada"`
	DurationMinutes int     `json:"duracion_minutos"`
	Class           string  `json:"clase"`
	Price           float64 `json:"precio"`
	AvailableSeats  int     `json:"asientos_disponibles"`
}

// FlightInfo is the free-standing flight lookup: static flight data plus
// fares, and the day's status when a date was given.
type FlightInfo struct {
	Flight FlightInfoFlight `json:"vuelo"`
	Fares  []Fare           `json:"tarifas"`
	Status *FlightStatus    `json:"estado_vuelo,omitempty"`
}

type FlightInfoFlight struct {
	FlightNumber    string `json:"numero_vuelo"`
	Airline         string `json:"aerolinea"`
	Origin          string `json:"origen"`
	Destination     string `json:"destino"`
	DepartureTime   string `json:"hora_salida"`
	ArrivalTime     string `json:"hora_llegada"`
	DurationMinutes int    `json:"duracion_minutos"`
	Active          bool   `json:"activo"`
}

type Fare struct {
	Class    string  `json:"clase"`
	Price    float64 `json:"precio"`
	Currency string  `json:"moneda,omitempty"`
}

// FlightStatus carries either the instance for the requested date or a
// message saying there is none.
type FlightStatus struct {
	Date           string        `json:"fecha,omitempty"`
	Status         string        `json:"estado,omitempty"`
	Gate           string        `json:"puerta,omitempty"`
	AvailableSeats *SeatsByClass `json:"asientos_disponibles,omitempty"`
	Message        string        `json:"mensaje,omitempty"`
}

type SeatsByClass struct {
	Economy  int `json:"economica"`
	Business int `json:"ejecutiva"`
	First    int `json:"primera_clase"`
}

type SearchRequest struct {
	Origin        string   `json:"origen"`
	Destination   string   `json:"destino"`
	Date          string   `json:"fecha"`
	Class         string   `json:"clase,omitempty"`
	AirlineCode   string   `json:"aerolinea_codigo,omitempty"`
	DirectOnly    bool     `json:"solo_directos,omitempty"`
	DepartureSlot string   `json:"horario_salida,omitempty"`
	MaxPrice      *float64 `json:"precio_maximo,omitempty"`
}

type Passenger struct {
	FirstName  string `json:"nombre"`
	LastName   string `json:"apellido"`
	SeatNumber string `json:"asiento_numero,omitempty"`
}

type ReservationDetailCreate struct {
	InstanceID int64       `json:"instancia_vuelo_id"`
	Passengers []Passenger `json:"pasajeros"`
	Class      string      `json:"clase"`
}

type ReservationCreate struct {
	Details []ReservationDetailCreate `json:"detalles"`
}

type ReservationDetail struct {
	ID                 int64   `json:"id"`
	PassengerFirstName string  `json:"pasajero_nombre"`
	PassengerLastName  string  `json:"pasajero_apellido"`
	Class              string  `json:"clase"`
	Price              float64 `json:"precio"`
	InstanceID         int64   `json:"instancia_vuelo_id"`
	SeatID             *int64  `json:"asiento_id,omitempty"`
}

type Reservation struct {
	ID        int64               `json:"id"`
	Code      string              `json:"codigo_reserva"`
	UserID    int64               `json:"usuario_id"`
	CreatedAt string              `json:"fecha_reserva"`
	Status    string              `json:"estado"`
	Total     float64             `json:"total"`
	Details   []ReservationDetail `json:"detalles"`
}

type CreditCard struct {
	ID         int64  `json:"id,omitempty"`
	Number     string `json:"numero_tarjeta"`
	Holder     string `json:"nombre_titular"`
	Expiration string `json:"fecha_expiracion"`
	CVV        string `json:"cvv,omitempty"`
	Type       string `json:"tipo"`
}

type PaymentRequest struct {
	ReservationID  int64  `json:"reserva_id"`
	CardID         int64  `json:"tarjeta_id"`
	DeliveryMethod string `json:"metodo_entrega"`
}

type Payment struct {
	ID                int64   `json:"id"`
	ReservationID     int64   `json:"reserva_id"`
	Amount            float64 `json:"monto"`
	PaidAt            string  `json:"fecha_pago"`
	Status            string  `json:"estado"`
	AuthorizationCode string  `json:"numero_autorizacion,omitempty"`
}

type TicketFlight struct {
	FlightNumber string `json:"numero_vuelo"`
	Date         string `json:"fecha"`
	Origin       string `json:"origen"`
	Destination  string `json:"destino"`
}

type Ticket struct {
	Code           string        `json:"codigo_billete"`
	IssuedAt       string        `json:"fecha_emision"`
	DeliveryMethod string        `json:"metodo_entrega"`
	Status         string        `json:"estado"`
	Passenger      string        `json:"pasajero,omitempty"`
	CheckedIn      bool          `json:"check_in_realizado"`
	Flight         *TicketFlight `json:"vuelo,omitempty"`
}

// TicketDetail is the single-ticket lookup, richer than the list item.
type TicketDetail struct {
	Ticket          TicketDetailTicket `json:"billete"`
	Passenger       Passenger          `json:"pasajero"`
	Flight          TicketDetailFlight `json:"vuelo"`
	Seat            TicketDetailSeat   `json:"asiento"`
	Price           float64            `json:"precio"`
	ReservationCode string             `json:"reserva_codigo"`
}

type TicketDetailTicket struct {
	Code           string `json:"codigo"`
	IssuedAt       string `json:"fecha_emision"`
	DeliveryMethod string `json:"metodo_entrega"`
	Status         string `json:"estado"`
}

type TicketDetailFlight struct {
	FlightNumber  string `json:"numero_vuelo"`
	Airline       string `json:"aerolinea"`
	Origin        string `json:"origen"`
	Destination   string `json:"destino"`
	Date          string `json:"fecha"`
	DepartureTime string `json:"hora_salida"`
	ArrivalTime   string `json:"hora_llegada"`
	Gate          string `json:"puerta,omitempty"`
}

type TicketDetailSeat struct {
	Number string `json:"numero"`
	Class  string `json:"clase"`
}

type CheckInFlight struct {
	Number        string `json:"numero"`
	Date          string `json:"fecha"`
	DepartureTime string `json:"hora_salida"`
}

type CheckInResult struct {
	Message    string        `json:"message"`
	TicketCode string        `json:"billete_codigo"`
	CheckedAt  string        `json:"fecha_check_in"`
	Seat       string        `json:"asiento"`
	Gate       string        `json:"puerta"`
	Flight     CheckInFlight `json:"vuelo"`
}

type Seat struct {
	Number    string `json:"numero_asiento"`
	Class     string `json:"clase"`
	Available bool   `json:"disponible"`
}

type SeatMapSummary struct {
	Total     int `json:"total"`
	Available int `json:"disponibles"`
}

type SeatMap struct {
	Seats   []Seat         `json:"asientos"`
	Summary SeatMapSummary `json:"resumen"`
}

type Notification struct {
	ID        int64  `json:"id"`
	Type      string `json:"tipo"`
	Title     string `json:"titulo"`
	Message   string `json:"mensaje"`
	Read      bool   `json:"leido"`
	CreatedAt string `json:"fecha_creacion"`
}

type NotificationList struct {
	Notifications []Notification `json:"notificaciones"`
	Total         int            `json:"total"`
}

type UnreadCount struct {
	Unread int `json:"no_leidas"`
}

// Ticket statuses and delivery methods used by the local check-in and
// payment gates.
const (
	TicketStatusIssued = "EMITIDO"

	DeliveryEmail   = "EMAIL"
	DeliveryAirport = "AEROPUERTO"
)
