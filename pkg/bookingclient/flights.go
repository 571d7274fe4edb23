package bookingclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

func (c *Client) Cities(ctx context.Context, token string) ([]City, error) {
	var cities []City
	if err := c.do(ctx, http.MethodGet, "/vuelos/ciudades", token, nil, nil, &cities); err != nil {
		return nil, err
	}
	return cities, nil
}

func (c *Client) Airlines(ctx context.Context, token string) ([]Airline, error) {
	var airlines []Airline
	if err := c.do(ctx, http.MethodGet, "/vuelos/aerolineas", token, nil, nil, &airlines); err != nil {
		return nil, err
	}
	return airlines, nil
}

// SearchBySchedule returns offers ordered by departure time.
func (c *Client) SearchBySchedule(ctx context.Context, token string, req SearchRequest) ([]FlightOffer, error) {
	var offers []FlightOffer
	if err := c.do(ctx, http.MethodPost, "/vuelos/buscar/horarios", token, nil, req, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

// SearchByFare returns offers ordered by price.
func (c *Client) SearchByFare(ctx context.Context, token string, req SearchRequest) ([]FlightOffer, error) {
	var offers []FlightOffer
	if err := c.do(ctx, http.MethodPost, "/vuelos/buscar/tarifas", token, nil, req, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

// FlightInfo looks a flight up by number; with a date it also carries the
// day's status and seat availability.
func (c *Client) FlightInfo(ctx context.Context, token, flightNumber, date string) (*FlightInfo, error) {
	query := url.Values{}
	if date != "" {
		query.Set("fecha", date)
	}
	var info FlightInfo
	path := "/vuelos/informacion/" + url.PathEscape(flightNumber)
	if err := c.do(ctx, http.MethodGet, path, token, query, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) SeatMap(ctx context.Context, token string, flightID int64, date, class string) (*SeatMap, error) {
	query := url.Values{}
	if class != "" {
		query.Set("clase", class)
	}
	var seatMap SeatMap
	path := fmt.Sprintf("/vuelos/asientos/%d/%s", flightID, url.PathEscape(date))
	if err := c.do(ctx, http.MethodGet, path, token, query, nil, &seatMap); err != nil {
		return nil, err
	}
	return &seatMap, nil
}
