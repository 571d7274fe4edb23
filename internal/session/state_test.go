package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skybook/pkg/bookingclient"
)

func outboundOffer() bookingclient.FlightOffer {
	return bookingclient.FlightOffer{
		FlightID: 7, InstanceID: 70, FlightNumber: "IB1234",
		Origin: "MAD", Destination: "BCN", Date: "2026-10-01", Class: "ECONOMICA",
	}
}

func returnOffer() bookingclient.FlightOffer {
	return bookingclient.FlightOffer{
		FlightID: 9, InstanceID: 90, FlightNumber: "IB4321",
		Origin: "BCN", Destination: "MAD", Date: "2026-10-08", Class: "ECONOMICA",
	}
}

func roundTripParams() SearchParams {
	return SearchParams{
		SearchRequest: bookingclient.SearchRequest{
			Origin: "MAD", Destination: "BCN", Date: "2026-10-01",
		},
		SearchType: "tarifas",
		ReturnDate: "2026-10-08",
		RoundTrip:  true,
		Passengers: 2,
	}
}

func TestSelectOutbound_HoldsLegAndParams(t *testing.T) {
	s := NewState()
	offer := outboundOffer()

	s.SelectOutbound(offer, roundTripParams())

	require.NotNil(t, s.Outbound)
	assert.Equal(t, offer, *s.Outbound)
	assert.Equal(t, PhaseReturn, s.Phase)
	require.NotNil(t, s.OriginalSearch)

	swapped := s.OriginalSearch.Swapped()
	assert.Equal(t, "BCN", swapped.Origin)
	assert.Equal(t, "MAD", swapped.Destination)
	assert.Equal(t, "2026-10-08", swapped.Date)
}

func TestChangeOutbound_ClearsHeldLeg(t *testing.T) {
	s := NewState()
	s.SelectOutbound(outboundOffer(), roundTripParams())

	original := s.ChangeOutbound()

	assert.Nil(t, s.Outbound)
	assert.Equal(t, PhaseOutbound, s.Phase)
	require.NotNil(t, original)
	assert.Equal(t, "MAD", original.Origin)
	assert.Equal(t, "2026-10-01", original.Date)
}

func TestSelectReturn_CombinesLegs(t *testing.T) {
	s := NewState()
	s.SelectOutbound(outboundOffer(), roundTripParams())

	ok := s.SelectReturn(returnOffer())

	require.True(t, ok)
	assert.Nil(t, s.Outbound)
	assert.Equal(t, PhaseNone, s.Phase)
	assert.Equal(t, ViewReserve, s.View)
	assert.True(t, s.RoundTrip)
	require.Len(t, s.Trip, 2)
	assert.Equal(t, "IB1234", s.Trip[0].FlightNumber)
	assert.Equal(t, "IB4321", s.Trip[1].FlightNumber)
}

func TestSelectReturn_WithoutHeldOutbound(t *testing.T) {
	s := NewState()
	assert.False(t, s.SelectReturn(returnOffer()))
	assert.Empty(t, s.Trip)
}

func TestToggleSeat_CapIsPassengerCount(t *testing.T) {
	s := NewState()
	s.Passengers = 2
	s.BeginBooking([]bookingclient.FlightOffer{outboundOffer()}, false)

	selected, err := s.ToggleSeat(0, "12A")
	require.NoError(t, err)
	assert.True(t, selected)

	_, err = s.ToggleSeat(0, "12B")
	require.NoError(t, err)

	// third selection exceeds the cap and must leave the count at 2
	_, err = s.ToggleSeat(0, "12C")
	require.Error(t, err)
	assert.Len(t, s.Seats[0], 2)

	// toggling an already selected seat deselects it
	selected, err = s.ToggleSeat(0, "12A")
	require.NoError(t, err)
	assert.False(t, selected)
	assert.Equal(t, []string{"12B"}, s.Seats[0])
}

func TestIncompleteLeg(t *testing.T) {
	s := NewState()
	s.Passengers = 1
	s.BeginBooking([]bookingclient.FlightOffer{outboundOffer(), returnOffer()}, true)

	assert.Equal(t, 0, s.IncompleteLeg())

	_, err := s.ToggleSeat(0, "12A")
	require.NoError(t, err)
	assert.Equal(t, 1, s.IncompleteLeg())

	_, err = s.ToggleSeat(1, "14C")
	require.NoError(t, err)
	assert.Equal(t, -1, s.IncompleteLeg())
}

func TestDrainFlashes(t *testing.T) {
	s := NewState()
	s.Flash("error", "algo falló")
	s.FlashFor("info", "buscando", 2000)

	flashes := s.DrainFlashes()
	require.Len(t, flashes, 2)
	assert.Equal(t, 4000, flashes[0].DurationMS)
	assert.Equal(t, 2000, flashes[1].DurationMS)
	assert.Empty(t, s.DrainFlashes())
}

func TestClearAuth_ResetsEverything(t *testing.T) {
	s := NewState()
	s.Token = "tok"
	s.User = &bookingclient.User{ID: 1}
	s.Navigate(ViewTickets)

	s.ClearAuth()

	assert.Empty(t, s.Token)
	assert.Nil(t, s.User)
	assert.Equal(t, ViewHome, s.View)
}
