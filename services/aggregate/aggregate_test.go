package aggregate

import (
	"testing"

	"travelplans/models/booking"
	"travelplans/models/customer"
	"travelplans/models/itinerary"
	"travelplans/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingCountsByItinerary(t *testing.T) {
	snap := store.Seed().Read()

	counts := BookingCountsByItinerary(snap.Itineraries, snap.Bookings)
	require.Len(t, counts, len(snap.Itineraries))

	assert.Equal(t, StatusCounts{Confirmed: 1}, counts["iti-1"])
	assert.Equal(t, StatusCounts{Pending: 1}, counts["iti-2"])
	assert.Equal(t, StatusCounts{Completed: 1}, counts["iti-3"])
	assert.Equal(t, StatusCounts{Confirmed: 1}, counts["iti-4"])
	// Itineraries with no bookings still get an entry.
	assert.Equal(t, StatusCounts{}, counts["iti-7"])

	total := 0
	for _, c := range counts {
		total += c.Pending + c.Confirmed + c.Completed
	}
	assert.Equal(t, len(snap.Bookings), total)
}

func TestBookingCountsByItineraryWithFilter(t *testing.T) {
	snap := store.Seed().Read()

	counts := BookingCountsByItinerary(snap.Itineraries, snap.Bookings, booking.StatusConfirmed)
	assert.Equal(t, StatusCounts{Confirmed: 1}, counts["iti-1"])
	assert.Equal(t, StatusCounts{}, counts["iti-2"])
	assert.Equal(t, StatusCounts{}, counts["iti-3"])
}

func TestBookingCountsCancelled(t *testing.T) {
	snap := store.Seed().Read()
	bookings := append(append([]booking.Booking(nil), snap.Bookings...), booking.Booking{
		ID:          "book-x",
		CustomerID:  "cust-1",
		ItineraryID: "iti-1",
		Status:      booking.StatusCancelled,
	})

	// The default tally skips cancelled bookings.
	counts := BookingCountsByItinerary(snap.Itineraries, bookings)
	assert.Equal(t, StatusCounts{Confirmed: 1}, counts["iti-1"])

	// Filtering for them surfaces the cancelled count.
	counts = BookingCountsByItinerary(snap.Itineraries, bookings, booking.StatusCancelled)
	assert.Equal(t, StatusCounts{Cancelled: 1}, counts["iti-1"])
	assert.Equal(t, StatusCounts{}, counts["iti-2"])
}

func TestItinerariesVisibleToAgent(t *testing.T) {
	itins := []itinerary.Itinerary{
		{ID: "a", AssignedAgentID: "agent-1"},
		{ID: "b"},
		{ID: "c", AssignedAgentID: "agent-2"},
	}

	visible := ItinerariesVisibleToAgent("agent-1", itins)
	require.Len(t, visible, 2)
	assert.Equal(t, "a", visible[0].ID)
	assert.Equal(t, "b", visible[1].ID)

	// The unassigned itinerary is visible to both agents at once.
	other := ItinerariesVisibleToAgent("agent-2", itins)
	require.Len(t, other, 2)
	assert.Equal(t, "b", other[0].ID)
	assert.Equal(t, "c", other[1].ID)
}

func TestCustomerScoping(t *testing.T) {
	snap := store.Seed().Read()

	byAgent := CustomersForAgent("user-agent-1", snap.Customers)
	require.Len(t, byAgent, 2)
	assert.Equal(t, "cust-1", byAgent[0].ID)
	assert.Equal(t, "cust-2", byAgent[1].ID)

	byRM := CustomersForRM("user-rm-1", snap.Customers)
	require.Len(t, byRM, 2)

	assert.Empty(t, CustomersForAgent("user-missing", snap.Customers))
}

func TestPendingCollateralsOrder(t *testing.T) {
	snap := store.Seed().Read()

	pending := PendingCollaterals(snap.Itineraries)
	require.Len(t, pending, 3)
	// Itinerary order first, then collateral order within each itinerary.
	assert.Equal(t, "col-1-3", pending[0].ID)
	assert.Equal(t, "Dubai Desert Dreams", pending[0].ItineraryTitle)
	assert.Equal(t, "col-4-2", pending[1].ID)
	assert.Equal(t, "col-6-1", pending[2].ID)
}

func TestRecommendedItinerariesHeadAndTail(t *testing.T) {
	snap := store.Seed().Read()

	// cust-1 has booked iti-1 and iti-3: first unbooked is iti-2, last is
	// iti-7.
	recs := RecommendedItineraries("cust-1", snap.Itineraries, snap.Bookings, snap.Customers)
	require.Len(t, recs, 2)
	assert.Equal(t, "iti-2", recs[0].Itinerary.ID)
	assert.Equal(t, "Based on your interest in exciting destinations, you'll love this trip to Bali, Indonesia.", recs[0].Reason)
	assert.Equal(t, "iti-7", recs[1].Itinerary.ID)
	assert.Equal(t, "For a change of pace, consider this relaxing escape to Cairo & Luxor, Egypt.", recs[1].Reason)
}

func TestRecommendedItinerariesEdgeCases(t *testing.T) {
	snap := store.Seed().Read()

	assert.Empty(t, RecommendedItineraries("cust-missing", snap.Itineraries, snap.Bookings, snap.Customers))

	customers := []customer.Customer{{ID: "c1"}}
	itins := []itinerary.Itinerary{{ID: "i1", Destination: "Goa, India"}}

	// Every itinerary booked leaves nothing to recommend.
	booked := []booking.Booking{{ID: "b1", CustomerID: "c1", ItineraryID: "i1"}}
	assert.Empty(t, RecommendedItineraries("c1", itins, booked, customers))

	// A single unbooked itinerary yields exactly one recommendation.
	recs := RecommendedItineraries("c1", itins, nil, customers)
	require.Len(t, recs, 1)
	assert.Equal(t, "i1", recs[0].Itinerary.ID)
}

func TestBookingsForCustomerRecord(t *testing.T) {
	snap := store.Seed().Read()

	mine := BookingsForCustomerRecord("cust-1", snap.Bookings)
	require.Len(t, mine, 2)
	assert.Equal(t, "book-1", mine[0].ID)
	assert.Equal(t, "book-2", mine[1].ID)
}

func TestDocumentsRoster(t *testing.T) {
	snap := store.Seed().Read()

	roster := DocumentsRoster(snap.Customers)
	require.Len(t, roster, 3)
	assert.Equal(t, "doc-1", roster[0].ID)
	assert.Equal(t, "Sabu J", roster[0].CustomerName)
	assert.Equal(t, "doc-3", roster[2].ID)
	assert.Equal(t, "cust-3", roster[2].CustomerID)
}
