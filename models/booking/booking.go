package booking

// Booking links one customer to one itinerary. New bookings always start
// Pending/Unpaid; both fields move only through explicit updates, there are
// no automatic transitions.
type Booking struct {
	ID            string        `json:"id"`
	CustomerID    string        `json:"customerId"`
	ItineraryID   string        `json:"itineraryId"`
	BookingDate   string        `json:"bookingDate"` // RFC 3339, set by the store
	Status        Status        `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
}
