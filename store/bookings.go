package store

import (
	"context"
	"fmt"
	"time"

	"travelplans/models/booking"
)

// NewBooking is the creation input for a booking. Status, paymentStatus and
// bookingDate are not accepted from callers; the store forces them.
type NewBooking struct {
	CustomerID  string
	ItineraryID string
}

// BookingPatch enumerates the booking fields a caller may change.
type BookingPatch struct {
	Status        *booking.Status
	PaymentStatus *booking.PaymentStatus
	ItineraryID   *string
}

// CreateBooking assigns a fresh id and stores the booking as
// Pending/Unpaid with the booking date at the store clock's now. Both
// foreign keys must reference existing records.
func (s *Store) CreateBooking(ctx context.Context, input NewBooking) (booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !customerExists(s.snap, input.CustomerID) {
		return booking.Booking{}, fmt.Errorf("customer %q: %w", input.CustomerID, ErrNotFound)
	}
	if !itineraryExists(s.snap, input.ItineraryID) {
		return booking.Booking{}, fmt.Errorf("itinerary %q: %w", input.ItineraryID, ErrNotFound)
	}

	newBooking := booking.Booking{
		ID:            newID("book"),
		CustomerID:    input.CustomerID,
		ItineraryID:   input.ItineraryID,
		BookingDate:   s.now().UTC().Format(time.RFC3339),
		Status:        booking.StatusPending,
		PaymentStatus: booking.PaymentUnpaid,
	}

	snap := *s.snap
	snap.Bookings = append(append([]booking.Booking(nil), snap.Bookings...), newBooking)
	s.publish(snap)
	return newBooking, nil
}

// UpdateBooking merges the patch into the matching booking.
func (s *Store) UpdateBooking(ctx context.Context, id string, patch BookingPatch) error {
	if patch.Status != nil && !patch.Status.IsValid() {
		return fmt.Errorf("%w: unknown booking status %q", ErrValidation, *patch.Status)
	}
	if patch.PaymentStatus != nil && !patch.PaymentStatus.IsValid() {
		return fmt.Errorf("%w: unknown payment status %q", ErrValidation, *patch.PaymentStatus)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.ItineraryID != nil && !itineraryExists(s.snap, *patch.ItineraryID) {
		return fmt.Errorf("itinerary %q: %w", *patch.ItineraryID, ErrNotFound)
	}

	bookings := make([]booking.Booking, len(s.snap.Bookings))
	found := false
	for i, b := range s.snap.Bookings {
		if b.ID == id {
			if patch.Status != nil {
				b.Status = *patch.Status
			}
			if patch.PaymentStatus != nil {
				b.PaymentStatus = *patch.PaymentStatus
			}
			if patch.ItineraryID != nil {
				b.ItineraryID = *patch.ItineraryID
			}
			found = true
		}
		bookings[i] = b
	}
	if !found {
		return ErrNotFound
	}
	snap := *s.snap
	snap.Bookings = bookings
	s.publish(snap)
	return nil
}

// DeleteBooking removes the booking.
func (s *Store) DeleteBooking(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings := make([]booking.Booking, 0, len(s.snap.Bookings))
	found := false
	for _, b := range s.snap.Bookings {
		if b.ID == id {
			found = true
			continue
		}
		bookings = append(bookings, b)
	}
	if !found {
		return ErrNotFound
	}
	snap := *s.snap
	snap.Bookings = bookings
	s.publish(snap)
	return nil
}

func customerExists(snap *Snapshot, id string) bool {
	for _, c := range snap.Customers {
		if c.ID == id {
			return true
		}
	}
	return false
}

func itineraryExists(snap *Snapshot, id string) bool {
	for _, it := range snap.Itineraries {
		if it.ID == id {
			return true
		}
	}
	return false
}
