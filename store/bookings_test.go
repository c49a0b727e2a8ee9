package store

import (
	"context"
	"testing"

	"travelplans/models/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingForcesServerFields(t *testing.T) {
	s := Seed()
	s.now = fixedClock()

	created, err := s.CreateBooking(context.Background(), NewBooking{
		CustomerID:  "cust-2",
		ItineraryID: "iti-5",
	})
	require.NoError(t, err)
	assert.Equal(t, booking.StatusPending, created.Status)
	assert.Equal(t, booking.PaymentUnpaid, created.PaymentStatus)
	assert.Equal(t, "2026-03-14T10:30:00Z", created.BookingDate)
}

func TestCreateBookingChecksForeignKeys(t *testing.T) {
	s := Seed()

	_, err := s.CreateBooking(context.Background(), NewBooking{
		CustomerID:  "cust-missing",
		ItineraryID: "iti-1",
	})
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.CreateBooking(context.Background(), NewBooking{
		CustomerID:  "cust-1",
		ItineraryID: "iti-missing",
	})
	require.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, s.Read().Bookings, 4)
}

func TestUpdateBookingPatch(t *testing.T) {
	s := Seed()

	status := booking.StatusConfirmed
	payment := booking.PaymentPaid
	require.NoError(t, s.UpdateBooking(context.Background(), "book-3", BookingPatch{
		Status:        &status,
		PaymentStatus: &payment,
	}))

	var updated booking.Booking
	for _, b := range s.Read().Bookings {
		if b.ID == "book-3" {
			updated = b
		}
	}
	assert.Equal(t, booking.StatusConfirmed, updated.Status)
	assert.Equal(t, booking.PaymentPaid, updated.PaymentStatus)
	// Untouched fields survive the patch.
	assert.Equal(t, "cust-2", updated.CustomerID)
	assert.Equal(t, "iti-2", updated.ItineraryID)
}

func TestUpdateBookingValidation(t *testing.T) {
	s := Seed()

	bad := booking.Status("Maybe")
	require.ErrorIs(t, s.UpdateBooking(context.Background(), "book-1", BookingPatch{Status: &bad}), ErrValidation)

	missing := "iti-missing"
	require.ErrorIs(t, s.UpdateBooking(context.Background(), "book-1", BookingPatch{ItineraryID: &missing}), ErrNotFound)

	status := booking.StatusCancelled
	require.ErrorIs(t, s.UpdateBooking(context.Background(), "book-missing", BookingPatch{Status: &status}), ErrNotFound)
}

func TestDeleteBooking(t *testing.T) {
	s := Seed()

	require.NoError(t, s.DeleteBooking(context.Background(), "book-4"))
	assert.Len(t, s.Read().Bookings, 3)
	require.ErrorIs(t, s.DeleteBooking(context.Background(), "book-4"), ErrNotFound)
}
