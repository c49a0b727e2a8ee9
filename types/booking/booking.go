package booking

import "fmt"

// BookingCreateRequest is the payload for creating a booking. Status,
// payment status and booking date are server-controlled and not accepted
// here.
type BookingCreateRequest struct {
	CustomerID  string `json:"customerId" validate:"required"`
	ItineraryID string `json:"itineraryId" validate:"required"`
}

func (r BookingCreateRequest) Validate() error {
	if r.CustomerID == "" {
		return fmt.Errorf("customerId is required")
	}
	if r.ItineraryID == "" {
		return fmt.Errorf("itineraryId is required")
	}
	return nil
}

// BookingUpdateRequest carries the patchable booking fields. Absent fields
// leave the stored value untouched.
type BookingUpdateRequest struct {
	Status        *string `json:"status,omitempty"`
	PaymentStatus *string `json:"paymentStatus,omitempty"`
	ItineraryID   *string `json:"itineraryId,omitempty"`
}
