package itinerary

import "fmt"

// ItineraryCreateRequest is the payload for creating an itinerary.
type ItineraryCreateRequest struct {
	Title           string  `json:"title" validate:"required,min=1,max=255"`
	Destination     string  `json:"destination" validate:"required,min=1,max=255"`
	Duration        int     `json:"duration" validate:"required,gt=0"`
	Price           float64 `json:"price" validate:"gte=0"`
	Description     string  `json:"description" validate:"omitempty"`
	ImageURL        string  `json:"imageUrl" validate:"omitempty"`
	AssignedAgentID string  `json:"assignedAgentId" validate:"omitempty"`
}

func (r ItineraryCreateRequest) Validate() error {
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	if r.Destination == "" {
		return fmt.Errorf("destination is required")
	}
	if r.Duration <= 0 {
		return fmt.Errorf("duration must be a positive number of days")
	}
	if r.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	return nil
}

// CollateralCreateRequest is the payload for attaching a collateral.
type CollateralCreateRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
	Type string `json:"type" validate:"required,oneof=pdf docx video image pptx"`
	URL  string `json:"url" validate:"omitempty"`
}

func (r CollateralCreateRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.Type == "" {
		return fmt.Errorf("type is required")
	}
	return nil
}

// CollateralUpdateRequest carries the patchable collateral fields. Absent
// fields leave the stored value untouched.
type CollateralUpdateRequest struct {
	Name     *string `json:"name,omitempty"`
	Type     *string `json:"type,omitempty"`
	URL      *string `json:"url,omitempty"`
	Approved *bool   `json:"approved,omitempty"`
}
