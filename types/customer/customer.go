package customer

import "fmt"

// CustomerCreateRequest is the payload for registering a customer. Booking
// status, documents and registration date are server-controlled and not
// accepted here.
type CustomerCreateRequest struct {
	FirstName           string `json:"firstName" validate:"required,min=1,max=255"`
	LastName            string `json:"lastName" validate:"omitempty,max=255"`
	Email               string `json:"email" validate:"required,email"`
	DOB                 string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	RegisteredByAgentID string `json:"registeredByAgentId" validate:"required"`
	AssignedRmID        string `json:"assignedRmId" validate:"omitempty"`
}

func (r CustomerCreateRequest) Validate() error {
	if r.FirstName == "" {
		return fmt.Errorf("firstName is required")
	}
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.RegisteredByAgentID == "" {
		return fmt.Errorf("registeredByAgentId is required")
	}
	return nil
}

// CustomerUpdateRequest is the full-replace payload for a customer record.
type CustomerUpdateRequest struct {
	FirstName           string `json:"firstName" validate:"required,min=1,max=255"`
	LastName            string `json:"lastName" validate:"omitempty,max=255"`
	Email               string `json:"email" validate:"required,email"`
	DOB                 string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	RegisteredByAgentID string `json:"registeredByAgentId" validate:"required"`
	AssignedRmID        string `json:"assignedRmId" validate:"omitempty"`
	BookingStatus       string `json:"bookingStatus" validate:"required,oneof=Pending Confirmed"`
}

func (r CustomerUpdateRequest) Validate() error {
	if r.FirstName == "" {
		return fmt.Errorf("firstName is required")
	}
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.RegisteredByAgentID == "" {
		return fmt.Errorf("registeredByAgentId is required")
	}
	return nil
}

// DocumentCreateRequest is the payload for uploading a customer document.
// There is no file storage behind it, only the metadata is kept.
type DocumentCreateRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
	Type string `json:"type" validate:"required,oneof=PDF DOCX JPG PNG"`
}

func (r DocumentCreateRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.Type == "" {
		return fmt.Errorf("type is required")
	}
	return nil
}
