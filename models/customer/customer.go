package customer

// Customer is a travel customer record kept by the back office. It is
// distinct from a login account: a customer with a matching email may or
// may not have a corresponding user.
type Customer struct {
	ID                  string        `json:"id"`
	FirstName           string        `json:"firstName"`
	LastName            string        `json:"lastName"`
	Email               string        `json:"email"`
	DOB                 string        `json:"dob"`              // YYYY-MM-DD
	RegistrationDate    string        `json:"registrationDate"` // YYYY-MM-DD, set by the store
	RegisteredByAgentID string        `json:"registeredByAgentId"`
	AssignedRmID        string        `json:"assignedRmId,omitempty"`
	BookingStatus       BookingStatus `json:"bookingStatus"`
	Documents           []Document    `json:"documents"`
}

// FullName joins first and last name, tolerating seeded records with an
// empty last name.
func (c Customer) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// Document is an identity or travel document uploaded for one customer.
// The URL is a placeholder; there is no real file storage behind it.
type Document struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Type           string         `json:"type"` // PDF, DOCX, JPG, PNG
	URL            string         `json:"url"`
	UploadDate     string         `json:"uploadDate"` // YYYY-MM-DD
	VerifiedStatus DocumentStatus `json:"verifiedStatus,omitempty"`
	AiFeedback     string         `json:"aiFeedback,omitempty"`
}
