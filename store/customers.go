package store

import (
	"context"
	"fmt"

	"travelplans/models/customer"
)

// NewCustomer is the creation input for a customer record. BookingStatus,
// documents and registrationDate are not accepted from callers; the store
// forces them.
type NewCustomer struct {
	FirstName           string
	LastName            string
	Email               string
	DOB                 string
	RegisteredByAgentID string
	AssignedRmID        string
}

// NewDocument is the creation input for a customer document. The stored URL
// is always a placeholder; there is no file storage behind it.
type NewDocument struct {
	Name string
	Type string
}

// DocumentPatch enumerates the document fields a caller may change.
type DocumentPatch struct {
	VerifiedStatus *customer.DocumentStatus
	AiFeedback     *string
}

// CreateCustomer assigns a fresh id and stores the customer. BookingStatus
// starts Pending, the document list starts empty and registrationDate is
// the store clock's current date regardless of input.
func (s *Store) CreateCustomer(ctx context.Context, input NewCustomer) (customer.Customer, error) {
	if input.FirstName == "" {
		return customer.Customer{}, fmt.Errorf("%w: first name is required", ErrValidation)
	}
	if err := validateEmail(input.Email); err != nil {
		return customer.Customer{}, err
	}
	if input.RegisteredByAgentID == "" {
		return customer.Customer{}, fmt.Errorf("%w: registering agent is required", ErrValidation)
	}

	newCustomer := customer.Customer{
		ID:                  newID("cust"),
		FirstName:           input.FirstName,
		LastName:            input.LastName,
		Email:               input.Email,
		DOB:                 input.DOB,
		RegistrationDate:    s.today(),
		RegisteredByAgentID: input.RegisteredByAgentID,
		AssignedRmID:        input.AssignedRmID,
		BookingStatus:       customer.BookingPending,
		Documents:           []customer.Document{},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	snap := *s.snap
	snap.Customers = append(append([]customer.Customer(nil), snap.Customers...), newCustomer)
	s.publish(snap)
	return newCustomer, nil
}

// UpdateCustomer replaces the stored record with the same id.
func (s *Store) UpdateCustomer(ctx context.Context, updated customer.Customer) error {
	if !updated.BookingStatus.IsValid() {
		return fmt.Errorf("%w: unknown booking status %q", ErrValidation, updated.BookingStatus)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	customers, found := replaceCustomer(s.snap.Customers, updated)
	if !found {
		return ErrNotFound
	}
	snap := *s.snap
	snap.Customers = customers
	s.publish(snap)
	return nil
}

// DeleteCustomer removes the customer record and its documents.
func (s *Store) DeleteCustomer(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	customers := make([]customer.Customer, 0, len(s.snap.Customers))
	found := false
	for _, c := range s.snap.Customers {
		if c.ID == id {
			found = true
			continue
		}
		customers = append(customers, c)
	}
	if !found {
		return ErrNotFound
	}
	snap := *s.snap
	snap.Customers = customers
	s.publish(snap)
	return nil
}

// AddDocumentToCustomer appends a document with a generated id and a
// Pending verification status.
func (s *Store) AddDocumentToCustomer(ctx context.Context, customerID string, input NewDocument) (customer.Document, error) {
	if input.Name == "" {
		return customer.Document{}, fmt.Errorf("%w: document name is required", ErrValidation)
	}

	newDocument := customer.Document{
		ID:             newID("doc"),
		Name:           input.Name,
		Type:           input.Type,
		URL:            "#",
		UploadDate:     s.today(),
		VerifiedStatus: customer.DocumentPending,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.snap.Customers {
		if c.ID != customerID {
			continue
		}
		c.Documents = append(append([]customer.Document(nil), c.Documents...), newDocument)
		customers, _ := replaceCustomer(s.snap.Customers, c)
		snap := *s.snap
		snap.Customers = customers
		s.publish(snap)
		return newDocument, nil
	}
	return customer.Document{}, ErrNotFound
}

// UpdateDocument merges the patch into the matching document. This is the
// write-back path for AI verification results.
func (s *Store) UpdateDocument(ctx context.Context, customerID, documentID string, patch DocumentPatch) error {
	if patch.VerifiedStatus != nil && !patch.VerifiedStatus.IsValid() {
		return fmt.Errorf("%w: unknown document status %q", ErrValidation, *patch.VerifiedStatus)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.snap.Customers {
		if c.ID != customerID {
			continue
		}
		documents := make([]customer.Document, len(c.Documents))
		found := false
		for i, doc := range c.Documents {
			if doc.ID == documentID {
				if patch.VerifiedStatus != nil {
					doc.VerifiedStatus = *patch.VerifiedStatus
				}
				if patch.AiFeedback != nil {
					doc.AiFeedback = *patch.AiFeedback
				}
				found = true
			}
			documents[i] = doc
		}
		if !found {
			return ErrNotFound
		}
		c.Documents = documents
		customers, _ := replaceCustomer(s.snap.Customers, c)
		snap := *s.snap
		snap.Customers = customers
		s.publish(snap)
		return nil
	}
	return ErrNotFound
}

// FindCustomerByID scans the customer table by id.
func (s *Store) FindCustomerByID(id string) (customer.Customer, bool) {
	snap := s.Read()
	for _, c := range snap.Customers {
		if c.ID == id {
			return c, true
		}
	}
	return customer.Customer{}, false
}

func replaceCustomer(customers []customer.Customer, updated customer.Customer) ([]customer.Customer, bool) {
	out := make([]customer.Customer, len(customers))
	found := false
	for i, c := range customers {
		if c.ID == updated.ID {
			out[i] = updated
			found = true
		} else {
			out[i] = c
		}
	}
	return out, found
}
