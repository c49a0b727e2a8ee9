package store

import (
	"context"
	"testing"
	"time"

	"travelplans/models/customer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() func() time.Time {
	at := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func TestCreateCustomerForcesServerFields(t *testing.T) {
	s := NewWithClock(fixedClock())

	created, err := s.CreateCustomer(context.Background(), NewCustomer{
		FirstName:           "Priya",
		LastName:            "Nair",
		Email:               "priya@nair.com",
		DOB:                 "1994-07-22",
		RegisteredByAgentID: "user-agent-1",
		AssignedRmID:        "user-rm-1",
	})
	require.NoError(t, err)
	assert.Equal(t, customer.BookingPending, created.BookingStatus)
	assert.NotNil(t, created.Documents)
	assert.Empty(t, created.Documents)
	assert.Equal(t, "2026-03-14", created.RegistrationDate)
}

func TestCreateCustomerValidation(t *testing.T) {
	s := New()

	_, err := s.CreateCustomer(context.Background(), NewCustomer{
		Email:               "priya@nair.com",
		RegisteredByAgentID: "user-agent-1",
	})
	require.ErrorIs(t, err, ErrValidation)

	_, err = s.CreateCustomer(context.Background(), NewCustomer{
		FirstName:           "Priya",
		Email:               "not-an-email",
		RegisteredByAgentID: "user-agent-1",
	})
	require.ErrorIs(t, err, ErrValidation)

	_, err = s.CreateCustomer(context.Background(), NewCustomer{
		FirstName: "Priya",
		Email:     "priya@nair.com",
	})
	require.ErrorIs(t, err, ErrValidation)
}

func TestAddDocumentToCustomer(t *testing.T) {
	s := Seed()

	doc, err := s.AddDocumentToCustomer(context.Background(), "cust-2", NewDocument{
		Name: "Aadhaar_Card.pdf",
		Type: "PDF",
	})
	require.NoError(t, err)
	assert.Equal(t, customer.DocumentPending, doc.VerifiedStatus)
	assert.Equal(t, "#", doc.URL)
	assert.NotEmpty(t, doc.UploadDate)

	stored, found := s.FindCustomerByID("cust-2")
	require.True(t, found)
	require.Len(t, stored.Documents, 1)
	assert.Equal(t, doc.ID, stored.Documents[0].ID)

	_, err = s.AddDocumentToCustomer(context.Background(), "cust-missing", NewDocument{Name: "x.pdf"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateDocumentWriteBack(t *testing.T) {
	s := Seed()

	status := customer.DocumentVerified
	feedback := "Looks authentic."
	err := s.UpdateDocument(context.Background(), "cust-1", "doc-1", DocumentPatch{
		VerifiedStatus: &status,
		AiFeedback:     &feedback,
	})
	require.NoError(t, err)

	stored, _ := s.FindCustomerByID("cust-1")
	assert.Equal(t, customer.DocumentVerified, stored.Documents[0].VerifiedStatus)
	assert.Equal(t, feedback, stored.Documents[0].AiFeedback)
	// The sibling document is untouched.
	assert.Equal(t, "doc-2", stored.Documents[1].ID)
	assert.Empty(t, stored.Documents[1].AiFeedback)
}

func TestUpdateDocumentNotFound(t *testing.T) {
	s := Seed()
	status := customer.DocumentVerified

	err := s.UpdateDocument(context.Background(), "cust-missing", "doc-1", DocumentPatch{VerifiedStatus: &status})
	require.ErrorIs(t, err, ErrNotFound)

	err = s.UpdateDocument(context.Background(), "cust-1", "doc-missing", DocumentPatch{VerifiedStatus: &status})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateDocumentRejectsUnknownStatus(t *testing.T) {
	s := Seed()
	bad := customer.DocumentStatus("Maybe")
	err := s.UpdateDocument(context.Background(), "cust-1", "doc-1", DocumentPatch{VerifiedStatus: &bad})
	require.ErrorIs(t, err, ErrValidation)
}

func TestDeleteCustomer(t *testing.T) {
	s := Seed()

	require.NoError(t, s.DeleteCustomer(context.Background(), "cust-3"))
	_, found := s.FindCustomerByID("cust-3")
	assert.False(t, found)
	require.ErrorIs(t, s.DeleteCustomer(context.Background(), "cust-3"), ErrNotFound)
}
